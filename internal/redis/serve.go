package redis

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/hnimtadd/craft-redis/internal/redis/resp"
	"github.com/hnimtadd/craft-redis/utils"
)

func (c *Controller) Serve(conn net.Conn) {
	remoteAddr := conn.RemoteAddr().String()
	localAdd := conn.LocalAddr().String()
	hashBytes := sha256.Sum256([]byte(remoteAddr + localAdd))
	hash := hex.EncodeToString(hashBytes[:])
	log := c.logger.WithField("remote", remoteAddr)

	log.Debug("receive connection")
	session := Session{
		Hash: hash,
	}
	info := SessionInfo{
		Hash: hash,
	}
	c.sessions.Put(hash, &session)
	defer func() {
		log.Debug("cleaning connection")
		c.sessions.Remove(hash)
		conn.Close()
	}()

	parser := resp.Parser{}
	var pending []byte
	buf := make([]byte, 1024)
	for {
		utils.Assert(conn != nil)
		n, err := conn.Read(buf)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.WithError(err).Warn("failed to read from conn")
			}
			return
		}
		pending = append(pending, buf[:n]...)

		for len(pending) > 0 {
			cmd, consumed, err := parser.ParseNext(pending)
			if errors.Is(err, resp.ErrIncomplete) {
				break
			}
			if err != nil {
				log.WithError(err).Warn("failed to parse command, closing connection")
				protoErr := resp.SimpleErrorData{
					Type: resp.SimpleErrorTypeGeneric,
					Msg:  fmt.Sprintf("Protocol error: %v", err),
				}
				_, _ = conn.Write([]byte(protoErr.String()))
				return
			}
			pending = pending[consumed:]

			var res resp.Data
			switch data := cmd.(type) {
			case resp.ArraysData:
				log.WithField("cmd", resp.Raw(data)).Debug("receive")
				res = c.Handle(data, info)
			default:
				res = ErrInvalidCmd
			}
			if _, err := conn.Write([]byte(res.String())); err != nil {
				log.WithError(err).Warn("failed to write to conn")
				return
			}
			log.WithField("res", resp.Raw(res)).Debug("return")
		}
	}
}
