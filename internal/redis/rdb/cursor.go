package rdb

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/hnimtadd/craft-redis/utils"
)

// maxPrealloc caps the up-front allocation of a single read so that a
// corrupt 32-bit length can not make us allocate gigabytes before noticing
// the input is short.
const maxPrealloc = 64 << 10

// cursor is a sequential reader with a single byte of pushback. It does not
// buffer anything else; wrap the source in a bufio.Reader if needed.
type cursor struct {
	r   io.Reader
	pos int64

	one     [1]byte
	last    byte
	hasLast bool // last holds the most recently read byte
	pending bool // last was pushed back and is the next byte to read
}

func newCursor(r io.Reader) *cursor {
	return &cursor{r: r}
}

// offset returns the number of bytes consumed so far.
func (c *cursor) offset() int64 {
	return c.pos
}

func (c *cursor) readByte() (byte, error) {
	if c.pending {
		c.pending = false
		c.hasLast = true
		c.pos++
		return c.last, nil
	}
	if _, err := io.ReadFull(c.r, c.one[:]); err != nil {
		return 0, c.wrap(err, 1)
	}
	c.pos++
	c.last = c.one[0]
	c.hasLast = true
	return c.last, nil
}

// readBytes returns exactly n bytes, or ErrTruncatedInput if fewer remain.
func (c *cursor) readBytes(n uint64) ([]byte, error) {
	if n == 0 {
		// nothing was read, so there is no byte to push back
		c.hasLast = false
		return []byte{}, nil
	}
	buf := bytes.NewBuffer(make([]byte, 0, int(min(n, maxPrealloc))))
	if c.pending {
		buf.WriteByte(c.last)
		c.pending = false
		c.pos++
		n--
	}
	if n > 0 {
		read, err := io.CopyN(buf, c.r, int64(n))
		c.pos += read
		if err != nil {
			return nil, c.wrap(err, uint64(int64(n)-read))
		}
	}
	out := buf.Bytes()
	c.last = out[len(out)-1]
	c.hasLast = true
	return out, nil
}

// unreadByte pushes back the byte returned by the latest read. It may be
// called at most once between two reads.
func (c *cursor) unreadByte() {
	utils.Assert(c.hasLast && !c.pending, "rdb: unreadByte without a preceding read")
	c.hasLast = false
	c.pending = true
	c.pos--
}

func (c *cursor) wrap(err error, missing uint64) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %d byte(s) missing at offset %d", ErrTruncatedInput, missing, c.pos)
	}
	return fmt.Errorf("rdb: read at offset %d: %w", c.pos, err)
}
