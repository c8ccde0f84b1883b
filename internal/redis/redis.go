package redis

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hnimtadd/craft-redis/internal/redis/resp"
	"github.com/sirupsen/logrus"
)

type Controller struct {
	// dbs holds one keyspace per database index, created on first use.
	dbs      *Set[Set[Value]]
	logger   *logrus.Logger
	sessions *Set[Session]

	options Options

	// metadata holds the AUX fields of the restored snapshot. It is written
	// by Restore before the controller serves any connection.
	metadata map[string]string

	now func() time.Time
}

func NewController(opts Options, logger *logrus.Logger) *Controller {
	if opts.Databases <= 0 {
		opts.Databases = DefaultDatabases
	}
	return &Controller{
		dbs:      NewBLSet[Set[Value]](),
		logger:   logger,
		sessions: NewBLSet[Session](),
		options:  opts,
		metadata: map[string]string{},
		now:      time.Now,
	}
}

func (c *Controller) db(index int) *Set[Value] {
	key := strconv.Itoa(index)
	if db, found := c.dbs.Get(key); found {
		return db
	}
	db, _ := c.dbs.Getsert(key, NewBLSet[Value]())
	return db
}

type HandlerFunc func(command, *Session) (resp.Data, *resp.SimpleErrorData)

func (c *Controller) Handle(data resp.ArraysData, sessionInfo SessionInfo) resp.Data {
	cmd, err := parse(data)
	if err != nil {
		return err
	}
	session, _ := c.sessions.Getsert(sessionInfo.Hash, &Session{Hash: sessionInfo.Hash})

	var handler HandlerFunc
	switch strings.ToUpper(cmd.cmd.Data) {
	case "ECHO":
		handler = c.HandleECHO
	case "PING":
		handler = c.HandlePING
	case "SET":
		handler = c.HandleSET
	case "GET":
		handler = c.HandleGET
	case "DEL":
		handler = c.HandleDEL
	case "KEYS":
		handler = c.HandleKEYS
	case "TYPE":
		handler = c.HandleTYPE
	case "DBSIZE":
		handler = c.HandleDBSIZE
	case "SELECT":
		handler = c.HandleSELECT
	case "CONFIG":
		handler = c.HandleCONFIG
	case "INFO":
		handler = c.HandleINFO
	default:
		return resp.SimpleErrorData{
			Type: resp.SimpleErrorTypeGeneric,
			Msg:  fmt.Sprintf("unknown command '%s'", cmd.cmd.Data),
		}
	}
	res, err := handler(*cmd, session)
	if err != nil {
		return err
	}
	return res
}

func (c *Controller) HandleECHO(cmd command, session *Session) (resp.Data, *resp.SimpleErrorData) {
	if len(cmd.args) != 1 {
		return nil, errWrongNumberOfArgs("echo")
	}
	return cmd.args[0], nil
}

func (c *Controller) HandlePING(cmd command, session *Session) (resp.Data, *resp.SimpleErrorData) {
	switch len(cmd.args) {
	case 0:
		return resp.SimpleStringData{Data: "PONG"}, nil
	case 1:
		return cmd.args[0], nil
	default:
		return nil, errWrongNumberOfArgs("ping")
	}
}

// HandleSET handles SET
// example: redis-cli SET foo bar PX 100
func (c *Controller) HandleSET(cmd command, session *Session) (resp.Data, *resp.SimpleErrorData) {
	if len(cmd.args) < 2 {
		return nil, errWrongNumberOfArgs("set")
	}
	opts := cmd.args[2:]
	if len(opts)%2 != 0 {
		return nil, &ErrSyntax
	}
	var ttl time.Duration
	for keyIdx := 0; keyIdx < len(opts); keyIdx += 2 {
		optVal, err := strconv.ParseInt(opts[keyIdx+1].Data, 10, 64)
		if err != nil || optVal <= 0 {
			return nil, &resp.SimpleErrorData{
				Type: resp.SimpleErrorTypeGeneric,
				Msg:  "invalid expire time in 'set' command",
			}
		}
		switch strings.ToLower(opts[keyIdx].Data) {
		case "px":
			ttl = time.Duration(optVal) * time.Millisecond
		case "ex":
			ttl = time.Duration(optVal) * time.Second
		default:
			return nil, &ErrSyntax
		}
	}
	return c.handleSET(session.DB, cmd.args[0].Data, cmd.args[1].Data, ttl)
}

func (c *Controller) HandleGET(cmd command, session *Session) (resp.Data, *resp.SimpleErrorData) {
	if len(cmd.args) != 1 {
		return nil, errWrongNumberOfArgs("get")
	}
	return c.handleGET(session.DB, cmd.args[0].Data)
}

func (c *Controller) HandleDEL(cmd command, session *Session) (resp.Data, *resp.SimpleErrorData) {
	if len(cmd.args) < 1 {
		return nil, errWrongNumberOfArgs("del")
	}
	keys := make([]string, len(cmd.args))
	for idx, arg := range cmd.args {
		keys[idx] = arg.Data
	}
	return c.handleDEL(session.DB, keys)
}

// HandleKEYS handles KEYS
// example: redis-cli KEYS "f*"
func (c *Controller) HandleKEYS(cmd command, session *Session) (resp.Data, *resp.SimpleErrorData) {
	if len(cmd.args) != 1 {
		return nil, errWrongNumberOfArgs("keys")
	}
	return c.handleKEYS(session.DB, cmd.args[0].Data)
}

func (c *Controller) HandleTYPE(cmd command, session *Session) (resp.Data, *resp.SimpleErrorData) {
	if len(cmd.args) != 1 {
		return nil, errWrongNumberOfArgs("type")
	}
	return c.handleTYPE(session.DB, cmd.args[0].Data)
}

func (c *Controller) HandleDBSIZE(cmd command, session *Session) (resp.Data, *resp.SimpleErrorData) {
	if len(cmd.args) != 0 {
		return nil, errWrongNumberOfArgs("dbsize")
	}
	return resp.Integer{Data: c.liveKeys(session.DB)}, nil
}

func (c *Controller) HandleSELECT(cmd command, session *Session) (resp.Data, *resp.SimpleErrorData) {
	if len(cmd.args) != 1 {
		return nil, errWrongNumberOfArgs("select")
	}
	index, err := strconv.Atoi(cmd.args[0].Data)
	if err != nil {
		return nil, &ErrNotInteger
	}
	if index < 0 || index >= c.options.Databases {
		return nil, &ErrDBIndexOutOfRange
	}
	session.DB = index
	return resp.SimpleStringData{Data: "OK"}, nil
}

// HandleCONFIG handles CONFIG GET
// example: redis-cli CONFIG GET dir
func (c *Controller) HandleCONFIG(cmd command, session *Session) (resp.Data, *resp.SimpleErrorData) {
	if len(cmd.args) < 2 {
		return nil, errWrongNumberOfArgs("config")
	}
	if strings.ToUpper(cmd.args[0].Data) != "GET" {
		return nil, &resp.SimpleErrorData{
			Type: resp.SimpleErrorTypeGeneric,
			Msg:  fmt.Sprintf("unknown subcommand '%s'", cmd.args[0].Data),
		}
	}
	params := make([]string, len(cmd.args)-1)
	for idx, arg := range cmd.args[1:] {
		params[idx] = arg.Data
	}
	return c.handleCONFIGGET(params)
}

// HandleINFO handles INFO
// example: redis-cli INFO keyspace
func (c *Controller) HandleINFO(cmd command, session *Session) (resp.Data, *resp.SimpleErrorData) {
	if len(cmd.args) > 1 {
		return nil, errWrongNumberOfArgs("info")
	}
	section := ""
	if len(cmd.args) == 1 {
		section = strings.ToLower(cmd.args[0].Data)
	}
	return c.handleINFO(section)
}
