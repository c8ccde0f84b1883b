package redis

import (
	"fmt"

	"github.com/hnimtadd/craft-redis/internal/redis/resp"
)

var (
	ErrInvalidCmd = resp.SimpleErrorData{
		Type: resp.SimpleErrorTypeGeneric,
		Msg:  "invalid cmd",
	}
	ErrSyntax = resp.SimpleErrorData{
		Type: resp.SimpleErrorTypeGeneric,
		Msg:  "syntax error",
	}
	ErrNotInteger = resp.SimpleErrorData{
		Type: resp.SimpleErrorTypeGeneric,
		Msg:  "value is not an integer or out of range",
	}
	ErrDBIndexOutOfRange = resp.SimpleErrorData{
		Type: resp.SimpleErrorTypeGeneric,
		Msg:  "DB index is out of range",
	}
)

func errWrongNumberOfArgs(cmd string) *resp.SimpleErrorData {
	return &resp.SimpleErrorData{
		Type: resp.SimpleErrorTypeGeneric,
		Msg:  fmt.Sprintf("wrong number of arguments for '%s' command", cmd),
	}
}
