package resp

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

type (
	Data interface {
		String() string
	}
	SimpleStringData struct {
		Data string
	}
	BulkStringData struct {
		Data string
	}
	NullBulkStringData struct{}
	ArraysData         struct {
		Datas []Data
	}
	SimpleErrorData struct {
		Type SimpleErrorType
		Msg  string
	}
	Integer struct {
		Data int
	}
)

func (d SimpleStringData) String() string {
	return fmt.Sprintf("%s%s%s", string(TypeSimpleString), d.Data, Terminator)
}

func (d BulkStringData) String() string {
	return fmt.Sprintf("%s%d%s%s%s", string(TypeBulkString), len(d.Data), Terminator, d.Data, Terminator)
}

func (d NullBulkStringData) String() string {
	return fmt.Sprintf("%s-1%s", string(TypeBulkString), Terminator)
}

func (d ArraysData) String() string {
	builder := new(strings.Builder)
	builder.WriteByte(byte(TypeArrays))
	fmt.Fprintf(builder, "%d%s", len(d.Datas), Terminator)
	for ele := range slices.Values(d.Datas) {
		builder.WriteString(ele.String())
	}
	return builder.String()
}

func (d SimpleErrorData) String() string {
	return fmt.Sprintf("%s%s %s%s", string(TypeSimpleError), d.Type, d.Msg, Terminator)
}

func (d Integer) String() string {
	return fmt.Sprintf("%s%d%s", string(TypeIntegers), d.Data, Terminator)
}

// BulkStrings wraps each value into a BulkStringData.
func BulkStrings(values ...string) ArraysData {
	datas := make([]Data, len(values))
	for idx, value := range values {
		datas[idx] = BulkStringData{Data: value}
	}
	return ArraysData{Datas: datas}
}

func Raw(data Data) string {
	return strconv.Quote(data.String())
}
