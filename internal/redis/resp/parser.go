package resp

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/hnimtadd/craft-redis/utils"
)

// ErrIncomplete is returned when the input ends before a full value.
var ErrIncomplete = errors.New("resp: incomplete data")

type Parser struct{}

// ParseNext parses the first value of data. It returns the value and the
// number of bytes it spans.
func (p Parser) ParseNext(data []byte) (Data, int, error) {
	if len(data) == 0 {
		return nil, -1, ErrIncomplete
	}

	typ := data[0]
	switch DataType(typ) {
	case TypeSimpleString:
		return p.ParseSimpleStrings(data)
	case TypeBulkString:
		return p.ParseBulkStrings(data)
	case TypeArrays:
		return p.ParseArrays(data)
	case TypeIntegers:
		return p.ParseIntegers(data)
	default:
		return nil, -1, fmt.Errorf("unsupport data type: %v", string(typ))
	}
}

// readLine returns the content between the type byte and the first
// terminator, and the index right after the terminator.
func readLine(input []byte) ([]byte, int, error) {
	endIdx := bytes.Index(input, []byte(Terminator))
	if endIdx == -1 {
		return nil, -1, ErrIncomplete
	}
	return input[1:endIdx], endIdx + len(Terminator), nil
}

func (p Parser) ParseSimpleStrings(input []byte) (Data, int, error) {
	utils.Assert(DataType(input[0]) == TypeSimpleString, "first byte must be simpleString indicator")

	data, nextIdx, err := readLine(input)
	if err != nil {
		return nil, -1, err
	}
	return SimpleStringData{
		Data: string(data),
	}, nextIdx, nil
}

func (p Parser) ParseIntegers(input []byte) (Data, int, error) {
	utils.Assert(DataType(input[0]) == TypeIntegers, "first byte must be integers indicator")

	data, nextIdx, err := readLine(input)
	if err != nil {
		return nil, -1, err
	}
	value, err := strconv.Atoi(string(data))
	if err != nil {
		return nil, -1, fmt.Errorf("invalid integer: %v", err)
	}
	return Integer{Data: value}, nextIdx, nil
}

// $<length>\r\n<data>\r\n
func (p Parser) ParseBulkStrings(input []byte) (Data, int, error) {
	utils.Assert(DataType(input[0]) == TypeBulkString, "first byte must be bulkStrings indicator")

	lengthData, dataStartIdx, err := readLine(input)
	if err != nil {
		return nil, -1, err
	}
	respLength, err := strconv.Atoi(string(lengthData))
	if err != nil {
		return nil, -1, fmt.Errorf("failed to parse resp length: %v", err)
	}
	if respLength == -1 {
		// NULL bulkString
		return NullBulkStringData{}, dataStartIdx, nil
	}
	if respLength < 0 {
		return nil, -1, fmt.Errorf("invalid bulk string length: %d", respLength)
	}

	dataEndIdx := dataStartIdx + respLength
	nextIdx := dataEndIdx + len(Terminator)
	if nextIdx > len(input) {
		return nil, -1, ErrIncomplete
	}
	if string(input[dataEndIdx:nextIdx]) != Terminator {
		return nil, -1, fmt.Errorf("bulk string of length %d is not terminated by CRLF", respLength)
	}
	return BulkStringData{
		Data: string(input[dataStartIdx:dataEndIdx]),
	}, nextIdx, nil
}

// *<number-of-elements>\r\n<element-1>...<element-n>
func (p Parser) ParseArrays(input []byte) (Data, int, error) {
	utils.Assert(DataType(input[0]) == TypeArrays, "first byte must be arrays indicator")

	elesNumData, nextIdx, err := readLine(input)
	if err != nil {
		return nil, -1, err
	}
	elesNum, err := strconv.Atoi(string(elesNumData))
	if err != nil {
		return nil, -1, fmt.Errorf("invalid number of elements: %v", err)
	}
	if elesNum < 0 {
		return nil, -1, fmt.Errorf("invalid number of elements: %d", elesNum)
	}

	datas := make([]Data, elesNum)
	for i := range elesNum {
		data, n, err := p.ParseNext(input[nextIdx:])
		if err != nil {
			return nil, -1, err
		}
		datas[i] = data
		nextIdx += n
	}

	return ArraysData{
		Datas: datas,
	}, nextIdx, nil
}
