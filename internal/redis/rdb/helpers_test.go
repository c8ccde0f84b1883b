package rdb

import (
	"bytes"
	"encoding/binary"
)

func lengthBytes(n int) []byte {
	switch {
	case n < 1<<6:
		return []byte{byte(n)}
	case n < 1<<14:
		return []byte{0x40 | byte(n>>8), byte(n)}
	default:
		b := []byte{0x80, 0, 0, 0, 0}
		binary.BigEndian.PutUint32(b[1:], uint32(n))
		return b
	}
}

func stringBytes(s string) []byte {
	return append(lengthBytes(len(s)), s...)
}

func le64(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

func record(key, value string) []byte {
	return concat([]byte{TypeString}, stringBytes(key), stringBytes(value))
}

func dbHeader(index int, size, expires int) []byte {
	return concat([]byte{OpcodeSelectDB}, lengthBytes(index), []byte{OpcodeResizeDB}, lengthBytes(size), lengthBytes(expires))
}

func aux(key, value string) []byte {
	return concat([]byte{OpcodeAux}, stringBytes(key), stringBytes(value))
}

func concat(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

func newTestDecoder(b []byte) *Decoder {
	return NewDecoder(bytes.NewReader(b))
}
