package rdb

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLength(t *testing.T) {
	tcs := []struct {
		name          string
		input         []byte
		expected      uint64
		expectedError error
	}{
		{name: "6 bit", input: []byte{0x0A}, expected: 10},
		{name: "6 bit max", input: []byte{0x3F}, expected: 63},
		{name: "14 bit", input: []byte{0x42, 0xBC}, expected: 700},
		{name: "14 bit max", input: []byte{0x7F, 0xFF}, expected: 16383},
		{name: "32 bit", input: []byte{0x80, 0x00, 0x00, 0x42, 0x68}, expected: 17000},
		{name: "32 bit ignores low bits of first byte", input: []byte{0xBF, 0xFF, 0xFF, 0xFF, 0xFF}, expected: 1<<32 - 1},
		{name: "special encoding", input: []byte{0xC0}, expectedError: ErrInvalidLengthEncoding},
		{name: "special encoding any", input: []byte{0xFF}, expectedError: ErrInvalidLengthEncoding},
		{name: "truncated 14 bit", input: []byte{0x42}, expectedError: ErrTruncatedInput},
		{name: "truncated 32 bit", input: []byte{0x80, 0x00, 0x01}, expectedError: ErrTruncatedInput},
		{name: "empty", input: nil, expectedError: ErrTruncatedInput},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, err := newTestDecoder(tc.input).readLength()
			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestReadStringInteger(t *testing.T) {
	tcs := []struct {
		name          string
		input         []byte
		expected      string
		expectedError error
	}{
		{name: "int8", input: []byte{0xC0, 0x7B}, expected: "123"},
		{name: "int8 is unsigned", input: []byte{0xC0, 0xFF}, expected: "255"},
		{name: "int16", input: []byte{0xC1, 0x01, 0x00}, expected: "1"},
		{name: "int16 little endian", input: []byte{0xC1, 0x39, 0x30}, expected: "12345"},
		{name: "int16 is unsigned", input: []byte{0xC1, 0xFF, 0xFF}, expected: "65535"},
		{name: "int32", input: []byte{0xC2, 0x01, 0x00, 0x00, 0x00}, expected: "1"},
		{name: "int32 little endian", input: []byte{0xC2, 0x87, 0xD6, 0x12, 0x00}, expected: "1234567"},
		{name: "int32 negative", input: []byte{0xC2, 0xFE, 0xFF, 0xFF, 0xFF}, expected: "-2"},
		{name: "compressed", input: []byte{0xC3, 0x01, 0x01, 0x00}, expectedError: ErrUnsupportedStringEncoding},
		{name: "unknown special", input: []byte{0xFF}, expectedError: ErrUnsupportedStringEncoding},
		{name: "truncated int16", input: []byte{0xC1, 0x01}, expectedError: ErrTruncatedInput},
		{name: "truncated int32", input: []byte{0xC2, 0x01, 0x00}, expectedError: ErrTruncatedInput},
		{name: "truncated raw", input: []byte{0x05, 'a', 'b'}, expectedError: ErrTruncatedInput},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, err := newTestDecoder(tc.input).readString()
			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestReadStringRoundTrip(t *testing.T) {
	lengths := []int{0, 1, 10, 63, 64, 100, 1000, 16383, 16384, 70000, 1 << 20}
	for _, n := range lengths {
		payload := bytes.Repeat([]byte{'x', 0x00, 0xFF}, n/3+1)[:n]
		input := append(lengthBytes(n), payload...)

		d := newTestDecoder(input)
		got, err := d.readString()
		require.NoError(t, err, "length %d", n)
		assert.Equal(t, string(payload), got, "length %d", n)
		assert.EqualValues(t, len(input), d.c.offset(), "length %d", n)
	}
}

func TestReadStringAllShortLengths(t *testing.T) {
	for n := 0; n < 1<<6; n++ {
		payload := bytes.Repeat([]byte{'a'}, n)
		got, err := newTestDecoder(append([]byte{byte(n)}, payload...)).readString()
		require.NoError(t, err)
		assert.Len(t, got, n)
	}
}

func TestReadUint64(t *testing.T) {
	got, err := newTestDecoder(le64(1713824559637)).readUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(1713824559637), got)

	_, err = newTestDecoder([]byte{1, 2, 3}).readUint64()
	assert.ErrorIs(t, err, ErrTruncatedInput)
}
