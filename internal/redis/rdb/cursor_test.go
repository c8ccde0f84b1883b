package rdb

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorReadBytes(t *testing.T) {
	c := newCursor(bytes.NewReader([]byte{1, 2, 3, 4}))

	b, err := c.readBytes(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)
	assert.EqualValues(t, 3, c.offset())

	_, err = c.readBytes(2)
	assert.ErrorIs(t, err, ErrTruncatedInput)
}

func TestCursorUnreadByte(t *testing.T) {
	c := newCursor(bytes.NewReader([]byte{0xFA, 0xFB, 0xFC}))

	b, err := c.readByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0xFA), b)

	c.unreadByte()
	assert.EqualValues(t, 0, c.offset())

	b, err = c.readByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0xFA), b)

	c.unreadByte()
	rest, err := c.readBytes(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFA, 0xFB, 0xFC}, rest)
	assert.EqualValues(t, 3, c.offset())
}

func TestCursorUnreadTwicePanics(t *testing.T) {
	c := newCursor(bytes.NewReader([]byte{1, 2}))
	_, err := c.readByte()
	require.NoError(t, err)
	c.unreadByte()
	assert.Panics(t, c.unreadByte)
}

func TestCursorEmptyInput(t *testing.T) {
	c := newCursor(bytes.NewReader(nil))
	_, err := c.readByte()
	assert.ErrorIs(t, err, ErrTruncatedInput)

	b, err := c.readBytes(0)
	require.NoError(t, err)
	assert.Empty(t, b)
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestCursorPropagatesReaderError(t *testing.T) {
	boom := errors.New("boom")
	c := newCursor(failingReader{err: boom})
	_, err := c.readByte()
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrTruncatedInput)
}

func TestCursorEmptyReadClearsPushback(t *testing.T) {
	c := newCursor(bytes.NewReader([]byte{0xFA, 0xFB}))
	_, err := c.readByte()
	require.NoError(t, err)

	_, err = c.readBytes(0)
	require.NoError(t, err)
	assert.Panics(t, c.unreadByte)
}
