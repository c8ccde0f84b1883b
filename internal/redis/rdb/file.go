package rdb

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
)

// EmptyFile is the RDB file of a Redis 7.2 instance holding no keys.
var EmptyFile = func() []byte {
	emptyHexHash := "524544495330303131fa0972656469732d76657205372e322e30fa0a72656469732d62697473c040fa056374696d65c26d08bc65fa08757365642d6d656dc2b0c41000fa08616f662d62617365c000fff06e3bfec0ff5aa2"
	value, _ := hex.DecodeString(emptyHexHash)
	return value
}()

// Load decodes the RDB file at dir/filename. The file is closed before Load
// returns. A missing file is reported with an error matching fs.ErrNotExist.
func Load(dir, filename string) (*Snapshot, error) {
	path := filepath.Join(dir, filename)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	snap, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return snap, nil
}
