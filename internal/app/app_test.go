package app

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hnimtadd/craft-redis/internal/redis"
	"github.com/hnimtadd/craft-redis/internal/redis/rdb"
	"github.com/hnimtadd/craft-redis/internal/redis/resp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func writeRDB(t *testing.T, dir, name string, content []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), content, 0o644))
}

func testRDB() []byte {
	expiry := make([]byte, 8)
	binary.LittleEndian.PutUint64(expiry, uint64(time.Now().Add(time.Hour).UnixMilli()))

	content := []byte("REDIS0011")
	content = append(content, rdb.OpcodeAux, 9)
	content = append(content, "redis-ver"...)
	content = append(content, 5)
	content = append(content, "7.2.0"...)
	content = append(content, rdb.OpcodeSelectDB, 0, rdb.OpcodeResizeDB, 2, 1)
	content = append(content, rdb.TypeString, 3, 'f', 'o', 'o', 3, 'b', 'a', 'r')
	content = append(content, rdb.OpcodeExpireTimeMs)
	content = append(content, expiry...)
	content = append(content, rdb.TypeString, 1, 'n', 0xC0, 0x7B)
	return append(content, rdb.OpcodeEOF)
}

func get(c *redis.Controller, key string) string {
	return c.Handle(resp.BulkStrings("GET", key), redis.SessionInfo{Hash: "test"}).String()
}

func TestInitControllerLoadsRDB(t *testing.T) {
	dir := t.TempDir()
	writeRDB(t, dir, "dump.rdb", testRDB())

	a := New(Config{Dir: dir, DBFilename: "dump.rdb"})
	controller, err := a.initController()
	require.NoError(t, err)
	assert.Equal(t, "$3\r\nbar\r\n", get(controller, "foo"))
	assert.Equal(t, "$3\r\n123\r\n", get(controller, "n"))
}

func TestInitControllerMissingRDB(t *testing.T) {
	a := New(Config{Dir: t.TempDir(), DBFilename: "dump.rdb"})
	controller, err := a.initController()
	require.NoError(t, err)
	assert.Equal(t, "$-1\r\n", get(controller, "foo"))
}

func TestInitControllerCorruptRDB(t *testing.T) {
	dir := t.TempDir()
	writeRDB(t, dir, "dump.rdb", []byte("REDIS0011\xFE\x00\x00"))

	a := New(Config{Dir: dir, DBFilename: "dump.rdb"})
	_, err := a.initController()
	assert.ErrorIs(t, err, rdb.ErrMalformedDatabaseHeader)
}

func TestParseConfig(t *testing.T) {
	tcs := []struct {
		name          string
		args          []string
		expected      Config
		expectedError bool
	}{
		{
			name:     "defaults",
			args:     []string{"craft-redis"},
			expected: Config{Port: 6379, Dir: ".", DBFilename: "dump.rdb"},
		},
		{
			name:     "flags",
			args:     []string{"craft-redis", "--port", "7000", "--dir", "/tmp/redis-files", "--dbfilename", "snap.rdb", "--debug"},
			expected: Config{Port: 7000, Dir: "/tmp/redis-files", DBFilename: "snap.rdb", Debug: true},
		},
		{
			name:          "invalid port",
			args:          []string{"craft-redis", "--port", "0"},
			expectedError: true,
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			var got Config
			var parseErr error
			cmd := &cli.App{
				Flags: flags(),
				Action: func(c *cli.Context) error {
					got, parseErr = parseConfig(c)
					return nil
				},
			}
			require.NoError(t, cmd.Run(tc.args))
			if tc.expectedError {
				assert.Error(t, parseErr)
				return
			}
			require.NoError(t, parseErr)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestConfigString(t *testing.T) {
	config := Config{Port: 6379, Dir: "/tmp/redis-files", DBFilename: "dump.rdb"}
	out := config.String()
	assert.Contains(t, out, "Port: 6379\n")
	assert.Contains(t, out, "Dir: /tmp/redis-files\n")
	assert.Contains(t, out, "DBFilename: dump.rdb\n")
}
