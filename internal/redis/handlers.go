package redis

import (
	"fmt"
	"maps"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/hnimtadd/craft-redis/internal/redis/resp"
)

// lookup returns the live value at key, evicting it if it has expired.
func (c *Controller) lookup(db int, key string) (*Value, bool) {
	keyspace := c.db(db)
	value, found := keyspace.Get(key)
	if !found {
		return nil, false
	}
	if value.expiredAt(c.now()) {
		keyspace.Evict(key, value)
		return nil, false
	}
	return value, true
}

func (c *Controller) handleSET(db int, key, value string, ttl time.Duration) (resp.Data, *resp.SimpleErrorData) {
	record := Value{
		Type: ValueTypeString,
		Data: value,
	}
	if ttl > 0 {
		record.Timeout = c.now().Add(ttl)
	}
	c.db(db).Put(key, &record)
	return resp.SimpleStringData{Data: "OK"}, nil
}

func (c *Controller) handleGET(db int, key string) (resp.Data, *resp.SimpleErrorData) {
	value, found := c.lookup(db, key)
	if !found {
		return resp.NullBulkStringData{}, nil
	}
	if value.Type != ValueTypeString {
		return nil, &resp.SimpleErrorData{
			Type: resp.SimpleErrorTypeWrongType,
			Msg:  "Operation against a key holding the wrong kind of value",
		}
	}
	return resp.BulkStringData{Data: value.Data}, nil
}

func (c *Controller) handleDEL(db int, keys []string) (resp.Data, *resp.SimpleErrorData) {
	removed := 0
	for _, key := range keys {
		if _, found := c.lookup(db, key); !found {
			continue
		}
		if c.db(db).Remove(key) {
			removed++
		}
	}
	return resp.Integer{Data: removed}, nil
}

func (c *Controller) handleKEYS(db int, pattern string) (resp.Data, *resp.SimpleErrorData) {
	if _, err := path.Match(pattern, ""); err != nil {
		return nil, &resp.SimpleErrorData{
			Type: resp.SimpleErrorTypeGeneric,
			Msg:  fmt.Sprintf("invalid pattern '%s'", pattern),
		}
	}
	now := c.now()
	keys := []string{}
	c.db(db).ForEach(func(key string, value *Value) bool {
		if value.expiredAt(now) {
			return true
		}
		if matched, _ := path.Match(pattern, key); matched {
			keys = append(keys, key)
		}
		return true
	})
	slices.Sort(keys)
	return resp.BulkStrings(keys...), nil
}

func (c *Controller) handleTYPE(db int, key string) (resp.Data, *resp.SimpleErrorData) {
	value, found := c.lookup(db, key)
	if !found {
		return resp.SimpleStringData{Data: string(ValueTypeNone)}, nil
	}
	return resp.SimpleStringData{Data: string(value.Type)}, nil
}

// liveKeys counts the keys of db that have not expired.
func (c *Controller) liveKeys(db int) int {
	now := c.now()
	n := 0
	c.db(db).ForEach(func(_ string, value *Value) bool {
		if !value.expiredAt(now) {
			n++
		}
		return true
	})
	return n
}

func (c *Controller) handleCONFIGGET(params []string) (resp.Data, *resp.SimpleErrorData) {
	config := map[string]string{
		"dir":        c.options.Dir,
		"dbfilename": c.options.DBFilename,
		"databases":  fmt.Sprint(c.options.Databases),
	}
	pairs := []string{}
	for _, param := range params {
		name := strings.ToLower(param)
		value, found := config[name]
		if !found {
			continue
		}
		pairs = append(pairs, name, value)
	}
	return resp.BulkStrings(pairs...), nil
}

func (c *Controller) handleINFO(section string) (resp.Data, *resp.SimpleErrorData) {
	builder := new(strings.Builder)
	if section == "" || section == "server" {
		version, found := c.metadata["redis-ver"]
		if !found {
			version = "unknown"
		}
		fmt.Fprintf(builder, "# Server\r\n")
		fmt.Fprintf(builder, "redis_version:%s\r\n", version)
		for _, key := range slices.Sorted(maps.Keys(c.metadata)) {
			if key == "redis-ver" {
				continue
			}
			fmt.Fprintf(builder, "rdb_%s:%s\r\n", strings.ReplaceAll(key, "-", "_"), c.metadata[key])
		}
	}
	if section == "" || section == "clients" {
		if builder.Len() > 0 {
			builder.WriteString("\r\n")
		}
		fmt.Fprintf(builder, "# Clients\r\n")
		fmt.Fprintf(builder, "connected_clients:%d\r\n", c.sessions.Len())
	}
	if section == "" || section == "keyspace" {
		if builder.Len() > 0 {
			builder.WriteString("\r\n")
		}
		fmt.Fprintf(builder, "# Keyspace\r\n")
		for idx := range c.options.Databases {
			keys, expires := c.keyspaceStats(idx)
			if keys == 0 {
				continue
			}
			fmt.Fprintf(builder, "db%d:keys=%d,expires=%d\r\n", idx, keys, expires)
		}
	}
	return resp.BulkStringData{Data: builder.String()}, nil
}

func (c *Controller) keyspaceStats(db int) (keys, expires int) {
	now := c.now()
	c.db(db).ForEach(func(_ string, value *Value) bool {
		if value.expiredAt(now) {
			return true
		}
		keys++
		if !value.Timeout.IsZero() {
			expires++
		}
		return true
	})
	return keys, expires
}
