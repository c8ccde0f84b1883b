package rdb

import (
	"maps"
	"slices"
	"time"
)

// Snapshot is the decoded content of an RDB file. It is built once by a
// Decoder and must not be mutated afterwards.
type Snapshot struct {
	// Magic and Version split the 9-byte header, e.g. "REDIS" and "0011".
	// Neither is validated.
	Magic   string
	Version string

	// Metadata holds the AUX fields, e.g. "redis-ver" -> "7.2.0".
	Metadata map[string]string

	// Databases is keyed by the index given in the SELECTDB opcode.
	Databases map[int]*Database
}

// Database is one logical keyspace of a snapshot.
type Database struct {
	Index int

	Values map[string]string
	// Expiries holds absolute unix timestamps in milliseconds, only for keys
	// that carried an expiry marker.
	Expiries map[string]uint64

	// Size hints from the RESIZEDB opcode.
	SizeHint       uint64
	ExpirySizeHint uint64
}

func newSnapshot() *Snapshot {
	return &Snapshot{
		Metadata:  make(map[string]string),
		Databases: make(map[int]*Database),
	}
}

func newDatabase(index int) *Database {
	return &Database{
		Index:    index,
		Values:   make(map[string]string),
		Expiries: make(map[string]uint64),
	}
}

// selectDB returns the database at index, creating it on first use.
func (s *Snapshot) selectDB(index int) *Database {
	db, ok := s.Databases[index]
	if !ok {
		db = newDatabase(index)
		s.Databases[index] = db
	}
	return db
}

// Database returns the database at index if the snapshot selected it.
func (s *Snapshot) Database(index int) (*Database, bool) {
	db, ok := s.Databases[index]
	return db, ok
}

// Indexes returns the selected database indexes in ascending order.
func (s *Snapshot) Indexes() []int {
	return slices.Sorted(maps.Keys(s.Databases))
}

// Len returns the number of keys across all databases.
func (s *Snapshot) Len() int {
	total := 0
	for _, db := range s.Databases {
		total += db.Len()
	}
	return total
}

func (db *Database) Len() int {
	return len(db.Values)
}

// ExpiresAt returns the expiry of key, if it has one.
func (db *Database) ExpiresAt(key string) (time.Time, bool) {
	ms, ok := db.Expiries[key]
	if !ok {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)), true
}

func (db *Database) set(key, value string) {
	db.Values[key] = value
}

func (db *Database) setWithExpiry(key, value string, expiresAtMs uint64) {
	db.Values[key] = value
	db.Expiries[key] = expiresAtMs
}
