package redis

import (
	"time"
)

type ValueType string

const (
	ValueTypeString ValueType = "string"
	ValueTypeNone   ValueType = "none"
)

// Value is an entry of a keyspace. Values are replaced, never mutated, once
// stored.
type Value struct {
	Type ValueType
	Data string
	// Timeout is the absolute expiry, zero if the key does not expire.
	Timeout time.Time
}

func (v *Value) expiredAt(now time.Time) bool {
	return !v.Timeout.IsZero() && !now.Before(v.Timeout)
}

type (
	// Session is the state of one client connection.
	Session struct {
		Hash string
		// DB is the index selected with SELECT.
		DB int
	}
	SessionInfo struct {
		Hash string
	}
)
