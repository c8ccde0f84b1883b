package rdb

import "errors"

var (
	ErrTruncatedInput            = errors.New("rdb: truncated input")
	ErrInvalidLengthEncoding     = errors.New("rdb: special encoding not allowed for length")
	ErrUnsupportedStringEncoding = errors.New("rdb: unsupported string encoding")
	ErrMalformedDatabaseHeader   = errors.New("rdb: malformed database header")
	// ErrUnsupportedOpcode is returned for any opcode or value type inside a
	// database section other than the plain string record and the two
	// expiry markers.
	ErrUnsupportedOpcode = errors.New("rdb: unsupported opcode")
)
