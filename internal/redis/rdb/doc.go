/*
Package rdb provide basic structs logic related to Redis's RDB file.

Redis’ RDB file is a binary representation of the in-memory store. This binary
file is sufficient to completely restore Redis’ state.

The decoder walks the file in a single forward pass:

	header (9 bytes, "REDIS" + 4 version digits)
	0xFA key value           AUX field, repeated
	0xFE index 0xFB n m      database section, repeated, followed by records:
	    0x00 key value       plain string record
	    0xFC <8 bytes ms>    expiry for the next record
	    0xFD <8 bytes sec>   expiry for the next record, in seconds
	0xFF                     end of file

Only plain string values are understood. The trailing checksum is neither
read nor verified.
*/
package rdb
