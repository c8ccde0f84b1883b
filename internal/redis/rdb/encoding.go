package rdb

import (
	"encoding/binary"
	"fmt"
	"strconv"
)

// readLength decodes a length prefix. The two most significant bits of the
// first byte select the layout:
//
//	00xxxxxx                  6-bit length
//	01xxxxxx xxxxxxxx         14-bit length
//	10xxxxxx + 4 bytes        32-bit big-endian length
//	11xxxxxx                  special string encoding, invalid here
func (d *Decoder) readLength() (uint64, error) {
	first, err := d.c.readByte()
	if err != nil {
		return 0, err
	}
	return d.lengthFrom(first)
}

func (d *Decoder) lengthFrom(first byte) (uint64, error) {
	switch first >> 6 {
	case len6Bit:
		return uint64(first & 0x3F), nil
	case len14Bit:
		second, err := d.c.readByte()
		if err != nil {
			return 0, err
		}
		return uint64(first&0x3F)<<8 | uint64(second), nil
	case len32Bit:
		b, err := d.c.readBytes(4)
		if err != nil {
			return 0, err
		}
		return uint64(binary.BigEndian.Uint32(b)), nil
	default:
		return 0, fmt.Errorf("%w: 0x%02X at offset %d", ErrInvalidLengthEncoding, first, d.c.offset()-1)
	}
}

// readString decodes a string-encoded value. Besides length-prefixed raw
// bytes, small integers may be stored inline; they are returned in their
// decimal form. The 8 and 16-bit forms are unsigned, the 32-bit form is
// signed.
func (d *Decoder) readString() (string, error) {
	first, err := d.c.readByte()
	if err != nil {
		return "", err
	}
	if first>>6 != lenSpecial {
		n, err := d.lengthFrom(first)
		if err != nil {
			return "", err
		}
		b, err := d.c.readBytes(n)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	switch first {
	case encInt8:
		b, err := d.c.readByte()
		if err != nil {
			return "", err
		}
		return strconv.Itoa(int(b)), nil
	case encInt16:
		b, err := d.c.readBytes(2)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(int(binary.LittleEndian.Uint16(b))), nil
	case encInt32:
		b, err := d.c.readBytes(4)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(int(int32(binary.LittleEndian.Uint32(b)))), nil
	default:
		return "", fmt.Errorf("%w: 0x%02X at offset %d", ErrUnsupportedStringEncoding, first, d.c.offset()-1)
	}
}

// readUint64 reads an 8-byte little-endian integer, as used by expiry
// timestamps.
func (d *Decoder) readUint64() (uint64, error) {
	b, err := d.c.readBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}
