package rdb

import (
	"errors"
	"fmt"
	"io"
)

var errDecoderUsed = errors.New("rdb: decoder already used")

// Decoder decodes a single RDB stream. A Decoder is not safe for concurrent
// use and can only decode once; use one Decoder per file.
type Decoder struct {
	c    *cursor
	used bool
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{c: newCursor(r)}
}

// Decode is a shorthand for NewDecoder(r).Decode().
func Decode(r io.Reader) (*Snapshot, error) {
	return NewDecoder(r).Decode()
}

// Decode reads the header, the AUX fields and every database section. It
// stops in front of the EOF opcode, leaving it and the checksum unread. On
// error the partially built snapshot is discarded.
func (d *Decoder) Decode() (*Snapshot, error) {
	if d.used {
		return nil, errDecoderUsed
	}
	d.used = true

	snap := newSnapshot()
	if err := d.readMetadata(snap); err != nil {
		return nil, err
	}
	if err := d.readDatabases(snap); err != nil {
		return nil, err
	}
	return snap, nil
}

func (d *Decoder) readMetadata(snap *Snapshot) error {
	header, err := d.c.readBytes(HeaderSize)
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	snap.Magic = string(header[:magicSize])
	snap.Version = string(header[magicSize:])

	for {
		op, err := d.c.readByte()
		if err != nil {
			return err
		}
		if op != OpcodeAux {
			d.c.unreadByte()
			return nil
		}
		key, err := d.readString()
		if err != nil {
			return fmt.Errorf("read aux key: %w", err)
		}
		value, err := d.readString()
		if err != nil {
			return fmt.Errorf("read aux %q: %w", key, err)
		}
		snap.Metadata[key] = value
	}
}

func (d *Decoder) readDatabases(snap *Snapshot) error {
	for {
		op, err := d.c.readByte()
		if err != nil {
			return err
		}
		if op != OpcodeSelectDB {
			d.c.unreadByte()
			return nil
		}
		db, err := d.readDatabaseHeader(snap)
		if err != nil {
			return err
		}
		if err := d.readRecords(db); err != nil {
			return fmt.Errorf("db %d: %w", db.Index, err)
		}
	}
}

// readDatabaseHeader reads what follows a SELECTDB opcode: the index and the
// mandatory RESIZEDB opcode with its two size hints.
func (d *Decoder) readDatabaseHeader(snap *Snapshot) (*Database, error) {
	index, err := d.readLength()
	if err != nil {
		return nil, fmt.Errorf("read db index: %w", err)
	}
	op, err := d.c.readByte()
	if err != nil {
		return nil, err
	}
	if op != OpcodeResizeDB {
		return nil, fmt.Errorf("%w: db %d: expected 0x%02X, got 0x%02X at offset %d",
			ErrMalformedDatabaseHeader, index, OpcodeResizeDB, op, d.c.offset()-1)
	}
	size, err := d.readLength()
	if err != nil {
		return nil, fmt.Errorf("read db %d size hint: %w", index, err)
	}
	expirySize, err := d.readLength()
	if err != nil {
		return nil, fmt.Errorf("read db %d expiry size hint: %w", index, err)
	}

	db := snap.selectDB(int(index))
	db.SizeHint = size
	db.ExpirySizeHint = expirySize
	return db, nil
}

func (d *Decoder) readRecords(db *Database) error {
	for {
		op, err := d.c.readByte()
		if err != nil {
			return err
		}
		switch op {
		case OpcodeSelectDB, OpcodeEOF:
			d.c.unreadByte()
			return nil
		case TypeString:
			key, value, err := d.readKeyValue()
			if err != nil {
				return err
			}
			db.set(key, value)
		case OpcodeExpireTimeMs, OpcodeExpireTime:
			expiresAt, err := d.readUint64()
			if err != nil {
				return fmt.Errorf("read expiry: %w", err)
			}
			if op == OpcodeExpireTime {
				expiresAt *= 1000
			}
			typ, err := d.c.readByte()
			if err != nil {
				return err
			}
			if typ != TypeString {
				return fmt.Errorf("%w: value type 0x%02X after expiry at offset %d",
					ErrUnsupportedOpcode, typ, d.c.offset()-1)
			}
			key, value, err := d.readKeyValue()
			if err != nil {
				return err
			}
			db.setWithExpiry(key, value, expiresAt)
		default:
			return fmt.Errorf("%w: 0x%02X at offset %d", ErrUnsupportedOpcode, op, d.c.offset()-1)
		}
	}
}

func (d *Decoder) readKeyValue() (string, string, error) {
	key, err := d.readString()
	if err != nil {
		return "", "", fmt.Errorf("read key: %w", err)
	}
	value, err := d.readString()
	if err != nil {
		return "", "", fmt.Errorf("read value of %q: %w", key, err)
	}
	return key, value, nil
}
