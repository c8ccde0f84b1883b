package rdb

const (
	// HeaderSize is the size of the "REDIS" magic plus the 4 version digits.
	HeaderSize = 9
	magicSize  = 5
)

// Opcode marks the start of a structural record in the file.
type Opcode = byte

const (
	OpcodeAux          Opcode = 0xFA
	OpcodeResizeDB     Opcode = 0xFB
	OpcodeExpireTimeMs Opcode = 0xFC
	OpcodeExpireTime   Opcode = 0xFD
	OpcodeSelectDB     Opcode = 0xFE
	OpcodeEOF          Opcode = 0xFF

	// TypeString is the value type of a plain string record.
	TypeString Opcode = 0x00
)

// Two most significant bits of the first byte of a length.
const (
	len6Bit    = 0b00
	len14Bit   = 0b01
	len32Bit   = 0b10
	lenSpecial = 0b11
)

// Special string encodings, only legal inside a string.
const (
	encInt8  = 0xC0
	encInt16 = 0xC1
	encInt32 = 0xC2
)
