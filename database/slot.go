package database

import (
	"github.com/arloliu/mii/record"
)

// SlotState classifies one position of the record table.
type SlotState uint8

const (
	// SlotValid holds a record that parsed and passed its checksum.
	SlotValid SlotState = iota
	// SlotEmpty holds only 0x00 or only 0xFF bytes.
	SlotEmpty
	// SlotChecksumMismatch parsed but its stored checksum is wrong. The
	// console tables hold CharData without a stored checksum, so loading
	// them never yields this state.
	SlotChecksumMismatch
	// SlotMalformed could not be parsed.
	SlotMalformed
)

func (s SlotState) String() string {
	switch s {
	case SlotValid:
		return "valid"
	case SlotEmpty:
		return "empty"
	case SlotChecksumMismatch:
		return "checksum_mismatch"
	case SlotMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Slot is one position of the record table, whatever its state.
type Slot struct {
	Index int
	State SlotState
	// Raw is the exact slot bytes. It must not be modified.
	Raw []byte
	// Mii is set only for SlotValid.
	Mii *record.Mii
	// ComputedChecksum is the CRC the record's StoreData form carries. It
	// is set for SlotValid and SlotChecksumMismatch. StoredChecksum is zero
	// unless the slot holds a stored checksum.
	StoredChecksum   uint16
	ComputedChecksum uint16
	// Err explains SlotChecksumMismatch and SlotMalformed.
	Err error
}

// Valid reports whether the slot holds a valid record.
func (s Slot) Valid() bool {
	return s.State == SlotValid
}

// isEmptySlot reports whether raw is entirely 0x00 or entirely 0xFF.
func isEmptySlot(raw []byte) bool {
	if len(raw) == 0 {
		return true
	}

	fill := raw[0]
	if fill != 0x00 && fill != 0xFF {
		return false
	}

	for _, b := range raw[1:] {
		if b != fill {
			return false
		}
	}

	return true
}
