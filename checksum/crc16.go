// Package checksum computes and verifies the CRC-16 of Mii records.
//
// The algorithm is the one used by the RFL (Wii) and FFL/CFL (Wii U, 3DS)
// libraries: an MSB-first CRC-16 with no reflection and no final xor, run in
// its augmented form over the StoreData form of a record with the checksum
// field itself read as zero. For a checksum stored in the last two bytes this
// equals CRC-16/XMODEM over the bytes before it.
//
// Database slots hold the shorter CharData form. Compute accepts it and
// treats the missing padding as zero, which yields the checksum the StoreData
// form would carry. Such a record has no stored value to disagree with.
package checksum

import (
	"github.com/arloliu/mii/bitfield"
	"github.com/arloliu/mii/layout"
)

// Compute returns the checksum of raw as declared by spec. The bytes covered
// by the checksum field, and any bytes raw lacks before it, contribute zero
// bits; raw itself is never modified.
func Compute(raw []byte, spec layout.ChecksumSpec) uint16 {
	start, end := spec.ByteRange()
	crc := spec.Init

	for i := range max(len(raw), end) {
		var val byte
		if i < len(raw) && (i < start || i >= end) {
			val = raw[i]
		}

		for j := 0; j < 8; j++ {
			if crc&0x8000 != 0 {
				crc <<= 1
				crc ^= spec.Poly
			} else {
				crc <<= 1
			}

			if val&0x80 != 0 {
				crc ^= 0x1
			}

			val <<= 1
		}
	}

	return crc
}

// Stored returns the checksum value stored in raw, and false when raw is too
// short to hold the checksum field.
func Stored(raw []byte, spec layout.ChecksumSpec) (uint16, bool) {
	if !spec.StoredIn(raw) {
		return 0, false
	}

	return uint16(bitfield.Read(raw, spec.BitOffset, spec.BitWidth, spec.Engine)), true
}

// Verify reports whether the stored checksum matches the computed one. A
// record without a stored checksum has nothing to mismatch and verifies.
func Verify(raw []byte, spec layout.ChecksumSpec) bool {
	stored, ok := Stored(raw, spec)
	if !ok {
		return true
	}

	return Compute(raw, spec) == stored
}

// StoreForm returns a new buffer holding the StoreData form of raw: the bytes
// before the checksum field, zero padding up to it, then the checksum.
func StoreForm(raw []byte, spec layout.ChecksumSpec) []byte {
	start, end := spec.ByteRange()
	out := make([]byte, end)
	copy(out[:start], raw)
	spec.Engine.PutUint16(out[start:], Compute(out, spec))

	return out
}
