// Package bitfield extracts unsigned integers of arbitrary width and offset
// from a byte buffer.
//
// Bit numbering follows the byte order of the record being read:
//
//   - Big-endian: bit i is bit 7-(i%8) of byte i/8, so bit 0 is the most
//     significant bit of the first byte and values are assembled MSB first.
//   - Little-endian: bit i is bit i%8 of byte i/8, so bit 0 is the least
//     significant bit of the first byte and values are assembled LSB first.
//
// These are the layouts compilers produce for bit-field structs on big-endian
// (PowerPC) and little-endian (ARM) consoles respectively, which lets a
// descriptor address a field by (bit offset, bit width) alone.
package bitfield

import (
	"fmt"

	"github.com/arloliu/mii/endian"
)

// MaxWidth is the widest field Read can return.
const MaxWidth = 64

// Read returns the bitWidth-bit unsigned value starting at bitOffset.
//
// Fields may straddle any number of byte boundaries. Read panics when
// bitWidth is outside 1..64 or the field does not fit in buf: an out-of-range
// field is a defect in the layout table, not bad input.
func Read(buf []byte, bitOffset, bitWidth int, engine endian.EndianEngine) uint64 {
	if !Fits(buf, bitOffset, bitWidth) {
		panic(fmt.Sprintf("bitfield: field out of range (offset=%d width=%d bufBits=%d)",
			bitOffset, bitWidth, len(buf)*8))
	}

	if endian.IsBigEndian(engine) {
		return readMSB(buf, bitOffset, bitWidth)
	}

	return readLSB(buf, bitOffset, bitWidth)
}

// Bool reads a single bit.
func Bool(buf []byte, bitOffset int, engine endian.EndianEngine) bool {
	return Read(buf, bitOffset, 1, engine) != 0
}

// Fits reports whether a field of bitWidth bits at bitOffset lies inside buf
// and is readable by Read.
func Fits(buf []byte, bitOffset, bitWidth int) bool {
	if bitOffset < 0 || bitWidth <= 0 || bitWidth > MaxWidth {
		return false
	}

	return bitOffset+bitWidth <= len(buf)*8
}

func readMSB(buf []byte, bitOffset, bitWidth int) uint64 {
	var v uint64
	for done := 0; done < bitWidth; {
		bit := bitOffset + done
		inByte := bit & 7
		take := min(8-inByte, bitWidth-done)

		chunk := (buf[bit>>3] >> (8 - inByte - take)) & byte(1<<take-1)
		v = v<<take | uint64(chunk)
		done += take
	}

	return v
}

func readLSB(buf []byte, bitOffset, bitWidth int) uint64 {
	var v uint64
	for done := 0; done < bitWidth; {
		bit := bitOffset + done
		inByte := bit & 7
		take := min(8-inByte, bitWidth-done)

		chunk := (buf[bit>>3] >> inByte) & byte(1<<take-1)
		v |= uint64(chunk) << done
		done += take
	}

	return v
}
