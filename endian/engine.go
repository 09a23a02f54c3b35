// Package endian provides byte order utilities for Mii record decoding.
//
// The package combines encoding/binary's ByteOrder and AppendByteOrder into a
// single EndianEngine interface. Descriptors carry an engine for their default
// field order, and individual fields may override it (the Ver3 Mii ID and every
// record checksum are big-endian inside otherwise little-endian records).
//
// # Basic Usage
//
//	engine := endian.GetBigEndianEngine()
//	crc := engine.Uint16(raw[0x4A:0x4C])
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The returned
// EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsBigEndian reports whether engine reads the most significant byte first.
// A nil engine is treated as little-endian.
func IsBigEndian(engine EndianEngine) bool {
	return engine == EndianEngine(binary.BigEndian)
}

// Name returns "big" or "little" for display purposes.
func Name(engine EndianEngine) string {
	if IsBigEndian(engine) {
		return "big"
	}

	return "little"
}
