// Package hash provides xxHash64 based identifiers.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint identifies a Mii independently of the table it was read from:
// the same character stored in the plaza and the parade hashes equally even
// though the slot layouts differ.
func Fingerprint(miiID uint32, systemID uint64, name string) uint64 {
	var buf [12]byte
	binary.BigEndian.PutUint32(buf[0:4], miiID)
	binary.BigEndian.PutUint64(buf[4:12], systemID)

	d := xxhash.New()
	_, _ = d.Write(buf[:])
	_, _ = d.WriteString(name)

	return d.Sum64()
}
