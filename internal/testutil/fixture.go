// Package testutil builds synthetic Mii records and database files for tests.
package testutil

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"golang.org/x/text/encoding/unicode"

	"github.com/arloliu/mii/checksum"
	"github.com/arloliu/mii/endian"
	"github.com/arloliu/mii/layout"
)

// RecordBuilder assembles one raw record field by field.
type RecordBuilder struct {
	desc *layout.FormatDescriptor
	raw  []byte
}

// NewRecord returns a builder for an all-zero CharData record of desc.
func NewRecord(desc *layout.FormatDescriptor) *RecordBuilder {
	return &RecordBuilder{desc: desc, raw: make([]byte, desc.RecordStride)}
}

// Set stores v in field f. Fields the variant lacks are ignored.
func (b *RecordBuilder) Set(f layout.Field, v uint64) *RecordBuilder {
	spec, ok := b.desc.Field(f)
	if !ok {
		return b
	}
	WriteBits(b.raw, spec.BitOffset, spec.BitWidth, v, b.desc.EngineFor(spec))

	return b
}

// SetBool stores a flag.
func (b *RecordBuilder) SetBool(f layout.Field, v bool) *RecordBuilder {
	if v {
		return b.Set(f, 1)
	}

	return b.Set(f, 0)
}

// SetText stores s as UTF-16 in the field's byte order, zero padded.
func (b *RecordBuilder) SetText(f layout.Field, s string) *RecordBuilder {
	spec, ok := b.desc.Field(f)
	if !ok {
		return b
	}

	units := EncodeUTF16(s, b.desc.EngineFor(spec))
	field := b.raw[spec.ByteOffset() : spec.ByteOffset()+spec.Chars()*2]
	clear(field)
	copy(field, units)

	return b
}

// SetRaw copies bytes verbatim at byte offset off.
func (b *RecordBuilder) SetRaw(off int, data []byte) *RecordBuilder {
	copy(b.raw[off:], data)
	return b
}

// Bytes returns a copy of the CharData form, as a database slot holds it.
func (b *RecordBuilder) Bytes() []byte {
	return append([]byte(nil), b.raw...)
}

// StoreData returns the StoreData form with a correct checksum.
func (b *RecordBuilder) StoreData() []byte {
	return checksum.StoreForm(b.raw, b.desc.Checksum)
}

// Standard returns a plausible CharData record named name.
func Standard(desc *layout.FormatDescriptor, id uint32, name, creator string) []byte {
	return NewRecord(desc).
		Set(layout.FieldMiiID, uint64(id)).
		Set(layout.FieldSystemID, 0x8A1B2C3D).
		Set(layout.FieldGender, 1).
		Set(layout.FieldBirthMonth, 4).
		Set(layout.FieldBirthDay, 23).
		Set(layout.FieldFavoriteColor, 0).
		Set(layout.FieldHeight, 64).
		Set(layout.FieldWeight, 64).
		Set(layout.FieldHairStyle, 33).
		Set(layout.FieldEyeType, 2).
		SetText(layout.FieldName, name).
		SetText(layout.FieldCreatorName, creator).
		Bytes()
}

// EncodeUTF16 encodes s in the given byte order without a BOM.
func EncodeUTF16(s string, engine endian.EndianEngine) []byte {
	order := unicode.LittleEndian
	if endian.IsBigEndian(engine) {
		order = unicode.BigEndian
	}

	out, err := unicode.UTF16(order, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(s))
	if err != nil {
		panic(fmt.Sprintf("testutil: encode %q: %v", s, err))
	}

	return out
}

// WriteBits is the inverse of bitfield.Read.
func WriteBits(buf []byte, bitOffset, bitWidth int, v uint64, engine endian.EndianEngine) {
	msbFirst := endian.IsBigEndian(engine)
	for i := 0; i < bitWidth; i++ {
		pos := bitOffset + i

		var bit uint64
		var mask byte
		if msbFirst {
			bit = (v >> (bitWidth - 1 - i)) & 1
			mask = byte(0x80) >> (pos & 7)
		} else {
			bit = (v >> i) & 1
			mask = byte(1) << (pos & 7)
		}

		if bit != 0 {
			buf[pos>>3] |= mask
		} else {
			buf[pos>>3] &^= mask
		}
	}
}

// Database returns a complete database image for desc with the given slots
// filled with CharData records. Unlisted slots stay all-zero (empty).
func Database(desc *layout.FormatDescriptor, slots map[int][]byte) []byte {
	data := make([]byte, desc.ExpectedSize())
	for i, rec := range slots {
		off := desc.SlotOffset(i)
		copy(data[off:off+desc.RecordStride], rec)
	}

	return data
}

// WriteFile writes data under t.TempDir and returns its path.
func WriteFile(t testing.TB, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	return path
}

// Fixture returns the record stored in testdata/records/name. The files are
// annotated hex dumps: text after '#' is ignored, the rest is hex digits
// separated by white space.
func Fixture(t testing.TB, name string) []byte {
	t.Helper()

	_, self, _, _ := runtime.Caller(0)
	path := filepath.Join(filepath.Dir(self), "..", "..", "testdata", "records", name)

	text, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}

	var digits strings.Builder
	sc := bufio.NewScanner(bytes.NewReader(text))
	for sc.Scan() {
		line, _, _ := strings.Cut(sc.Text(), "#")
		digits.WriteString(strings.Join(strings.Fields(line), ""))
	}

	raw, err := hex.DecodeString(digits.String())
	if err != nil {
		t.Fatalf("decode fixture %s: %v", name, err)
	}

	return raw
}
