package layout

import (
	"iter"
	"time"

	"github.com/arloliu/mii/endian"
	"github.com/arloliu/mii/format"
)

// FieldSpec locates one field inside a record.
type FieldSpec struct {
	// BitOffset is measured from the first bit of the record, numbered in
	// the field's byte order (see package bitfield).
	BitOffset int
	// BitWidth is the width in bits. Text fields use 16 bits per character.
	BitWidth int
	// Kind selects the decoding applied after extraction.
	Kind Kind
	// Max is the largest defined value; zero means every value the width can
	// hold is defined.
	Max uint64
	// Engine overrides the descriptor byte order when non-nil.
	Engine endian.EndianEngine
}

// ByteOffset returns the byte holding the field's first bit.
func (s FieldSpec) ByteOffset() int {
	return s.BitOffset / 8
}

// Chars returns the number of UTF-16 code units of a text field.
func (s FieldSpec) Chars() int {
	return s.BitWidth / 16
}

// ChecksumSpec declares where the StoreData form of a record keeps its
// checksum and how it is computed. Database slots hold the CharData form,
// which ends before the checksum field and carries no stored value.
type ChecksumSpec struct {
	BitOffset int
	BitWidth  int
	Engine    endian.EndianEngine
	// Poly and Init parameterize the MSB-first CRC-16.
	Poly uint16
	Init uint16
}

// ByteRange returns the [start, end) byte span of the checksum field.
func (c ChecksumSpec) ByteRange() (int, int) {
	return c.BitOffset / 8, (c.BitOffset + c.BitWidth + 7) / 8
}

// StoredIn reports whether raw is long enough to hold the checksum field.
func (c ChecksumSpec) StoredIn(raw []byte) bool {
	_, end := c.ByteRange()
	return len(raw) >= end
}

// IDSpec describes the creation timestamp packed into the Mii ID.
type IDSpec struct {
	// TimestampMask selects the timestamp ticks from the ID.
	TimestampMask uint32
	// Tick is the duration of one timestamp unit.
	Tick time.Duration
	// Epoch is the instant of tick zero.
	Epoch time.Time
	// NormalBit is set on ordinary Mii IDs and clear on special ones.
	NormalBit uint
}

// maxPalette is the largest palette any variant may declare.
const maxPalette = 16

// FormatDescriptor is the layout of one database variant.
//
// Describe hands out a private copy, so changing a descriptor never affects
// the table or any other caller. Field specs and the palette live in arrays
// and are reached through Field, Fields and PaletteAt.
type FormatDescriptor struct {
	Variant     format.Variant
	DisplayName string
	// FilePrefix names exported records, e.g. "WII_PL" for WII_PL00000.mii.
	FilePrefix string
	// DefaultPath is the file name the console uses for the database.
	DefaultPath string

	HeaderLength int
	RecordCount  int
	// RecordStride is the size of one slot, which holds the CharData form.
	RecordStride int
	// TrailerLength is the number of bytes after the slot table.
	TrailerLength int
	// StoreLength is the size of the exported StoreData form: CharData, zero
	// padding, then the checksum.
	StoreLength int

	// Engine is the default byte order of every field.
	Engine   endian.EndianEngine
	Checksum ChecksumSpec
	ID       IDSpec

	fields     [fieldCount]FieldSpec
	palette    [maxPalette]format.FavoriteColor
	paletteLen int
}

// ExpectedSize returns the exact file size the variant requires.
func (d *FormatDescriptor) ExpectedSize() int64 {
	return int64(d.HeaderLength) + d.TableSize() + int64(d.TrailerLength)
}

// TableSize returns the size of the slot table.
func (d *FormatDescriptor) TableSize() int64 {
	return int64(d.RecordCount) * int64(d.RecordStride)
}

// SlotOffset returns the file offset of slot i.
func (d *FormatDescriptor) SlotOffset(i int) int {
	return d.HeaderLength + i*d.RecordStride
}

// Field returns the spec for f and whether the variant defines it.
func (d *FormatDescriptor) Field(f Field) (FieldSpec, bool) {
	if f < FieldInvalid || f > FieldCreatorName {
		return FieldSpec{}, false
	}

	spec := d.fields[f-FieldInvalid]

	return spec, spec.BitWidth > 0
}

// Fields iterates over the fields the variant defines, in Field order.
func (d *FormatDescriptor) Fields() iter.Seq2[Field, FieldSpec] {
	return func(yield func(Field, FieldSpec) bool) {
		for i, spec := range d.fields {
			if spec.BitWidth == 0 {
				continue
			}
			if !yield(FieldInvalid+Field(i), spec) {
				return
			}
		}
	}
}

// PaletteLen returns the number of favorite colors the variant defines.
func (d *FormatDescriptor) PaletteLen() int {
	return d.paletteLen
}

// PaletteAt returns the color at palette index idx and whether idx is
// defined.
func (d *FormatDescriptor) PaletteAt(idx uint64) (format.FavoriteColor, bool) {
	if idx >= uint64(d.paletteLen) {
		return 0, false
	}

	return d.palette[idx], true
}

// Palette returns a copy of the variant's favorite colors in index order.
func (d *FormatDescriptor) Palette() []format.FavoriteColor {
	return append([]format.FavoriteColor(nil), d.palette[:d.paletteLen]...)
}

// EngineFor returns the byte order a field is read with.
func (d *FormatDescriptor) EngineFor(spec FieldSpec) endian.EndianEngine {
	if spec.Engine != nil {
		return spec.Engine
	}

	return d.Engine
}
