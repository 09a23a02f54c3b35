package record

import (
	"fmt"
	"time"

	"github.com/arloliu/mii/checksum"
	"github.com/arloliu/mii/errs"
	"github.com/arloliu/mii/format"
	"github.com/arloliu/mii/internal/hash"
	"github.com/arloliu/mii/layout"
)

// Birthday is a month/day pair. Month zero means the birthday is unset.
type Birthday struct {
	Month uint8
	Day   uint8
}

// IsSet reports whether a birthday was entered.
func (b Birthday) IsSet() bool {
	return b.Month != 0
}

func (b Birthday) String() string {
	if !b.IsSet() {
		return "Not set"
	}

	return fmt.Sprintf("%d/%d", b.Month, b.Day)
}

// Features holds the appearance codes. The values index console-side part
// tables and are not interpreted here beyond their range check.
type Features struct {
	FaceShape       uint8
	SkinTone        uint8
	FacialFeature   uint8
	HairStyle       uint8
	HairColor       uint8
	HairParted      bool
	EyebrowType     uint8
	EyebrowColor    uint8
	EyeType         uint8
	EyeColor        uint8
	NoseType        uint8
	MouthType       uint8
	MouthColor      uint8
	MustacheType    uint8
	BeardType       uint8
	FacialHairColor uint8
	GlassesType     uint8
	GlassesColor    uint8
	Mole            bool
	Height          uint8
	Weight          uint8
}

// HasFacialHair reports whether a mustache or beard is present.
func (f Features) HasFacialHair() bool {
	return f.MustacheType != 0 || f.BeardType != 0
}

// HasGlasses reports whether glasses are worn.
func (f Features) HasGlasses() bool {
	return f.GlassesType != 0
}

// Flags are the ownership and state bits of a record.
type Flags struct {
	// Invalid is the console's own "do not use" bit (Wii only).
	Invalid bool
	// Favorite marks the Mii as a favorite.
	Favorite bool
	// NoSharing prevents the Mii from mingling or being shared.
	NoSharing bool
	// Downloaded marks a Mii received from another console (Wii only).
	Downloaded bool
	// Special is set for Miis whose ID lacks the normal bit.
	Special bool
}

// Mii is one decoded record.
type Mii struct {
	Variant     format.Variant
	ID          uint32
	SystemID    uint64
	Name        string
	CreatorName string
	Gender      format.Gender
	Birthday    Birthday
	// FavoriteColor is already resolved through the variant palette.
	FavoriteColor format.FavoriteColor
	Features      Features
	Flags         Flags

	// HasStoredChecksum is set when Raw is the StoreData form. Database
	// slots hold CharData, which carries no checksum of its own.
	HasStoredChecksum bool
	StoredChecksum    uint16
	// ComputedChecksum is the CRC of the StoreData form of the record.
	ComputedChecksum uint16
	// ChecksumValid is false only when a stored checksum disagrees with the
	// computed one.
	ChecksumValid bool

	// Raw is the exact byte range the record was decoded from. It aliases
	// the source buffer and must not be modified.
	Raw []byte

	idSpec      layout.IDSpec
	crcSpec     layout.ChecksumSpec
	charDataLen int
	systemIDLen int
}

// IsFavorite reports whether the Mii is marked as a favorite.
func (m *Mii) IsFavorite() bool {
	return m.Flags.Favorite
}

// IsSpecial reports whether the Mii has a special ID.
func (m *Mii) IsSpecial() bool {
	return m.Flags.Special
}

// IsWii reports whether the Mii came from a Wii table.
func (m *Mii) IsWii() bool {
	return m.Variant == format.WiiPlaza || m.Variant == format.WiiParade
}

// IDHex returns the Mii ID as eight upper-case hex digits.
func (m *Mii) IDHex() string {
	return fmt.Sprintf("%08X", m.ID)
}

// SystemIDHex returns the system ID using the variant's width.
func (m *Mii) SystemIDHex() string {
	return fmt.Sprintf("%0*X", m.systemIDLen*2, m.SystemID)
}

// CreatedAt returns the creation time encoded in the Mii ID.
func (m *Mii) CreatedAt() time.Time {
	ticks := time.Duration(m.ID & m.idSpec.TimestampMask)
	return m.idSpec.Epoch.Add(ticks * m.idSpec.Tick)
}

// CharData returns a copy of the record without padding or checksum, the
// form a database slot holds.
func (m *Mii) CharData() []byte {
	return append([]byte(nil), m.Raw[:m.charDataLen]...)
}

// StoreData returns the record in the padded StoreData form used by exported
// .mii files: CharData, zero padding, then the big-endian CRC-16.
func (m *Mii) StoreData() []byte {
	return checksum.StoreForm(m.Raw[:m.charDataLen], m.crcSpec)
}

// Fingerprint identifies the character across tables and databases.
func (m *Mii) Fingerprint() uint64 {
	return hash.Fingerprint(m.ID, m.SystemID, m.Name)
}

// Err returns an error wrapping errs.ErrChecksumMismatch when the stored
// checksum disagrees with the computed one, and nil otherwise.
func (m *Mii) Err() error {
	if m.ChecksumValid {
		return nil
	}

	return fmt.Errorf("%w: stored %04X, computed %04X",
		errs.ErrChecksumMismatch, m.StoredChecksum, m.ComputedChecksum)
}

func (m *Mii) String() string {
	return fmt.Sprintf("%s by %s (%s)", m.Name, m.CreatorName, m.IDHex())
}
