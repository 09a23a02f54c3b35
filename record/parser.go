package record

import (
	"fmt"

	"github.com/arloliu/mii/bitfield"
	"github.com/arloliu/mii/checksum"
	"github.com/arloliu/mii/errs"
	"github.com/arloliu/mii/format"
	"github.com/arloliu/mii/internal/options"
	"github.com/arloliu/mii/layout"
)

// ParserConfig holds the parser options.
type ParserConfig struct {
	strictText bool
}

// ParserOption is a functional option for configuring a Parser.
type ParserOption = options.Option[*ParserConfig]

// WithStrictText rejects names containing unpaired UTF-16 surrogates with
// errs.ErrMalformedRecord instead of replacing them with U+FFFD.
func WithStrictText() ParserOption {
	return options.NoError(func(cfg *ParserConfig) {
		cfg.strictText = true
	})
}

// Parser decodes records of one variant.
type Parser struct {
	desc *layout.FormatDescriptor
	cfg  ParserConfig
}

// NewParser creates a Parser for desc.
func NewParser(desc *layout.FormatDescriptor, opts ...ParserOption) (*Parser, error) {
	p := &Parser{desc: desc}
	if err := options.Apply(&p.cfg, opts...); err != nil {
		return nil, err
	}

	return p, nil
}

// Descriptor returns the layout the parser decodes.
func (p *Parser) Descriptor() *layout.FormatDescriptor {
	return p.desc
}

// Parse decodes raw with desc. See Parser.Parse.
func Parse(raw []byte, desc *layout.FormatDescriptor, opts ...ParserOption) (*Mii, error) {
	p, err := NewParser(desc, opts...)
	if err != nil {
		return nil, err
	}

	return p.Parse(raw)
}

// Parse decodes one record.
//
// Parameters:
//   - raw: the CharData form (a database slot) or the StoreData form (an
//     exported .mii file) of one record
//
// Returns:
//   - *Mii: the decoded record; ChecksumValid is false when a stored
//     checksum disagrees with the computed one
//   - error: errs.ErrMalformedRecord when raw has neither length or a field
//     lies outside its defined range
func (p *Parser) Parse(raw []byte) (*Mii, error) {
	d := p.desc
	if len(raw) != d.RecordStride && len(raw) != d.StoreLength {
		return nil, fmt.Errorf("%w: record is %d bytes, %s expects %d or %d",
			errs.ErrMalformedRecord, len(raw), d.DisplayName, d.RecordStride, d.StoreLength)
	}

	r := fieldReader{raw: raw, desc: d}
	m := &Mii{
		Variant:     d.Variant,
		Raw:         raw,
		idSpec:      d.ID,
		crcSpec:     d.Checksum,
		charDataLen: d.RecordStride,
	}

	m.ID = uint32(r.readUint(layout.FieldMiiID))
	m.SystemID = r.readUint(layout.FieldSystemID)
	if spec, ok := d.Field(layout.FieldSystemID); ok {
		m.systemIDLen = spec.BitWidth / 8
	}

	m.Gender = format.Gender(r.readUint(layout.FieldGender))
	m.Birthday = Birthday{
		Month: uint8(r.readUint(layout.FieldBirthMonth)),
		Day:   uint8(r.readUint(layout.FieldBirthDay)),
	}
	m.FavoriteColor = r.readColor()

	m.Flags = Flags{
		Invalid:    r.readBool(layout.FieldInvalid),
		Favorite:   r.readBool(layout.FieldFavorite),
		NoSharing:  r.readBool(layout.FieldNoSharing),
		Downloaded: r.readBool(layout.FieldDownloaded),
		Special:    m.ID>>d.ID.NormalBit&1 == 0,
	}

	m.Features = Features{
		FaceShape:       r.readU8(layout.FieldFaceShape),
		SkinTone:        r.readU8(layout.FieldSkinTone),
		FacialFeature:   r.readU8(layout.FieldFacialFeature),
		HairStyle:       r.readU8(layout.FieldHairStyle),
		HairColor:       r.readU8(layout.FieldHairColor),
		HairParted:      r.readBool(layout.FieldHairPart),
		EyebrowType:     r.readU8(layout.FieldEyebrowType),
		EyebrowColor:    r.readU8(layout.FieldEyebrowColor),
		EyeType:         r.readU8(layout.FieldEyeType),
		EyeColor:        r.readU8(layout.FieldEyeColor),
		NoseType:        r.readU8(layout.FieldNoseType),
		MouthType:       r.readU8(layout.FieldMouthType),
		MouthColor:      r.readU8(layout.FieldMouthColor),
		MustacheType:    r.readU8(layout.FieldMustacheType),
		BeardType:       r.readU8(layout.FieldBeardType),
		FacialHairColor: r.readU8(layout.FieldFacialHairColor),
		GlassesType:     r.readU8(layout.FieldGlassesType),
		GlassesColor:    r.readU8(layout.FieldGlassesColor),
		Mole:            r.readBool(layout.FieldMole),
		Height:          r.readU8(layout.FieldHeight),
		Weight:          r.readU8(layout.FieldWeight),
	}

	if r.err != nil {
		return nil, r.err
	}

	var err error
	if m.Name, err = p.text(raw, layout.FieldName); err != nil {
		return nil, err
	}
	if m.CreatorName, err = p.text(raw, layout.FieldCreatorName); err != nil {
		return nil, err
	}

	m.ComputedChecksum = checksum.Compute(raw, d.Checksum)
	m.StoredChecksum, m.HasStoredChecksum = checksum.Stored(raw, d.Checksum)
	m.ChecksumValid = !m.HasStoredChecksum || m.StoredChecksum == m.ComputedChecksum

	return m, nil
}

func (p *Parser) text(raw []byte, f layout.Field) (string, error) {
	spec, ok := p.desc.Field(f)
	if !ok {
		return "", nil
	}

	return decodeText(raw, f, spec, p.desc.EngineFor(spec), p.cfg.strictText)
}

// fieldReader pulls fields through the bit reader and keeps the first range
// violation. Fields the variant does not define read as zero.
type fieldReader struct {
	raw  []byte
	desc *layout.FormatDescriptor
	err  error
}

func (r *fieldReader) readUint(f layout.Field) uint64 {
	spec, ok := r.desc.Field(f)
	if !ok {
		return 0
	}

	v := bitfield.Read(r.raw, spec.BitOffset, spec.BitWidth, r.desc.EngineFor(spec))
	if spec.Max > 0 && v > spec.Max && r.err == nil {
		r.err = fmt.Errorf("%w: %s=%d exceeds %d", errs.ErrMalformedRecord, f, v, spec.Max)
	}

	return v
}

func (r *fieldReader) readU8(f layout.Field) uint8 {
	return uint8(r.readUint(f))
}

func (r *fieldReader) readBool(f layout.Field) bool {
	return r.readUint(f) != 0
}

func (r *fieldReader) readColor() format.FavoriteColor {
	idx := r.readUint(layout.FieldFavoriteColor)
	c, ok := r.desc.PaletteAt(idx)
	if !ok && r.err == nil {
		r.err = fmt.Errorf("%w: favorite color %d outside %d-entry palette",
			errs.ErrMalformedRecord, idx, r.desc.PaletteLen())
	}

	return c
}
