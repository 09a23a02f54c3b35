package layout

import (
	"fmt"
	"time"

	"github.com/arloliu/mii/endian"
	"github.com/arloliu/mii/format"
)

// Record and file geometry shared by the descriptors below.
//
// Slots hold the CharData form of a record. The StoreData form used by
// exported .mii files appends zero padding and a CRC-16 to CharData.
const (
	NameChars = 10 // UTF-16 code units in a name or creator name

	WiiCharDataSize   = 0x4A // RFLiCharData, one Plaza slot
	WiiStoreDataSize  = 0x4C // Wii CharData followed by a CRC-16
	WiiParadeSize     = 0x40 // one Parade slot: CharData without creator name
	WiiParadeStore    = 0x42 // Parade slot followed by a CRC-16
	Ver3CharDataSize  = 0x5C // FFLiMiiDataOfficial / CFLiMiiDataOfficial
	Ver3StoreDataSize = 0x60 // Ver3 CharData, two zero bytes, CRC-16 at 0x5E

	rflDBSize  = 0x1F1DE0 // RFL_DB.dat, holding both Wii tables
	fflODBSize = 0x43A20  // FFL_ODB.dat
	cflDBSize  = 0xC820   // CFL_DB.dat

	plazaOffset  = 0x4
	paradeOffset = 0x1F1E0
	ver3Offset   = 0x8

	crc16Poly = 0x1021
	crc16Init = 0x0000
)

var (
	wiiEpoch  = time.Date(2006, time.January, 1, 0, 0, 0, 0, time.UTC)
	ver3Epoch = time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC)

	// Every console stores the favorite color in four bits and defines the
	// same twelve colors. No variant uses the upper four codes.
	standardPalette = []format.FavoriteColor{
		format.ColorRed, format.ColorOrange, format.ColorYellow, format.ColorLightGreen,
		format.ColorGreen, format.ColorBlue, format.ColorLightBlue, format.ColorPink,
		format.ColorPurple, format.ColorBrown, format.ColorWhite, format.ColorBlack,
	}
)

func uintField(bitOffset, bitWidth int, maxValue uint64) FieldSpec {
	return FieldSpec{BitOffset: bitOffset, BitWidth: bitWidth, Kind: KindUint, Max: maxValue}
}

func boolField(bitOffset int) FieldSpec {
	return FieldSpec{BitOffset: bitOffset, BitWidth: 1, Kind: KindBool}
}

func enumField(bitOffset, bitWidth int) FieldSpec {
	return FieldSpec{BitOffset: bitOffset, BitWidth: bitWidth, Kind: KindEnum}
}

func textField(byteOffset int) FieldSpec {
	return FieldSpec{BitOffset: byteOffset * 8, BitWidth: NameChars * 16, Kind: KindText}
}

func bigEndian(spec FieldSpec) FieldSpec {
	spec.Engine = endian.GetBigEndianEngine()
	return spec
}

// wiiFields is the Wii CharData layout. Offsets count bits MSB first from
// byte 0, matching the big-endian bit-field structs of the Mii Channel.
func wiiFields(withCreator bool) map[Field]FieldSpec {
	fields := map[Field]FieldSpec{
		// 0x00-0x01
		FieldInvalid:       boolField(0),
		FieldGender:        enumField(1, 1),
		FieldBirthMonth:    uintField(2, 4, 12),
		FieldBirthDay:      uintField(6, 5, 31),
		FieldFavoriteColor: enumField(11, 4),
		FieldFavorite:      boolField(15),
		// 0x02-0x15
		FieldName: textField(0x02),
		// 0x16-0x17
		FieldHeight: uintField(0x16*8, 8, 127),
		FieldWeight: uintField(0x17*8, 8, 127),
		// 0x18-0x1F
		FieldMiiID:    uintField(0x18*8, 32, 0),
		FieldSystemID: uintField(0x1C*8, 32, 0),
		// 0x20-0x21
		FieldFaceShape:     uintField(256, 3, 7),
		FieldSkinTone:      uintField(259, 3, 5),
		FieldFacialFeature: uintField(262, 4, 11),
		FieldNoSharing:     boolField(269),
		FieldDownloaded:    boolField(271),
		// 0x22-0x23
		FieldHairStyle: uintField(272, 7, 71),
		FieldHairColor: uintField(279, 3, 7),
		FieldHairPart:  boolField(282),
		// 0x24-0x27
		FieldEyebrowType:  uintField(288, 5, 23),
		FieldEyebrowColor: uintField(304, 3, 7),
		// 0x28-0x2B
		FieldEyeType:  uintField(320, 6, 47),
		FieldEyeColor: uintField(336, 3, 5),
		// 0x2C-0x2D
		FieldNoseType: uintField(352, 4, 11),
		// 0x2E-0x2F
		FieldMouthType:  uintField(368, 5, 23),
		FieldMouthColor: uintField(373, 2, 2),
		// 0x30-0x31
		FieldGlassesType:  uintField(384, 4, 8),
		FieldGlassesColor: uintField(388, 3, 5),
		// 0x32-0x33
		FieldMustacheType:    uintField(400, 2, 3),
		FieldBeardType:       uintField(402, 2, 3),
		FieldFacialHairColor: uintField(404, 3, 7),
		// 0x34-0x35
		FieldMole: boolField(416),
	}
	if withCreator {
		fields[FieldCreatorName] = textField(0x36)
	}

	return fields
}

// ver3Fields is the Wii U / 3DS CharData layout. Offsets count bits LSB first
// from byte 0, matching the little-endian bit-field structs of FFL and CFL.
func ver3Fields() map[Field]FieldSpec {
	return map[Field]FieldSpec{
		// 0x04-0x0F
		FieldSystemID: bigEndian(uintField(0x04*8, 64, 0)),
		FieldMiiID:    bigEndian(uintField(0x0C*8, 32, 0)),
		// 0x18-0x19
		FieldGender:        enumField(192, 1),
		FieldBirthMonth:    uintField(193, 4, 12),
		FieldBirthDay:      uintField(197, 5, 31),
		FieldFavoriteColor: enumField(202, 4),
		FieldFavorite:      boolField(206),
		// 0x1A-0x2D
		FieldName: textField(0x1A),
		// 0x2E-0x2F
		FieldHeight: uintField(0x2E*8, 8, 127),
		FieldWeight: uintField(0x2F*8, 8, 127),
		// 0x30-0x31
		FieldNoSharing:     boolField(384),
		FieldFaceShape:     uintField(385, 4, 11),
		FieldSkinTone:      uintField(389, 3, 5),
		FieldFacialFeature: uintField(392, 4, 11),
		// 0x32-0x33
		FieldHairStyle: uintField(400, 8, 131),
		FieldHairColor: uintField(408, 3, 7),
		FieldHairPart:  boolField(411),
		// 0x34-0x37
		FieldEyeType:  uintField(416, 6, 59),
		FieldEyeColor: uintField(422, 3, 5),
		// 0x38-0x3B
		FieldEyebrowType:  uintField(448, 5, 24),
		FieldEyebrowColor: uintField(453, 3, 7),
		// 0x3C-0x3D
		FieldNoseType: uintField(480, 5, 17),
		// 0x3E-0x3F
		FieldMouthType:  uintField(496, 6, 35),
		FieldMouthColor: uintField(502, 3, 4),
		// 0x40-0x43
		FieldMustacheType:    uintField(517, 3, 5),
		FieldBeardType:       uintField(528, 3, 5),
		FieldFacialHairColor: uintField(531, 3, 7),
		// 0x44-0x45
		FieldGlassesType:  uintField(544, 4, 8),
		FieldGlassesColor: uintField(548, 3, 5),
		// 0x46-0x47
		FieldMole: boolField(560),
		// 0x48-0x5B
		FieldCreatorName: textField(0x48),
	}
}

// crcAt declares a big-endian CRC-16 stored at byteOffset of the StoreData
// form. It covers every byte before it.
func crcAt(byteOffset int) ChecksumSpec {
	return ChecksumSpec{
		BitOffset: byteOffset * 8,
		BitWidth:  16,
		Engine:    endian.GetBigEndianEngine(),
		Poly:      crc16Poly,
		Init:      crc16Init,
	}
}

// table lists the stored part of one descriptor.
type table struct {
	header  int
	count   int
	stride  int
	store   int
	file    int
	fields  map[Field]FieldSpec
	palette []format.FavoriteColor
}

func newDescriptor(d FormatDescriptor, t table) FormatDescriptor {
	d.HeaderLength = t.header
	d.RecordCount = t.count
	d.RecordStride = t.stride
	d.TrailerLength = t.file - t.header - t.count*t.stride
	d.StoreLength = t.store
	d.Checksum = crcAt(t.store - 2)

	for f, spec := range t.fields {
		d.fields[f-FieldInvalid] = spec
	}
	d.paletteLen = copy(d.palette[:], t.palette)

	return d
}

var (
	wiiID  = IDSpec{TimestampMask: 0x0FFFFFFF, Tick: 4 * time.Second, Epoch: wiiEpoch, NormalBit: 31}
	ver3ID = IDSpec{TimestampMask: 0x0FFFFFFF, Tick: 2 * time.Second, Epoch: ver3Epoch, NormalBit: 31}
)

var descriptors = [...]FormatDescriptor{
	newDescriptor(FormatDescriptor{
		Variant:     format.WiiPlaza,
		DisplayName: "Wii Plaza",
		FilePrefix:  "WII_PL",
		DefaultPath: "RFL_DB.dat",
		Engine:      endian.GetBigEndianEngine(),
		ID:          wiiID,
	}, table{
		header:  plazaOffset,
		count:   100,
		stride:  WiiCharDataSize,
		store:   WiiStoreDataSize,
		file:    rflDBSize,
		fields:  wiiFields(true),
		palette: standardPalette,
	}),
	newDescriptor(FormatDescriptor{
		Variant:     format.WiiParade,
		DisplayName: "Wii Parade",
		FilePrefix:  "WII_PA",
		DefaultPath: "RFL_DB.dat",
		Engine:      endian.GetBigEndianEngine(),
		ID:          wiiID,
	}, table{
		header:  paradeOffset,
		count:   10000,
		stride:  WiiParadeSize,
		store:   WiiParadeStore,
		file:    rflDBSize,
		fields:  wiiFields(false),
		palette: standardPalette,
	}),
	newDescriptor(FormatDescriptor{
		Variant:     format.WiiUMaker,
		DisplayName: "Wii U Mii Maker",
		FilePrefix:  "WIIU",
		DefaultPath: "FFL_ODB.dat",
		Engine:      endian.GetLittleEndianEngine(),
		ID:          ver3ID,
	}, table{
		header:  ver3Offset,
		count:   3000,
		stride:  Ver3CharDataSize,
		store:   Ver3StoreDataSize,
		file:    fflODBSize,
		fields:  ver3Fields(),
		palette: standardPalette,
	}),
	newDescriptor(FormatDescriptor{
		Variant:     format.ThreeDSMaker,
		DisplayName: "3DS Mii Maker",
		FilePrefix:  "3DS",
		DefaultPath: "CFL_DB.dat",
		Engine:      endian.GetLittleEndianEngine(),
		ID:          ver3ID,
	}, table{
		header:  ver3Offset,
		count:   100,
		stride:  Ver3CharDataSize,
		store:   Ver3StoreDataSize,
		file:    cflDBSize,
		fields:  ver3Fields(),
		palette: standardPalette,
	}),
}

// Describe returns a copy of the descriptor of v. The table itself is never
// exposed, so changes to the returned value stay with the caller.
//
// The variant set is closed: passing a value outside format.Variants is a
// programming error and panics. Validate user input with format.ParseVariant
// or Variant.Valid first.
func Describe(v format.Variant) *FormatDescriptor {
	if !v.Valid() {
		panic(fmt.Sprintf("layout: no descriptor for variant %d", v))
	}

	d := descriptors[v-format.WiiPlaza]

	return &d
}

// All returns a copy of every descriptor in variant order.
func All() []*FormatDescriptor {
	out := make([]*FormatDescriptor, 0, len(descriptors))
	for _, v := range format.Variants {
		out = append(out, Describe(v))
	}

	return out
}
