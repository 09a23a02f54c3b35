package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/mii/errs"
)

type (
	Variant         uint8
	CompressionType uint8
	Gender          uint8
	FavoriteColor   uint8
)

const (
	WiiPlaza     Variant = 0x1 // WiiPlaza is the Mii Channel plaza table in RFL_DB.dat.
	WiiParade    Variant = 0x2 // WiiParade is the Mii Channel parade table in RFL_DB.dat.
	WiiUMaker    Variant = 0x3 // WiiUMaker is the Wii U Mii Maker table in FFL_ODB.dat.
	ThreeDSMaker Variant = 0x4 // ThreeDSMaker is the 3DS Mii Maker table in CFL_DB.dat.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	Male   Gender = 0x0
	Female Gender = 0x1
)

// Favorite colors share one numbering on every console; each variant's palette
// decides how many of them are addressable.
const (
	ColorRed FavoriteColor = iota
	ColorOrange
	ColorYellow
	ColorLightGreen
	ColorGreen
	ColorBlue
	ColorLightBlue
	ColorPink
	ColorPurple
	ColorBrown
	ColorWhite
	ColorBlack
)

// Variants lists every supported variant in declaration order.
var Variants = []Variant{WiiPlaza, WiiParade, WiiUMaker, ThreeDSMaker}

// Valid reports whether v is one of the supported variants.
func (v Variant) Valid() bool {
	return v >= WiiPlaza && v <= ThreeDSMaker
}

func (v Variant) String() string {
	switch v {
	case WiiPlaza:
		return "WiiPlaza"
	case WiiParade:
		return "WiiParade"
	case WiiUMaker:
		return "WiiUMaker"
	case ThreeDSMaker:
		return "3DSMaker"
	default:
		return "Unknown"
	}
}

// ParseVariant resolves a user supplied variant name. Matching ignores case,
// dashes and underscores, so "wii-plaza", "WII_PLAZA" and "WiiPlaza" are equal.
func ParseVariant(s string) (Variant, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(s))
	switch key {
	case "wiiplaza", "plaza":
		return WiiPlaza, nil
	case "wiiparade", "parade":
		return WiiParade, nil
	case "wiiumaker", "wiiu":
		return WiiUMaker, nil
	case "3dsmaker", "3ds", "threedsmaker":
		return ThreeDSMaker, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownVariant, s)
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression resolves a compression name such as "zstd" or "none".
// The empty string maps to CompressionNone.
func ParseCompression(s string) (CompressionType, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return CompressionNone, nil
	case "zstd", "zst":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnsupportedCompression, s)
	}
}

// Extension returns the conventional file suffix for the compression type,
// including the leading dot. CompressionNone has no suffix.
func (c CompressionType) Extension() string {
	switch c {
	case CompressionZstd:
		return ".zst"
	case CompressionS2:
		return ".s2"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

func (g Gender) String() string {
	if g == Female {
		return "Female"
	}

	return "Male"
}

var colorNames = [...]string{
	"Red", "Orange", "Yellow", "Light Green", "Green", "Blue",
	"Light Blue", "Pink", "Purple", "Brown", "White", "Black",
}

func (c FavoriteColor) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}

	return "Unknown"
}
