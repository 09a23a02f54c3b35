package record

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"github.com/arloliu/mii/endian"
	"github.com/arloliu/mii/errs"
	"github.com/arloliu/mii/layout"
)

var (
	utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
)

func utf16For(engine endian.EndianEngine) encoding.Encoding {
	if endian.IsBigEndian(engine) {
		return utf16BE
	}

	return utf16LE
}

// trimUnits cuts field at its first zero code unit.
func trimUnits(field []byte) []byte {
	for i := 0; i+1 < len(field); i += 2 {
		if field[i] == 0 && field[i+1] == 0 {
			return field[:i]
		}
	}

	return field[:len(field)&^1]
}

// countReplacement counts U+FFFD code units already present in units, so
// strict mode only rejects replacements introduced by decoding.
func countReplacement(units []byte, engine endian.EndianEngine) int {
	n := 0
	for i := 0; i+1 < len(units); i += 2 {
		if engine.Uint16(units[i:i+2]) == utf8.RuneError {
			n++
		}
	}

	return n
}

// decodeText decodes a fixed-length UTF-16 field.
func decodeText(raw []byte, f layout.Field, spec layout.FieldSpec, engine endian.EndianEngine, strict bool) (string, error) {
	start := spec.ByteOffset()
	units := trimUnits(raw[start : start+spec.Chars()*2])
	if len(units) == 0 {
		return "", nil
	}

	out, err := utf16For(engine).NewDecoder().Bytes(units)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", errs.ErrMalformedRecord, f, err)
	}

	if strict {
		replaced := bytes.Count(out, []byte(string(utf8.RuneError)))
		if replaced > countReplacement(units, engine) {
			return "", fmt.Errorf("%w: %s contains an unpaired surrogate", errs.ErrMalformedRecord, f)
		}
	}

	return string(out), nil
}
