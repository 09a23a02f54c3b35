package export

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/arloliu/mii/errs"
	"github.com/arloliu/mii/format"
	"github.com/arloliu/mii/layout"
	"github.com/arloliu/mii/record"
)

// DetectVariant infers the variant of an exported record from its file name
// prefix, falling back to its size. A record may be in the CharData or the
// StoreData form. Wii U and 3DS records share both sizes; such a record
// without a recognized prefix is read as Wii U.
func DetectVariant(name string, size int) (format.Variant, error) {
	descs := layout.All()

	base := strings.ToUpper(filepath.Base(name))
	for _, d := range descs {
		if strings.HasPrefix(base, d.FilePrefix) && hasRecordSize(d, size) {
			return d.Variant, nil
		}
	}

	for _, d := range descs {
		if hasRecordSize(d, size) {
			return d.Variant, nil
		}
	}

	return 0, fmt.Errorf("%w: no variant has %d-byte records", errs.ErrUnknownVariant, size)
}

func hasRecordSize(d *layout.FormatDescriptor, size int) bool {
	return size == d.RecordStride || size == d.StoreLength
}

// ReadRecord parses one exported .mii file.
func ReadRecord(path string, opts ...record.ParserOption) (*record.Mii, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", errs.ErrFileNotFound, path)
		}

		return nil, fmt.Errorf("%w: read %s: %w", errs.ErrIO, path, err)
	}

	v, err := DetectVariant(path, len(raw))
	if err != nil {
		return nil, err
	}

	return record.Parse(raw, layout.Describe(v), opts...)
}
