package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arloliu/mii/compress"
	"github.com/arloliu/mii/database"
	"github.com/arloliu/mii/errs"
	"github.com/arloliu/mii/format"
)

// Pack writes the whole database image of db to path compressed with ct.
// Missing parent directories are created. The result loads with
// database.Load when path carries ct's extension, or with
// database.WithCompression otherwise.
func Pack(db *database.Database, path string, ct format.CompressionType) error {
	codec, err := compress.GetCodec(ct)
	if err != nil {
		return err
	}

	packed, err := codec.Compress(db.Image())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("%w: create %s: %w", errs.ErrIO, filepath.Dir(path), err)
	}

	return writeFile(path, packed)
}

// PackPath returns the conventional snapshot name for db under dir,
// e.g. RFL_DB.dat.zst.
func PackPath(dir string, db *database.Database, ct format.CompressionType) string {
	return filepath.Join(dir, db.Descriptor().DefaultPath+ct.Extension())
}
