// Package export writes decoded database contents back to disk.
//
// Records are written verbatim by default: the bytes of a .mii file are
// exactly the CharData bytes of its database slot. WithStoreData writes the
// padded StoreData form instead, which carries a checksum.
package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/arloliu/mii/checksum"
	"github.com/arloliu/mii/database"
	"github.com/arloliu/mii/errs"
	"github.com/arloliu/mii/internal/options"
	"github.com/arloliu/mii/layout"
	"github.com/arloliu/mii/record"
)

// Extension is the suffix of exported record files.
const Extension = ".mii"

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriterConfig holds Writer settings.
type WriterConfig struct {
	logger         *slog.Logger
	includeInvalid bool
	storeData      bool
}

// WriterOption configures a Writer.
type WriterOption = options.Option[*WriterConfig]

// WithLogger sets the logger that receives one debug line per file.
func WithLogger(logger *slog.Logger) WriterOption {
	return options.NoError(func(c *WriterConfig) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// WithStoreData writes each record in the StoreData form: CharData, zero
// padding and the CRC-16.
func WithStoreData() WriterOption {
	return options.NoError(func(c *WriterConfig) {
		c.storeData = true
	})
}

// WithInvalid also exports slots whose checksum failed or which could not be
// parsed. Empty slots are never exported.
func WithInvalid() WriterOption {
	return options.NoError(func(c *WriterConfig) {
		c.includeInvalid = true
	})
}

// Writer exports database slots into one directory.
type Writer struct {
	dir string
	cfg WriterConfig
}

// NewWriter creates dir if needed and returns a Writer targeting it.
func NewWriter(dir string, opts ...WriterOption) (*Writer, error) {
	w := &Writer{
		dir: dir,
		cfg: WriterConfig{logger: slog.New(slog.DiscardHandler)},
	}
	if err := options.Apply(&w.cfg, opts...); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("%w: create %s: %w", errs.ErrIO, dir, err)
	}

	return w, nil
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// FileName returns the export file name of a slot, e.g. WII_PL00000.mii.
func FileName(desc *layout.FormatDescriptor, slot int) string {
	return fmt.Sprintf("%s%05d%s", desc.FilePrefix, slot, Extension)
}

// WriteSlot writes the bytes of one slot and returns the file path.
func (w *Writer) WriteSlot(db *database.Database, slot int) (string, error) {
	raw, err := db.RawBytes(slot)
	if err != nil {
		return "", err
	}

	desc := db.Descriptor()
	if w.cfg.storeData {
		raw = checksum.StoreForm(raw, desc.Checksum)
	}

	path := filepath.Join(w.dir, FileName(desc, slot))
	if err := writeFile(path, raw); err != nil {
		return "", err
	}
	w.cfg.logger.Debug("exported slot", "slot", slot, "path", path)

	return path, nil
}

// WriteAll exports every valid record of db, in slot order, and returns the
// written paths.
func (w *Writer) WriteAll(db *database.Database) ([]string, error) {
	paths := make([]string, 0, db.Len())
	for s := range db.Slots() {
		if !w.selected(s) {
			continue
		}

		path, err := w.WriteSlot(db, s.Index)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	w.cfg.logger.Info("export finished",
		"variant", db.Descriptor().Variant.String(),
		"dir", w.dir,
		"files", len(paths),
	)

	return paths, nil
}

func (w *Writer) selected(s database.Slot) bool {
	switch s.State {
	case database.SlotValid:
		return true
	case database.SlotChecksumMismatch, database.SlotMalformed:
		return w.cfg.includeInvalid
	default:
		return false
	}
}

// WriteRecord writes the raw bytes of m to path.
func WriteRecord(path string, m *record.Mii) error {
	return writeFile(path, m.Raw)
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("%w: write %s: %w", errs.ErrIO, path, err)
	}

	return nil
}
