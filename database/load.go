package database

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/arloliu/mii/compress"
	"github.com/arloliu/mii/errs"
	"github.com/arloliu/mii/format"
	"github.com/arloliu/mii/internal/pool"
	"github.com/arloliu/mii/layout"
	"github.com/arloliu/mii/record"
)

// Load reads and decodes the database file at path.
//
// Parameters:
//   - path: database file, optionally a compressed snapshot
//   - v: the variant the file holds
//   - opts: load options
//
// Returns:
//   - *Database: the decoded database
//   - error: errs.ErrUnknownVariant, errs.ErrFileNotFound, errs.ErrIO or
//     errs.ErrInvalidDatabaseSize; record-level problems are never returned
func Load(path string, v format.Variant, opts ...LoadOption) (*Database, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownVariant, v)
	}

	cfg, err := newLoadConfig(opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	desc := layout.Describe(v)

	data, err := readFile(path, desc, cfg)
	if err != nil {
		cfg.recorder.ObserveLoad(v, start, err)
		cfg.logger.Error("database load failed", "path", path, "variant", v.String(), "error", err)

		return nil, err
	}

	db, err := decode(data, desc, cfg)
	cfg.recorder.ObserveLoad(v, start, err)
	if err != nil {
		cfg.logger.Error("database load failed", "path", path, "variant", v.String(), "error", err)
		return nil, err
	}
	db.path = path

	db.logSummary(cfg.logger)

	return db, nil
}

// Decode decodes an in-memory database image. The returned Database keeps
// references into data, which must not be modified afterwards.
func Decode(data []byte, v format.Variant, opts ...LoadOption) (*Database, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownVariant, v)
	}

	cfg, err := newLoadConfig(opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	db, err := decode(data, layout.Describe(v), cfg)
	cfg.recorder.ObserveLoad(v, start, err)
	if err != nil {
		return nil, err
	}

	db.logSummary(cfg.logger)

	return db, nil
}

func readFile(path string, desc *layout.FormatDescriptor, cfg *LoadConfig) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", errs.ErrFileNotFound, path)
		}

		return nil, fmt.Errorf("%w: open %s: %w", errs.ErrIO, path, err)
	}
	defer f.Close()

	ct := cfg.compression
	if ct == 0 {
		ct = compress.ForPath(path)
	}

	if ct != format.CompressionNone {
		return readSnapshot(f, path, ct)
	}

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %w", errs.ErrIO, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", errs.ErrIO, path)
	}
	if err := checkSize(info.Size(), desc, cfg); err != nil {
		return nil, err
	}

	data := make([]byte, info.Size())
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", errs.ErrIO, path, err)
	}

	return data, nil
}

// readSnapshot reads a compressed snapshot through a pooled buffer and
// returns the decompressed image.
func readSnapshot(r io.Reader, path string, ct format.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(ct)
	if err != nil {
		return nil, err
	}

	bb := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(bb)

	if _, err := bb.ReadFrom(io.LimitReader(r, compress.MaxSnapshotSize)); err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", errs.ErrIO, path, err)
	}

	data, err := codec.Decompress(bb.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: decompress %s snapshot %s: %w", errs.ErrIO, ct, path, err)
	}

	return data, nil
}

// checkSize validates the image size. The exact console file size is
// required unless the load is lenient, in which case the slot table must fit.
func checkSize(got int64, desc *layout.FormatDescriptor, cfg *LoadConfig) error {
	if cfg.lenientSize {
		need := int64(desc.HeaderLength) + desc.TableSize()
		if got < need {
			return fmt.Errorf("%w: %s needs at least %d bytes, got %d",
				errs.ErrInvalidDatabaseSize, desc.DisplayName, need, got)
		}

		return nil
	}

	if got != desc.ExpectedSize() {
		return fmt.Errorf("%w: %s requires %d bytes, got %d",
			errs.ErrInvalidDatabaseSize, desc.DisplayName, desc.ExpectedSize(), got)
	}

	return nil
}

func decode(data []byte, desc *layout.FormatDescriptor, cfg *LoadConfig) (*Database, error) {
	if err := checkSize(int64(len(data)), desc, cfg); err != nil {
		return nil, err
	}

	parser, err := record.NewParser(desc, cfg.parserOpts...)
	if err != nil {
		return nil, err
	}

	db := &Database{
		desc:  desc,
		image: data,
		slots: make([]Slot, desc.RecordCount),
	}

	for i := range db.slots {
		off := desc.SlotOffset(i)
		raw := data[off : off+desc.RecordStride : off+desc.RecordStride]
		db.slots[i] = decodeSlot(parser, i, raw, cfg.logger)

		slot := &db.slots[i]
		cfg.recorder.ObserveSlot(desc.Variant, slot.State.String())
		if slot.State == SlotValid {
			db.valid = append(db.valid, slot.Mii)
		}
	}

	return db, nil
}

func decodeSlot(parser *record.Parser, i int, raw []byte, logger *slog.Logger) Slot {
	slot := Slot{Index: i, Raw: raw}

	if isEmptySlot(raw) {
		slot.State = SlotEmpty
		return slot
	}

	m, err := parser.Parse(raw)
	if err != nil {
		slot.State = SlotMalformed
		slot.Err = fmt.Errorf("slot %d: %w", i, err)
		logger.Debug("skipping malformed slot", "slot", i, "error", err)

		return slot
	}

	slot.ComputedChecksum = m.ComputedChecksum
	slot.StoredChecksum = m.StoredChecksum

	if !m.ChecksumValid {
		slot.State = SlotChecksumMismatch
		slot.Err = fmt.Errorf("slot %d: %w", i, m.Err())
		logger.Debug("skipping slot with bad checksum", "slot", i,
			"stored", m.StoredChecksum, "computed", m.ComputedChecksum)

		return slot
	}

	slot.State = SlotValid
	slot.Mii = m

	return slot
}
