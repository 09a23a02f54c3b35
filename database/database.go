package database

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/arloliu/mii/errs"
	"github.com/arloliu/mii/layout"
	"github.com/arloliu/mii/record"
)

// Database is a decoded database file. It is immutable after Load or Decode
// returns.
type Database struct {
	desc  *layout.FormatDescriptor
	path  string
	image []byte
	slots []Slot
	valid []*record.Mii
}

// Descriptor returns a copy of the layout the database was decoded with.
func (db *Database) Descriptor() *layout.FormatDescriptor {
	d := *db.desc
	return &d
}

// Path returns the file the database was loaded from, or "" for Decode.
func (db *Database) Path() string {
	return db.path
}

// Len returns the number of valid records.
func (db *Database) Len() int {
	return len(db.valid)
}

// SlotCount returns the number of slots in the record table, whatever
// their state. It always equals the variant's RecordCount.
func (db *Database) SlotCount() int {
	return len(db.slots)
}

// At returns the i-th valid record in slot order.
func (db *Database) At(i int) (*record.Mii, error) {
	if i < 0 || i >= len(db.valid) {
		return nil, fmt.Errorf("%w: record %d of %d", errs.ErrIndexOutOfRange, i, len(db.valid))
	}

	return db.valid[i], nil
}

// Slot returns slot i of the record table.
func (db *Database) Slot(i int) (Slot, error) {
	if i < 0 || i >= len(db.slots) {
		return Slot{}, fmt.Errorf("%w: slot %d of %d", errs.ErrIndexOutOfRange, i, len(db.slots))
	}

	return db.slots[i], nil
}

// Image returns a copy of the whole decoded database image, header and
// trailer included.
func (db *Database) Image() []byte {
	return append([]byte(nil), db.image...)
}

// RawBytes returns a copy of the exact bytes of slot i.
func (db *Database) RawBytes(i int) ([]byte, error) {
	slot, err := db.Slot(i)
	if err != nil {
		return nil, err
	}

	return append([]byte(nil), slot.Raw...), nil
}

// All returns an iterator over the valid records and their positions.
func (db *Database) All() iter.Seq2[int, *record.Mii] {
	return func(yield func(int, *record.Mii) bool) {
		for i, m := range db.valid {
			if !yield(i, m) {
				return
			}
		}
	}
}

// Slots returns an iterator over every slot in table order.
func (db *Database) Slots() iter.Seq[Slot] {
	return func(yield func(Slot) bool) {
		for _, s := range db.slots {
			if !yield(s) {
				return
			}
		}
	}
}

// Records returns the valid records in slot order. The slice is a copy.
func (db *Database) Records() []*record.Mii {
	return append([]*record.Mii(nil), db.valid...)
}

// Filter returns the valid records matching p, in slot order.
func (db *Database) Filter(p Predicate) []*record.Mii {
	var out []*record.Mii
	for _, m := range db.valid {
		if p.Match(m) {
			out = append(out, m)
		}
	}

	return out
}

// FindByName returns the first valid record named name.
func (db *Database) FindByName(name string) (*record.Mii, bool) {
	for _, m := range db.valid {
		if m.Name == name {
			return m, true
		}
	}

	return nil, false
}

// Favorites returns the valid records marked as favorites.
func (db *Database) Favorites() []*record.Mii {
	return db.Filter(IsFavorite())
}

// Stats summarizes the slot table.
type Stats struct {
	Slots            int
	Valid            int
	Empty            int
	ChecksumMismatch int
	Malformed        int
	Favorites        int
	Special          int
}

// Stats counts slots by state.
func (db *Database) Stats() Stats {
	st := Stats{Slots: len(db.slots)}
	for _, s := range db.slots {
		switch s.State {
		case SlotValid:
			st.Valid++
			if s.Mii.IsFavorite() {
				st.Favorites++
			}
			if s.Mii.IsSpecial() {
				st.Special++
			}
		case SlotEmpty:
			st.Empty++
		case SlotChecksumMismatch:
			st.ChecksumMismatch++
		case SlotMalformed:
			st.Malformed++
		}
	}

	return st
}

func (db *Database) logSummary(logger *slog.Logger) {
	st := db.Stats()
	logger.Info("database loaded",
		"variant", db.desc.Variant.String(),
		"path", db.path,
		"slots", st.Slots,
		"valid", st.Valid,
		"empty", st.Empty,
		"checksum_mismatch", st.ChecksumMismatch,
		"malformed", st.Malformed,
	)
}
