package database

import (
	"github.com/arloliu/mii/internal/collision"
	"github.com/arloliu/mii/record"
)

// MergeStats summarizes one merge.
type MergeStats struct {
	// Kept is the number of records returned.
	Kept int
	// Duplicates is the number of records dropped as repeats.
	Duplicates int
	// Collisions counts kept records whose fingerprint matched a different
	// Mii. Both records are returned.
	Collisions int
}

// Merge concatenates the valid records of dbs in argument and slot order,
// keeping only the first occurrence of each character. Two records are the
// same character when they share Mii ID, system ID and name, which happens
// when one Mii sits in both Wii tables or in two copies of a database.
// Nil databases are skipped.
func Merge(dbs ...*Database) []*record.Mii {
	out, _ := MergeWithStats(dbs...)
	return out
}

// MergeWithStats is Merge that also reports how many records were dropped
// and how many fingerprint collisions were seen.
func MergeWithStats(dbs ...*Database) ([]*record.Mii, MergeStats) {
	total := 0
	for _, db := range dbs {
		if db != nil {
			total += db.Len()
		}
	}

	tracker := collision.NewTracker()
	out := make([]*record.Mii, 0, total)

	for _, db := range dbs {
		if db == nil {
			continue
		}
		for _, m := range db.valid {
			if tracker.Track(m.Fingerprint(), m.ID) {
				out = append(out, m)
			}
		}
	}

	return out, MergeStats{
		Kept:       tracker.Count(),
		Duplicates: tracker.Duplicates(),
		Collisions: tracker.Collisions(),
	}
}
