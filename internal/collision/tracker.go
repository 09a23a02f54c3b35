// Package collision detects duplicate Miis when records from several tables
// or databases are merged.
package collision

import "slices"

// Tracker remembers the fingerprints it has seen together with the Mii IDs
// recorded under each. A repeated fingerprint with a known Mii ID is a
// duplicate; a repeated fingerprint with a new Mii ID is a hash collision,
// and both records are kept.
type Tracker struct {
	seen       map[uint64][]uint32 // fingerprint → Mii IDs
	records    int
	duplicates int
	collisions int
}

// NewTracker creates a new tracker.
func NewTracker() *Tracker {
	return &Tracker{
		seen: make(map[uint64][]uint32),
	}
}

// Track records a Mii and reports whether it is new and should be kept.
func (t *Tracker) Track(fingerprint uint64, miiID uint32) bool {
	ids, exists := t.seen[fingerprint]
	if slices.Contains(ids, miiID) {
		t.duplicates++
		return false
	}

	if exists {
		t.collisions++
	}
	t.seen[fingerprint] = append(ids, miiID)
	t.records++

	return true
}

// Duplicates returns the number of records rejected as duplicates.
func (t *Tracker) Duplicates() int {
	return t.duplicates
}

// Collisions returns the number of kept records whose fingerprint was already
// taken by a different Mii.
func (t *Tracker) Collisions() int {
	return t.collisions
}

// Count returns the number of distinct records kept.
func (t *Tracker) Count() int {
	return t.records
}
