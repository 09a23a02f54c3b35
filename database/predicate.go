package database

import (
	"github.com/arloliu/mii/format"
	"github.com/arloliu/mii/record"
)

// Predicate selects records. Match must not modify m.
type Predicate interface {
	Match(m *record.Mii) bool
}

// PredicateFunc adapts a function to Predicate.
type PredicateFunc func(m *record.Mii) bool

// Match calls f(m).
func (f PredicateFunc) Match(m *record.Mii) bool {
	return f(m)
}

// And matches when every predicate matches. And() matches everything.
func And(ps ...Predicate) Predicate {
	return PredicateFunc(func(m *record.Mii) bool {
		for _, p := range ps {
			if !p.Match(m) {
				return false
			}
		}

		return true
	})
}

// Or matches when any predicate matches. Or() matches nothing.
func Or(ps ...Predicate) Predicate {
	return PredicateFunc(func(m *record.Mii) bool {
		for _, p := range ps {
			if p.Match(m) {
				return true
			}
		}

		return false
	})
}

// Not inverts p.
func Not(p Predicate) Predicate {
	return PredicateFunc(func(m *record.Mii) bool {
		return !p.Match(m)
	})
}

func IsFavorite() Predicate {
	return PredicateFunc(func(m *record.Mii) bool {
		return m.IsFavorite()
	})
}

func IsSpecial() Predicate {
	return PredicateFunc(func(m *record.Mii) bool {
		return m.IsSpecial()
	})
}

func HasFavoriteColor(c format.FavoriteColor) Predicate {
	return PredicateFunc(func(m *record.Mii) bool {
		return m.FavoriteColor == c
	})
}

func HasGender(g format.Gender) Predicate {
	return PredicateFunc(func(m *record.Mii) bool {
		return m.Gender == g
	})
}

// Named matches records whose name equals name exactly.
func Named(name string) Predicate {
	return PredicateFunc(func(m *record.Mii) bool {
		return m.Name == name
	})
}

// CreatedBy matches records whose creator name equals name exactly.
// Wii Parade records carry no creator name and never match a non-empty name.
func CreatedBy(name string) Predicate {
	return PredicateFunc(func(m *record.Mii) bool {
		return m.CreatorName == name
	})
}
