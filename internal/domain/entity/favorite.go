package entity

import (
	"slices"
)

// FavoriteType is the kind of catalog item a favorite points to.
type FavoriteType string

const (
	FavoriteTypeCharacter FavoriteType = "character"
	FavoriteTypeComic     FavoriteType = "comic"
)

// IsValid reports whether t is one of the known catalog kinds.
func (t FavoriteType) IsValid() bool {
	return t == FavoriteTypeCharacter || t == FavoriteTypeComic
}

// Favorite references one catalog item. The pair is the set key.
type Favorite struct {
	Type FavoriteType
	ID   string // The catalog's own identifier for the item.
}

// FavoriteSet is a set of favorites keyed by (Type, ID).
// Items come back in insertion order; callers must not rely on it.
type FavoriteSet struct {
	items map[Favorite]uint64
	next  uint64
}

// NewFavoriteSet builds a set from favs, dropping duplicates.
func NewFavoriteSet(favs ...Favorite) *FavoriteSet {
	set := &FavoriteSet{items: make(map[Favorite]uint64, len(favs))}
	for _, fav := range favs {
		set.Add(fav)
	}

	return set
}

// Len returns the number of favorites.
func (s *FavoriteSet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.items)
}

// Contains reports whether fav is in the set.
func (s *FavoriteSet) Contains(fav Favorite) bool {
	if s == nil {
		return false
	}
	_, ok := s.items[fav]

	return ok
}

// Add inserts fav and reports whether it was absent.
func (s *FavoriteSet) Add(fav Favorite) bool {
	if s.items == nil {
		s.items = make(map[Favorite]uint64)
	}
	if _, ok := s.items[fav]; ok {
		return false
	}
	s.items[fav] = s.next
	s.next++

	return true
}

// Remove deletes fav and reports whether it was present.
func (s *FavoriteSet) Remove(fav Favorite) bool {
	if !s.Contains(fav) {
		return false
	}
	delete(s.items, fav)

	return true
}

// Toggle removes fav when present and adds it otherwise.
// It returns true when fav ends up in the set.
func (s *FavoriteSet) Toggle(fav Favorite) bool {
	if s.Remove(fav) {
		return false
	}
	s.Add(fav)

	return true
}

// Items returns the favorites in insertion order.
func (s *FavoriteSet) Items() []Favorite {
	if s.Len() == 0 {
		return []Favorite{}
	}

	items := make([]Favorite, 0, len(s.items))
	for fav := range s.items {
		items = append(items, fav)
	}
	slices.SortFunc(items, func(a, b Favorite) int {
		return compareSeq(s.items[a], s.items[b])
	})

	return items
}

// Clone returns an independent copy of the set.
func (s *FavoriteSet) Clone() *FavoriteSet {
	if s == nil {
		return NewFavoriteSet()
	}

	cloned := &FavoriteSet{items: make(map[Favorite]uint64, len(s.items)), next: s.next}
	for fav, seq := range s.items {
		cloned.items[fav] = seq
	}

	return cloned
}

func compareSeq(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
