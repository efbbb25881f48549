// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the only persisted entity: an account with its credentials, its
// current session token and its favorites.
type User struct {
	ID           uuid.UUID    // Assigned at creation, never changes.
	Email        string       // Unique login identifier, compared case-sensitively.
	Salt         string       // Per-user random salt, never exposed to clients.
	PasswordHash string       // Derived from Salt and the plaintext password, never exposed.
	Token        string       // Current opaque bearer token.
	Favorites    *FavoriteSet // Never nil on users returned by a repository.
	Version      int64        // Incremented on every favorites write; used for compare-and-swap.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Clone returns a deep copy so callers can mutate favorites without touching shared state.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}

	cloned := *u
	cloned.Favorites = u.Favorites.Clone()

	return &cloned
}
