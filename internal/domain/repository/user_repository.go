// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"marvel/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup key.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned by Create when the email already belongs to a user.
	ErrEmailTaken = errors.New("email already taken")

	// ErrVersionConflict is returned by UpdateFavorites when the stored version
	// no longer matches the one the caller read.
	ErrVersionConflict = errors.New("user version conflict")
)

// UserRepository defines the persistence operations on users.
// Returned users always carry a non-nil FavoriteSet and are owned by the caller.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByToken retrieves the user whose current token equals token.
	FindByToken(ctx context.Context, token string) (*entity.User, error)

	// Create persists a new user. Email uniqueness is enforced atomically.
	Create(ctx context.Context, user *entity.User) error

	// UpdateFavorites replaces the user's favorites if the stored version still
	// equals user.Version, then bumps user.Version. Otherwise ErrVersionConflict.
	UpdateFavorites(ctx context.Context, user *entity.User) error
}
