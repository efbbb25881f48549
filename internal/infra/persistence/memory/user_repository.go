// Package memory is a process-local credential store for development and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"marvel/internal/domain/entity"
	"marvel/internal/domain/repository"

	"github.com/google/uuid"
)

// Store holds users in memory. Values are copied on the way in and out.
type Store struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*entity.User
	byEmail map[string]uuid.UUID
	byToken map[string]uuid.UUID
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		byID:    make(map[uuid.UUID]*entity.User),
		byEmail: make(map[string]uuid.UUID),
		byToken: make(map[string]uuid.UUID),
	}
}

// NewUserRepository exposes the store as a UserRepository.
func NewUserRepository(store *Store) repository.UserRepository {
	return store
}

func (s *Store) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lookup(id, true)
}

func (s *Store) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]

	return s.lookup(id, ok)
}

func (s *Store) FindByToken(_ context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, repository.ErrUserNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byToken[token]

	return s.lookup(id, ok)
}

func (s *Store) lookup(id uuid.UUID, ok bool) (*entity.User, error) {
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	user, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user.Clone(), nil
}

func (s *Store) Create(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byEmail[user.Email]; taken {
		return repository.ErrEmailTaken
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Favorites == nil {
		user.Favorites = entity.NewFavoriteSet()
	}

	s.byID[user.ID] = user.Clone()
	s.byEmail[user.Email] = user.ID
	s.byToken[user.Token] = user.ID

	return nil
}

func (s *Store) UpdateFavorites(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.byID[user.ID]
	if !ok {
		return repository.ErrUserNotFound
	}
	if stored.Version != user.Version {
		return repository.ErrVersionConflict
	}

	user.Version++
	user.UpdatedAt = time.Now()
	stored.Favorites = user.Favorites.Clone()
	stored.Version = user.Version
	stored.UpdatedAt = user.UpdatedAt

	return nil
}
