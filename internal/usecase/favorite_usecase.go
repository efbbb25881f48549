package usecase

import (
	"context"

	"marvel/internal/domain/entity"
)

// FavoriteInput identifies the caller by token and the favorite to act on.
type FavoriteInput struct {
	Token    string
	Favorite entity.Favorite
}

// FavoritesOutput is the caller's full favorites set after the operation.
type FavoritesOutput struct {
	Favorites []entity.Favorite
}

// FavoriteUsecase mutates and reads the favorites set of the token holder.
// An unknown token fails every operation with a user-not-found error.
type FavoriteUsecase interface {
	// Toggle removes the favorite when present and adds it otherwise.
	Toggle(ctx context.Context, input *FavoriteInput) (*FavoritesOutput, error)

	// Add fails with a conflict when the favorite is already present.
	Add(ctx context.Context, input *FavoriteInput) (*FavoritesOutput, error)

	// Remove fails with not-found when the favorite is absent.
	Remove(ctx context.Context, input *FavoriteInput) (*FavoritesOutput, error)

	List(ctx context.Context, token string) (*FavoritesOutput, error)
}
