package usecase

import (
	"context"
	"encoding/json"

	"marvel/internal/domain/service"
)

// CatalogUsecase exposes the catalog passthrough. Upstream failures come back
// as upstream errors carrying a route-specific message.
type CatalogUsecase interface {
	ListComics(ctx context.Context, query service.CatalogQuery) (json.RawMessage, error)
	ListComicsByCharacter(ctx context.Context, characterID string) (json.RawMessage, error)
	GetComic(ctx context.Context, comicID string) (json.RawMessage, error)
	ListCharacters(ctx context.Context, query service.CatalogQuery) (json.RawMessage, error)
	GetCharacter(ctx context.Context, characterID string) (json.RawMessage, error)
}
