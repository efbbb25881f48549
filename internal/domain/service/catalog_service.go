package service

import (
	"context"
	"encoding/json"
)

// CatalogQuery carries the pass-through parameters of a catalog listing.
// Empty fields are not forwarded.
type CatalogQuery struct {
	Limit  string
	Skip   string
	Filter string // Title for comics, name for characters.
}

// CatalogService proxies the third-party Marvel catalog.
// Bodies are returned untouched.
type CatalogService interface {
	ListComics(ctx context.Context, query CatalogQuery) (json.RawMessage, error)
	ListComicsByCharacter(ctx context.Context, characterID string) (json.RawMessage, error)
	GetComic(ctx context.Context, comicID string) (json.RawMessage, error)
	ListCharacters(ctx context.Context, query CatalogQuery) (json.RawMessage, error)
	GetCharacter(ctx context.Context, characterID string) (json.RawMessage, error)
}
