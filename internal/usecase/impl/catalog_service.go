package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "marvel/internal/delivery/context"
	domainerrors "marvel/internal/domain/errors"
	"marvel/internal/domain/service"
	"marvel/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// User-facing messages of each catalog route failure.
const (
	msgComicsFailed          = "Erreur lors de la récupération des comics."
	msgCharacterComicsFailed = "Erreur lors de la récupération des comics pour ce personnage."
	msgComicFailed           = "Erreur lors de la récupération du comic spécifié."
	msgCharactersFailed      = "Erreur lors de la récupération des personnages."
	msgCharacterFailed       = "Erreur lors de la récupération du personnage spécifié."
)

type catalogService struct {
	catalog service.CatalogService
	logger  *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Catalog service.CatalogService
	Logger  *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{catalog: params.Catalog, logger: params.Logger}
}

func (srv *catalogService) ListComics(ctx context.Context, query service.CatalogQuery) (json.RawMessage, error) {
	body, err := srv.catalog.ListComics(ctx, query)

	return srv.result(ctx, "list comics", msgComicsFailed, body, err)
}

func (srv *catalogService) ListComicsByCharacter(ctx context.Context, characterID string) (json.RawMessage, error) {
	body, err := srv.catalog.ListComicsByCharacter(ctx, characterID)

	return srv.result(ctx, "list character comics", msgCharacterComicsFailed, body, err)
}

func (srv *catalogService) GetComic(ctx context.Context, comicID string) (json.RawMessage, error) {
	body, err := srv.catalog.GetComic(ctx, comicID)

	return srv.result(ctx, "get comic", msgComicFailed, body, err)
}

func (srv *catalogService) ListCharacters(ctx context.Context, query service.CatalogQuery) (json.RawMessage, error) {
	body, err := srv.catalog.ListCharacters(ctx, query)

	return srv.result(ctx, "list characters", msgCharactersFailed, body, err)
}

func (srv *catalogService) GetCharacter(ctx context.Context, characterID string) (json.RawMessage, error) {
	body, err := srv.catalog.GetCharacter(ctx, characterID)

	return srv.result(ctx, "get character", msgCharacterFailed, body, err)
}

func (srv *catalogService) result(ctx context.Context, op, message string, body json.RawMessage, err error) (json.RawMessage, error) {
	if err == nil {
		return body, nil
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Catalog call failed",
		slog.String("op", op),
		slog.Any("error", err),
	)

	return nil, errors.Wrap(domainerrors.ErrUpstream.WithMessage(message), op)
}
