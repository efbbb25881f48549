package handler

import (
	"log/slog"
	"net/http"

	"marvel/internal/delivery/http/response"
	"marvel/internal/domain/service"
	"marvel/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler relays catalog documents verbatim.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListComics handles GET /comics?limit=&skip=&title=.
func (h *CatalogHandler) ListComics(c echo.Context) error {
	body, err := h.catalogUC.ListComics(c.Request().Context(), catalogQuery(c, "title"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Raw(c, http.StatusOK, body)
}

// ListComicsByCharacter handles GET /comics/:characterId.
func (h *CatalogHandler) ListComicsByCharacter(c echo.Context) error {
	body, err := h.catalogUC.ListComicsByCharacter(c.Request().Context(), c.Param("characterId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Raw(c, http.StatusOK, body)
}

// GetComic handles GET /comic/:comicId.
func (h *CatalogHandler) GetComic(c echo.Context) error {
	body, err := h.catalogUC.GetComic(c.Request().Context(), c.Param("comicId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Raw(c, http.StatusOK, body)
}

// ListCharacters handles GET /characters?limit=&skip=&name=.
func (h *CatalogHandler) ListCharacters(c echo.Context) error {
	body, err := h.catalogUC.ListCharacters(c.Request().Context(), catalogQuery(c, "name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Raw(c, http.StatusOK, body)
}

// GetCharacter handles GET /character/:characterId.
func (h *CatalogHandler) GetCharacter(c echo.Context) error {
	body, err := h.catalogUC.GetCharacter(c.Request().Context(), c.Param("characterId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Raw(c, http.StatusOK, body)
}

func catalogQuery(c echo.Context, filterParam string) service.CatalogQuery {
	return service.CatalogQuery{
		Limit:  c.QueryParam("limit"),
		Skip:   c.QueryParam("skip"),
		Filter: c.QueryParam(filterParam),
	}
}
