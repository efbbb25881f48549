package handler

import (
	"context"
	"log/slog"
	"net/http"

	"marvel/internal/delivery/http/response"
	"marvel/internal/domain/entity"
	domainerrors "marvel/internal/domain/errors"
	"marvel/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// FavoriteHandler serves the favorites endpoints. The caller is identified by
// the token in the body, or in the query string for GET.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler.
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

// FavoriteRequest represents the body of the mutating favorites endpoints.
// The favorite is checked only once the token resolved to a user, so an
// unknown or missing token always answers user-not-found.
type FavoriteRequest struct {
	Token        string `json:"token"`
	FavoriteType string `json:"favoriteType"`
	FavoriteID   string `json:"favoriteId"`
}

// FavoriteResponse is one element of the favorites array.
type FavoriteResponse struct {
	FavoriteType string `json:"favoriteType"`
	FavoriteID   string `json:"favoriteId"`
}

// Toggle handles POST /favorites.
func (h *FavoriteHandler) Toggle(c echo.Context) error {
	return h.mutate(c, h.favoriteUC.Toggle)
}

// Add handles POST /favorites/add.
func (h *FavoriteHandler) Add(c echo.Context) error {
	return h.mutate(c, h.favoriteUC.Add)
}

// Remove handles DELETE /favorites/remove.
func (h *FavoriteHandler) Remove(c echo.Context) error {
	return h.mutate(c, h.favoriteUC.Remove)
}

// List handles GET /favorites?token=.
func (h *FavoriteHandler) List(c echo.Context) error {
	output, err := h.favoriteUC.List(c.Request().Context(), c.QueryParam("token"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toFavoritesResponse(output.Favorites))
}

type favoriteMutation func(ctx context.Context, input *usecase.FavoriteInput) (*usecase.FavoritesOutput, error)

func (h *FavoriteHandler) mutate(c echo.Context, op favoriteMutation) error {
	var req FavoriteRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidFavorite.WithDetails("invalid request body")
	}

	output, err := op(c.Request().Context(), &usecase.FavoriteInput{
		Token: req.Token,
		Favorite: entity.Favorite{
			Type: entity.FavoriteType(req.FavoriteType),
			ID:   req.FavoriteID,
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toFavoritesResponse(output.Favorites))
}

func toFavoritesResponse(favorites []entity.Favorite) []FavoriteResponse {
	out := make([]FavoriteResponse, 0, len(favorites))
	for _, fav := range favorites {
		out = append(out, FavoriteResponse{
			FavoriteType: string(fav.Type),
			FavoriteID:   fav.ID,
		})
	}

	return out
}
