// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marvel/internal/delivery/http/middleware"
	"marvel/internal/delivery/http/router/handler"
	domainerrors "marvel/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	FavoriteHandler *handler.FavoriteHandler
	CatalogHandler  *handler.CatalogHandler
	RateLimit       *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	favoriteHandler *handler.FavoriteHandler
	catalogHandler  *handler.CatalogHandler
	rateLimit       *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		favoriteHandler: params.FavoriteHandler,
		catalogHandler:  params.CatalogHandler,
		rateLimit:       params.RateLimit,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Welcome)
	e.GET("/health", handler.HealthCheck)

	// Auth routes, limited per client IP
	e.POST("/signup", r.authHandler.Signup, r.rateLimit.Limit)
	e.POST("/login", r.authHandler.Login, r.rateLimit.Limit)

	// Favorites routes, authenticated by the token they carry
	favoritesGroup := e.Group("/favorites")
	{
		favoritesGroup.GET("", r.favoriteHandler.List)
		favoritesGroup.POST("", r.favoriteHandler.Toggle)
		favoritesGroup.POST("/add", r.favoriteHandler.Add)
		favoritesGroup.DELETE("/remove", r.favoriteHandler.Remove)
	}

	// Catalog passthrough
	e.GET("/comics", r.catalogHandler.ListComics)
	e.GET("/comics/:characterId", r.catalogHandler.ListComicsByCharacter)
	e.GET("/comic/:comicId", r.catalogHandler.GetComic)
	e.GET("/characters", r.catalogHandler.ListCharacters)
	e.GET("/character/:characterId", r.catalogHandler.GetCharacter)

	// Everything else
	e.RouteNotFound("/*", func(echo.Context) error {
		return domainerrors.ErrRouteNotFound
	})
}
