package impl

import (
	"context"
	"log/slog"
	"time"

	"marvel/config"
	deliverycontext "marvel/internal/delivery/context"
	"marvel/internal/domain/entity"
	domainerrors "marvel/internal/domain/errors"
	"marvel/internal/domain/repository"
	"marvel/internal/usecase"

	"github.com/pkg/errors"
	"github.com/sethvargo/go-retry"
	"go.uber.org/fx"
)

const (
	defaultFavoritesMaxRetries = 10
	defaultFavoritesRetryDelay = 5 * time.Millisecond
	favoritesRetryJitterPct    = 50
)

// favoriteMutation changes set in place or returns a business error that aborts the write.
type favoriteMutation func(set *entity.FavoriteSet, fav entity.Favorite) error

// favoriteService implements the FavoriteUsecase interface.
// Each mutation reads the user, applies the change and writes it back with a
// version check; lost races are retried with jittered exponential backoff.
type favoriteService struct {
	txManager  repository.TransactionManager
	userRepo   repository.UserRepository
	maxRetries uint64
	baseDelay  time.Duration
	logger     *slog.Logger
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	srv := &favoriteService{
		txManager:  params.TxManager,
		userRepo:   params.UserRepo,
		maxRetries: defaultFavoritesMaxRetries,
		baseDelay:  defaultFavoritesRetryDelay,
		logger:     params.Logger,
	}
	if params.Config != nil && params.Config.Favorites != nil {
		if params.Config.Favorites.MaxRetries > 0 {
			srv.maxRetries = params.Config.Favorites.MaxRetries
		}
		if params.Config.Favorites.RetryBaseDelay > 0 {
			srv.baseDelay = params.Config.Favorites.RetryBaseDelay
		}
	}

	return srv
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Toggle removes the favorite when present and adds it otherwise.
func (srv *favoriteService) Toggle(ctx context.Context, input *usecase.FavoriteInput) (*usecase.FavoritesOutput, error) {
	return srv.mutate(ctx, "toggle", input, func(set *entity.FavoriteSet, fav entity.Favorite) error {
		set.Toggle(fav)

		return nil
	})
}

// Add inserts the favorite, failing when it is already present.
func (srv *favoriteService) Add(ctx context.Context, input *usecase.FavoriteInput) (*usecase.FavoritesOutput, error) {
	return srv.mutate(ctx, "add", input, func(set *entity.FavoriteSet, fav entity.Favorite) error {
		if !set.Add(fav) {
			return domainerrors.ErrFavoriteAlreadyExists
		}

		return nil
	})
}

// Remove deletes the favorite, failing when it is absent.
func (srv *favoriteService) Remove(ctx context.Context, input *usecase.FavoriteInput) (*usecase.FavoritesOutput, error) {
	return srv.mutate(ctx, "remove", input, func(set *entity.FavoriteSet, fav entity.Favorite) error {
		if !set.Remove(fav) {
			return domainerrors.ErrFavoriteNotFound
		}

		return nil
	})
}

// List returns the current favorites of the token holder.
func (srv *favoriteService) List(ctx context.Context, token string) (*usecase.FavoritesOutput, error) {
	user, err := srv.userRepo.FindByToken(ctx, token)
	if err != nil {
		return nil, userLookupError(err)
	}

	return &usecase.FavoritesOutput{Favorites: user.Favorites.Items()}, nil
}

func (srv *favoriteService) mutate(ctx context.Context, op string, input *usecase.FavoriteInput, apply favoriteMutation) (*usecase.FavoritesOutput, error) {
	var (
		result   []entity.Favorite
		attempts int
	)
	backoff := retry.WithMaxRetries(srv.maxRetries,
		retry.WithJitterPercent(favoritesRetryJitterPct, retry.NewExponential(srv.baseDelay)))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempts++
		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			userRepo := repoFactory.NewUserRepository()

			// The token is resolved first so an unknown caller always gets user-not-found.
			user, err := userRepo.FindByToken(ctx, input.Token)
			if err != nil {
				return userLookupError(err)
			}
			if !input.Favorite.Type.IsValid() || input.Favorite.ID == "" {
				return domainerrors.ErrInvalidFavorite
			}
			if err := apply(user.Favorites, input.Favorite); err != nil {
				return err
			}
			if err := userRepo.UpdateFavorites(ctx, user); err != nil {
				return err
			}
			result = user.Favorites.Items()

			return nil
		})
		if errors.Is(err, repository.ErrVersionConflict) {
			return retry.RetryableError(err)
		}

		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			srv.log(ctx).Warn("Favorites update gave up after concurrent writes",
				slog.String("op", op),
				slog.Int("attempts", attempts),
			)

			return nil, errors.Wrap(domainerrors.ErrConcurrentUpdate, op)
		}

		return nil, errors.Wrapf(err, "%s favorite", op)
	}

	srv.log(ctx).Debug("Favorites updated",
		slog.String("op", op),
		slog.String("favoriteType", string(input.Favorite.Type)),
		slog.String("favoriteId", input.Favorite.ID),
		slog.Int("attempts", attempts),
	)

	return &usecase.FavoritesOutput{Favorites: result}, nil
}

func userLookupError(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}

	return errors.Wrap(err, "failed to resolve token")
}
