// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "marvel/internal/delivery/context"
	"marvel/internal/domain/entity"
	domainerrors "marvel/internal/domain/errors"
	"marvel/internal/domain/repository"
	"marvel/internal/domain/service"
	"marvel/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// timingSalt is hashed against when the login email is unknown, so both
// branches pay for one hash computation.
const timingSalt = "unknown-account"

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	tokens   service.TokenIssuer
	logger   *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Tokens   service.TokenIssuer
	Logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		tokens:   params.Tokens,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates an account with an empty favorites set and a fresh token.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "signup")
	}

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		return nil, errors.Wrap(domainerrors.ErrEmailAlreadyUsed, "signup")
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to check email availability")
	}

	salt, err := srv.hasher.NewSalt()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed.WithDetails(err.Error()), "signup")
	}

	token, err := srv.tokens.Issue()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed.WithDetails(err.Error()), "signup")
	}

	user := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Salt:         salt,
		PasswordHash: srv.hasher.Hash(input.Password, salt),
		Token:        token,
		Favorites:    entity.NewFavoriteSet(),
	}

	// A concurrent signup may still win the race past the lookup above.
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, errors.Wrap(domainerrors.ErrEmailAlreadyUsed, "signup")
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User signed up", slog.String("userID", user.ID.String()))

	return &usecase.AuthOutput{User: user}, nil
}

// Login verifies the password and returns the stored token unchanged.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to load user")
		}
		srv.hasher.Hash(input.Password, timingSalt)
		srv.log(ctx).Warn("Login failed", slog.String("reason", "unknown email"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if !srv.hasher.Compare(input.Password, user.Salt, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed",
			slog.String("reason", "password mismatch"),
			slog.String("userID", user.ID.String()),
		)

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	srv.log(ctx).Debug("User logged in", slog.String("userID", user.ID.String()))

	return &usecase.AuthOutput{User: user}, nil
}
