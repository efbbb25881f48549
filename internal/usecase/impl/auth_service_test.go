package impl

import (
	"context"
	"testing"

	"marvel/internal/domain/entity"
	domainerrors "marvel/internal/domain/errors"
	"marvel/internal/domain/repository"
	mockRepo "marvel/internal/mocks/repository"
	mockSvc "marvel/internal/mocks/service"
	"marvel/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service  usecase.AuthUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
	tokens   *mockSvc.MockTokenIssuer
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenIssuer(t)

	service := NewAuthService(AuthServiceParams{
		UserRepo: userRepo,
		Hasher:   hasher,
		Tokens:   tokens,
		Logger:   newDiscardLogger(),
	})

	return authServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

func storedUser() *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Email:        "a@b.com",
		Salt:         "salt",
		PasswordHash: "hash",
		Token:        "T",
		Favorites:    entity.NewFavoriteSet(),
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@b.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().NewSalt().Return("salt", nil)
	fx.tokens.EXPECT().Issue().Return("T", nil)
	fx.hasher.EXPECT().Hash("pw", "salt").Return("hash")
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "a@b.com", user.Email)
			assert.Equal(t, "salt", user.Salt)
			assert.Equal(t, "hash", user.PasswordHash)
			assert.Equal(t, 0, user.Favorites.Len())
		}).
		Return(nil)

	out, err := fx.service.Signup(ctx, &usecase.SignupInput{Email: "a@b.com", Password: "pw"})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, out.User.ID)
	assert.Equal(t, "T", out.User.Token)
	assert.Equal(t, "a@b.com", out.User.Email)
}

func TestAuthService_Signup_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)

	for _, input := range []*usecase.SignupInput{
		{Email: "", Password: "pw"},
		{Email: "a@b.com", Password: ""},
		{},
	} {
		_, err := fx.service.Signup(context.Background(), input)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestAuthService_Signup_EmailAlreadyUsed(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@b.com").Return(storedUser(), nil)

	_, err := fx.service.Signup(ctx, &usecase.SignupInput{Email: "a@b.com", Password: "pw"})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyUsed)
}

func TestAuthService_Signup_LosesCreateRace(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@b.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().NewSalt().Return("salt", nil)
	fx.tokens.EXPECT().Issue().Return("T", nil)
	fx.hasher.EXPECT().Hash("pw", "salt").Return("hash")
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrEmailTaken)

	_, err := fx.service.Signup(ctx, &usecase.SignupInput{Email: "a@b.com", Password: "pw"})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyUsed)
}

func TestAuthService_Signup_TokenFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@b.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().NewSalt().Return("salt", nil)
	fx.tokens.EXPECT().Issue().Return("", errors.New("entropy exhausted"))

	_, err := fx.service.Signup(ctx, &usecase.SignupInput{Email: "a@b.com", Password: "pw"})
	assert.ErrorIs(t, err, domainerrors.ErrTokenIssueFailed)
}

func TestAuthService_Login_ReturnsStoredToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := storedUser()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@b.com").Return(user, nil)
	fx.hasher.EXPECT().Compare("pw", "salt", "hash").Return(true)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@b.com", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, user.ID, out.User.ID)
	assert.Equal(t, "T", out.User.Token)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@b.com").Return(storedUser(), nil)
	fx.hasher.EXPECT().Compare("bad", "salt", "hash").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@b.com", Password: "bad"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmailStillHashes(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@b.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("pw", timingSalt).Return("ignored").Once()

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@b.com", Password: "pw"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("down"), "failed to find user")

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@b.com").Return(nil, dbErr)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@b.com", Password: "pw"})
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
