package impl

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"marvel/config"
	"marvel/internal/domain/entity"
	domainerrors "marvel/internal/domain/errors"
	"marvel/internal/domain/repository"
	"marvel/internal/infra/persistence/memory"
	mockRepo "marvel/internal/mocks/repository"
	"marvel/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var spiderMan = entity.Favorite{Type: entity.FavoriteTypeCharacter, ID: "1009610"}

// favoriteServiceFixtures holds all test dependencies for favorite service tests.
type favoriteServiceFixtures struct {
	service   usecase.FavoriteUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	userRepo  *mockRepo.MockUserRepository
}

func favoritesTestConfig(maxRetries uint64) *config.Config {
	return &config.Config{
		Favorites: &config.FavoritesConfig{MaxRetries: maxRetries, RetryBaseDelay: time.Millisecond},
	}
}

func createTestFavoriteService(t *testing.T) favoriteServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewFavoriteService(FavoriteServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Config:    favoritesTestConfig(3),
		Logger:    newDiscardLogger(),
	})

	return favoriteServiceFixtures{
		service:   service,
		txManager: txManager,
		factory:   factory,
		userRepo:  userRepo,
	}
}

// runInTx makes the transaction manager invoke its callback with the mock factory.
func (fx favoriteServiceFixtures) runInTx() {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
	fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo)
}

func userWith(favs ...entity.Favorite) func(context.Context, string) (*entity.User, error) {
	return func(context.Context, string) (*entity.User, error) {
		return &entity.User{ID: uuid.New(), Token: "T", Favorites: entity.NewFavoriteSet(favs...)}, nil
	}
}

func TestFavoriteService_Toggle_AddsThenRemoves(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	fx.runInTx()

	fx.userRepo.EXPECT().FindByToken(mock.Anything, "T").RunAndReturn(userWith()).Once()
	fx.userRepo.EXPECT().UpdateFavorites(mock.Anything, mock.Anything).Return(nil).Once()

	out, err := fx.service.Toggle(ctx, &usecase.FavoriteInput{Token: "T", Favorite: spiderMan})
	require.NoError(t, err)
	assert.Equal(t, []entity.Favorite{spiderMan}, out.Favorites)

	fx.userRepo.EXPECT().FindByToken(mock.Anything, "T").RunAndReturn(userWith(spiderMan)).Once()
	fx.userRepo.EXPECT().UpdateFavorites(mock.Anything, mock.Anything).Return(nil).Once()

	out, err = fx.service.Toggle(ctx, &usecase.FavoriteInput{Token: "T", Favorite: spiderMan})
	require.NoError(t, err)
	assert.Empty(t, out.Favorites)
}

func TestFavoriteService_Add_AlreadyPresentIsNotWritten(t *testing.T) {
	fx := createTestFavoriteService(t)
	fx.runInTx()

	fx.userRepo.EXPECT().FindByToken(mock.Anything, "T").RunAndReturn(userWith(spiderMan)).Once()

	_, err := fx.service.Add(context.Background(), &usecase.FavoriteInput{Token: "T", Favorite: spiderMan})
	assert.ErrorIs(t, err, domainerrors.ErrFavoriteAlreadyExists)
	fx.userRepo.AssertNotCalled(t, "UpdateFavorites", mock.Anything, mock.Anything)
}

func TestFavoriteService_Remove_Absent(t *testing.T) {
	fx := createTestFavoriteService(t)
	fx.runInTx()

	fx.userRepo.EXPECT().FindByToken(mock.Anything, "T").RunAndReturn(userWith()).Once()

	_, err := fx.service.Remove(context.Background(), &usecase.FavoriteInput{Token: "T", Favorite: spiderMan})
	assert.ErrorIs(t, err, domainerrors.ErrFavoriteNotFound)
}

func TestFavoriteService_UnknownToken(t *testing.T) {
	fx := createTestFavoriteService(t)
	fx.runInTx()

	fx.userRepo.EXPECT().FindByToken(mock.Anything, "nope").Return(nil, repository.ErrUserNotFound).Once()

	_, err := fx.service.Add(context.Background(), &usecase.FavoriteInput{Token: "nope", Favorite: spiderMan})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestFavoriteService_InvalidFavorite(t *testing.T) {
	fx := createTestFavoriteService(t)
	fx.runInTx()

	fx.userRepo.EXPECT().FindByToken(mock.Anything, "T").RunAndReturn(userWith()).Times(2)

	for _, fav := range []entity.Favorite{
		{Type: "series", ID: "1"},
		{Type: entity.FavoriteTypeComic, ID: ""},
	} {
		_, err := fx.service.Toggle(context.Background(), &usecase.FavoriteInput{Token: "T", Favorite: fav})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidFavorite)
	}
	fx.userRepo.AssertNotCalled(t, "UpdateFavorites", mock.Anything, mock.Anything)
}

func TestFavoriteService_UnknownTokenWinsOverInvalidFavorite(t *testing.T) {
	fx := createTestFavoriteService(t)
	fx.runInTx()

	fx.userRepo.EXPECT().FindByToken(mock.Anything, "nope").Return(nil, repository.ErrUserNotFound).Once()

	_, err := fx.service.Add(context.Background(), &usecase.FavoriteInput{
		Token:    "nope",
		Favorite: entity.Favorite{Type: "series", ID: "1"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestFavoriteService_RetriesOnVersionConflict(t *testing.T) {
	fx := createTestFavoriteService(t)
	fx.runInTx()

	fx.userRepo.EXPECT().FindByToken(mock.Anything, "T").RunAndReturn(userWith()).Times(2)
	fx.userRepo.EXPECT().UpdateFavorites(mock.Anything, mock.Anything).Return(repository.ErrVersionConflict).Once()
	fx.userRepo.EXPECT().UpdateFavorites(mock.Anything, mock.Anything).Return(nil).Once()

	out, err := fx.service.Add(context.Background(), &usecase.FavoriteInput{Token: "T", Favorite: spiderMan})
	require.NoError(t, err)
	assert.Equal(t, []entity.Favorite{spiderMan}, out.Favorites)
}

func TestFavoriteService_GivesUpAfterMaxRetries(t *testing.T) {
	fx := createTestFavoriteService(t)
	fx.runInTx()

	// One initial attempt plus three retries.
	fx.userRepo.EXPECT().FindByToken(mock.Anything, "T").RunAndReturn(userWith()).Times(4)
	fx.userRepo.EXPECT().UpdateFavorites(mock.Anything, mock.Anything).Return(repository.ErrVersionConflict).Times(4)

	_, err := fx.service.Toggle(context.Background(), &usecase.FavoriteInput{Token: "T", Favorite: spiderMan})
	assert.ErrorIs(t, err, domainerrors.ErrConcurrentUpdate)
}

func TestFavoriteService_List(t *testing.T) {
	fx := createTestFavoriteService(t)

	fx.userRepo.EXPECT().FindByToken(mock.Anything, "T").RunAndReturn(userWith(spiderMan))

	out, err := fx.service.List(context.Background(), "T")
	require.NoError(t, err)
	assert.Equal(t, []entity.Favorite{spiderMan}, out.Favorites)
}

func TestFavoriteService_List_UnknownToken(t *testing.T) {
	fx := createTestFavoriteService(t)

	fx.userRepo.EXPECT().FindByToken(mock.Anything, "").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.List(context.Background(), "")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

// newMemoryFavoriteService wires the service to a real in-memory store holding one user.
func newMemoryFavoriteService(t *testing.T) (usecase.FavoriteUsecase, string) {
	t.Helper()

	store := memory.NewStore()
	user := &entity.User{ID: uuid.New(), Email: "a@b.com", Token: "T", Favorites: entity.NewFavoriteSet()}
	require.NoError(t, store.Create(context.Background(), user))

	service := NewFavoriteService(FavoriteServiceParams{
		TxManager: memory.NewTransactionManager(store),
		UserRepo:  memory.NewUserRepository(store),
		Config:    favoritesTestConfig(200),
		Logger:    newDiscardLogger(),
	})

	return service, user.Token
}

func TestFavoriteService_ConcurrentAddsAreAllKept(t *testing.T) {
	service, token := newMemoryFavoriteService(t)
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fav := entity.Favorite{Type: entity.FavoriteTypeComic, ID: fmt.Sprintf("%d", i)}
			_, err := service.Add(ctx, &usecase.FavoriteInput{Token: token, Favorite: fav})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	out, err := service.List(ctx, token)
	require.NoError(t, err)
	assert.Len(t, out.Favorites, workers)
}

func TestFavoriteService_ConcurrentTogglesCancelOut(t *testing.T) {
	service, token := newMemoryFavoriteService(t)
	ctx := context.Background()

	const workers = 10
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.Toggle(ctx, &usecase.FavoriteInput{Token: token, Favorite: spiderMan})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	out, err := service.List(ctx, token)
	require.NoError(t, err)
	assert.Empty(t, out.Favorites)
}

func TestFavoriteService_ScenarioAgainstMemoryStore(t *testing.T) {
	service, token := newMemoryFavoriteService(t)
	ctx := context.Background()
	input := &usecase.FavoriteInput{Token: token, Favorite: spiderMan}

	out, err := service.Add(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, []entity.Favorite{spiderMan}, out.Favorites)

	_, err = service.Add(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrFavoriteAlreadyExists)

	out, err = service.Toggle(ctx, input)
	require.NoError(t, err)
	assert.Empty(t, out.Favorites)

	_, err = service.Remove(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrFavoriteNotFound)
}
