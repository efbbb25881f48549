package impl

import (
	"context"
	"encoding/json"
	"testing"

	domainerrors "marvel/internal/domain/errors"
	"marvel/internal/domain/service"
	mockSvc "marvel/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_PassesBodyThrough(t *testing.T) {
	catalog := mockSvc.NewMockCatalogService(t)
	srv := NewCatalogService(CatalogServiceParams{Catalog: catalog, Logger: newDiscardLogger()})
	ctx := context.Background()
	query := service.CatalogQuery{Limit: "10"}

	catalog.EXPECT().ListComics(ctx, query).Return(json.RawMessage(`{"count":0}`), nil)

	body, err := srv.ListComics(ctx, query)
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":0}`, string(body))
}

func TestCatalogService_UpstreamFailureMessages(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name    string
		setup   func(m *mockSvc.MockCatalogService)
		call    func(srv *catalogService) error
		message string
	}{
		{
			name: "comics",
			setup: func(m *mockSvc.MockCatalogService) {
				m.EXPECT().ListComics(context.Background(), service.CatalogQuery{}).Return(nil, boom)
			},
			call: func(srv *catalogService) error {
				_, err := srv.ListComics(context.Background(), service.CatalogQuery{})
				return err
			},
			message: msgComicsFailed,
		},
		{
			name: "character comics",
			setup: func(m *mockSvc.MockCatalogService) {
				m.EXPECT().ListComicsByCharacter(context.Background(), "42").Return(nil, boom)
			},
			call: func(srv *catalogService) error {
				_, err := srv.ListComicsByCharacter(context.Background(), "42")
				return err
			},
			message: msgCharacterComicsFailed,
		},
		{
			name: "comic",
			setup: func(m *mockSvc.MockCatalogService) {
				m.EXPECT().GetComic(context.Background(), "7").Return(nil, boom)
			},
			call: func(srv *catalogService) error {
				_, err := srv.GetComic(context.Background(), "7")
				return err
			},
			message: msgComicFailed,
		},
		{
			name: "characters",
			setup: func(m *mockSvc.MockCatalogService) {
				m.EXPECT().ListCharacters(context.Background(), service.CatalogQuery{}).Return(nil, boom)
			},
			call: func(srv *catalogService) error {
				_, err := srv.ListCharacters(context.Background(), service.CatalogQuery{})
				return err
			},
			message: msgCharactersFailed,
		},
		{
			name: "character",
			setup: func(m *mockSvc.MockCatalogService) {
				m.EXPECT().GetCharacter(context.Background(), "9").Return(nil, boom)
			},
			call: func(srv *catalogService) error {
				_, err := srv.GetCharacter(context.Background(), "9")
				return err
			},
			message: msgCharacterFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := mockSvc.NewMockCatalogService(t)
			tt.setup(catalog)
			srv := &catalogService{catalog: catalog, logger: newDiscardLogger()}

			err := tt.call(srv)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.ErrorIs(t, err, domainerrors.ErrUpstream)
			assert.Equal(t, tt.message, appErr.Message())
		})
	}
}
