package mongo

import (
	"testing"
	"time"

	"marvel/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestUserDocument_RoundTripsThroughBSON(t *testing.T) {
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "peter@parker.com",
		Salt:         "salt",
		PasswordHash: "hash",
		Token:        "tok",
		Version:      7,
		Favorites: entity.NewFavoriteSet(
			entity.Favorite{Type: entity.FavoriteTypeComic, ID: "12"},
			entity.Favorite{Type: entity.FavoriteTypeCharacter, ID: "1009610"},
		),
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	raw, err := bson.Marshal(fromUserDomain(user))
	require.NoError(t, err)

	var doc userDocument
	require.NoError(t, bson.Unmarshal(raw, &doc))

	got, err := toUserDomain(&doc)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.PasswordHash, got.PasswordHash)
	assert.Equal(t, user.Version, got.Version)
	assert.Equal(t, user.Favorites.Items(), got.Favorites.Items())
	assert.True(t, user.CreatedAt.Equal(got.CreatedAt))
}

func TestUserDocument_FieldNames(t *testing.T) {
	doc := fromUserDomain(&entity.User{
		ID:        uuid.New(),
		Favorites: entity.NewFavoriteSet(entity.Favorite{Type: entity.FavoriteTypeComic, ID: "1"}),
	})

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var m bson.M
	require.NoError(t, bson.Unmarshal(raw, &m))
	for _, key := range []string{"_id", "email", "salt", "hash", "token", "version", "favorites"} {
		assert.Contains(t, m, key)
	}

	favType, err := bson.Raw(raw).LookupErr("favorites", "0", "favoriteType")
	require.NoError(t, err)
	assert.Equal(t, "comic", favType.StringValue())
	favID, err := bson.Raw(raw).LookupErr("favorites", "0", "favoriteId")
	require.NoError(t, err)
	assert.Equal(t, "1", favID.StringValue())
}

func TestToUserDomain_InvalidID(t *testing.T) {
	_, err := toUserDomain(&userDocument{ID: "not-a-uuid"})
	assert.Error(t, err)
}

func TestFromFavoritesDomain_EmptyIsNotNil(t *testing.T) {
	docs := fromFavoritesDomain(entity.NewFavoriteSet())
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}
