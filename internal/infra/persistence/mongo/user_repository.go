package mongo

import (
	"context"
	"strings"
	"time"

	"marvel/internal/domain/entity"
	domainerrors "marvel/internal/domain/errors"
	"marvel/internal/domain/repository"
	"marvel/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type userDocument struct {
	ID        string             `bson:"_id"`
	Email     string             `bson:"email"`
	Salt      string             `bson:"salt"`
	Hash      string             `bson:"hash"`
	Token     string             `bson:"token"`
	Version   int64              `bson:"version"`
	Favorites []favoriteDocument `bson:"favorites"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

type favoriteDocument struct {
	Type string `bson:"favoriteType"`
	ID   string `bson:"favoriteId"`
}

type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository returns a UserRepository over the users collection.
func NewUserRepository(coll *mongo.Collection) repository.UserRepository {
	return &userRepository{coll: coll}
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (repo *userRepository) FindByToken(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, repository.ErrUserNotFound
	}

	return repo.findOne(ctx, bson.D{{Key: "token", Value: token}})
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.D) (*entity.User, error) {
	var doc userDocument
	if err := repo.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return toUserDomain(&doc)
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := repo.coll.InsertOne(ctx, fromUserDomain(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			if strings.Contains(err.Error(), tokenIndexName) {
				return domainerrors.ErrUserCreationFailed.WrapMessage("duplicate token")
			}

			return repository.ErrEmailTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return nil
}

// UpdateFavorites matches on both _id and version so a concurrent writer
// makes the update a no-op.
func (repo *userRepository) UpdateFavorites(ctx context.Context, user *entity.User) error {
	now := time.Now().UTC()
	filter := bson.D{
		{Key: "_id", Value: user.ID.String()},
		{Key: "version", Value: user.Version},
	}
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "favorites", Value: fromFavoritesDomain(user.Favorites)},
			{Key: "updatedAt", Value: now},
		}},
		{Key: "$inc", Value: bson.D{{Key: "version", Value: 1}}},
	}

	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update favorites")
	}
	if res.MatchedCount == 0 {
		return repository.ErrVersionConflict
	}

	user.Version++
	user.UpdatedAt = now

	return nil
}

func toUserDomain(doc *userDocument) (*entity.User, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid user id %q", doc.ID)
	}

	favs := make([]entity.Favorite, 0, len(doc.Favorites))
	for _, fav := range doc.Favorites {
		favs = append(favs, entity.Favorite{Type: entity.FavoriteType(fav.Type), ID: fav.ID})
	}

	return &entity.User{
		ID:           id,
		Email:        doc.Email,
		Salt:         doc.Salt,
		PasswordHash: doc.Hash,
		Token:        doc.Token,
		Favorites:    entity.NewFavoriteSet(favs...),
		Version:      doc.Version,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}, nil
}

func fromUserDomain(user *entity.User) *userDocument {
	return &userDocument{
		ID:        user.ID.String(),
		Email:     user.Email,
		Salt:      user.Salt,
		Hash:      user.PasswordHash,
		Token:     user.Token,
		Version:   user.Version,
		Favorites: fromFavoritesDomain(user.Favorites),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func fromFavoritesDomain(set *entity.FavoriteSet) []favoriteDocument {
	items := set.Items()
	docs := make([]favoriteDocument, 0, len(items))
	for _, fav := range items {
		docs = append(docs, favoriteDocument{Type: string(fav.Type), ID: fav.ID})
	}

	return docs
}
