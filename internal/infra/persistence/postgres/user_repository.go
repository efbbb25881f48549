// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"marvel/internal/domain/entity"
	domainerrors "marvel/internal/domain/errors"
	"marvel/internal/domain/repository"
	"marvel/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, with favorites.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByEmail retrieves a single user by their email address, with favorites.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ?", email)
}

// FindByToken retrieves the user currently holding token, with favorites.
func (repo *userRepository) FindByToken(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, repository.ErrUserNotFound
	}

	return repo.findOne(ctx, "token = ?", token)
}

func (repo *userRepository) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Favorites", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Where(query, arg).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// Create inserts the user row. Favorites of a new user are always empty.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if isEmailConstraint(err) {
				return repository.ErrEmailTaken
			}

			return domainerrors.ErrUserCreationFailed.WrapMessage("duplicate token")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateFavorites bumps the row version if it still equals user.Version and
// rewrites the favorite rows, all in one transaction.
func (repo *userRepository) UpdateFavorites(ctx context.Context, user *entity.User) error {
	now := time.Now()

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.UserModel{}).
			Where("id = ? AND version = ?", user.ID, user.Version).
			Updates(map[string]any{
				"version":    gorm.Expr("version + 1"),
				"updated_at": now,
			})
		if res.Error != nil {
			return domainerrors.NewDatabaseExecuteError(res.Error, "failed to bump user version")
		}
		if res.RowsAffected == 0 {
			return repository.ErrVersionConflict
		}

		if err := tx.Where("user_id = ?", user.ID).Delete(&model.UserFavoriteModel{}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to clear favorites")
		}

		rows := fromFavoritesDomain(user.ID, user.Favorites, now)
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to insert favorites")
		}

		return nil
	})
	if err != nil {
		return err
	}

	user.Version++
	user.UpdatedAt = now

	return nil
}

func toUserDomain(data *model.UserModel) *entity.User {
	favs := make([]entity.Favorite, 0, len(data.Favorites))
	for _, fav := range data.Favorites {
		favs = append(favs, entity.Favorite{
			Type: entity.FavoriteType(fav.FavoriteType),
			ID:   fav.FavoriteID,
		})
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		Salt:         data.Salt,
		PasswordHash: data.PasswordHash,
		Token:        data.Token,
		Favorites:    entity.NewFavoriteSet(favs...),
		Version:      data.Version,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		Salt:         data.Salt,
		PasswordHash: data.PasswordHash,
		Token:        data.Token,
		Version:      data.Version,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromFavoritesDomain(userID uuid.UUID, set *entity.FavoriteSet, now time.Time) []model.UserFavoriteModel {
	items := set.Items()
	rows := make([]model.UserFavoriteModel, 0, len(items))
	for i, fav := range items {
		rows = append(rows, model.UserFavoriteModel{
			UserID:       userID,
			FavoriteType: string(fav.Type),
			FavoriteID:   fav.ID,
			Position:     i,
			CreatedAt:    now,
		})
	}

	return rows
}
