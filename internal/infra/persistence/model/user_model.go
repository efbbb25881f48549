// Package model holds the GORM table mappings of the postgres store.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Salt         string    `gorm:"type:varchar(255);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Token        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Version      int64     `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Favorites []UserFavoriteModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserFavoriteModel mirrors the 'user_favorites' table.
// Position keeps the insertion order of a user's favorites.
type UserFavoriteModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FavoriteType string    `gorm:"type:varchar(16);primaryKey"`
	FavoriteID   string    `gorm:"type:varchar(64);primaryKey"`
	Position     int       `gorm:"not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserFavoriteModel) TableName() string {
	return "user_favorites"
}
