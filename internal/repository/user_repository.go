package repository

import (
	"context"

	"gorm.io/gorm"

	"estore/internal/errors"
	"estore/internal/model"
)

// UserRepository defines credential persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user record.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	if r.db == nil {
		return errors.ErrStoreUnavailable
	}
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByEmail finds a user by exact email. Returns gorm.ErrRecordNotFound
// when no user matches.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if r.db == nil {
		return nil, errors.ErrStoreUnavailable
	}
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
