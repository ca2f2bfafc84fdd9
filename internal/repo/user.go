package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/mkuznecov/shopify_ecom/internal/models"
)

var ErrUserAlreadyExists = errors.New("user already exists")

// CreateUser relies on the unique index on users.email: a concurrent
// registration with the same email loses at the store, not at a prior lookup.
func (r *GormRepo) CreateUser(ctx context.Context, user *models.User) error {
	if err := r.DB.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint") {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *GormRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
