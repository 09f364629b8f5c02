package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"sgo/models"
)

// UserRepository adds lookup by email to the generic user repository.
type UserRepository struct {
	*GormRepository[models.User, int]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{New(db, IntKey(func(u *models.User) int { return u.ID }))}
}

// GetByEmail returns the user whose email matches exactly (case-sensitive),
// or nil when there is none.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &user, nil
}
