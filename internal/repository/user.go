package repository

import (
	"context"

	"tastebuds/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
}

type userRepository struct {
	store[models.User]
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{newStore[models.User](db, "User")}
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	return r.list(ctx)
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return r.get(ctx, id)
}

func (r *userRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, id)
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.create(ctx, user)
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return r.update(ctx, user.ID, user,
		"name", "username", "email", "password", "profile_info", "avatar_url")
}

// Delete removes the user; owned rows go with it through ON DELETE CASCADE.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return r.delete(ctx, id)
}
