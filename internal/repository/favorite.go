package repository

import (
	"context"

	"tastebuds/internal/models"

	"gorm.io/gorm"
)

type FavoriteRepository interface {
	List(ctx context.Context) ([]models.Favorite, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Favorite, error)
	GetByID(ctx context.Context, id uint) (*models.Favorite, error)
	Create(ctx context.Context, favorite *models.Favorite) error
	Update(ctx context.Context, favorite *models.Favorite) error
	Delete(ctx context.Context, id uint) error
}

type favoriteRepository struct {
	store[models.Favorite]
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{newStore[models.Favorite](db, "Favorite")}
}

func (r *favoriteRepository) List(ctx context.Context) ([]models.Favorite, error) {
	return r.list(ctx)
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID uint) ([]models.Favorite, error) {
	return r.list(ctx, byUser(userID))
}

func (r *favoriteRepository) GetByID(ctx context.Context, id uint) (*models.Favorite, error) {
	return r.get(ctx, id)
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	return r.create(ctx, favorite)
}

// Update retargets the favorite. Both references are written so the one being
// cleared becomes NULL.
func (r *favoriteRepository) Update(ctx context.Context, favorite *models.Favorite) error {
	return r.update(ctx, favorite.ID, favorite, "cocktail_id", "dish_id")
}

func (r *favoriteRepository) Delete(ctx context.Context, id uint) error {
	return r.delete(ctx, id)
}

type PairingRepository interface {
	List(ctx context.Context) ([]models.Pairing, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Pairing, error)
	GetByID(ctx context.Context, id uint) (*models.Pairing, error)
	Create(ctx context.Context, pairing *models.Pairing) error
	Update(ctx context.Context, pairing *models.Pairing) error
	Delete(ctx context.Context, id uint) error
}

type pairingRepository struct {
	store[models.Pairing]
}

func NewPairingRepository(db *gorm.DB) PairingRepository {
	return &pairingRepository{newStore[models.Pairing](db, "Pairing")}
}

func (r *pairingRepository) List(ctx context.Context) ([]models.Pairing, error) {
	return r.list(ctx)
}

func (r *pairingRepository) ListByUser(ctx context.Context, userID uint) ([]models.Pairing, error) {
	return r.list(ctx, byUser(userID))
}

func (r *pairingRepository) GetByID(ctx context.Context, id uint) (*models.Pairing, error) {
	return r.get(ctx, id)
}

func (r *pairingRepository) Create(ctx context.Context, pairing *models.Pairing) error {
	return r.create(ctx, pairing)
}

func (r *pairingRepository) Update(ctx context.Context, pairing *models.Pairing) error {
	return r.update(ctx, pairing.ID, pairing, "user_id", "cocktail_id", "dish_id")
}

func (r *pairingRepository) Delete(ctx context.Context, id uint) error {
	return r.delete(ctx, id)
}
