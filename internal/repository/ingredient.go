package repository

import (
	"context"

	"tastebuds/internal/models"

	"gorm.io/gorm"
)

type IngredientRepository interface {
	List(ctx context.Context) ([]models.Ingredient, error)
	GetByID(ctx context.Context, id uint) (*models.Ingredient, error)
	Create(ctx context.Context, ingredient *models.Ingredient) error
	Update(ctx context.Context, ingredient *models.Ingredient) error
	Delete(ctx context.Context, id uint) error
}

type ingredientRepository struct {
	store[models.Ingredient]
}

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{newStore[models.Ingredient](db, "Ingredient")}
}

func (r *ingredientRepository) List(ctx context.Context) ([]models.Ingredient, error) {
	return r.list(ctx)
}

func (r *ingredientRepository) GetByID(ctx context.Context, id uint) (*models.Ingredient, error) {
	return r.get(ctx, id)
}

func (r *ingredientRepository) Create(ctx context.Context, ingredient *models.Ingredient) error {
	return r.create(ctx, ingredient)
}

func (r *ingredientRepository) Update(ctx context.Context, ingredient *models.Ingredient) error {
	return r.update(ctx, ingredient.ID, ingredient, "name", "type")
}

func (r *ingredientRepository) Delete(ctx context.Context, id uint) error {
	return r.delete(ctx, id)
}
