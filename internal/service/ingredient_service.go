package service

import (
	"context"
	"fmt"

	"tastebuds/internal/models"
	"tastebuds/internal/observability"
	"tastebuds/internal/repository"
	"tastebuds/internal/validation"
)

type IngredientService struct {
	ingredientRepo repository.IngredientRepository
}

type CreateIngredientInput struct {
	Name string                `json:"name"`
	Type models.IngredientType `json:"type"`
}

type UpdateIngredientInput struct {
	Name *string                `json:"name"`
	Type *models.IngredientType `json:"type"`
}

func NewIngredientService(ingredientRepo repository.IngredientRepository) *IngredientService {
	return &IngredientService{ingredientRepo: ingredientRepo}
}

func validateIngredientType(t models.IngredientType) error {
	if !t.Valid() {
		return models.NewValidationError(fmt.Sprintf("type must be one of: %s, %s",
			models.IngredientDish, models.IngredientCocktail))
	}
	return nil
}

func (s *IngredientService) ListIngredients(ctx context.Context) (_ []models.Ingredient, err error) {
	ctx, span := observability.StartSpan(ctx, "IngredientService.ListIngredients")
	defer func() { observability.EndSpan(span, err) }()

	return s.ingredientRepo.List(ctx)
}

func (s *IngredientService) GetIngredient(ctx context.Context, id uint) (_ *models.Ingredient, err error) {
	ctx, span := observability.StartSpan(ctx, "IngredientService.GetIngredient")
	defer func() { observability.EndSpan(span, err) }()

	return s.ingredientRepo.GetByID(ctx, id)
}

func (s *IngredientService) CreateIngredient(ctx context.Context, in CreateIngredientInput) (_ *models.Ingredient, err error) {
	ctx, span := observability.StartSpan(ctx, "IngredientService.CreateIngredient")
	defer func() { observability.EndSpan(span, err) }()

	if err := validation.ValidateName("name", in.Name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validateIngredientType(in.Type); err != nil {
		return nil, err
	}

	ingredient := &models.Ingredient{Name: in.Name, Type: in.Type}
	if err := s.ingredientRepo.Create(ctx, ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

func (s *IngredientService) UpdateIngredient(ctx context.Context, id uint, in UpdateIngredientInput) (_ *models.Ingredient, err error) {
	ctx, span := observability.StartSpan(ctx, "IngredientService.UpdateIngredient")
	defer func() { observability.EndSpan(span, err) }()

	ingredient, err := s.ingredientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if err := validation.ValidateName("name", *in.Name); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		ingredient.Name = *in.Name
	}
	if in.Type != nil {
		if err := validateIngredientType(*in.Type); err != nil {
			return nil, err
		}
		ingredient.Type = *in.Type
	}
	if err := s.ingredientRepo.Update(ctx, ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

func (s *IngredientService) DeleteIngredient(ctx context.Context, id uint) (err error) {
	ctx, span := observability.StartSpan(ctx, "IngredientService.DeleteIngredient")
	defer func() { observability.EndSpan(span, err) }()

	return s.ingredientRepo.Delete(ctx, id)
}
