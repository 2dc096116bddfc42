package service

import (
	"context"
	"fmt"

	"tastebuds/internal/models"
	"tastebuds/internal/observability"
	"tastebuds/internal/repository"
	"tastebuds/internal/validation"
)

// CreateRecipeInput is the create payload shared by cocktails and dishes.
type CreateRecipeInput struct {
	Name             string               `json:"name"`
	PreparationSteps string               `json:"preparation_steps"`
	FlavorProfile    models.FlavorProfile `json:"flavor_profile"`
	UserID           uint                 `json:"user_id"`
}

type UpdateRecipeInput struct {
	Name             *string               `json:"name"`
	PreparationSteps *string               `json:"preparation_steps"`
	FlavorProfile    *models.FlavorProfile `json:"flavor_profile"`
}

func validateFlavor(f models.FlavorProfile) error {
	if !f.Valid() {
		return models.NewValidationError(fmt.Sprintf("flavor_profile must be one of: %s",
			models.EnumList(models.FlavorProfiles)))
	}
	return nil
}

func (in CreateRecipeInput) validate(ctx context.Context, users repository.UserRepository) error {
	if err := validation.ValidateName("name", in.Name); err != nil {
		return models.NewValidationError(err.Error())
	}
	if err := requireText("preparation_steps", in.PreparationSteps); err != nil {
		return err
	}
	if err := validateFlavor(in.FlavorProfile); err != nil {
		return err
	}
	return requireReference(ctx, users.Exists, "user_id", "User", in.UserID)
}

// apply copies the supplied fields onto the recipe columns after validating them.
func (in UpdateRecipeInput) apply(name, steps *string, flavor *models.FlavorProfile) error {
	if in.Name != nil {
		if err := validation.ValidateName("name", *in.Name); err != nil {
			return models.NewValidationError(err.Error())
		}
		*name = *in.Name
	}
	if in.PreparationSteps != nil {
		if err := requireText("preparation_steps", *in.PreparationSteps); err != nil {
			return err
		}
		*steps = *in.PreparationSteps
	}
	if in.FlavorProfile != nil {
		if err := validateFlavor(*in.FlavorProfile); err != nil {
			return err
		}
		*flavor = *in.FlavorProfile
	}
	return nil
}

type CocktailService struct {
	cocktailRepo repository.CocktailRepository
	userRepo     repository.UserRepository
}

func NewCocktailService(cocktailRepo repository.CocktailRepository, userRepo repository.UserRepository) *CocktailService {
	return &CocktailService{cocktailRepo: cocktailRepo, userRepo: userRepo}
}

func (s *CocktailService) ListCocktails(ctx context.Context) (_ []models.Cocktail, err error) {
	ctx, span := observability.StartSpan(ctx, "CocktailService.ListCocktails")
	defer func() { observability.EndSpan(span, err) }()

	return s.cocktailRepo.List(ctx)
}

func (s *CocktailService) GetCocktail(ctx context.Context, id uint) (_ *models.Cocktail, err error) {
	ctx, span := observability.StartSpan(ctx, "CocktailService.GetCocktail")
	defer func() { observability.EndSpan(span, err) }()

	return s.cocktailRepo.GetByID(ctx, id)
}

func (s *CocktailService) CreateCocktail(ctx context.Context, in CreateRecipeInput) (_ *models.Cocktail, err error) {
	ctx, span := observability.StartSpan(ctx, "CocktailService.CreateCocktail")
	defer func() { observability.EndSpan(span, err) }()

	if err := in.validate(ctx, s.userRepo); err != nil {
		return nil, err
	}
	cocktail := &models.Cocktail{
		Name:             in.Name,
		PreparationSteps: in.PreparationSteps,
		FlavorProfile:    in.FlavorProfile,
		UserID:           in.UserID,
	}
	if err := s.cocktailRepo.Create(ctx, cocktail); err != nil {
		return nil, err
	}
	return cocktail, nil
}

func (s *CocktailService) UpdateCocktail(ctx context.Context, id uint, in UpdateRecipeInput) (_ *models.Cocktail, err error) {
	ctx, span := observability.StartSpan(ctx, "CocktailService.UpdateCocktail")
	defer func() { observability.EndSpan(span, err) }()

	cocktail, err := s.cocktailRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := in.apply(&cocktail.Name, &cocktail.PreparationSteps, &cocktail.FlavorProfile); err != nil {
		return nil, err
	}
	if err := s.cocktailRepo.Update(ctx, cocktail); err != nil {
		return nil, err
	}
	return cocktail, nil
}

func (s *CocktailService) DeleteCocktail(ctx context.Context, id uint) (err error) {
	ctx, span := observability.StartSpan(ctx, "CocktailService.DeleteCocktail")
	defer func() { observability.EndSpan(span, err) }()

	return s.cocktailRepo.Delete(ctx, id)
}

type DishService struct {
	dishRepo repository.DishRepository
	userRepo repository.UserRepository
}

func NewDishService(dishRepo repository.DishRepository, userRepo repository.UserRepository) *DishService {
	return &DishService{dishRepo: dishRepo, userRepo: userRepo}
}

func (s *DishService) ListDishes(ctx context.Context) (_ []models.Dish, err error) {
	ctx, span := observability.StartSpan(ctx, "DishService.ListDishes")
	defer func() { observability.EndSpan(span, err) }()

	return s.dishRepo.List(ctx)
}

func (s *DishService) GetDish(ctx context.Context, id uint) (_ *models.Dish, err error) {
	ctx, span := observability.StartSpan(ctx, "DishService.GetDish")
	defer func() { observability.EndSpan(span, err) }()

	return s.dishRepo.GetByID(ctx, id)
}

func (s *DishService) CreateDish(ctx context.Context, in CreateRecipeInput) (_ *models.Dish, err error) {
	ctx, span := observability.StartSpan(ctx, "DishService.CreateDish")
	defer func() { observability.EndSpan(span, err) }()

	if err := in.validate(ctx, s.userRepo); err != nil {
		return nil, err
	}
	dish := &models.Dish{
		Name:             in.Name,
		PreparationSteps: in.PreparationSteps,
		FlavorProfile:    in.FlavorProfile,
		UserID:           in.UserID,
	}
	if err := s.dishRepo.Create(ctx, dish); err != nil {
		return nil, err
	}
	return dish, nil
}

func (s *DishService) UpdateDish(ctx context.Context, id uint, in UpdateRecipeInput) (_ *models.Dish, err error) {
	ctx, span := observability.StartSpan(ctx, "DishService.UpdateDish")
	defer func() { observability.EndSpan(span, err) }()

	dish, err := s.dishRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := in.apply(&dish.Name, &dish.PreparationSteps, &dish.FlavorProfile); err != nil {
		return nil, err
	}
	if err := s.dishRepo.Update(ctx, dish); err != nil {
		return nil, err
	}
	return dish, nil
}

func (s *DishService) DeleteDish(ctx context.Context, id uint) (err error) {
	ctx, span := observability.StartSpan(ctx, "DishService.DeleteDish")
	defer func() { observability.EndSpan(span, err) }()

	return s.dishRepo.Delete(ctx, id)
}
