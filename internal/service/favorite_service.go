package service

import (
	"context"

	"tastebuds/internal/models"
	"tastebuds/internal/observability"
	"tastebuds/internal/repository"
)

type FavoriteService struct {
	favoriteRepo repository.FavoriteRepository
	userRepo     repository.UserRepository
	cocktailRepo repository.CocktailRepository
	dishRepo     repository.DishRepository
}

type CreateFavoriteInput struct {
	UserID     uint  `json:"user_id"`
	CocktailID *uint `json:"cocktail_id"`
	DishID     *uint `json:"dish_id"`
}

// UpdateFavoriteInput retargets a favorite; exactly one field must be set.
type UpdateFavoriteInput struct {
	CocktailID *uint `json:"cocktail_id"`
	DishID     *uint `json:"dish_id"`
}

func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	userRepo repository.UserRepository,
	cocktailRepo repository.CocktailRepository,
	dishRepo repository.DishRepository,
) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		userRepo:     userRepo,
		cocktailRepo: cocktailRepo,
		dishRepo:     dishRepo,
	}
}

// validateTarget enforces that exactly one of cocktailID and dishID is set and
// that the referenced recipe exists.
func (s *FavoriteService) validateTarget(ctx context.Context, cocktailID, dishID *uint) error {
	target := models.Favorite{CocktailID: cocktailID, DishID: dishID}
	if !target.HasSingleTarget() {
		return models.NewValidationError("Exactly one of cocktail_id or dish_id is required")
	}
	if cocktailID != nil {
		return requireReference(ctx, s.cocktailRepo.Exists, "cocktail_id", "Cocktail", *cocktailID)
	}
	return requireReference(ctx, s.dishRepo.Exists, "dish_id", "Dish", *dishID)
}

func (s *FavoriteService) ListFavorites(ctx context.Context) (_ []models.Favorite, err error) {
	ctx, span := observability.StartSpan(ctx, "FavoriteService.ListFavorites")
	defer func() { observability.EndSpan(span, err) }()

	return s.favoriteRepo.List(ctx)
}

func (s *FavoriteService) ListUserFavorites(ctx context.Context, userID uint) (_ []models.Favorite, err error) {
	ctx, span := observability.StartSpan(ctx, "FavoriteService.ListUserFavorites")
	defer func() { observability.EndSpan(span, err) }()

	if err := requireFound(ctx, s.userRepo.Exists, "User", userID); err != nil {
		return nil, err
	}
	return s.favoriteRepo.ListByUser(ctx, userID)
}

func (s *FavoriteService) GetFavorite(ctx context.Context, id uint) (_ *models.Favorite, err error) {
	ctx, span := observability.StartSpan(ctx, "FavoriteService.GetFavorite")
	defer func() { observability.EndSpan(span, err) }()

	return s.favoriteRepo.GetByID(ctx, id)
}

func (s *FavoriteService) CreateFavorite(ctx context.Context, in CreateFavoriteInput) (_ *models.Favorite, err error) {
	ctx, span := observability.StartSpan(ctx, "FavoriteService.CreateFavorite")
	defer func() { observability.EndSpan(span, err) }()

	if err := requireReference(ctx, s.userRepo.Exists, "user_id", "User", in.UserID); err != nil {
		return nil, err
	}
	if err := s.validateTarget(ctx, in.CocktailID, in.DishID); err != nil {
		return nil, err
	}

	favorite := &models.Favorite{UserID: in.UserID, CocktailID: in.CocktailID, DishID: in.DishID}
	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		return nil, err
	}
	return favorite, nil
}

func (s *FavoriteService) UpdateFavorite(ctx context.Context, id uint, in UpdateFavoriteInput) (_ *models.Favorite, err error) {
	ctx, span := observability.StartSpan(ctx, "FavoriteService.UpdateFavorite")
	defer func() { observability.EndSpan(span, err) }()

	favorite, err := s.favoriteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validateTarget(ctx, in.CocktailID, in.DishID); err != nil {
		return nil, err
	}

	favorite.CocktailID = in.CocktailID
	favorite.DishID = in.DishID
	if err := s.favoriteRepo.Update(ctx, favorite); err != nil {
		return nil, err
	}
	return favorite, nil
}

func (s *FavoriteService) DeleteFavorite(ctx context.Context, id uint) (err error) {
	ctx, span := observability.StartSpan(ctx, "FavoriteService.DeleteFavorite")
	defer func() { observability.EndSpan(span, err) }()

	return s.favoriteRepo.Delete(ctx, id)
}
