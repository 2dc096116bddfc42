package service

import (
	"context"

	"tastebuds/internal/models"
	"tastebuds/internal/observability"
	"tastebuds/internal/repository"
)

type PairingService struct {
	pairingRepo  repository.PairingRepository
	userRepo     repository.UserRepository
	cocktailRepo repository.CocktailRepository
	dishRepo     repository.DishRepository
}

type CreatePairingInput struct {
	UserID     uint `json:"user_id"`
	CocktailID uint `json:"cocktail_id"`
	DishID     uint `json:"dish_id"`
}

type UpdatePairingInput struct {
	UserID     *uint `json:"user_id"`
	CocktailID *uint `json:"cocktail_id"`
	DishID     *uint `json:"dish_id"`
}

func NewPairingService(
	pairingRepo repository.PairingRepository,
	userRepo repository.UserRepository,
	cocktailRepo repository.CocktailRepository,
	dishRepo repository.DishRepository,
) *PairingService {
	return &PairingService{
		pairingRepo:  pairingRepo,
		userRepo:     userRepo,
		cocktailRepo: cocktailRepo,
		dishRepo:     dishRepo,
	}
}

func (s *PairingService) ListPairings(ctx context.Context) (_ []models.Pairing, err error) {
	ctx, span := observability.StartSpan(ctx, "PairingService.ListPairings")
	defer func() { observability.EndSpan(span, err) }()

	return s.pairingRepo.List(ctx)
}

func (s *PairingService) ListUserPairings(ctx context.Context, userID uint) (_ []models.Pairing, err error) {
	ctx, span := observability.StartSpan(ctx, "PairingService.ListUserPairings")
	defer func() { observability.EndSpan(span, err) }()

	if err := requireFound(ctx, s.userRepo.Exists, "User", userID); err != nil {
		return nil, err
	}
	return s.pairingRepo.ListByUser(ctx, userID)
}

func (s *PairingService) GetPairing(ctx context.Context, id uint) (_ *models.Pairing, err error) {
	ctx, span := observability.StartSpan(ctx, "PairingService.GetPairing")
	defer func() { observability.EndSpan(span, err) }()

	return s.pairingRepo.GetByID(ctx, id)
}

func (s *PairingService) CreatePairing(ctx context.Context, in CreatePairingInput) (_ *models.Pairing, err error) {
	ctx, span := observability.StartSpan(ctx, "PairingService.CreatePairing")
	defer func() { observability.EndSpan(span, err) }()

	if err := requireReference(ctx, s.userRepo.Exists, "user_id", "User", in.UserID); err != nil {
		return nil, err
	}
	if err := requireReference(ctx, s.cocktailRepo.Exists, "cocktail_id", "Cocktail", in.CocktailID); err != nil {
		return nil, err
	}
	if err := requireReference(ctx, s.dishRepo.Exists, "dish_id", "Dish", in.DishID); err != nil {
		return nil, err
	}

	pairing := &models.Pairing{UserID: in.UserID, CocktailID: in.CocktailID, DishID: in.DishID}
	if err := s.pairingRepo.Create(ctx, pairing); err != nil {
		return nil, err
	}
	return pairing, nil
}

func (s *PairingService) UpdatePairing(ctx context.Context, id uint, in UpdatePairingInput) (_ *models.Pairing, err error) {
	ctx, span := observability.StartSpan(ctx, "PairingService.UpdatePairing")
	defer func() { observability.EndSpan(span, err) }()

	pairing, err := s.pairingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.UserID != nil {
		if err := requireReference(ctx, s.userRepo.Exists, "user_id", "User", *in.UserID); err != nil {
			return nil, err
		}
		pairing.UserID = *in.UserID
	}
	if in.CocktailID != nil {
		if err := requireReference(ctx, s.cocktailRepo.Exists, "cocktail_id", "Cocktail", *in.CocktailID); err != nil {
			return nil, err
		}
		pairing.CocktailID = *in.CocktailID
	}
	if in.DishID != nil {
		if err := requireReference(ctx, s.dishRepo.Exists, "dish_id", "Dish", *in.DishID); err != nil {
			return nil, err
		}
		pairing.DishID = *in.DishID
	}

	if err := s.pairingRepo.Update(ctx, pairing); err != nil {
		return nil, err
	}
	return pairing, nil
}

func (s *PairingService) DeletePairing(ctx context.Context, id uint) (err error) {
	ctx, span := observability.StartSpan(ctx, "PairingService.DeletePairing")
	defer func() { observability.EndSpan(span, err) }()

	return s.pairingRepo.Delete(ctx, id)
}
