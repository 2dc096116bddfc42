package service

import (
	"context"
	"fmt"
	"log/slog"

	"tastebuds/internal/models"
	"tastebuds/internal/observability"
	"tastebuds/internal/repository"
	"tastebuds/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo     repository.UserRepository
	cocktailRepo repository.CocktailRepository
	dishRepo     repository.DishRepository
}

type CreateUserInput struct {
	Name        string `json:"name"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	ProfileInfo string `json:"profile_info"`
	AvatarURL   string `json:"avatar_url"`
}

// UpdateUserInput carries a partial update; nil fields are left unchanged.
type UpdateUserInput struct {
	Name        *string `json:"name"`
	Username    *string `json:"username"`
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	ProfileInfo *string `json:"profile_info"`
	AvatarURL   *string `json:"avatar_url"`
}

// NewUserService wires the user rules. The recipe repositories are used to
// evict cached recipes that a user delete cascades away; either may be nil.
func NewUserService(
	userRepo repository.UserRepository,
	cocktailRepo repository.CocktailRepository,
	dishRepo repository.DishRepository,
) *UserService {
	return &UserService{
		userRepo:     userRepo,
		cocktailRepo: cocktailRepo,
		dishRepo:     dishRepo,
	}
}

// HashPassword validates a plaintext password and returns its bcrypt hash.
func HashPassword(password string) (string, error) {
	if err := validation.ValidatePassword(password); err != nil {
		return "", models.NewValidationError(err.Error())
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", models.NewInternalError(fmt.Errorf("hash password: %w", err))
	}
	return string(hash), nil
}

func (s *UserService) ListUsers(ctx context.Context) (_ []models.User, err error) {
	ctx, span := observability.StartSpan(ctx, "UserService.ListUsers")
	defer func() { observability.EndSpan(span, err) }()

	return s.userRepo.List(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id uint) (_ *models.User, err error) {
	ctx, span := observability.StartSpan(ctx, "UserService.GetUser")
	defer func() { observability.EndSpan(span, err) }()

	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (_ *models.User, err error) {
	ctx, span := observability.StartSpan(ctx, "UserService.CreateUser")
	defer func() { observability.EndSpan(span, err) }()

	if err := validation.ValidateName("name", in.Name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:        in.Name,
		Username:    in.Username,
		Email:       in.Email,
		Password:    hash,
		ProfileInfo: in.ProfileInfo,
		AvatarURL:   in.AvatarURL,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uint, in UpdateUserInput) (_ *models.User, err error) {
	ctx, span := observability.StartSpan(ctx, "UserService.UpdateUser")
	defer func() { observability.EndSpan(span, err) }()

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if err := validation.ValidateName("name", *in.Name); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Name = *in.Name
	}
	if in.Username != nil {
		if err := validation.ValidateUsername(*in.Username); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Username = *in.Username
	}
	if in.Email != nil {
		if err := validation.ValidateEmail(*in.Email); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}
	if in.ProfileInfo != nil {
		user.ProfileInfo = *in.ProfileInfo
	}
	if in.AvatarURL != nil {
		user.AvatarURL = *in.AvatarURL
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the user. The database cascades the delete to everything
// the user owns, so cached copies of their recipes are evicted afterwards.
func (s *UserService) DeleteUser(ctx context.Context, id uint) (err error) {
	ctx, span := observability.StartSpan(ctx, "UserService.DeleteUser")
	defer func() { observability.EndSpan(span, err) }()

	var cocktailIDs, dishIDs []uint
	if s.cocktailRepo != nil {
		cocktails, err := s.cocktailRepo.ListByUser(ctx, id)
		if err != nil {
			return err
		}
		for _, c := range cocktails {
			cocktailIDs = append(cocktailIDs, c.ID)
		}
	}
	if s.dishRepo != nil {
		dishes, err := s.dishRepo.ListByUser(ctx, id)
		if err != nil {
			return err
		}
		for _, d := range dishes {
			dishIDs = append(dishIDs, d.ID)
		}
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	if len(cocktailIDs) > 0 {
		s.cocktailRepo.Evict(ctx, cocktailIDs...)
	}
	if len(dishIDs) > 0 {
		s.dishRepo.Evict(ctx, dishIDs...)
	}
	observability.Logger.InfoContext(ctx, "user deleted",
		slog.Uint64("user_id", uint64(id)),
		slog.Int("cocktails", len(cocktailIDs)),
		slog.Int("dishes", len(dishIDs)))
	return nil
}
