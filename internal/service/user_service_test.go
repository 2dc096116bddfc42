package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tastebuds/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	listFn    func(context.Context) ([]models.User, error)
	getByIDFn func(context.Context, uint) (*models.User, error)
	existsFn  func(context.Context, uint) (bool, error)
	createFn  func(context.Context, *models.User) error
	updateFn  func(context.Context, *models.User) error
	deleteFn  func(context.Context, uint) error
}

func (s *userRepoStub) List(ctx context.Context) ([]models.User, error) {
	return s.listFn(ctx)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		listFn:    func(_ context.Context) ([]models.User, error) { return []models.User{}, nil },
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		existsFn:  func(_ context.Context, _ uint) (bool, error) { return true, nil },
		createFn:  func(_ context.Context, _ *models.User) error { return nil },
		updateFn:  func(_ context.Context, _ *models.User) error { return nil },
		deleteFn:  func(_ context.Context, _ uint) error { return nil },
	}
}

// assertValidationError asserts that err is an AppError with code VALIDATION_ERROR.
func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeValidation)
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}

func strPtr(s string) *string { return &s }

func uintPtr(v uint) *uint { return &v }

func validUserInput() CreateUserInput {
	return CreateUserInput{Name: "Ana", Username: "ana1", Email: "a@x.com", Password: "secret"}
}

func TestUserService_CreateUserHashesPassword(t *testing.T) {
	repo := noopUserRepo()
	var stored *models.User
	repo.createFn = func(_ context.Context, u *models.User) error {
		u.ID = 7
		stored = u
		return nil
	}
	svc := NewUserService(repo, nil, nil)

	user, err := svc.CreateUser(context.Background(), validUserInput())
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, uint(7), user.ID)
	assert.NotEqual(t, "secret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret")))
}

func TestUserService_CreateUserValidation(t *testing.T) {
	svc := NewUserService(noopUserRepo(), nil, nil)

	tests := []struct {
		name   string
		mutate func(*CreateUserInput)
	}{
		{"Missing Name", func(in *CreateUserInput) { in.Name = "" }},
		{"Missing Username", func(in *CreateUserInput) { in.Username = "" }},
		{"Bad Email", func(in *CreateUserInput) { in.Email = "nope" }},
		{"Missing Password", func(in *CreateUserInput) { in.Password = "" }},
		{"Password Over 72 Bytes", func(in *CreateUserInput) { in.Password = strings.Repeat("p", 73) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validUserInput()
			tt.mutate(&in)
			_, err := svc.CreateUser(context.Background(), in)
			assertValidationError(t, err)
		})
	}
}

func TestUserService_CreateUserPropagatesConflict(t *testing.T) {
	repo := noopUserRepo()
	repo.createFn = func(_ context.Context, _ *models.User) error {
		return models.NewConflictError("User with this email already exists")
	}
	_, err := NewUserService(repo, nil, nil).CreateUser(context.Background(), validUserInput())
	assertAppErrorCode(t, err, models.CodeConflict)
}

func TestUserService_UpdateUser(t *testing.T) {
	existing := &models.User{ID: 3, Name: "Ana", Username: "ana1", Email: "a@x.com", Password: "old-hash"}
	repo := noopUserRepo()
	repo.getByIDFn = func(_ context.Context, _ uint) (*models.User, error) {
		u := *existing
		return &u, nil
	}
	var saved *models.User
	repo.updateFn = func(_ context.Context, u *models.User) error {
		saved = u
		return nil
	}
	svc := NewUserService(repo, nil, nil)

	t.Run("Partial Keeps Password", func(t *testing.T) {
		_, err := svc.UpdateUser(context.Background(), 3, UpdateUserInput{ProfileInfo: strPtr("Bartender")})
		require.NoError(t, err)
		assert.Equal(t, "old-hash", saved.Password)
		assert.Equal(t, "Bartender", saved.ProfileInfo)
		assert.Equal(t, "ana1", saved.Username)
	})

	t.Run("New Password Is Rehashed", func(t *testing.T) {
		_, err := svc.UpdateUser(context.Background(), 3, UpdateUserInput{Password: strPtr("n3w")})
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("n3w")))
	})

	t.Run("Empty Password Rejected", func(t *testing.T) {
		_, err := svc.UpdateUser(context.Background(), 3, UpdateUserInput{Password: strPtr("")})
		assertValidationError(t, err)
	})

	t.Run("Missing User", func(t *testing.T) {
		repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		}
		_, err := svc.UpdateUser(context.Background(), 99, UpdateUserInput{Name: strPtr("x")})
		assertAppErrorCode(t, err, models.CodeNotFound)
	})
}
