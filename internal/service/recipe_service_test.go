package service

import (
	"context"
	"testing"

	"tastebuds/internal/models"
	"tastebuds/internal/repository"
	"tastebuds/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flavorPtr(f models.FlavorProfile) *models.FlavorProfile { return &f }

func TestCocktailService_CreateValidation(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "ana")
	svc := NewCocktailService(repository.NewCocktailRepository(db, nil), repository.NewUserRepository(db))
	ctx := context.Background()

	valid := CreateRecipeInput{Name: "Negroni", PreparationSteps: "Stir", FlavorProfile: models.FlavorBitter, UserID: user.ID}
	created, err := svc.CreateCocktail(ctx, valid)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	tests := []struct {
		name   string
		mutate func(*CreateRecipeInput)
	}{
		{"Missing Name", func(in *CreateRecipeInput) { in.Name = "" }},
		{"Missing Steps", func(in *CreateRecipeInput) { in.PreparationSteps = " " }},
		{"Unknown Flavor", func(in *CreateRecipeInput) { in.FlavorProfile = "spicy" }},
		{"Missing User", func(in *CreateRecipeInput) { in.UserID = 0 }},
		{"Nonexistent User", func(in *CreateRecipeInput) { in.UserID = 404 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			_, err := svc.CreateCocktail(ctx, in)
			assertValidationError(t, err)
		})
	}
}

func TestCocktailService_PartialUpdate(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "ana")
	cocktail := testutil.CreateCocktail(t, db, user.ID, "Negroni")
	svc := NewCocktailService(repository.NewCocktailRepository(db, nil), repository.NewUserRepository(db))
	ctx := context.Background()

	_, err := svc.UpdateCocktail(ctx, cocktail.ID, UpdateRecipeInput{Name: strPtr("Americano")})
	require.NoError(t, err)

	got, err := svc.GetCocktail(ctx, cocktail.ID)
	require.NoError(t, err)
	assert.Equal(t, "Americano", got.Name)
	assert.Equal(t, cocktail.PreparationSteps, got.PreparationSteps)
	assert.Equal(t, cocktail.FlavorProfile, got.FlavorProfile)

	_, err = svc.UpdateCocktail(ctx, cocktail.ID, UpdateRecipeInput{Name: strPtr("")})
	assertValidationError(t, err)
	_, err = svc.UpdateCocktail(ctx, cocktail.ID, UpdateRecipeInput{FlavorProfile: flavorPtr("smoky")})
	assertValidationError(t, err)
	_, err = svc.UpdateCocktail(ctx, 999, UpdateRecipeInput{Name: strPtr("x")})
	assertAppErrorCode(t, err, models.CodeNotFound)
}

func TestDishService_CreateRequiresFields(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "ana")
	svc := NewDishService(repository.NewDishRepository(db, nil), repository.NewUserRepository(db))
	ctx := context.Background()

	_, err := svc.CreateDish(ctx, CreateRecipeInput{Name: "Ramen", FlavorProfile: models.FlavorUmami, UserID: user.ID})
	assertValidationError(t, err)

	dish, err := svc.CreateDish(ctx, CreateRecipeInput{
		Name: "Ramen", PreparationSteps: "Simmer", FlavorProfile: models.FlavorSalty, UserID: user.ID,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateDish(ctx, dish.ID, UpdateRecipeInput{FlavorProfile: flavorPtr(models.FlavorUmami)})
	require.NoError(t, err)
	assert.Equal(t, models.FlavorUmami, updated.FlavorProfile)
	assert.Equal(t, "Simmer", updated.PreparationSteps)

	require.NoError(t, svc.DeleteDish(ctx, dish.ID))
	_, err = svc.GetDish(ctx, dish.ID)
	assertAppErrorCode(t, err, models.CodeNotFound)
}

func TestUserService_DeleteEvictsCachedRecipes(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "ana")
	cocktail := testutil.CreateCocktail(t, db, user.ID, "Negroni")

	cocktails := &evictRecorder{CocktailRepository: repository.NewCocktailRepository(db, nil)}
	svc := NewUserService(repository.NewUserRepository(db), cocktails, repository.NewDishRepository(db, nil))

	require.NoError(t, svc.DeleteUser(context.Background(), user.ID))
	assert.Equal(t, []uint{cocktail.ID}, cocktails.evicted)

	_, err := svc.GetUser(context.Background(), user.ID)
	assertAppErrorCode(t, err, models.CodeNotFound)
}

type evictRecorder struct {
	repository.CocktailRepository
	evicted []uint
}

func (r *evictRecorder) Evict(_ context.Context, ids ...uint) {
	r.evicted = append(r.evicted, ids...)
}

func TestIngredientService(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewIngredientService(repository.NewIngredientRepository(db))
	ctx := context.Background()

	_, err := svc.CreateIngredient(ctx, CreateIngredientInput{Name: "lime", Type: "garnish"})
	assertValidationError(t, err)

	lime, err := svc.CreateIngredient(ctx, CreateIngredientInput{Name: "lime", Type: models.IngredientCocktail})
	require.NoError(t, err)

	_, err = svc.CreateIngredient(ctx, CreateIngredientInput{Name: "lime", Type: models.IngredientDish})
	assertAppErrorCode(t, err, models.CodeConflict)

	dish := models.IngredientDish
	updated, err := svc.UpdateIngredient(ctx, lime.ID, UpdateIngredientInput{Type: &dish})
	require.NoError(t, err)
	assert.Equal(t, "lime", updated.Name)
	assert.Equal(t, models.IngredientDish, updated.Type)
}
