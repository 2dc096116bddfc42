package service

import (
	"context"
	"testing"

	"tastebuds/internal/models"
	"tastebuds/internal/repository"
	"tastebuds/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recipeFixture struct {
	user     *models.User
	cocktail *models.Cocktail
	dish     *models.Dish
}

func seedRecipes(t *testing.T, db *gorm.DB) recipeFixture {
	t.Helper()
	user := testutil.CreateUser(t, db, "ana")
	return recipeFixture{
		user:     user,
		cocktail: testutil.CreateCocktail(t, db, user.ID, "Negroni"),
		dish:     testutil.CreateDish(t, db, user.ID, "Ramen"),
	}
}

func newFavoriteService(db *gorm.DB) *FavoriteService {
	return NewFavoriteService(
		repository.NewFavoriteRepository(db),
		repository.NewUserRepository(db),
		repository.NewCocktailRepository(db, nil),
		repository.NewDishRepository(db, nil),
	)
}

func TestFavoriteService_CreateTargetRules(t *testing.T) {
	db := testutil.NewTestDB(t)
	f := seedRecipes(t, db)
	svc := newFavoriteService(db)
	ctx := context.Background()

	_, err := svc.CreateFavorite(ctx, CreateFavoriteInput{UserID: f.user.ID})
	assertValidationError(t, err)

	_, err = svc.CreateFavorite(ctx, CreateFavoriteInput{
		UserID: f.user.ID, CocktailID: uintPtr(f.cocktail.ID), DishID: uintPtr(f.dish.ID),
	})
	assertValidationError(t, err)

	_, err = svc.CreateFavorite(ctx, CreateFavoriteInput{UserID: f.user.ID, DishID: uintPtr(777)})
	assertValidationError(t, err)

	_, err = svc.CreateFavorite(ctx, CreateFavoriteInput{UserID: 777, DishID: uintPtr(f.dish.ID)})
	assertValidationError(t, err)

	fav, err := svc.CreateFavorite(ctx, CreateFavoriteInput{UserID: f.user.ID, CocktailID: uintPtr(f.cocktail.ID)})
	require.NoError(t, err)
	assert.NotZero(t, fav.ID)
	assert.Nil(t, fav.DishID)
}

func TestFavoriteService_UpdateRetargets(t *testing.T) {
	db := testutil.NewTestDB(t)
	f := seedRecipes(t, db)
	svc := newFavoriteService(db)
	ctx := context.Background()

	fav, err := svc.CreateFavorite(ctx, CreateFavoriteInput{UserID: f.user.ID, CocktailID: uintPtr(f.cocktail.ID)})
	require.NoError(t, err)

	_, err = svc.UpdateFavorite(ctx, fav.ID, UpdateFavoriteInput{})
	assertValidationError(t, err)
	_, err = svc.UpdateFavorite(ctx, fav.ID, UpdateFavoriteInput{CocktailID: uintPtr(f.cocktail.ID), DishID: uintPtr(f.dish.ID)})
	assertValidationError(t, err)

	updated, err := svc.UpdateFavorite(ctx, fav.ID, UpdateFavoriteInput{DishID: uintPtr(f.dish.ID)})
	require.NoError(t, err)
	assert.Nil(t, updated.CocktailID)
	require.NotNil(t, updated.DishID)

	got, err := svc.GetFavorite(ctx, fav.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CocktailID)
	assert.Equal(t, f.dish.ID, *got.DishID)

	mine, err := svc.ListUserFavorites(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
	_, err = svc.ListUserFavorites(ctx, 999)
	assertAppErrorCode(t, err, models.CodeNotFound)
}

func TestPairingService(t *testing.T) {
	db := testutil.NewTestDB(t)
	f := seedRecipes(t, db)
	other := testutil.CreateCocktail(t, db, f.user.ID, "Martini")
	svc := NewPairingService(
		repository.NewPairingRepository(db),
		repository.NewUserRepository(db),
		repository.NewCocktailRepository(db, nil),
		repository.NewDishRepository(db, nil),
	)
	ctx := context.Background()

	for _, in := range []CreatePairingInput{
		{CocktailID: f.cocktail.ID, DishID: f.dish.ID},
		{UserID: f.user.ID, DishID: f.dish.ID},
		{UserID: f.user.ID, CocktailID: f.cocktail.ID},
	} {
		_, err := svc.CreatePairing(ctx, in)
		assertValidationError(t, err)
	}

	pairing, err := svc.CreatePairing(ctx, CreatePairingInput{UserID: f.user.ID, CocktailID: f.cocktail.ID, DishID: f.dish.ID})
	require.NoError(t, err)

	updated, err := svc.UpdatePairing(ctx, pairing.ID, UpdatePairingInput{CocktailID: uintPtr(other.ID)})
	require.NoError(t, err)
	assert.Equal(t, other.ID, updated.CocktailID)
	assert.Equal(t, f.dish.ID, updated.DishID)

	_, err = svc.UpdatePairing(ctx, pairing.ID, UpdatePairingInput{DishID: uintPtr(4040)})
	assertValidationError(t, err)

	list, err := svc.ListUserPairings(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.DeletePairing(ctx, pairing.ID))
	assertAppErrorCode(t, svc.DeletePairing(ctx, pairing.ID), models.CodeNotFound)
}
