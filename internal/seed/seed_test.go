package seed

import (
	"context"
	"testing"

	"tastebuds/internal/models"
	"tastebuds/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)
	assert.NotEmpty(t, c.Ingredients)
	assert.NotEmpty(t, c.Cocktails)
	assert.NotEmpty(t, c.Dishes)
	assert.NotEmpty(t, c.Pairings)
}

func TestParseCatalog_Rejects(t *testing.T) {
	tests := map[string]string{
		"bad type":        "ingredients:\n  - {name: Salt, type: spice}\n",
		"duplicate":       "ingredients:\n  - {name: Salt, type: dish}\n  - {name: Salt, type: dish}\n",
		"bad flavor":      "cocktails:\n  - {name: X, flavor_profile: smoky, preparation_steps: Stir.}\n",
		"missing steps":   "dishes:\n  - {name: X, flavor_profile: sweet}\n",
		"unknown pairing": "pairings:\n  - {cocktail: Nope, dish: Nada}\n",
		"not yaml":        "ingredients: [",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestRun_DryRunWritesNothing(t *testing.T) {
	db := testutil.NewTestDB(t)
	s, err := NewSeeder(db, SeedOptions{Users: 3, DryRun: true, SkipBcrypt: true, RandSeed: 7})
	require.NoError(t, err)

	sum, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Users)
	assert.Equal(t, 3, sum.Follows)
	assert.Equal(t, 2, sum.Chats)

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Zero(t, users)
}

func TestRun_PopulatesDatabase(t *testing.T) {
	db := testutil.NewTestDB(t)
	s, err := NewSeeder(db, SeedOptions{Users: 4, RandSeed: 11})
	require.NoError(t, err)

	sum, err := s.Run(context.Background())
	require.NoError(t, err)

	count := func(model any) int {
		var n int64
		require.NoError(t, db.Model(model).Count(&n).Error)
		return int(n)
	}
	assert.Equal(t, sum.Users, count(&models.User{}))
	assert.Equal(t, sum.Ingredients, count(&models.Ingredient{}))
	assert.Equal(t, sum.Cocktails, count(&models.Cocktail{}))
	assert.Equal(t, sum.Dishes, count(&models.Dish{}))
	assert.Equal(t, sum.Pairings, count(&models.Pairing{}))
	assert.Equal(t, 4, count(&models.Favorite{}))
	assert.Equal(t, 4, count(&models.Follow{}))
	assert.Equal(t, 4, count(&models.Comment{}))
	assert.Equal(t, 2, count(&models.Chat{}))
	assert.Equal(t, 6, count(&models.ChatParticipant{}))

	var u models.User
	require.NoError(t, db.First(&u).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(DefaultPassword)))
}

func TestRun_CleanReplacesData(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	first, err := NewSeeder(db, SeedOptions{Users: 2, SkipBcrypt: true, RandSeed: 1})
	require.NoError(t, err)
	_, err = first.Run(ctx)
	require.NoError(t, err)

	second, err := NewSeeder(db, SeedOptions{Users: 3, Clean: true, SkipBcrypt: true, RandSeed: 2})
	require.NoError(t, err)
	_, err = second.Run(ctx)
	require.NoError(t, err)

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Equal(t, int64(3), users)
}

func TestRun_SingleUserSkipsSocialGraph(t *testing.T) {
	db := testutil.NewTestDB(t)
	s, err := NewSeeder(db, SeedOptions{Users: 0, SkipBcrypt: true})
	require.NoError(t, err)

	sum, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Users)
	assert.Zero(t, sum.Follows)
	assert.Zero(t, sum.Chats)
}
