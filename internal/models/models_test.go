package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlavorProfileValid(t *testing.T) {
	for _, f := range FlavorProfiles {
		assert.True(t, f.Valid(), f)
	}
	assert.False(t, FlavorProfile("spicy").Valid())
	assert.False(t, FlavorProfile("").Valid())
	assert.False(t, FlavorProfile("Sweet").Valid())
}

func TestIngredientTypeValid(t *testing.T) {
	assert.True(t, IngredientDish.Valid())
	assert.True(t, IngredientCocktail.Valid())
	assert.False(t, IngredientType("garnish").Valid())
}

func TestNotificationTypeValid(t *testing.T) {
	assert.True(t, NotificationNewFollower.Valid())
	assert.False(t, NotificationType("like").Valid())
	assert.Equal(t, "comment, message, new_follower, other", EnumList(NotificationTypes))
}

func TestFavoriteHasSingleTarget(t *testing.T) {
	one := uint(1)
	assert.True(t, (&Favorite{CocktailID: &one}).HasSingleTarget())
	assert.True(t, (&Favorite{DishID: &one}).HasSingleTarget())
	assert.False(t, (&Favorite{}).HasSingleTarget())
	assert.False(t, (&Favorite{CocktailID: &one, DishID: &one}).HasSingleTarget())
}

func TestUserJSONOmitsPassword(t *testing.T) {
	body, err := json.Marshal(User{ID: 1, Username: "ana1", Password: "hash"})
	require.NoError(t, err)
	assert.NotContains(t, string(body), "password")
	assert.Contains(t, string(body), `"username":"ana1"`)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{NewNotFoundError("User", 1), fiber.StatusNotFound},
		{NewValidationError("bad"), fiber.StatusBadRequest},
		{NewConflictError("dup"), fiber.StatusConflict},
		{NewUnauthorizedError("no"), fiber.StatusUnauthorized},
		{NewInternalError(errors.New("boom")), fiber.StatusInternalServerError},
		{errors.New("plain"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, StatusFor(tt.err), tt.err.Error())
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewInternalError(cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Internal server error: disk full", err.Error())
}
