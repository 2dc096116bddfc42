package cache

import (
	"fmt"
	"time"
)

const (
	CocktailKeyPrefix = "cocktail:%d"
	DishKeyPrefix     = "dish:%d"
)

// Key families used as the CacheRequests metric label.
const (
	FamilyCocktail = "cocktail"
	FamilyDish     = "dish"
)

const (
	CocktailTTL = 10 * time.Minute
	DishTTL     = 10 * time.Minute
)

func CocktailKey(id uint) string {
	return fmt.Sprintf(CocktailKeyPrefix, id)
}

func DishKey(id uint) string {
	return fmt.Sprintf(DishKeyPrefix, id)
}
