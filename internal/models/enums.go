package models

import "strings"

// FlavorProfile is the dominant taste of a cocktail or dish.
type FlavorProfile string

const (
	FlavorSweet  FlavorProfile = "sweet"
	FlavorSour   FlavorProfile = "sour"
	FlavorBitter FlavorProfile = "bitter"
	FlavorSalty  FlavorProfile = "salty"
	FlavorUmami  FlavorProfile = "umami"
)

// FlavorProfiles lists every accepted flavor profile in declaration order.
var FlavorProfiles = []FlavorProfile{FlavorSweet, FlavorSour, FlavorBitter, FlavorSalty, FlavorUmami}

// Valid reports whether f is one of the known flavor profiles.
func (f FlavorProfile) Valid() bool {
	for _, v := range FlavorProfiles {
		if f == v {
			return true
		}
	}
	return false
}

// IngredientType says whether an ingredient is used in dishes or cocktails.
type IngredientType string

const (
	IngredientDish     IngredientType = "dish"
	IngredientCocktail IngredientType = "cocktail"
)

func (t IngredientType) Valid() bool {
	return t == IngredientDish || t == IngredientCocktail
}

// NotificationType classifies a notification.
type NotificationType string

const (
	NotificationComment     NotificationType = "comment"
	NotificationMessage     NotificationType = "message"
	NotificationNewFollower NotificationType = "new_follower"
	NotificationOther       NotificationType = "other"
)

var NotificationTypes = []NotificationType{
	NotificationComment, NotificationMessage, NotificationNewFollower, NotificationOther,
}

func (t NotificationType) Valid() bool {
	for _, v := range NotificationTypes {
		if t == v {
			return true
		}
	}
	return false
}

// EnumList renders values as "a, b, c" for error messages.
func EnumList[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
