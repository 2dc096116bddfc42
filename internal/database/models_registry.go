package database

import "tastebuds/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models,
// parents before children.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Ingredient{},
		&models.Cocktail{},
		&models.Dish{},
		&models.Favorite{},
		&models.Pairing{},
		&models.Post{},
		&models.Comment{},
		&models.Chat{},
		&models.ChatParticipant{},
		&models.Message{},
		&models.Notification{},
		&models.Follow{},
	}
}
