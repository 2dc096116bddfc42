// Package testutil provides shared fixtures for tests that need a real database.
package testutil

import (
	"fmt"
	"testing"

	"tastebuds/internal/database"
	"tastebuds/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB returns an isolated, fully migrated in-memory SQLite database with
// foreign keys enforced. The pool is pinned to one connection so every query
// sees the same in-memory database.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(database.SQLiteDSN(":memory:")), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// CreateUser inserts a user whose username and email derive from handle.
func CreateUser(t testing.TB, db *gorm.DB, handle string) *models.User {
	t.Helper()
	u := &models.User{
		Name:     handle,
		Username: handle,
		Email:    fmt.Sprintf("%s@example.com", handle),
		Password: "$2a$10$fixturefixturefixturefixturefixturefixturefixtureab",
	}
	mustCreate(t, db, u)
	return u
}

func CreateCocktail(t testing.TB, db *gorm.DB, userID uint, name string) *models.Cocktail {
	t.Helper()
	c := &models.Cocktail{
		Name:             name,
		PreparationSteps: "Stir with ice and strain.",
		FlavorProfile:    models.FlavorBitter,
		UserID:           userID,
	}
	mustCreate(t, db, c)
	return c
}

func CreateDish(t testing.TB, db *gorm.DB, userID uint, name string) *models.Dish {
	t.Helper()
	d := &models.Dish{
		Name:             name,
		PreparationSteps: "Simmer for an hour.",
		FlavorProfile:    models.FlavorUmami,
		UserID:           userID,
	}
	mustCreate(t, db, d)
	return d
}

func CreatePost(t testing.TB, db *gorm.DB, userID uint, content string) *models.Post {
	t.Helper()
	p := &models.Post{UserID: userID, Content: content}
	mustCreate(t, db, p)
	return p
}

// CreateChat inserts a chat with the given members.
func CreateChat(t testing.TB, db *gorm.DB, name string, isGroup bool, memberIDs ...uint) *models.Chat {
	t.Helper()
	c := &models.Chat{Name: name, IsGroup: isGroup}
	mustCreate(t, db, c)
	for _, id := range memberIDs {
		mustCreate(t, db, &models.ChatParticipant{ChatID: c.ID, UserID: id})
	}
	return c
}

func mustCreate(t testing.TB, db *gorm.DB, value any) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("create %T: %v", value, err)
	}
}
