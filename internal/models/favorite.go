package models

import "time"

// Favorite bookmarks exactly one cocktail or one dish for a user.
type Favorite struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	User       *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CocktailID *uint     `gorm:"index;check:chk_favorites_target,(cocktail_id IS NULL) <> (dish_id IS NULL)" json:"cocktail_id"`
	Cocktail   *Cocktail `gorm:"foreignKey:CocktailID;constraint:OnDelete:CASCADE" json:"-"`
	DishID     *uint     `gorm:"index" json:"dish_id"`
	Dish       *Dish     `gorm:"foreignKey:DishID;constraint:OnDelete:CASCADE" json:"-"`
	SavedDate  time.Time `gorm:"autoCreateTime" json:"saved_date"`
}

func (Favorite) TableName() string { return "favorites" }

// HasSingleTarget reports whether exactly one of CocktailID and DishID is set.
func (f *Favorite) HasSingleTarget() bool {
	return (f.CocktailID == nil) != (f.DishID == nil)
}

// Pairing is a user-curated match of one cocktail with one dish.
type Pairing struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	User       *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CocktailID uint      `gorm:"not null;index" json:"cocktail_id"`
	Cocktail   *Cocktail `gorm:"foreignKey:CocktailID;constraint:OnDelete:CASCADE" json:"-"`
	DishID     uint      `gorm:"not null;index" json:"dish_id"`
	Dish       *Dish     `gorm:"foreignKey:DishID;constraint:OnDelete:CASCADE" json:"-"`
	SavedDate  time.Time `gorm:"autoCreateTime" json:"saved_date"`
}

func (Pairing) TableName() string { return "pairings" }
