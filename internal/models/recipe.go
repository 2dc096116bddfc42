package models

import "time"

// Cocktail is a user-authored drink recipe.
type Cocktail struct {
	ID               uint          `gorm:"primaryKey" json:"id"`
	Name             string        `gorm:"size:100;not null" json:"name"`
	PreparationSteps string        `gorm:"type:text;not null" json:"preparation_steps"`
	FlavorProfile    FlavorProfile `gorm:"size:20;not null;check:flavor_profile IN ('sweet','sour','bitter','salty','umami')" json:"flavor_profile"`
	UserID           uint          `gorm:"not null;index" json:"user_id"`
	User             *User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreationDate     time.Time     `gorm:"autoCreateTime" json:"creation_date"`
}

func (Cocktail) TableName() string { return "cocktails" }

// Dish is a user-authored food recipe.
type Dish struct {
	ID               uint          `gorm:"primaryKey" json:"id"`
	Name             string        `gorm:"size:100;not null" json:"name"`
	PreparationSteps string        `gorm:"type:text;not null" json:"preparation_steps"`
	FlavorProfile    FlavorProfile `gorm:"size:20;not null;check:flavor_profile IN ('sweet','sour','bitter','salty','umami')" json:"flavor_profile"`
	UserID           uint          `gorm:"not null;index" json:"user_id"`
	User             *User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreationDate     time.Time     `gorm:"autoCreateTime" json:"creation_date"`
}

func (Dish) TableName() string { return "dishes" }
