package models

// Ingredient is a catalog entry usable in dishes or cocktails.
type Ingredient struct {
	ID   uint           `gorm:"primaryKey" json:"id"`
	Name string         `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Type IngredientType `gorm:"size:20;not null;check:type IN ('dish','cocktail')" json:"type"`
}

func (Ingredient) TableName() string { return "ingredients" }
