package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe is the root aggregate. Ingredient lines, tags and usage history
// hang off it through the junction tables and are removed with it.
type Recipe struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Description  string    `gorm:"size:200;not null" json:"description"`
	Instructions string    `gorm:"type:text;not null" json:"instructions"`
	Notes        *string   `gorm:"type:text" json:"notes"`
	PrepTime     int       `gorm:"not null" json:"prepTime"`
	CookTime     int       `gorm:"not null" json:"cookTime"`
	Difficulty   int       `gorm:"not null" json:"difficulty"`
	CreatedAt    time.Time `gorm:"not null;index" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"not null" json:"updatedAt"`
}

func (Recipe) TableName() string {
	return "recipes"
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
