package models

import (
	"time"

	"github.com/google/uuid"
)

// RecipeTimeMade records one occasion a recipe was cooked. Rows are only
// ever appended.
type RecipeTimeMade struct {
	RecipeID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipeId"`
	MadeAt    time.Time `gorm:"primaryKey" json:"madeAt"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (RecipeTimeMade) TableName() string {
	return "recipe_times_made"
}
