package models

import (
	"time"

	"github.com/google/uuid"
)

type RecipeTag struct {
	RecipeID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipeId"`
	TagID     uuid.UUID `gorm:"type:uuid;primaryKey;index" json:"tagId"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Tag    *Tag    `gorm:"foreignKey:TagID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (RecipeTag) TableName() string {
	return "recipe_tags"
}
