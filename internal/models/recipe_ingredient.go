package models

import (
	"time"

	"github.com/google/uuid"
)

// RecipeIngredient is one ingredient line of a recipe. The composite key
// allows the same ingredient twice only when the units differ.
type RecipeIngredient struct {
	RecipeID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipeId"`
	IngredientID        uuid.UUID `gorm:"type:uuid;primaryKey;index" json:"ingredientId"`
	UnitOfMeasurementID uuid.UUID `gorm:"type:uuid;primaryKey;index" json:"unitOfMeasurementId"`
	Quantity            int       `gorm:"not null;check:chk_recipe_ingredients_quantity,quantity > 0" json:"quantity"`
	CreatedAt           time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt           time.Time `gorm:"not null" json:"updatedAt"`

	Recipe            *Recipe            `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Ingredient        *Ingredient        `gorm:"foreignKey:IngredientID;constraint:OnDelete:RESTRICT" json:"-"`
	UnitOfMeasurement *UnitOfMeasurement `gorm:"foreignKey:UnitOfMeasurementID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}
