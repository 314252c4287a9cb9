package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UnitCatalog is the standard set of units installed by migration.
// Reseeding never touches these rows.
var UnitCatalog = []string{
	"cup",
	"tablespoon",
	"teaspoon",
	"ounce",
	"pound",
	"gram",
	"kilogram",
	"milliliter",
	"liter",
	"pinch",
	"dash",
	"whole",
	"piece",
	"slice",
	"clove",
	"can",
	"package",
	"jar",
	"bottle",
	"box",
}

type UnitOfMeasurement struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (UnitOfMeasurement) TableName() string {
	return "units_of_measurement"
}

func (u *UnitOfMeasurement) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
