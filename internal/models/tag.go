package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"gorm.io/gorm"
)

// Tag names are unique ignoring case. NormalizedName holds the case folded
// form and carries the unique index so both drivers compare the same way.
type Tag struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	NormalizedName string    `gorm:"size:100;not null;uniqueIndex" json:"-"`
	CreatedAt      time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"not null" json:"updatedAt"`
}

func (Tag) TableName() string {
	return "tags"
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

func (t *Tag) BeforeSave(tx *gorm.DB) error {
	t.Name = strings.TrimSpace(t.Name)
	t.NormalizedName = NormalizeTagName(t.Name)
	return nil
}

// NormalizeTagName trims and case folds a tag name.
func NormalizeTagName(name string) string {
	// Casers are stateful, so one per call.
	return cases.Fold().String(strings.TrimSpace(name))
}
