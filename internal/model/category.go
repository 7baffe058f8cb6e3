package model

import (
	"gorm.io/gorm"

	"github.com/google/uuid"
)

// DefaultCategoryID is the fallback category tasks are reassigned to when
// their own category is deleted.
const DefaultCategoryID = "default"

// DefaultCategoryColor is the neutral gray used for the fallback category
// and as the color default on creation.
const DefaultCategoryColor = "#6B7280"

// Category groups tasks by area (work, health, personal, etc.).
type Category struct {
	ID    string `gorm:"primaryKey;size:36"`
	Name  string `gorm:"size:100;not null"`
	Color string `gorm:"size:7;not null"`
	Tasks []Task `gorm:"foreignKey:CategoryID"`
}

// BeforeCreate assigns a uuid unless the id was set explicitly
// (seed categories use fixed ids).
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
