package model

import (
	"gorm.io/gorm"

	"github.com/google/uuid"
)

// Project is a grouping construct. Tasks are not linked to projects yet;
// the serialized task list is always empty.
type Project struct {
	ID          string  `gorm:"primaryKey;size:36"`
	Title       string  `gorm:"size:200;not null"`
	Description string  `gorm:"type:text"`
	CategoryID  *string `gorm:"size:36"`
	Type        string  `gorm:"size:20;default:parallel"`
	Completed   bool    `gorm:"default:false"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
