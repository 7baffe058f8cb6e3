package model

import (
	"gorm.io/gorm"

	"github.com/google/uuid"
)

// Subtask is a sub-item owned by exactly one task. It never exists without
// a parent and is removed together with it.
type Subtask struct {
	ID        string `gorm:"primaryKey;size:36"`
	TaskID    string `gorm:"size:36;not null;index"`
	Title     string `gorm:"size:200;not null"`
	Completed bool   `gorm:"default:false"`
}

func (s *Subtask) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
