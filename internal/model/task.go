package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/google/uuid"
)

// Task represents a single item in the planner.
type Task struct {
	ID          string `gorm:"primaryKey;size:36"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	CategoryID  string `gorm:"size:36;index"`
	Priority    string `gorm:"size:20;default:extra"`
	DueDate     *time.Time
	DoDate      *time.Time
	Completed   bool   `gorm:"default:false"`
	IsEphemeral bool   `gorm:"default:false"`
	Notes       string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Subtasks    []Subtask `gorm:"foreignKey:TaskID"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
