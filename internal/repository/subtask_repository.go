package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tayra/internal/model"
)

// SubtaskRepository handles subtasks within their parent task.
type SubtaskRepository struct {
	db *gorm.DB
}

func NewSubtaskRepository(db *gorm.DB) *SubtaskRepository {
	return &SubtaskRepository{db: db}
}

func (r *SubtaskRepository) Create(ctx context.Context, subtask *model.Subtask) error {
	if err := r.db.WithContext(ctx).Create(subtask).Error; err != nil {
		return fmt.Errorf("create subtask: %w", err)
	}
	return nil
}

func (r *SubtaskRepository) FindByID(ctx context.Context, id string) (*model.Subtask, error) {
	var subtask model.Subtask
	if err := r.db.WithContext(ctx).First(&subtask, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &subtask, nil
}

func (r *SubtaskRepository) Save(ctx context.Context, subtask *model.Subtask) error {
	if err := r.db.WithContext(ctx).Save(subtask).Error; err != nil {
		return fmt.Errorf("save subtask: %w", err)
	}
	return nil
}
