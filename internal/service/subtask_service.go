package service

import (
	"context"
	"fmt"

	"tayra/internal/model"
	"tayra/internal/repository"
)

// SubtaskService manages subtasks under their parent task. Subtasks are
// never deleted on their own; that happens only when the parent goes.
type SubtaskService struct {
	subtaskRepo *repository.SubtaskRepository
	taskRepo    *repository.TaskRepository
}

func NewSubtaskService(subtaskRepo *repository.SubtaskRepository, taskRepo *repository.TaskRepository) *SubtaskService {
	return &SubtaskService{subtaskRepo: subtaskRepo, taskRepo: taskRepo}
}

func (s *SubtaskService) Create(ctx context.Context, taskID, title string) (*model.Subtask, error) {
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	if _, err := s.taskRepo.FindByID(ctx, taskID); err != nil {
		return nil, notFoundOr(err)
	}

	subtask := model.Subtask{TaskID: taskID, Title: title}
	if err := s.subtaskRepo.Create(ctx, &subtask); err != nil {
		return nil, err
	}
	return &subtask, nil
}

func (s *SubtaskService) Update(ctx context.Context, subtaskID string, patch SubtaskPatch) (*model.Subtask, error) {
	subtask, err := s.subtaskRepo.FindByID(ctx, subtaskID)
	if err != nil {
		return nil, notFoundOr(err)
	}

	if patch.Title.Set && !patch.Title.Null {
		subtask.Title = patch.Title.Value
	}
	if patch.Completed.Set && !patch.Completed.Null {
		subtask.Completed = patch.Completed.Value
	}

	if err := s.subtaskRepo.Save(ctx, subtask); err != nil {
		return nil, err
	}
	return subtask, nil
}
