package service

import (
	"context"
	"fmt"
	"time"

	"tayra/internal/model"
	"tayra/internal/repository"
)

// TaskInput represents data required to create a task. Category is the
// already-sanitized category id, empty when the request did not name one.
type TaskInput struct {
	Title       string
	Description string
	Category    string
	Priority    string
	DueDate     string
	DoDate      string
	IsEphemeral bool
	Notes       string
}

// TaskService wraps task-related business logic.
type TaskService struct {
	taskRepo     *repository.TaskRepository
	categoryRepo *repository.CategoryRepository
}

func NewTaskService(taskRepo *repository.TaskRepository, categoryRepo *repository.CategoryRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo, categoryRepo: categoryRepo}
}

func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	return s.taskRepo.List(ctx)
}

func (s *TaskService) Get(ctx context.Context, taskID string) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return task, nil
}

func (s *TaskService) Create(ctx context.Context, input TaskInput) (*model.Task, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("title is required")
	}

	categoryID, err := s.resolveCategory(ctx, input.Category)
	if err != nil {
		return nil, err
	}

	dueDate, err := parseDate(input.DueDate)
	if err != nil {
		return nil, err
	}
	doDate, err := parseDate(input.DoDate)
	if err != nil {
		return nil, err
	}

	priority := input.Priority
	if priority == "" {
		priority = "extra"
	}

	task := model.Task{
		Title:       input.Title,
		Description: input.Description,
		CategoryID:  categoryID,
		Priority:    priority,
		DueDate:     dueDate,
		DoDate:      doDate,
		IsEphemeral: input.IsEphemeral,
		Notes:       input.Notes,
	}

	if err := s.taskRepo.Create(ctx, &task); err != nil {
		return nil, err
	}

	return &task, nil
}

// Update applies a partial update. Fields absent from the patch are left
// untouched; a present null on the date fields clears them. UpdatedAt
// advances on every successful call, empty patches included.
func (s *TaskService) Update(ctx context.Context, taskID string, patch TaskPatch) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, notFoundOr(err)
	}

	if patch.Title.Set && !patch.Title.Null {
		task.Title = patch.Title.Value
	}
	if patch.Description.Set && !patch.Description.Null {
		task.Description = patch.Description.Value
	}
	if patch.Category.Set {
		raw := ""
		if !patch.Category.Null {
			raw = patch.Category.Value
		}
		categoryID, err := s.resolveCategory(ctx, raw)
		if err != nil {
			return nil, err
		}
		task.CategoryID = categoryID
	}
	if patch.Priority.Set && !patch.Priority.Null {
		task.Priority = patch.Priority.Value
	}
	if patch.DueDate.Set {
		due, err := patchDate(patch.DueDate)
		if err != nil {
			return nil, err
		}
		task.DueDate = due
	}
	if patch.DoDate.Set {
		do, err := patchDate(patch.DoDate)
		if err != nil {
			return nil, err
		}
		task.DoDate = do
	}
	if patch.Completed.Set && !patch.Completed.Null {
		task.Completed = patch.Completed.Value
	}
	if patch.IsEphemeral.Set && !patch.IsEphemeral.Null {
		task.IsEphemeral = patch.IsEphemeral.Value
	}
	if patch.Notes.Set && !patch.Notes.Null {
		task.Notes = patch.Notes.Value
	}

	// Save touches updated_at even when nothing else changed.
	if err := s.taskRepo.Save(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// Delete removes a task and all of its subtasks.
func (s *TaskService) Delete(ctx context.Context, taskID string) error {
	if _, err := s.taskRepo.FindByID(ctx, taskID); err != nil {
		return notFoundOr(err)
	}
	return s.taskRepo.DeleteCascade(ctx, taskID)
}

// resolveCategory maps an unset or unknown category id to the default
// category. Every stored task points at an existing category.
func (s *TaskService) resolveCategory(ctx context.Context, categoryID string) (string, error) {
	if categoryID == "" {
		return model.DefaultCategoryID, nil
	}
	exists, err := s.categoryRepo.Exists(ctx, categoryID)
	if err != nil {
		return "", err
	}
	if !exists {
		return model.DefaultCategoryID, nil
	}
	return categoryID, nil
}

// parseDate reads an ISO-8601 date or datetime and keeps only the
// calendar date. Returns nil for an empty input.
func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	var parsed time.Time
	var err error
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		parsed, err = time.Parse(layout, raw)
		if err == nil {
			d := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			return &d, nil
		}
	}
	return nil, fmt.Errorf("parse date %q: %w", raw, err)
}

// patchDate turns a present date field into its stored form: null or an
// empty string clears the date, anything else must parse.
func patchDate(f Field[string]) (*time.Time, error) {
	if f.Null || f.Value == "" {
		return nil, nil
	}
	return parseDate(f.Value)
}
