package service

import (
	"context"
	"time"

	"tayra/internal/model"
	"tayra/internal/repository"
)

// CategoryService provides category reads plus the deletion orchestrator.
type CategoryService struct {
	repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.repo.List(ctx)
}

func (s *CategoryService) Create(ctx context.Context, name, color string) (*model.Category, error) {
	if color == "" {
		color = model.DefaultCategoryColor
	}
	category := model.Category{Name: name, Color: color}
	if err := s.repo.Create(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// EnsureDefault guarantees the fallback category exists and returns it.
func (s *CategoryService) EnsureDefault(ctx context.Context) (*model.Category, error) {
	return s.repo.EnsureDefault(ctx)
}

// Delete removes a category. Tasks pointing at it are moved to the default
// category first; reassignment and removal commit atomically, so a failure
// anywhere leaves both the tasks and the category as they were.
func (s *CategoryService) Delete(ctx context.Context, categoryID string) error {
	if _, err := s.repo.GetByID(ctx, categoryID); err != nil {
		return notFoundOr(err)
	}

	if _, err := s.repo.EnsureDefault(ctx); err != nil {
		return err
	}

	return s.repo.DeleteReassigningTasks(ctx, categoryID, time.Now().UTC())
}
