package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"tayra/internal/model"
)

// CategoryRepository manages task categories.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Exists reports whether a category with the given id is present.
func (r *CategoryRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check category %q: %w", id, err)
	}
	return count > 0, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *model.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

// EnsureDefault returns the fallback category, creating it if absent.
// FirstOrCreate keeps concurrent callers from inserting the row twice.
func (r *CategoryRepository) EnsureDefault(ctx context.Context) (*model.Category, error) {
	category := model.Category{
		ID:    model.DefaultCategoryID,
		Name:  "General",
		Color: model.DefaultCategoryColor,
	}
	err := r.db.WithContext(ctx).
		Where("id = ?", model.DefaultCategoryID).
		FirstOrCreate(&category).Error
	if err != nil {
		return nil, fmt.Errorf("ensure default category: %w", err)
	}
	return &category, nil
}

// DeleteReassigningTasks moves every task in the category to the default
// category and removes the category row, all inside one transaction.
// Either both steps commit or neither does.
func (r *CategoryRepository) DeleteReassigningTasks(ctx context.Context, id string, now time.Time) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Task{}).
			Where("category_id = ?", id).
			Updates(map[string]interface{}{
				"category_id": model.DefaultCategoryID,
				"updated_at":  now,
			}).Error; err != nil {
			return fmt.Errorf("reassign tasks: %w", err)
		}
		if err := tx.Delete(&model.Category{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete category %q: %w", id, err)
	}
	return nil
}
