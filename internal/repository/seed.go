package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tayra/internal/model"
)

// SeedCategories creates the initial category set on a fresh database.
// It is gated on the table being empty, so restarting a seeded process
// is a no-op even after individual seed categories were deleted.
func SeedCategories(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	seed := []model.Category{
		{ID: model.DefaultCategoryID, Name: "General", Color: model.DefaultCategoryColor},
		{ID: "work", Name: "Work", Color: "#3B82F6"},
		{ID: "personal", Name: "Personal", Color: "#10B981"},
		{ID: "health", Name: "Health", Color: "#F59E0B"},
	}
	if err := db.WithContext(ctx).Create(&seed).Error; err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	return nil
}
