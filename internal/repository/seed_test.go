package repository

import (
	"context"
	"fmt"
	"net/url"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tayra/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", url.PathEscape(t.Name()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.Category{}, &model.Task{}, &model.Subtask{}, &model.Project{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSeedCategories(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := SeedCategories(ctx, db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var categories []model.Category
	if err := db.Find(&categories).Error; err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(categories) != 4 {
		t.Fatalf("expected 4 seed categories, got %d", len(categories))
	}

	want := map[string]string{
		"default":  "General",
		"work":     "Work",
		"personal": "Personal",
		"health":   "Health",
	}
	for _, c := range categories {
		name, ok := want[c.ID]
		if !ok {
			t.Errorf("unexpected seed category %q", c.ID)
			continue
		}
		if c.Name != name {
			t.Errorf("category %q named %q, want %q", c.ID, c.Name, name)
		}
		if len(c.Color) != 7 {
			t.Errorf("category %q has malformed color %q", c.ID, c.Color)
		}
	}
}

func TestSeedCategoriesIsGatedOnEmptyTable(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := SeedCategories(ctx, db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Delete one seed category, then re-run. The gate is "any category
	// exists", so nothing comes back.
	if err := db.Delete(&model.Category{}, "id = ?", "work").Error; err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := SeedCategories(ctx, db); err != nil {
		t.Fatalf("reseed: %v", err)
	}

	var count int64
	if err := db.Model(&model.Category{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 categories after reseed, got %d", count)
	}
}
