package service

import (
	"context"
	"fmt"
	"net/url"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tayra/internal/model"
	"tayra/internal/repository"
)

// testEnv holds a full service stack over an in-memory database.
type testEnv struct {
	db         *gorm.DB
	categories *CategoryService
	tasks      *TaskService
	subtasks   *SubtaskService
	projects   *ProjectService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// A named in-memory database keeps the schema visible across pooled
	// connections without leaking between tests.
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

	categoryRepo := repository.NewCategoryRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	subtaskRepo := repository.NewSubtaskRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	return &testEnv{
		db:         db,
		categories: NewCategoryService(categoryRepo),
		tasks:      NewTaskService(taskRepo, categoryRepo),
		subtasks:   NewSubtaskService(subtaskRepo, taskRepo),
		projects:   NewProjectService(projectRepo),
	}
}

func (e *testEnv) seed(t *testing.T) {
	t.Helper()
	if err := repository.SeedCategories(context.Background(), e.db); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

// mustCreateTask is a shorthand for tests that need an existing task.
func (e *testEnv) mustCreateTask(t *testing.T, input TaskInput) *model.Task {
	t.Helper()
	task, err := e.tasks.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	return task
}

// checkCategoryInvariant verifies every stored task points at an existing
// category.
func (e *testEnv) checkCategoryInvariant(t *testing.T) {
	t.Helper()
	var count int64
	err := e.db.Model(&model.Task{}).
		Where("category_id NOT IN (?)", e.db.Model(&model.Category{}).Select("id")).
		Count(&count).Error
	if err != nil {
		t.Fatalf("invariant query: %v", err)
	}
	if count != 0 {
		t.Fatalf("%d tasks reference a missing category", count)
	}
}
