package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tayra/internal/service"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// Categories

func (s *Server) handleListCategories(c *gin.Context) {
	categories, err := s.categories.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]categoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, serializeCategory(&categories[i]))
	}
	c.JSON(http.StatusOK, out)
}

type createCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (s *Server) handleCreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	category, err := s.categories.Create(c.Request.Context(), req.Name, req.Color)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, serializeCategory(category))
}

func (s *Server) handleDeleteCategory(c *gin.Context) {
	err := s.categories.Delete(c.Request.Context(), c.Param("id"))
	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// Tasks

func (s *Server) handleListTasks(c *gin.Context) {
	tasks, err := s.tasks.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]taskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, serializeTask(&tasks[i]))
	}
	c.JSON(http.StatusOK, out)
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
	DoDate      string `json:"doDate"`
	IsEphemeral bool   `json:"isEphemeral"`
	Notes       string `json:"notes"`
}

func (s *Server) handleCreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	task, err := s.tasks.Create(c.Request.Context(), service.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    sanitizeCategoryID(req.Category),
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		DoDate:      req.DoDate,
		IsEphemeral: req.IsEphemeral,
		Notes:       req.Notes,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, serializeTask(task))
}

func (s *Server) handleUpdateTask(c *gin.Context) {
	var patch service.TaskPatch
	if err := c.BindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if patch.Category.Set && !patch.Category.Null {
		patch.Category.Value = sanitizeCategoryID(patch.Category.Value)
	}

	task, err := s.tasks.Update(c.Request.Context(), c.Param("id"), patch)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, serializeTask(task))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	err := s.tasks.Delete(c.Request.Context(), c.Param("id"))
	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// Subtasks

type createSubtaskRequest struct {
	Title string `json:"title"`
}

func (s *Server) handleCreateSubtask(c *gin.Context) {
	var req createSubtaskRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	subtask, err := s.subtasks.Create(c.Request.Context(), c.Param("id"), req.Title)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, serializeSubtask(subtask))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (s *Server) handleUpdateSubtask(c *gin.Context) {
	var patch service.SubtaskPatch
	if err := c.BindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subtask, err := s.subtasks.Update(c.Request.Context(), c.Param("id"), patch)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, serializeSubtask(subtask))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "subtask not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// Projects

func (s *Server) handleListProjects(c *gin.Context) {
	projects, err := s.projects.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]projectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, serializeProject(&projects[i]))
	}
	c.JSON(http.StatusOK, out)
}

// sanitizeCategoryID folds the sentinel strings browsers send for a
// missing selection into "unset". The domain layer never sees them.
func sanitizeCategoryID(raw string) string {
	switch raw {
	case "", "null", "undefined":
		return ""
	}
	return raw
}
