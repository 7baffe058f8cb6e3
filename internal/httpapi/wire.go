package httpapi

import (
	"time"

	"tayra/internal/model"
)

// Wire shapes are camelCase and stable; clients depend on every key being
// present, including the placeholder dependencies and recurring fields.

type categoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type subtaskResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type taskResponse struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Category     string            `json:"category"`
	Priority     string            `json:"priority"`
	DueDate      *string           `json:"dueDate"`
	DoDate       *string           `json:"doDate"`
	Completed    bool              `json:"completed"`
	IsEphemeral  bool              `json:"isEphemeral"`
	Notes        string            `json:"notes"`
	Subtasks     []subtaskResponse `json:"subtasks"`
	Dependencies []string          `json:"dependencies"`
	Recurring    interface{}       `json:"recurring"`
}

type projectResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    *string        `json:"category"`
	Type        string         `json:"type"`
	Completed   bool           `json:"completed"`
	Tasks       []taskResponse `json:"tasks"`
}

func serializeCategory(c *model.Category) categoryResponse {
	return categoryResponse{ID: c.ID, Name: c.Name, Color: c.Color}
}

func serializeSubtask(s *model.Subtask) subtaskResponse {
	return subtaskResponse{ID: s.ID, Title: s.Title, Completed: s.Completed}
}

func serializeTask(t *model.Task) taskResponse {
	subtasks := make([]subtaskResponse, 0, len(t.Subtasks))
	for i := range t.Subtasks {
		subtasks = append(subtasks, serializeSubtask(&t.Subtasks[i]))
	}
	return taskResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Category:     t.CategoryID,
		Priority:     t.Priority,
		DueDate:      isoDate(t.DueDate),
		DoDate:       isoDate(t.DoDate),
		Completed:    t.Completed,
		IsEphemeral:  t.IsEphemeral,
		Notes:        t.Notes,
		Subtasks:     subtasks,
		Dependencies: []string{},
		Recurring:    nil,
	}
}

func serializeProject(p *model.Project) projectResponse {
	return projectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.CategoryID,
		Type:        p.Type,
		Completed:   p.Completed,
		// No project-task linkage yet.
		Tasks: []taskResponse{},
	}
}

func isoDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
