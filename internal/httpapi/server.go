package httpapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tayra/internal/service"
)

// Server is the HTTP front of the task backend.
type Server struct {
	categories *service.CategoryService
	tasks      *service.TaskService
	subtasks   *service.SubtaskService
	projects   *service.ProjectService
	router     *gin.Engine
}

// NewServer wires the API routes.
func NewServer(categories *service.CategoryService, tasks *service.TaskService, subtasks *service.SubtaskService, projects *service.ProjectService) *Server {
	router := gin.Default()
	// The web client is served from another origin, so the API stays
	// open to cross-origin requests.
	router.Use(cors.Default())

	s := &Server{
		categories: categories,
		tasks:      tasks,
		subtasks:   subtasks,
		projects:   projects,
		router:     router,
	}

	api := router.Group("/api")
	{
		api.GET("/health", s.handleHealth)

		api.GET("/categories", s.handleListCategories)
		api.POST("/categories", s.handleCreateCategory)
		api.DELETE("/categories/:id", s.handleDeleteCategory)

		api.GET("/tasks", s.handleListTasks)
		api.POST("/tasks", s.handleCreateTask)
		api.PUT("/tasks/:id", s.handleUpdateTask)
		api.DELETE("/tasks/:id", s.handleDeleteTask)
		api.POST("/tasks/:id/subtasks", s.handleCreateSubtask)
		api.PUT("/subtasks/:id", s.handleUpdateSubtask)

		api.GET("/projects", s.handleListProjects)
	}

	return s
}

// Handler exposes the router for an http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}
