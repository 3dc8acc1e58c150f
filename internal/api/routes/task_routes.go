package routes

import (
	"github.com/ahmedmaged64/LifeQuest/internal/api/dto"
	"github.com/ahmedmaged64/LifeQuest/internal/api/handlers"
	"github.com/ahmedmaged64/LifeQuest/internal/api/middleware"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// TaskRoutes handles the setup of task-related routes
type TaskRoutes struct {
	handler *handlers.TaskHandler
}

func NewTaskRoutes(handler *handlers.TaskHandler) *TaskRoutes {
	return &TaskRoutes{handler: handler}
}

// RegisterRoutes registers all task-related routes
func (t *TaskRoutes) RegisterRoutes(router *gin.Engine) {
	validation := middleware.NewValidationMiddleware()

	tasks := router.Group("/api/tasks")

	// List and filter - specific routes first
	tasks.GET("", validation.ValidateQuery(&dto.TaskFilterRequest{}), gzip.Gzip(gzip.DefaultCompression), t.handler.ListTasks)
	tasks.POST("", validation.ValidateRequest(&dto.CreateTaskRequest{}), t.handler.CreateTask)
	tasks.GET("/today", gzip.Gzip(gzip.DefaultCompression), t.handler.GetTodayTasks)

	// CRUD operations with parameters
	tasks.GET("/:id", t.handler.GetTask)
	tasks.PUT("/:id", validation.ValidateRequest(&dto.UpdateTaskRequest{}), t.handler.UpdateTask)
	tasks.DELETE("/:id", t.handler.DeleteTask)

	// Completion toggle; finishing a daily task schedules the next occurrence
	tasks.POST("/:id/toggle", t.handler.ToggleTask)
}
