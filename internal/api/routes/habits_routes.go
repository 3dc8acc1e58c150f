package routes

import (
	"github.com/ahmedmaged64/LifeQuest/internal/api/dto"
	"github.com/ahmedmaged64/LifeQuest/internal/api/handlers"
	"github.com/ahmedmaged64/LifeQuest/internal/api/middleware"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

type HabitsRoutes struct {
	handler *handlers.HabitsHandler
}

func NewHabitsRoutes(handler *handlers.HabitsHandler) *HabitsRoutes {
	return &HabitsRoutes{handler: handler}
}

// RegisterRoutes registers all habit-related routes
func (h *HabitsRoutes) RegisterRoutes(router *gin.Engine) {
	validation := middleware.NewValidationMiddleware()

	habits := router.Group("/api/habits")

	// List and filter - specific routes first
	// Apply compression since histories grow a key per checked day
	habits.GET("", validation.ValidateQuery(&dto.HabitFilterRequest{}), gzip.Gzip(gzip.DefaultCompression), h.handler.ListHabits)
	habits.POST("", validation.ValidateRequest(&dto.CreateHabitRequest{}), h.handler.CreateHabit)

	// CRUD operations with parameters
	habits.GET("/:id", gzip.Gzip(gzip.DefaultCompression), h.handler.GetHabit)
	habits.PUT("/:id", validation.ValidateRequest(&dto.UpdateHabitRequest{}), h.handler.UpdateHabit)
	habits.DELETE("/:id", h.handler.DeleteHabit)

	// History toggle; the body is optional and defaults to today
	habits.POST("/:id/toggle", h.handler.ToggleHistory)
}
