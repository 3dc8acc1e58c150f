package routes

import (
	"github.com/ahmedmaged64/LifeQuest/internal/api/dto"
	"github.com/ahmedmaged64/LifeQuest/internal/api/handlers"
	"github.com/ahmedmaged64/LifeQuest/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

type SettingsRoutes struct {
	handler *handlers.SettingsHandler
}

func NewSettingsRoutes(handler *handlers.SettingsHandler) *SettingsRoutes {
	return &SettingsRoutes{handler: handler}
}

// RegisterRoutes registers the settings routes
func (s *SettingsRoutes) RegisterRoutes(router *gin.Engine) {
	validation := middleware.NewValidationMiddleware()

	settings := router.Group("/api/settings")

	settings.GET("", s.handler.GetSettings)
	settings.PUT("/theme", validation.ValidateRequest(&dto.UpdateThemeRequest{}), s.handler.UpdateTheme)
}
