package routes

import (
	"github.com/ahmedmaged64/LifeQuest/internal/api/dto"
	"github.com/ahmedmaged64/LifeQuest/internal/api/handlers"
	"github.com/ahmedmaged64/LifeQuest/internal/api/middleware"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

type ReflectionRoutes struct {
	handler *handlers.ReflectionHandler
}

func NewReflectionRoutes(handler *handlers.ReflectionHandler) *ReflectionRoutes {
	return &ReflectionRoutes{handler: handler}
}

// RegisterRoutes registers all reflection-related routes
func (r *ReflectionRoutes) RegisterRoutes(router *gin.Engine) {
	validation := middleware.NewValidationMiddleware()

	reflections := router.Group("/api/reflections")

	reflections.GET("", gzip.Gzip(gzip.DefaultCompression), r.handler.ListReflections)
	reflections.GET("/:date", r.handler.GetReflection)
	reflections.PUT("/:date", validation.ValidateRequest(&dto.UpsertReflectionRequest{}), r.handler.UpsertReflection)
}
