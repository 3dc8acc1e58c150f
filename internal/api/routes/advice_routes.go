package routes

import (
	"github.com/ahmedmaged64/LifeQuest/internal/api/handlers"
	"github.com/gin-gonic/gin"
)

type AdviceRoutes struct {
	handler *handlers.AdviceHandler
}

func NewAdviceRoutes(handler *handlers.AdviceHandler) *AdviceRoutes {
	return &AdviceRoutes{handler: handler}
}

// RegisterRoutes registers the advice routes
func (a *AdviceRoutes) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/advice", a.handler.DailyAdvice)
}
