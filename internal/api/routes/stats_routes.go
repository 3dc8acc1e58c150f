package routes

import (
	"github.com/ahmedmaged64/LifeQuest/internal/api/handlers"
	"github.com/gin-gonic/gin"
)

type StatsRoutes struct {
	handler *handlers.StatsHandler
}

func NewStatsRoutes(handler *handlers.StatsHandler) *StatsRoutes {
	return &StatsRoutes{handler: handler}
}

// RegisterRoutes registers the stats routes
func (s *StatsRoutes) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/stats", s.handler.GetStats)
}
