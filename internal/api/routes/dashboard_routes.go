package routes

import (
	"github.com/ahmedmaged64/LifeQuest/internal/api/handlers"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardRoutes struct {
	handler *handlers.DashboardHandler
	logger  *zap.Logger
}

func NewDashboardRoutes(handler *handlers.DashboardHandler, logger *zap.Logger) *DashboardRoutes {
	return &DashboardRoutes{
		handler: handler,
		logger:  logger,
	}
}

func (r *DashboardRoutes) Register(router *gin.RouterGroup) {
	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("", gzip.Gzip(gzip.DefaultCompression), r.handler.GetDashboard)
	}
}
