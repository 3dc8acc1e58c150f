package routes

import (
	"github.com/ahmedmaged64/LifeQuest/internal/api/handlers"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

type ExportRoutes struct {
	handler *handlers.ExportHandler
}

func NewExportRoutes(handler *handlers.ExportHandler) *ExportRoutes {
	return &ExportRoutes{handler: handler}
}

// RegisterRoutes registers the export and import routes
func (e *ExportRoutes) RegisterRoutes(router *gin.Engine) {
	// Exports carry the whole state, so compress them
	router.GET("/api/export", gzip.Gzip(gzip.DefaultCompression), e.handler.Export)
	router.POST("/api/import", e.handler.Import)
}
