package handlers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ahmedmaged64/LifeQuest/internal/api/dto"
	"github.com/ahmedmaged64/LifeQuest/internal/export"
	"github.com/gin-gonic/gin"
)

// ExportHandler handles HTTP requests for state export and import
type ExportHandler struct {
	service export.Service
}

// NewExportHandler creates a new ExportHandler instance
func NewExportHandler(service export.Service) *ExportHandler {
	return &ExportHandler{service: service}
}

// Export godoc
// @Summary Export the full state
// @Description Download everything as a file. The JSON format round-trips through import; the CSV format is a read-only spreadsheet snapshot.
// @Tags export
// @Accept json
// @Produce json
// @Produce text/csv
// @Param format query string false "Export format" Enums(json, csv) default(json)
// @Success 200 {string} string "Exported snapshot"
// @Failure 400 {object} map[string]string "Unknown format"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "json")

	var (
		blob        []byte
		contentType string
		err         error
	)
	switch format {
	case "json":
		blob, err = h.service.ExportJSON(c.Request.Context())
		contentType = "application/json; charset=utf-8"
	case "csv":
		blob, err = h.service.ExportCSV(c.Request.Context())
		contentType = "text/csv; charset=utf-8"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown export format, expected json or csv"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("lifequest-%s.%s", time.Now().Format("2006-01-02"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, blob)
}

// Import godoc
// @Summary Import a state snapshot
// @Description Replace the entire state with a previously exported JSON snapshot
// @Tags export
// @Accept json
// @Produce json
// @Param snapshot body string true "Exported JSON snapshot"
// @Success 200 {object} dto.ImportResponse "Import completed successfully"
// @Failure 400 {object} map[string]string "Body is not a valid snapshot"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/import [post]
func (h *ExportHandler) Import(c *gin.Context) {
	blob, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	summary, err := h.service.ImportJSON(c.Request.Context(), blob)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err == export.ErrInvalidSnapshot {
			statusCode = http.StatusBadRequest
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.ImportResponse{
		Tasks:       summary.Tasks,
		Habits:      summary.Habits,
		Reflections: summary.Reflections,
	}})
}
