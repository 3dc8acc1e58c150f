package handlers

import (
	"net/http"

	"github.com/ahmedmaged64/LifeQuest/internal/domain/stats"
	"github.com/gin-gonic/gin"
)

// StatsHandler handles HTTP requests for derived progress metrics
type StatsHandler struct {
	service stats.Service
}

// NewStatsHandler creates a new StatsHandler instance
func NewStatsHandler(service stats.Service) *StatsHandler {
	return &StatsHandler{service: service}
}

// GetStats godoc
// @Summary Get progress metrics
// @Description Get the experience, level, streak and life score derived from the current tasks and habits
// @Tags stats
// @Accept json
// @Produce json
// @Success 200 {object} dto.StatsResponse "Stats computed successfully"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	userStats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": StatsToResponse(userStats)})
}
