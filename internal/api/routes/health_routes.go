package routes

import (
	"net/http"
	"time"

	"github.com/ahmedmaged64/LifeQuest/internal/infrastructure/state"
	"github.com/gin-gonic/gin"
)

// HealthResponse represents the health check response structure
type HealthResponse struct {
	Status    string    `json:"status" example:"healthy"`
	Timestamp time.Time `json:"timestamp" example:"2025-04-17T02:00:00Z"`
}

// SetupHealthRoutes registers health check endpoints
func SetupHealthRoutes(router *gin.Engine, container *state.Container) {
	// @Summary Health check endpoint
	// @Description Get the current health status of the API
	// @Tags health
	// @Produce json
	// @Success 200 {object} HealthResponse
	// @Router /health [get]
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC(),
		})
	})

	// @Summary Readiness check endpoint
	// @Description Report readiness; fails while the backing store is unreachable
	// @Tags health
	// @Produce json
	// @Success 200 {object} HealthResponse
	// @Failure 503 {object} HealthResponse
	// @Router /health/ready [get]
	router.GET("/health/ready", func(c *gin.Context) {
		if err := container.Ready(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, HealthResponse{
				Status:    "unavailable",
				Timestamp: time.Now().UTC(),
			})
			return
		}
		c.JSON(http.StatusOK, HealthResponse{
			Status:    "ready",
			Timestamp: time.Now().UTC(),
		})
	})
}
