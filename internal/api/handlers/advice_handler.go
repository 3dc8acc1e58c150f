package handlers

import (
	"net/http"

	"github.com/ahmedmaged64/LifeQuest/internal/domain/advice"
	"github.com/gin-gonic/gin"
)

// AdviceHandler handles HTTP requests for daily coaching advice
type AdviceHandler struct {
	service advice.Service
}

// NewAdviceHandler creates a new AdviceHandler instance
func NewAdviceHandler(service advice.Service) *AdviceHandler {
	return &AdviceHandler{service: service}
}

// DailyAdvice godoc
// @Summary Get advice for a day
// @Description Get a short coaching message for a day's schedule. Falls back to a built-in message when no language model is configured or the call fails.
// @Tags advice
// @Accept json
// @Produce json
// @Param date query string false "Calendar date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.AdviceResponse "Advice retrieved successfully"
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/advice [get]
func (h *AdviceHandler) DailyAdvice(c *gin.Context) {
	result, err := h.service.DailyAdvice(c.Request.Context(), c.Query("date"))
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err == advice.ErrInvalidDate {
			statusCode = http.StatusBadRequest
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": AdviceToResponse(result)})
}
