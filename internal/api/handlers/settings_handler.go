package handlers

import (
	"net/http"

	"github.com/ahmedmaged64/LifeQuest/internal/api/dto"
	"github.com/ahmedmaged64/LifeQuest/internal/domain/settings"
	"github.com/gin-gonic/gin"
)

// SettingsHandler handles HTTP requests for application settings
type SettingsHandler struct {
	service settings.Service
}

// NewSettingsHandler creates a new SettingsHandler instance
func NewSettingsHandler(service settings.Service) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// GetSettings godoc
// @Summary Get settings
// @Description Get the current application settings
// @Tags settings
// @Accept json
// @Produce json
// @Success 200 {object} dto.SettingsResponse "Settings retrieved successfully"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	current, err := h.service.GetSettings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": SettingsToResponse(current)})
}

// UpdateTheme godoc
// @Summary Switch the theme
// @Description Set the UI theme to light or dark
// @Tags settings
// @Accept json
// @Produce json
// @Param theme body dto.UpdateThemeRequest true "Theme selection"
// @Success 200 {object} dto.SettingsResponse "Theme updated successfully"
// @Failure 400 {object} map[string]string "Invalid theme"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/settings/theme [put]
func (h *SettingsHandler) UpdateTheme(c *gin.Context) {
	var req dto.UpdateThemeRequest
	validatedModel, exists := c.Get("validated_model")

	if exists {
		if validatedPtr, ok := validatedModel.(*dto.UpdateThemeRequest); ok {
			req = *validatedPtr
		} else {
			log.Errorf("Invalid model type: %T, expected *dto.UpdateThemeRequest", validatedModel)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model type from validation"})
			return
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	updated, err := h.service.UpdateTheme(c.Request.Context(), settings.Theme(req.Theme))
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err == settings.ErrInvalidTheme {
			statusCode = http.StatusBadRequest
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": SettingsToResponse(updated)})
}
