package handlers

import (
	"net/http"

	"github.com/ahmedmaged64/LifeQuest/internal/api/dto"
	"github.com/ahmedmaged64/LifeQuest/internal/domain/reflection"
	"github.com/gin-gonic/gin"
)

// ReflectionHandler handles HTTP requests for daily reflection operations
type ReflectionHandler struct {
	service reflection.Service
}

// NewReflectionHandler creates a new ReflectionHandler instance
func NewReflectionHandler(service reflection.Service) *ReflectionHandler {
	return &ReflectionHandler{service: service}
}

func reflectionStatusCode(err error) int {
	switch err {
	case reflection.ErrReflectionNotFound:
		return http.StatusNotFound
	case reflection.ErrInvalidDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ListReflections godoc
// @Summary List reflections
// @Description Get all daily reflections, newest first
// @Tags reflections
// @Accept json
// @Produce json
// @Success 200 {object} dto.ReflectionListResponse "Reflections retrieved successfully"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/reflections [get]
func (h *ReflectionHandler) ListReflections(c *gin.Context) {
	reflections, err := h.service.ListReflections(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.ReflectionListResponse{
		Reflections: ReflectionsToResponse(reflections),
		Total:       len(reflections),
	}})
}

// GetReflection godoc
// @Summary Get a day's reflection
// @Description Get the reflection written for a specific date
// @Tags reflections
// @Accept json
// @Produce json
// @Param date path string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} dto.ReflectionResponse "Reflection retrieved successfully"
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 404 {object} map[string]string "No reflection for that date"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/reflections/{date} [get]
func (h *ReflectionHandler) GetReflection(c *gin.Context) {
	r, err := h.service.GetReflection(c.Request.Context(), c.Param("date"))
	if err != nil {
		c.JSON(reflectionStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": ReflectionToResponse(r)})
}

// UpsertReflection godoc
// @Summary Write a day's reflection
// @Description Create or fully replace the reflection for a date
// @Tags reflections
// @Accept json
// @Produce json
// @Param date path string true "Calendar date (YYYY-MM-DD)"
// @Param reflection body dto.UpsertReflectionRequest true "Reflection content"
// @Success 200 {object} dto.ReflectionResponse "Reflection saved successfully"
// @Failure 400 {object} map[string]string "Invalid request or date"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/reflections/{date} [put]
func (h *ReflectionHandler) UpsertReflection(c *gin.Context) {
	var req dto.UpsertReflectionRequest
	validatedModel, exists := c.Get("validated_model")

	if exists {
		if validatedPtr, ok := validatedModel.(*dto.UpsertReflectionRequest); ok {
			req = *validatedPtr
		} else {
			log.Errorf("Invalid model type: %T, expected *dto.UpsertReflectionRequest", validatedModel)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model type from validation"})
			return
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	input := reflection.UpsertReflectionInput{
		Well:        req.Well,
		Improvement: req.Improvement,
		Journal:     req.Journal,
	}

	r, err := h.service.UpsertReflection(c.Request.Context(), c.Param("date"), input)
	if err != nil {
		c.JSON(reflectionStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": ReflectionToResponse(r)})
}
