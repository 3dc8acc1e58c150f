package handlers

import (
	"net/http"

	"github.com/ahmedmaged64/LifeQuest/internal/api/dto"
	"github.com/ahmedmaged64/LifeQuest/internal/domain/habits"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HabitsHandler handles HTTP requests for habits operations
type HabitsHandler struct {
	service habits.Service
}

// NewHabitsHandler creates a new HabitsHandler instance
func NewHabitsHandler(service habits.Service) *HabitsHandler {
	return &HabitsHandler{service: service}
}

func habitStatusCode(err error) int {
	switch err {
	case habits.ErrHabitNotFound:
		return http.StatusNotFound
	case habits.ErrInvalidInput, habits.ErrInvalidDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// CreateHabit godoc
// @Summary Create a new habit
// @Description Create a new habit with the provided information
// @Tags habits
// @Accept json
// @Produce json
// @Param habit body dto.CreateHabitRequest true "Habit creation request"
// @Success 201 {object} dto.HabitResponse "Habit created successfully"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/habits [post]
func (h *HabitsHandler) CreateHabit(c *gin.Context) {
	// Get validated model from context (set by validation middleware)
	var req dto.CreateHabitRequest
	validatedModel, exists := c.Get("validated_model")

	if exists {
		// The model is a pointer since the middleware created it with reflect.New
		if validatedPtr, ok := validatedModel.(*dto.CreateHabitRequest); ok {
			req = *validatedPtr
		} else {
			log.Errorf("Invalid model type: %T, expected *dto.CreateHabitRequest", validatedModel)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model type from validation"})
			return
		}
	} else {
		// If validation middleware didn't run, do manual binding
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	input := habits.CreateHabitInput{
		Name:     req.Name,
		Icon:     req.Icon,
		Category: req.Category,
	}

	createdHabit, err := h.service.CreateHabit(c.Request.Context(), input)
	if err != nil {
		c.JSON(habitStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": HabitToResponse(createdHabit)})
}

// GetHabit godoc
// @Summary Get a habit by ID
// @Description Get detailed information about a specific habit, including its history
// @Tags habits
// @Accept json
// @Produce json
// @Param id path string true "Habit ID" format(uuid)
// @Success 200 {object} dto.HabitResponse "Habit details retrieved successfully"
// @Failure 400 {object} map[string]string "Invalid habit ID"
// @Failure 404 {object} map[string]string "Habit not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/habits/{id} [get]
func (h *HabitsHandler) GetHabit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid habit ID"})
		return
	}

	habit, err := h.service.GetHabit(c.Request.Context(), id)
	if err != nil {
		c.JSON(habitStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": HabitToResponse(habit)})
}

// ListHabits godoc
// @Summary List habits
// @Description Get all tracked habits, optionally filtered by category or a name search
// @Tags habits
// @Accept json
// @Produce json
// @Param category query string false "Habit category"
// @Param search query string false "Case-insensitive name substring"
// @Success 200 {object} dto.HabitListResponse "List of habits retrieved successfully"
// @Failure 400 {object} map[string]string "Invalid request parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/habits [get]
func (h *HabitsHandler) ListHabits(c *gin.Context) {
	var req dto.HabitFilterRequest
	validatedQuery, exists := c.Get("validated_query")

	if exists {
		if validatedPtr, ok := validatedQuery.(*dto.HabitFilterRequest); ok {
			req = *validatedPtr
		} else {
			log.Errorf("Invalid model type: %T, expected *dto.HabitFilterRequest", validatedQuery)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model type from validation"})
			return
		}
	} else {
		if err := c.ShouldBindQuery(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
			return
		}
	}

	filter := habits.HabitFilter{}
	if req.Category != "" {
		filter.Category = &req.Category
	}
	if req.Search != "" {
		filter.Search = &req.Search
	}

	habitList, err := h.service.ListHabits(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.HabitListResponse{
		Habits: HabitsToResponse(habitList),
		Total:  len(habitList),
	}})
}

// UpdateHabit godoc
// @Summary Update a habit
// @Description Update an existing habit's information; the completion history is left untouched
// @Tags habits
// @Accept json
// @Produce json
// @Param id path string true "Habit ID" format(uuid)
// @Param habit body dto.UpdateHabitRequest true "Habit update information"
// @Success 200 {object} dto.HabitResponse "Habit updated successfully"
// @Failure 400 {object} map[string]string "Invalid request or habit ID"
// @Failure 404 {object} map[string]string "Habit not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/habits/{id} [put]
func (h *HabitsHandler) UpdateHabit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid habit ID"})
		return
	}

	var req dto.UpdateHabitRequest
	validatedModel, exists := c.Get("validated_model")

	if exists {
		if validatedPtr, ok := validatedModel.(*dto.UpdateHabitRequest); ok {
			req = *validatedPtr
		} else {
			log.Errorf("Invalid model type: %T, expected *dto.UpdateHabitRequest", validatedModel)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model type from validation"})
			return
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	input := habits.UpdateHabitInput{
		Name:     req.Name,
		Icon:     req.Icon,
		Category: req.Category,
	}

	updatedHabit, err := h.service.UpdateHabit(c.Request.Context(), id, input)
	if err != nil {
		c.JSON(habitStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": HabitToResponse(updatedHabit)})
}

// ToggleHistory godoc
// @Summary Toggle a habit's day
// @Description Flip a habit's completion for a date. A checked day toggles back to unchecked by removing the history entry. An empty body targets the current day.
// @Tags habits
// @Accept json
// @Produce json
// @Param id path string true "Habit ID" format(uuid)
// @Param toggle body dto.ToggleHabitRequest false "Date to toggle (YYYY-MM-DD)"
// @Success 200 {object} dto.HabitResponse "Habit history toggled successfully"
// @Failure 400 {object} map[string]string "Invalid habit ID or date"
// @Failure 404 {object} map[string]string "Habit not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/habits/{id}/toggle [post]
func (h *HabitsHandler) ToggleHistory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid habit ID"})
		return
	}

	// The body is optional; without one the toggle targets today
	var req dto.ToggleHabitRequest
	validatedModel, exists := c.Get("validated_model")

	if exists {
		if validatedPtr, ok := validatedModel.(*dto.ToggleHabitRequest); ok {
			req = *validatedPtr
		} else {
			log.Errorf("Invalid model type: %T, expected *dto.ToggleHabitRequest", validatedModel)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model type from validation"})
			return
		}
	} else if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	} else if dateStr := c.Query("date"); dateStr != "" {
		req.Date = dateStr
	}

	habit, err := h.service.ToggleHistory(c.Request.Context(), id, req.Date)
	if err != nil {
		c.JSON(habitStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": HabitToResponse(habit)})
}

// DeleteHabit godoc
// @Summary Delete a habit
// @Description Delete a habit and its history by ID
// @Tags habits
// @Accept json
// @Produce json
// @Param id path string true "Habit ID" format(uuid)
// @Success 204 "Habit deleted successfully"
// @Failure 400 {object} map[string]string "Invalid habit ID"
// @Failure 404 {object} map[string]string "Habit not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/habits/{id} [delete]
func (h *HabitsHandler) DeleteHabit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid habit ID"})
		return
	}

	err = h.service.DeleteHabit(c.Request.Context(), id)
	if err != nil {
		c.JSON(habitStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
