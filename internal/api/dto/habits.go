package dto

import "github.com/google/uuid"

// CreateHabitRequest represents the request body for creating a habit
// @Description Request body for creating a new habit to track
type CreateHabitRequest struct {
	Name     string `json:"name" binding:"required" validate:"required,not_empty"`
	Icon     string `json:"icon" example:"📖"`
	Category string `json:"category" example:"learning"`
}

// UpdateHabitRequest represents the request body for updating a habit
// @Description Request body for updating habit information
type UpdateHabitRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,not_empty"`
	Icon     *string `json:"icon,omitempty"`
	Category *string `json:"category,omitempty"`
}

// ToggleHabitRequest represents the request body for toggling a habit's
// history entry; an empty date targets the current day
type ToggleHabitRequest struct {
	Date string `json:"date" validate:"omitempty,valid_date" example:"2024-03-15"`
}

// HabitResponse represents a habit in API responses
// @Description Habit information including its per-day completion history
type HabitResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Icon      string          `json:"icon,omitempty"`
	Category  string          `json:"category,omitempty"`
	CreatedAt string          `json:"created_at"`
	History   map[string]bool `json:"history"`
}

// HabitListResponse represents a list of habits with a total count
type HabitListResponse struct {
	Habits []HabitResponse `json:"habits"`
	Total  int             `json:"total"`
}

// HabitFilterRequest represents the query parameters for filtering habits
type HabitFilterRequest struct {
	Category string `form:"category" example:"health"`
	Search   string `form:"search" example:"read"`
}
