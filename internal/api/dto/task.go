package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateTaskRequest represents the request body for creating a task
// @Description Request body for creating a new task on the planner
type CreateTaskRequest struct {
	Title      string `json:"title" binding:"required" validate:"required,not_empty"`
	StartTime  string `json:"start_time" validate:"omitempty,valid_clock" example:"07:00"`
	EndTime    string `json:"end_time" validate:"omitempty,valid_clock" example:"07:45"`
	Priority   string `json:"priority" validate:"omitempty,oneof=low medium high" example:"high"`
	IsAllDay   bool   `json:"is_all_day"`
	Date       string `json:"date" binding:"required" validate:"required,valid_date" example:"2024-03-15"`
	Recurrence string `json:"recurrence" validate:"omitempty,oneof=none daily weekly" example:"daily"`
	Notes      string `json:"notes"`
}

// UpdateTaskRequest represents the request body for updating a task
// @Description Request body for updating task information
type UpdateTaskRequest struct {
	Title      *string `json:"title,omitempty" validate:"omitempty,not_empty"`
	StartTime  *string `json:"start_time,omitempty" validate:"omitempty,valid_clock"`
	EndTime    *string `json:"end_time,omitempty" validate:"omitempty,valid_clock"`
	Priority   *string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed"`
	IsAllDay   *bool   `json:"is_all_day,omitempty"`
	Date       *string `json:"date,omitempty" validate:"omitempty,valid_date"`
	Recurrence *string `json:"recurrence,omitempty" validate:"omitempty,oneof=none daily weekly"`
	Notes      *string `json:"notes,omitempty"`
}

// TaskResponse represents a task in API responses
// @Description Detailed task information returned in API responses
type TaskResponse struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Priority   string    `json:"priority"`
	Status     string    `json:"status"`
	IsAllDay   bool      `json:"is_all_day"`
	Date       string    `json:"date"`
	Recurrence string    `json:"recurrence"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TaskListResponse represents a list of tasks with a total count
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// ToggleTaskResponse represents the outcome of toggling a task's completion,
// including the next occurrence when the toggle scheduled one
type ToggleTaskResponse struct {
	Task      TaskResponse  `json:"task"`
	Successor *TaskResponse `json:"successor,omitempty"`
}

// TaskFilterRequest represents the query parameters for filtering tasks
type TaskFilterRequest struct {
	Date       string `form:"date" example:"2024-03-15"`
	Status     string `form:"status" example:"pending"`
	Priority   string `form:"priority" example:"high"`
	Recurrence string `form:"recurrence" example:"daily"`
	Search     string `form:"search" example:"gym"`
}
