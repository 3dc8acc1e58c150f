package habits

import (
	"github.com/google/uuid"
)

// DateLayout is the calendar-date format habit history keys use.
const DateLayout = "2006-01-02"

// Habit represents a recurring practice tracked once per calendar day.
// History maps a date string to done; a missing key reads as not done.
type Habit struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Icon      string          `json:"icon,omitempty"`
	Category  string          `json:"category,omitempty"`
	CreatedAt string          `json:"created_at"`
	History   map[string]bool `json:"history"`
}

// CreateHabitInput represents the input for creating a new habit
type CreateHabitInput struct {
	Name     string `json:"name"`
	Icon     string `json:"icon,omitempty"`
	Category string `json:"category,omitempty"`
}

// UpdateHabitInput represents the input for updating a habit
type UpdateHabitInput struct {
	Name     *string `json:"name,omitempty"`
	Icon     *string `json:"icon,omitempty"`
	Category *string `json:"category,omitempty"`
}

// DoneOn reports whether the habit was checked off on date.
func (h *Habit) DoneOn(date string) bool {
	return h.History[date]
}

// ToggleDay flips the history entry for date and reports the new state.
// Unchecking removes the key instead of storing false, so absence stays
// the only representation of "not done".
func (h *Habit) ToggleDay(date string) bool {
	if h.History == nil {
		h.History = make(map[string]bool)
	}
	if h.History[date] {
		delete(h.History, date)
		return false
	}
	h.History[date] = true
	return true
}

// CheckedDays returns the number of recorded done days.
func (h *Habit) CheckedDays() int {
	n := 0
	for _, done := range h.History {
		if done {
			n++
		}
	}
	return n
}

// Validate checks if the habit data is valid
func (h *Habit) Validate() error {
	if h.Name == "" {
		return ErrInvalidInput
	}
	return nil
}
