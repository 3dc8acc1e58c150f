package habits

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrHabitNotFound = errors.New("habit not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidDate   = errors.New("invalid date, expected YYYY-MM-DD")
)

// HabitFilter defines the filtering options for habits
type HabitFilter struct {
	Category *string
	Search   *string
}

// Repository defines the interface for habit persistence operations
type Repository interface {
	Create(ctx context.Context, habit *Habit) error
	FindByID(ctx context.Context, id uuid.UUID) (*Habit, error)
	FindAll(ctx context.Context, filter HabitFilter) ([]Habit, error)
	Update(ctx context.Context, habit *Habit) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Matches reports whether h satisfies every set field of the filter.
func (f HabitFilter) Matches(h *Habit) bool {
	if f.Category != nil && h.Category != *f.Category {
		return false
	}
	if f.Search != nil && !strings.Contains(strings.ToLower(h.Name), strings.ToLower(*f.Search)) {
		return false
	}
	return true
}
