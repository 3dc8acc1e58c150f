package task

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrInvalidInput = errors.New("invalid input")
)

// TaskFilter defines filtering options for tasks
type TaskFilter struct {
	Date       *string
	Status     *TaskStatus
	Priority   *TaskPriority
	Recurrence *TaskRecurrence
	Search     *string
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(ctx context.Context, t *Task) error
	FindByID(ctx context.Context, id uuid.UUID) (*Task, error)
	List(ctx context.Context, filter TaskFilter) ([]Task, error)
	Update(ctx context.Context, t *Task) error
	// UpdateWithSuccessor writes the updated task and, in the same
	// critical section, inserts successor unless another task with the
	// same title already exists on the successor's date. It reports
	// whether the successor was inserted. A nil successor degrades to a
	// plain update.
	UpdateWithSuccessor(ctx context.Context, updated *Task, successor *Task) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Matches reports whether t satisfies every set field of the filter.
func (f TaskFilter) Matches(t *Task) bool {
	if f.Date != nil && t.Date != *f.Date {
		return false
	}
	if f.Status != nil && t.Status != *f.Status {
		return false
	}
	if f.Priority != nil && t.Priority != *f.Priority {
		return false
	}
	if f.Recurrence != nil && t.Recurrence != *f.Recurrence {
		return false
	}
	if f.Search != nil && !strings.Contains(strings.ToLower(t.Title), strings.ToLower(*f.Search)) {
		return false
	}
	return true
}
