package task

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date format every task date uses.
const DateLayout = "2006-01-02"

// ClockLayout is the wall-clock format for start and end times.
const ClockLayout = "15:04"

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

type TaskRecurrence string

const (
	RecurrenceNone   TaskRecurrence = "none"
	RecurrenceDaily  TaskRecurrence = "daily"
	RecurrenceWeekly TaskRecurrence = "weekly"
)

// Task represents a scheduled unit of work on a single calendar date.
type Task struct {
	ID         uuid.UUID      `json:"id"`
	Title      string         `json:"title"`
	StartTime  string         `json:"start_time"`
	EndTime    string         `json:"end_time"`
	Priority   TaskPriority   `json:"priority"`
	Status     TaskStatus     `json:"status"`
	IsAllDay   bool           `json:"is_all_day"`
	Date       string         `json:"date"`
	Recurrence TaskRecurrence `json:"recurrence"`
	Notes      string         `json:"notes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// Common errors
var (
	ErrInvalidStatus     = NewError("invalid task status")
	ErrInvalidPriority   = NewError("invalid task priority")
	ErrInvalidRecurrence = NewError("invalid task recurrence")
	ErrInvalidDate       = NewError("invalid date, expected YYYY-MM-DD")
	ErrInvalidClock      = NewError("invalid time, expected HH:MM")
)

// Error represents a domain error
type Error struct {
	message string
}

// NewError creates a new Error instance
func NewError(message string) *Error {
	return &Error{message: message}
}

// Error returns the error message
func (e *Error) Error() string {
	return e.message
}

func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func (r TaskRecurrence) IsValid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly:
		return true
	}
	return false
}

// ValidDate reports whether s is a well-formed calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ValidClock reports whether s is a well-formed wall-clock time.
// The empty string is accepted; all-day tasks carry no times.
func ValidClock(s string) bool {
	if s == "" {
		return true
	}
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}

// NextDay returns the calendar date one day after date, rolling over
// months and years with standard calendar arithmetic.
func NextDay(date string) (string, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", ErrInvalidDate
	}
	return t.AddDate(0, 0, 1).Format(DateLayout), nil
}

// Validate checks if the task data is valid
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrInvalidInput
	}
	if !ValidDate(t.Date) {
		return ErrInvalidDate
	}
	if !t.Status.IsValid() {
		return ErrInvalidStatus
	}
	if !t.Priority.IsValid() {
		return ErrInvalidPriority
	}
	if !t.Recurrence.IsValid() {
		return ErrInvalidRecurrence
	}
	if !ValidClock(t.StartTime) || !ValidClock(t.EndTime) {
		return ErrInvalidClock
	}
	return nil
}

// Successor clones the task onto the following calendar date with a
// fresh identity and a pending status. All other fields carry over.
func (t *Task) Successor() (*Task, error) {
	nextDate, err := NextDay(t.Date)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	next := *t
	next.ID = uuid.New()
	next.Date = nextDate
	next.Status = StatusPending
	next.CreatedAt = now
	next.UpdatedAt = now
	return &next, nil
}
