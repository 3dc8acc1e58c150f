package task

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (*Task, error)
	GetTask(ctx context.Context, id uuid.UUID) (*Task, error)
	ListTasks(ctx context.Context, filter TaskFilter) ([]Task, error)
	UpdateTask(ctx context.Context, id uuid.UUID, input UpdateTaskInput) (*Task, error)
	ToggleTask(ctx context.Context, id uuid.UUID) (*ToggleResult, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
	GetTodayTasks(ctx context.Context) ([]Task, error)
}

type CreateTaskInput struct {
	Title      string         `json:"title"`
	StartTime  string         `json:"start_time"`
	EndTime    string         `json:"end_time"`
	Priority   TaskPriority   `json:"priority"`
	IsAllDay   bool           `json:"is_all_day"`
	Date       string         `json:"date"`
	Recurrence TaskRecurrence `json:"recurrence"`
	Notes      string         `json:"notes,omitempty"`
}

type UpdateTaskInput struct {
	Title      *string         `json:"title,omitempty"`
	StartTime  *string         `json:"start_time,omitempty"`
	EndTime    *string         `json:"end_time,omitempty"`
	Priority   *TaskPriority   `json:"priority,omitempty"`
	Status     *TaskStatus     `json:"status,omitempty"`
	IsAllDay   *bool           `json:"is_all_day,omitempty"`
	Date       *string         `json:"date,omitempty"`
	Recurrence *TaskRecurrence `json:"recurrence,omitempty"`
	Notes      *string         `json:"notes,omitempty"`
}

// ToggleResult carries the toggled task and, when the toggle completed a
// daily task and scheduled its next occurrence, the inserted successor.
type ToggleResult struct {
	Task      *Task `json:"task"`
	Successor *Task `json:"successor,omitempty"`
}

type service struct {
	repo   TaskRepository
	logger *zap.Logger
}

func NewService(repo TaskRepository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) CreateTask(ctx context.Context, input CreateTaskInput) (*Task, error) {
	// Validate input
	if input.Title == "" {
		return nil, ErrInvalidInput
	}

	// Set default values
	if input.Priority == "" {
		input.Priority = PriorityMedium
	}
	if input.Recurrence == "" {
		input.Recurrence = RecurrenceNone
	}

	task := &Task{
		ID:         uuid.New(),
		Title:      input.Title,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		Priority:   input.Priority,
		Status:     StatusPending,
		IsAllDay:   input.IsAllDay,
		Date:       input.Date,
		Recurrence: input.Recurrence,
		Notes:      input.Notes,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *service) GetTask(ctx context.Context, id uuid.UUID) (*Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (s *service) ListTasks(ctx context.Context, filter TaskFilter) ([]Task, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) UpdateTask(ctx context.Context, id uuid.UUID, input UpdateTaskInput) (*Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	// Update fields if provided. Direct status writes never schedule a
	// recurrence; only ToggleTask does.
	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.StartTime != nil {
		task.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		task.EndTime = *input.EndTime
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.IsAllDay != nil {
		task.IsAllDay = *input.IsAllDay
	}
	if input.Date != nil {
		task.Date = *input.Date
	}
	if input.Recurrence != nil {
		task.Recurrence = *input.Recurrence
	}
	if input.Notes != nil {
		task.Notes = *input.Notes
	}
	task.UpdatedAt = time.Now()

	if err := task.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *service) ToggleTask(ctx context.Context, id uuid.UUID) (*ToggleResult, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	if task.Status == StatusCompleted {
		task.Status = StatusPending
	} else {
		task.Status = StatusCompleted
	}
	task.UpdatedAt = time.Now()

	// Completing a daily task schedules its next occurrence. The update
	// and the duplicate-guarded insert share one critical section.
	if task.Status == StatusCompleted && task.Recurrence == RecurrenceDaily {
		successor, err := task.Successor()
		if err != nil {
			return nil, err
		}
		created, err := s.repo.UpdateWithSuccessor(ctx, task, successor)
		if err != nil {
			return nil, err
		}
		result := &ToggleResult{Task: task}
		if created {
			result.Successor = successor
			s.logger.Info("Scheduled next occurrence of recurring task",
				zap.String("task_id", task.ID.String()),
				zap.String("date", successor.Date))
		}
		return result, nil
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return &ToggleResult{Task: task}, nil
}

func (s *service) DeleteTask(ctx context.Context, id uuid.UUID) error {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if task == nil {
		return ErrTaskNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) GetTodayTasks(ctx context.Context) ([]Task, error) {
	today := time.Now().Format(DateLayout)
	return s.repo.List(ctx, TaskFilter{Date: &today})
}
