package task

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type mockTaskRepository struct {
	tasks []Task
}

func (m *mockTaskRepository) Create(ctx context.Context, t *Task) error {
	m.tasks = append(m.tasks, *t)
	return nil
}

func (m *mockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*Task, error) {
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			t := m.tasks[i]
			return &t, nil
		}
	}
	return nil, ErrTaskNotFound
}

func (m *mockTaskRepository) List(ctx context.Context, filter TaskFilter) ([]Task, error) {
	out := make([]Task, 0)
	for i := range m.tasks {
		if filter.Matches(&m.tasks[i]) {
			out = append(out, m.tasks[i])
		}
	}
	return out, nil
}

func (m *mockTaskRepository) Update(ctx context.Context, t *Task) error {
	for i := range m.tasks {
		if m.tasks[i].ID == t.ID {
			m.tasks[i] = *t
			return nil
		}
	}
	return ErrTaskNotFound
}

func (m *mockTaskRepository) UpdateWithSuccessor(ctx context.Context, updated *Task, successor *Task) (bool, error) {
	if err := m.Update(ctx, updated); err != nil {
		return false, err
	}
	if successor == nil {
		return false, nil
	}
	for i := range m.tasks {
		if m.tasks[i].Title == successor.Title && m.tasks[i].Date == successor.Date {
			return false, nil
		}
	}
	m.tasks = append(m.tasks, *successor)
	return true, nil
}

func (m *mockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return ErrTaskNotFound
}

func newTestService(repo TaskRepository) Service {
	return NewService(repo, zap.NewNop())
}

func TestCreateTask(t *testing.T) {
	tests := []struct {
		name    string
		input   CreateTaskInput
		wantErr error
	}{
		{
			name: "Valid task with defaults",
			input: CreateTaskInput{
				Title: "Review pull requests",
				Date:  "2024-03-15",
			},
		},
		{
			name: "Valid timed task",
			input: CreateTaskInput{
				Title:      "Morning run",
				Date:       "2024-03-15",
				StartTime:  "07:00",
				EndTime:    "07:45",
				Priority:   PriorityHigh,
				Recurrence: RecurrenceDaily,
			},
		},
		{
			name:    "Missing title",
			input:   CreateTaskInput{Date: "2024-03-15"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "Missing date",
			input:   CreateTaskInput{Title: "Review pull requests"},
			wantErr: ErrInvalidDate,
		},
		{
			name: "Malformed date",
			input: CreateTaskInput{
				Title: "Review pull requests",
				Date:  "15/03/2024",
			},
			wantErr: ErrInvalidDate,
		},
		{
			name: "Malformed start time",
			input: CreateTaskInput{
				Title:     "Morning run",
				Date:      "2024-03-15",
				StartTime: "7am",
			},
			wantErr: ErrInvalidClock,
		},
		{
			name: "Unknown priority",
			input: CreateTaskInput{
				Title:    "Morning run",
				Date:     "2024-03-15",
				Priority: TaskPriority("urgent"),
			},
			wantErr: ErrInvalidPriority,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockTaskRepository{}
			svc := newTestService(repo)

			created, err := svc.CreateTask(context.Background(), tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, created)
				return
			}

			assert.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, created.ID)
			assert.Equal(t, StatusPending, created.Status)
			if tt.input.Priority == "" {
				assert.Equal(t, PriorityMedium, created.Priority)
			}
			if tt.input.Recurrence == "" {
				assert.Equal(t, RecurrenceNone, created.Recurrence)
			}
			assert.Len(t, repo.tasks, 1)
		})
	}
}

func TestToggleTask(t *testing.T) {
	tests := []struct {
		name          string
		seed          Task
		wantStatus    TaskStatus
		wantSuccessor bool
		wantDate      string
	}{
		{
			name:       "Pending one-off completes without successor",
			seed:       Task{Title: "File taxes", Date: "2024-03-15", Status: StatusPending, Priority: PriorityMedium, Recurrence: RecurrenceNone},
			wantStatus: StatusCompleted,
		},
		{
			name:       "In progress completes",
			seed:       Task{Title: "File taxes", Date: "2024-03-15", Status: StatusInProgress, Priority: PriorityMedium, Recurrence: RecurrenceNone},
			wantStatus: StatusCompleted,
		},
		{
			name:       "Completed reverts to pending",
			seed:       Task{Title: "File taxes", Date: "2024-03-15", Status: StatusCompleted, Priority: PriorityMedium, Recurrence: RecurrenceNone},
			wantStatus: StatusPending,
		},
		{
			name:          "Daily task spawns next day",
			seed:          Task{Title: "Stretch", Date: "2024-01-01", Status: StatusPending, Priority: PriorityMedium, Recurrence: RecurrenceDaily},
			wantStatus:    StatusCompleted,
			wantSuccessor: true,
			wantDate:      "2024-01-02",
		},
		{
			name:          "Daily task rolls over month end",
			seed:          Task{Title: "Stretch", Date: "2024-01-31", Status: StatusPending, Priority: PriorityMedium, Recurrence: RecurrenceDaily},
			wantStatus:    StatusCompleted,
			wantSuccessor: true,
			wantDate:      "2024-02-01",
		},
		{
			name:          "Daily task rolls over year end",
			seed:          Task{Title: "Stretch", Date: "2024-12-31", Status: StatusPending, Priority: PriorityMedium, Recurrence: RecurrenceDaily},
			wantStatus:    StatusCompleted,
			wantSuccessor: true,
			wantDate:      "2025-01-01",
		},
		{
			name:          "Daily task lands on leap day",
			seed:          Task{Title: "Stretch", Date: "2024-02-28", Status: StatusPending, Priority: PriorityMedium, Recurrence: RecurrenceDaily},
			wantStatus:    StatusCompleted,
			wantSuccessor: true,
			wantDate:      "2024-02-29",
		},
		{
			name:       "Weekly task never spawns",
			seed:       Task{Title: "Groceries", Date: "2024-01-01", Status: StatusPending, Priority: PriorityMedium, Recurrence: RecurrenceWeekly},
			wantStatus: StatusCompleted,
		},
		{
			name:       "Uncompleting a daily task spawns nothing",
			seed:       Task{Title: "Stretch", Date: "2024-01-01", Status: StatusCompleted, Priority: PriorityMedium, Recurrence: RecurrenceDaily},
			wantStatus: StatusPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.seed.ID = uuid.New()
			repo := &mockTaskRepository{tasks: []Task{tt.seed}}
			svc := newTestService(repo)

			result, err := svc.ToggleTask(context.Background(), tt.seed.ID)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, result.Task.Status)

			if !tt.wantSuccessor {
				assert.Nil(t, result.Successor)
				assert.Len(t, repo.tasks, 1)
				return
			}

			assert.NotNil(t, result.Successor)
			assert.Equal(t, tt.wantDate, result.Successor.Date)
			assert.Equal(t, StatusPending, result.Successor.Status)
			assert.Equal(t, tt.seed.Title, result.Successor.Title)
			assert.NotEqual(t, tt.seed.ID, result.Successor.ID)
			assert.Len(t, repo.tasks, 2)
		})
	}
}

func TestToggleTaskIdempotentExpansion(t *testing.T) {
	seed := Task{
		ID:         uuid.New(),
		Title:      "Stretch",
		Date:       "2024-01-01",
		Status:     StatusPending,
		Priority:   PriorityMedium,
		Recurrence: RecurrenceDaily,
	}
	repo := &mockTaskRepository{tasks: []Task{seed}}
	svc := newTestService(repo)
	ctx := context.Background()

	first, err := svc.ToggleTask(ctx, seed.ID)
	assert.NoError(t, err)
	assert.NotNil(t, first.Successor)

	second, err := svc.ToggleTask(ctx, seed.ID)
	assert.NoError(t, err)
	assert.Equal(t, StatusPending, second.Task.Status)
	assert.Nil(t, second.Successor)

	third, err := svc.ToggleTask(ctx, seed.ID)
	assert.NoError(t, err)
	assert.Equal(t, StatusCompleted, third.Task.Status)
	assert.Nil(t, third.Successor, "re-completing must not clone a second occurrence")
	assert.Len(t, repo.tasks, 2)
}

func TestUpdateTask(t *testing.T) {
	seed := Task{
		ID:         uuid.New(),
		Title:      "Stretch",
		Date:       "2024-01-01",
		Status:     StatusPending,
		Priority:   PriorityMedium,
		Recurrence: RecurrenceDaily,
	}
	repo := &mockTaskRepository{tasks: []Task{seed}}
	svc := newTestService(repo)

	completed := StatusCompleted
	updated, err := svc.UpdateTask(context.Background(), seed.ID, UpdateTaskInput{Status: &completed})
	assert.NoError(t, err)
	assert.Equal(t, StatusCompleted, updated.Status)
	assert.Len(t, repo.tasks, 1, "direct status writes must not schedule recurrences")

	badDate := "not-a-date"
	_, err = svc.UpdateTask(context.Background(), seed.ID, UpdateTaskInput{Date: &badDate})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.UpdateTask(context.Background(), uuid.New(), UpdateTaskInput{})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestDeleteTask(t *testing.T) {
	seed := Task{ID: uuid.New(), Title: "Stretch", Date: "2024-01-01", Status: StatusPending, Priority: PriorityMedium, Recurrence: RecurrenceNone}
	repo := &mockTaskRepository{tasks: []Task{seed}}
	svc := newTestService(repo)

	assert.NoError(t, svc.DeleteTask(context.Background(), seed.ID))
	assert.Empty(t, repo.tasks)

	err := svc.DeleteTask(context.Background(), seed.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestNextDay(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{"Plain day", "2024-03-15", "2024-03-16"},
		{"Month rollover", "2024-01-31", "2024-02-01"},
		{"Year rollover", "2024-12-31", "2025-01-01"},
		{"Leap February", "2024-02-28", "2024-02-29"},
		{"Leap day exit", "2024-02-29", "2024-03-01"},
		{"Non-leap February", "2023-02-28", "2023-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextDay(tt.date)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := NextDay("2024-13-01")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
