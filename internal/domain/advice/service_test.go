package advice

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/ahmedmaged64/LifeQuest/internal/domain/task"
)

type mockGenerator struct {
	enabled bool
	text    string
	err     error
	calls   int
	prompt  string
}

func (m *mockGenerator) Enabled() bool { return m.enabled }

func (m *mockGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	m.calls++
	m.prompt = prompt
	return m.text, m.err
}

type stubTaskRepository struct {
	tasks []task.Task
}

func (s *stubTaskRepository) Create(ctx context.Context, t *task.Task) error { return nil }

func (s *stubTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	return nil, task.ErrTaskNotFound
}

func (s *stubTaskRepository) List(ctx context.Context, filter task.TaskFilter) ([]task.Task, error) {
	out := make([]task.Task, 0)
	for i := range s.tasks {
		if filter.Matches(&s.tasks[i]) {
			out = append(out, s.tasks[i])
		}
	}
	return out, nil
}

func (s *stubTaskRepository) Update(ctx context.Context, t *task.Task) error { return nil }

func (s *stubTaskRepository) UpdateWithSuccessor(ctx context.Context, updated *task.Task, successor *task.Task) (bool, error) {
	return false, nil
}

func (s *stubTaskRepository) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestDailyAdviceGenerated(t *testing.T) {
	repo := &stubTaskRepository{tasks: []task.Task{
		{
			ID:        uuid.New(),
			Title:     "Morning run",
			Date:      "2024-01-10",
			StartTime: "07:00",
			EndTime:   "07:45",
			Priority:  task.PriorityHigh,
			Status:    task.StatusPending,
		},
		{
			ID:       uuid.New(),
			Title:    "File taxes",
			Date:     "2024-01-10",
			IsAllDay: true,
			Priority: task.PriorityMedium,
			Status:   task.StatusPending,
		},
	}}
	gen := &mockGenerator{enabled: true, text: "Run first, then tackle the paperwork."}
	svc := NewService(repo, gen, quietLogger())

	got, err := svc.DailyAdvice(context.Background(), "2024-01-10")
	assert.NoError(t, err)
	assert.True(t, got.Generated)
	assert.Equal(t, "Run first, then tackle the paperwork.", got.Text)
	assert.Equal(t, 1, gen.calls)

	assert.Contains(t, gen.prompt, "2024-01-10")
	assert.Contains(t, gen.prompt, "07:00-07:45")
	assert.Contains(t, gen.prompt, "Morning run")
	assert.Contains(t, gen.prompt, "high priority")
	assert.Contains(t, gen.prompt, "all day")
	assert.Contains(t, gen.prompt, "File taxes")
}

func TestDailyAdviceFallbacks(t *testing.T) {
	tests := []struct {
		name string
		gen  *mockGenerator
	}{
		{
			name: "Missing credentials never call out",
			gen:  &mockGenerator{enabled: false, text: "unused"},
		},
		{
			name: "Transport failure degrades to fallback",
			gen:  &mockGenerator{enabled: true, err: errors.New("connection refused")},
		},
		{
			name: "Empty completion degrades to fallback",
			gen:  &mockGenerator{enabled: true, text: "   "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&stubTaskRepository{}, tt.gen, quietLogger())

			got, err := svc.DailyAdvice(context.Background(), "2024-01-10")
			assert.NoError(t, err, "generation trouble must never surface as an error")
			assert.False(t, got.Generated)
			assert.Equal(t, Fallback, got.Text)
			if !tt.gen.enabled {
				assert.Zero(t, tt.gen.calls)
			}
		})
	}
}

func TestDailyAdviceEmptySchedule(t *testing.T) {
	gen := &mockGenerator{enabled: true, text: "Enjoy the open day."}
	svc := NewService(&stubTaskRepository{}, gen, quietLogger())

	got, err := svc.DailyAdvice(context.Background(), "2024-01-10")
	assert.NoError(t, err)
	assert.True(t, got.Generated)
	assert.Contains(t, gen.prompt, "nothing scheduled")
}

func TestDailyAdviceInvalidDate(t *testing.T) {
	svc := NewService(&stubTaskRepository{}, &mockGenerator{}, quietLogger())

	_, err := svc.DailyAdvice(context.Background(), "Jan 10")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
