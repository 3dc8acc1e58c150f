package habits

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type mockRepository struct {
	habits []Habit
}

func (m *mockRepository) Create(ctx context.Context, h *Habit) error {
	m.habits = append(m.habits, *h)
	return nil
}

func (m *mockRepository) FindByID(ctx context.Context, id uuid.UUID) (*Habit, error) {
	for i := range m.habits {
		if m.habits[i].ID == id {
			h := m.habits[i]
			return &h, nil
		}
	}
	return nil, ErrHabitNotFound
}

func (m *mockRepository) FindAll(ctx context.Context, filter HabitFilter) ([]Habit, error) {
	out := make([]Habit, 0)
	for i := range m.habits {
		if filter.Matches(&m.habits[i]) {
			out = append(out, m.habits[i])
		}
	}
	return out, nil
}

func (m *mockRepository) Update(ctx context.Context, h *Habit) error {
	for i := range m.habits {
		if m.habits[i].ID == h.ID {
			m.habits[i] = *h
			return nil
		}
	}
	return ErrHabitNotFound
}

func (m *mockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range m.habits {
		if m.habits[i].ID == id {
			m.habits = append(m.habits[:i], m.habits[i+1:]...)
			return nil
		}
	}
	return ErrHabitNotFound
}

func TestToggleDay(t *testing.T) {
	tests := []struct {
		name        string
		history     map[string]bool
		date        string
		wantDone    bool
		wantPresent bool
	}{
		{
			name:        "Missing key toggles to done",
			history:     map[string]bool{},
			date:        "2024-01-05",
			wantDone:    true,
			wantPresent: true,
		},
		{
			name:        "Done key is removed when unchecked",
			history:     map[string]bool{"2024-01-05": true},
			date:        "2024-01-05",
			wantDone:    false,
			wantPresent: false,
		},
		{
			name:        "Nil history map is initialized",
			history:     nil,
			date:        "2024-01-05",
			wantDone:    true,
			wantPresent: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Habit{ID: uuid.New(), Name: "Read", History: tt.history}

			done := h.ToggleDay(tt.date)
			assert.Equal(t, tt.wantDone, done)

			_, present := h.History[tt.date]
			assert.Equal(t, tt.wantPresent, present, "unchecking must remove the key, not store false")
			assert.Equal(t, tt.wantDone, h.DoneOn(tt.date))
		})
	}
}

func TestCreateHabit(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo, zap.NewNop())

	habit, err := svc.CreateHabit(context.Background(), CreateHabitInput{Name: "Read", Icon: "book", Category: "learning"})
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, habit.ID)
	assert.NotNil(t, habit.History)
	assert.Empty(t, habit.History)
	assert.NotEmpty(t, habit.CreatedAt)

	_, err = svc.CreateHabit(context.Background(), CreateHabitInput{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestToggleHistory(t *testing.T) {
	seed := Habit{ID: uuid.New(), Name: "Read", History: map[string]bool{}}
	repo := &mockRepository{habits: []Habit{seed}}
	svc := NewService(repo, zap.NewNop())
	ctx := context.Background()

	habit, err := svc.ToggleHistory(ctx, seed.ID, "2024-01-05")
	assert.NoError(t, err)
	assert.True(t, habit.DoneOn("2024-01-05"))

	habit, err = svc.ToggleHistory(ctx, seed.ID, "2024-01-05")
	assert.NoError(t, err)
	assert.False(t, habit.DoneOn("2024-01-05"))
	_, present := habit.History["2024-01-05"]
	assert.False(t, present)

	_, err = svc.ToggleHistory(ctx, seed.ID, "Jan 5 2024")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.ToggleHistory(ctx, uuid.New(), "2024-01-05")
	assert.ErrorIs(t, err, ErrHabitNotFound)

	habit, err = svc.ToggleHistory(ctx, seed.ID, "")
	assert.NoError(t, err)
	assert.Equal(t, 1, habit.CheckedDays(), "empty date should toggle today")
}

func TestUpdateHabit(t *testing.T) {
	seed := Habit{ID: uuid.New(), Name: "Read", Category: "learning", History: map[string]bool{"2024-01-05": true}}
	repo := &mockRepository{habits: []Habit{seed}}
	svc := NewService(repo, zap.NewNop())

	name := "Read fiction"
	habit, err := svc.UpdateHabit(context.Background(), seed.ID, UpdateHabitInput{Name: &name})
	assert.NoError(t, err)
	assert.Equal(t, "Read fiction", habit.Name)
	assert.Equal(t, "learning", habit.Category)
	assert.True(t, habit.DoneOn("2024-01-05"), "updating fields must not touch history")

	empty := ""
	_, err = svc.UpdateHabit(context.Background(), seed.ID, UpdateHabitInput{Name: &empty})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteHabit(t *testing.T) {
	seed := Habit{ID: uuid.New(), Name: "Read", History: map[string]bool{}}
	repo := &mockRepository{habits: []Habit{seed}}
	svc := NewService(repo, zap.NewNop())

	assert.NoError(t, svc.DeleteHabit(context.Background(), seed.ID))
	assert.Empty(t, repo.habits)

	err := svc.DeleteHabit(context.Background(), seed.ID)
	assert.ErrorIs(t, err, ErrHabitNotFound)
}

func TestHabitAggregates(t *testing.T) {
	habits := []Habit{
		{ID: uuid.New(), Name: "Read", History: map[string]bool{"2024-01-01": true, "2024-01-02": true}},
		{ID: uuid.New(), Name: "Run", History: map[string]bool{"2024-01-02": true}},
		{ID: uuid.New(), Name: "Meditate", History: map[string]bool{}},
	}

	assert.Equal(t, 3, TotalChecked(habits))
	assert.Equal(t, 1, CheckedOn(habits, "2024-01-01"))
	assert.Equal(t, 2, CheckedOn(habits, "2024-01-02"))
	assert.Equal(t, 0, CheckedOn(habits, "2024-01-03"))
}
