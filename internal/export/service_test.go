package export

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/ahmedmaged64/LifeQuest/internal/domain/habits"
	"github.com/ahmedmaged64/LifeQuest/internal/domain/reflection"
	"github.com/ahmedmaged64/LifeQuest/internal/domain/settings"
	"github.com/ahmedmaged64/LifeQuest/internal/domain/task"
	"github.com/ahmedmaged64/LifeQuest/internal/infrastructure/state"
)

type memoryStore struct {
	blob []byte
}

func (m *memoryStore) Load(ctx context.Context) ([]byte, error) { return m.blob, nil }

func (m *memoryStore) Save(ctx context.Context, blob []byte) error {
	m.blob = blob
	return nil
}

func (m *memoryStore) Ping(ctx context.Context) error { return nil }

func seededContainer(t *testing.T) *state.Container {
	t.Helper()
	c, err := state.NewContainer(context.Background(), &memoryStore{}, zap.NewNop())
	if err != nil {
		t.Fatalf("failed to build container: %v", err)
	}

	ts := time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)
	ctx := context.Background()
	if err := c.Tasks().Create(ctx, &task.Task{
		ID:         uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		Title:      "Morning run",
		Date:       "2024-01-10",
		StartTime:  "07:00",
		EndTime:    "07:45",
		Priority:   task.PriorityHigh,
		Status:     task.StatusCompleted,
		Recurrence: task.RecurrenceDaily,
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}); err != nil {
		t.Fatalf("seed task: %v", err)
	}
	if err := c.Habits().Create(ctx, &habits.Habit{
		ID:        uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8"),
		Name:      "Read",
		Icon:      "book",
		Category:  "learning",
		CreatedAt: "2024-01-01",
		History:   map[string]bool{"2024-01-09": true, "2024-01-10": true},
	}); err != nil {
		t.Fatalf("seed habit: %v", err)
	}
	if err := c.Reflections().Upsert(ctx, &reflection.Reflection{
		Date: "2024-01-10",
		Well: "Kept the routine",
	}); err != nil {
		t.Fatalf("seed reflection: %v", err)
	}
	if _, err := c.Settings().SetTheme(ctx, settings.ThemeDark); err != nil {
		t.Fatalf("seed theme: %v", err)
	}
	return c
}

func TestExportImportRoundTrip(t *testing.T) {
	source := seededContainer(t)
	svc := NewService(source)
	ctx := context.Background()

	exported, err := svc.ExportJSON(ctx)
	assert.NoError(t, err)

	// Import into a fresh container and export again: the bytes must
	// match exactly.
	target, err := state.NewContainer(ctx, &memoryStore{}, zap.NewNop())
	assert.NoError(t, err)
	targetSvc := NewService(target)

	summary, err := targetSvc.ImportJSON(ctx, exported)
	assert.NoError(t, err)
	assert.Equal(t, &ImportSummary{Tasks: 1, Habits: 1, Reflections: 1}, summary)

	reexported, err := targetSvc.ExportJSON(ctx)
	assert.NoError(t, err)
	assert.Equal(t, string(exported), string(reexported))
}

func TestImportReplacesEverything(t *testing.T) {
	source := seededContainer(t)
	exported, err := NewService(source).ExportJSON(context.Background())
	assert.NoError(t, err)

	target := seededContainer(t)
	ctx := context.Background()
	if err := target.Tasks().Create(ctx, &task.Task{
		ID:    uuid.New(),
		Title: "Doomed",
		Date:  "2024-02-01",
	}); err != nil {
		t.Fatalf("seed extra task: %v", err)
	}

	_, err = NewService(target).ImportJSON(ctx, exported)
	assert.NoError(t, err)

	snap := target.Snapshot()
	assert.Len(t, snap.Tasks, 1, "import must replace, not merge")
	assert.Equal(t, "Morning run", snap.Tasks[0].Title)
}

func TestImportRejectsGarbage(t *testing.T) {
	target := seededContainer(t)
	svc := NewService(target)

	summary, err := svc.ImportJSON(context.Background(), []byte("definitely not json"))
	assert.Nil(t, summary)
	assert.ErrorIs(t, err, ErrInvalidSnapshot)

	snap := target.Snapshot()
	assert.Len(t, snap.Tasks, 1, "a rejected import must leave state untouched")
}

func TestExportCSVSections(t *testing.T) {
	svc := NewService(seededContainer(t))

	out, err := svc.ExportCSV(context.Background())
	assert.NoError(t, err)
	text := string(out)

	assert.True(t, strings.HasPrefix(text, "tasks\n"))
	assert.Contains(t, text, "\nhabits\n")
	assert.Contains(t, text, "\nreflections\n")
	assert.Contains(t, text, "Morning run")
	assert.Contains(t, text, "2024-01-09=true;2024-01-10=true")
	assert.Contains(t, text, "Kept the routine")
	assert.NotContains(t, text, "dark", "theme is not part of the spreadsheet snapshot")
}
