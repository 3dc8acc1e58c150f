package state

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/ahmedmaged64/LifeQuest/internal/domain/habits"
	"github.com/ahmedmaged64/LifeQuest/internal/domain/reflection"
	"github.com/ahmedmaged64/LifeQuest/internal/domain/settings"
	"github.com/ahmedmaged64/LifeQuest/internal/domain/task"
)

type memoryStore struct {
	blob    []byte
	saves   int
	saveErr error
	pingErr error
}

func (m *memoryStore) Load(ctx context.Context) ([]byte, error) {
	return m.blob, nil
}

func (m *memoryStore) Save(ctx context.Context, blob []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.blob = blob
	return nil
}

func (m *memoryStore) Ping(ctx context.Context) error {
	return m.pingErr
}

func newTestContainer(t *testing.T, store BlobStore) *Container {
	t.Helper()
	c, err := NewContainer(context.Background(), store, zap.NewNop())
	assert.NoError(t, err)
	return c
}

func TestNewContainerDefaults(t *testing.T) {
	c := newTestContainer(t, &memoryStore{})

	snap := c.Snapshot()
	assert.Empty(t, snap.Tasks)
	assert.Empty(t, snap.Habits)
	assert.Empty(t, snap.Reflections)
	assert.Equal(t, settings.ThemeLight, snap.Theme)
}

func TestNewContainerMalformedBlob(t *testing.T) {
	store := &memoryStore{blob: []byte(`{"tasks": [not json`)}
	c := newTestContainer(t, store)

	snap := c.Snapshot()
	assert.Empty(t, snap.Tasks)
	assert.Equal(t, settings.ThemeLight, snap.Theme)
}

func TestMutationsPersistAcrossRestart(t *testing.T) {
	store := &memoryStore{}
	ctx := context.Background()

	first := newTestContainer(t, store)
	seed := task.Task{
		ID:         uuid.New(),
		Title:      "Water plants",
		Date:       "2024-01-10",
		Status:     task.StatusPending,
		Priority:   task.PriorityLow,
		Recurrence: task.RecurrenceNone,
	}
	assert.NoError(t, first.Tasks().Create(ctx, &seed))
	assert.NoError(t, first.Habits().Create(ctx, &habits.Habit{
		ID: uuid.New(), Name: "Read", History: map[string]bool{"2024-01-10": true},
	}))
	assert.NoError(t, first.Reflections().Upsert(ctx, &reflection.Reflection{
		Date: "2024-01-10", Well: "Good pace",
	}))
	_, err := first.Settings().SetTheme(ctx, settings.ThemeDark)
	assert.NoError(t, err)
	assert.Equal(t, 4, store.saves, "every mutation writes the blob once")

	second := newTestContainer(t, store)
	snap := second.Snapshot()
	assert.Len(t, snap.Tasks, 1)
	assert.Equal(t, "Water plants", snap.Tasks[0].Title)
	assert.Len(t, snap.Habits, 1)
	assert.True(t, snap.Habits[0].History["2024-01-10"])
	assert.Equal(t, "Good pace", snap.Reflections["2024-01-10"].Well)
	assert.Equal(t, settings.ThemeDark, snap.Theme)
}

func TestSnapshotIsDetached(t *testing.T) {
	store := &memoryStore{}
	c := newTestContainer(t, store)
	ctx := context.Background()

	assert.NoError(t, c.Habits().Create(ctx, &habits.Habit{
		ID: uuid.New(), Name: "Read", History: map[string]bool{"2024-01-10": true},
	}))

	snap := c.Snapshot()
	snap.Habits[0].History["2024-01-11"] = true
	snap.Tasks = append(snap.Tasks, task.Task{ID: uuid.New()})

	fresh := c.Snapshot()
	assert.Len(t, fresh.Habits[0].History, 1, "snapshot edits must not reach the container")
	assert.Empty(t, fresh.Tasks)
}

func TestFindByIDDetachesHistory(t *testing.T) {
	c := newTestContainer(t, &memoryStore{})
	ctx := context.Background()

	seed := habits.Habit{ID: uuid.New(), Name: "Read", History: map[string]bool{}}
	assert.NoError(t, c.Habits().Create(ctx, &seed))

	got, err := c.Habits().FindByID(ctx, seed.ID)
	assert.NoError(t, err)
	got.History["2024-01-10"] = true

	stored, err := c.Habits().FindByID(ctx, seed.ID)
	assert.NoError(t, err)
	assert.Empty(t, stored.History, "returned habits must not alias stored state")
}

func TestReplaceNormalizesAndPersists(t *testing.T) {
	store := &memoryStore{}
	c := newTestContainer(t, store)

	next := AppState{Theme: settings.Theme("neon")}
	assert.NoError(t, c.Replace(context.Background(), next))

	snap := c.Snapshot()
	assert.Equal(t, settings.ThemeLight, snap.Theme, "unknown themes fall back to light")
	assert.NotNil(t, snap.Reflections)
	assert.Equal(t, 1, store.saves)

	var persisted AppState
	assert.NoError(t, json.Unmarshal(store.blob, &persisted))
	assert.Equal(t, settings.ThemeLight, persisted.Theme)
}

func TestUpdateWithSuccessorDuplicateGuard(t *testing.T) {
	c := newTestContainer(t, &memoryStore{})
	ctx := context.Background()

	seed := task.Task{
		ID:         uuid.New(),
		Title:      "Stretch",
		Date:       "2024-01-01",
		Status:     task.StatusPending,
		Priority:   task.PriorityMedium,
		Recurrence: task.RecurrenceDaily,
	}
	assert.NoError(t, c.Tasks().Create(ctx, &seed))

	seed.Status = task.StatusCompleted
	successor, err := seed.Successor()
	assert.NoError(t, err)

	created, err := c.Tasks().UpdateWithSuccessor(ctx, &seed, successor)
	assert.NoError(t, err)
	assert.True(t, created)

	again, err := seed.Successor()
	assert.NoError(t, err)
	created, err = c.Tasks().UpdateWithSuccessor(ctx, &seed, again)
	assert.NoError(t, err)
	assert.False(t, created, "a matching title and date blocks a second insert")

	all, err := c.Tasks().List(ctx, task.TaskFilter{})
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMutationErrorSkipsPersist(t *testing.T) {
	store := &memoryStore{}
	c := newTestContainer(t, store)

	err := c.Tasks().Update(context.Background(), &task.Task{ID: uuid.New()})
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
	assert.Zero(t, store.saves)
}

func TestSaveFailureSurfaces(t *testing.T) {
	store := &memoryStore{saveErr: errors.New("disk full")}
	c := newTestContainer(t, store)

	err := c.Tasks().Create(context.Background(), &task.Task{ID: uuid.New(), Title: "Water plants", Date: "2024-01-10"})
	assert.Error(t, err)
}

func TestReady(t *testing.T) {
	healthy := newTestContainer(t, &memoryStore{})
	assert.NoError(t, healthy.Ready(context.Background()))

	sick := newTestContainer(t, &memoryStore{pingErr: errors.New("locked")})
	assert.Error(t, sick.Ready(context.Background()))
}
