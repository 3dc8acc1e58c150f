package state

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/ahmedmaged64/LifeQuest/internal/domain/habits"
	"github.com/ahmedmaged64/LifeQuest/internal/domain/reflection"
	"github.com/ahmedmaged64/LifeQuest/internal/domain/settings"
	"github.com/ahmedmaged64/LifeQuest/internal/domain/task"
)

// AppState is the whole persisted world. Every mutation rewrites it to
// the store as a single JSON blob.
type AppState struct {
	Tasks       []task.Task                      `json:"tasks"`
	Habits      []habits.Habit                   `json:"habits"`
	Reflections map[string]reflection.Reflection `json:"reflections"`
	Theme       settings.Theme                   `json:"theme"`
}

// BlobStore persists the serialized state. Load returns (nil, nil) when
// nothing has been stored yet.
type BlobStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, blob []byte) error
	Ping(ctx context.Context) error
}

// DefaultState is the empty world every fresh install starts from.
func DefaultState() AppState {
	return AppState{
		Tasks:       []task.Task{},
		Habits:      []habits.Habit{},
		Reflections: map[string]reflection.Reflection{},
		Theme:       settings.ThemeLight,
	}
}

// Container owns the in-memory state and serializes access to it. The
// repositories handed out by its accessors funnel through one mutex,
// and every mutation is written back to the store before the lock
// drops. Reads never touch the store.
type Container struct {
	mu     sync.RWMutex
	state  AppState
	store  BlobStore
	logger *zap.Logger
}

// NewContainer restores the persisted state. A missing or malformed
// blob is logged and replaced with defaults; only store I/O failures
// surface as errors.
func NewContainer(ctx context.Context, store BlobStore, logger *zap.Logger) (*Container, error) {
	c := &Container{store: store, logger: logger, state: DefaultState()}

	blob, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(blob) == 0 {
		logger.Info("No persisted state found, starting fresh")
		return c, nil
	}

	var loaded AppState
	if err := json.Unmarshal(blob, &loaded); err != nil {
		logger.Warn("Persisted state is malformed, starting from defaults", zap.Error(err))
		return c, nil
	}

	c.state = normalize(loaded)
	logger.Info("Restored persisted state",
		zap.Int("tasks", len(c.state.Tasks)),
		zap.Int("habits", len(c.state.Habits)),
		zap.Int("reflections", len(c.state.Reflections)))
	return c, nil
}

// Tasks returns the task repository view over the container.
func (c *Container) Tasks() task.TaskRepository {
	return &taskRepository{c: c}
}

// Habits returns the habit repository view over the container.
func (c *Container) Habits() habits.Repository {
	return &habitRepository{c: c}
}

// Reflections returns the reflection repository view over the container.
func (c *Container) Reflections() reflection.Repository {
	return &reflectionRepository{c: c}
}

// Settings returns the settings repository view over the container.
func (c *Container) Settings() settings.Repository {
	return &settingsRepository{c: c}
}

// Snapshot returns a deep copy of the current state, detached from the
// container's own collections.
func (c *Container) Snapshot() AppState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneState(&c.state)
}

// Replace swaps in a whole new state and persists it. Used by import.
func (c *Container) Replace(ctx context.Context, next AppState) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	clone := cloneState(&next)
	c.state = normalize(clone)
	return c.persistLocked(ctx)
}

// Ready reports whether the backing store is reachable.
func (c *Container) Ready(ctx context.Context) error {
	return c.store.Ping(ctx)
}

// mutate runs fn under the write lock and persists the result before
// releasing it. A persist failure leaves the in-memory mutation in
// place; the next successful mutation rewrites the whole blob anyway.
func (c *Container) mutate(ctx context.Context, fn func(*AppState) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := fn(&c.state); err != nil {
		return err
	}
	return c.persistLocked(ctx)
}

func (c *Container) read(fn func(*AppState)) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fn(&c.state)
}

func (c *Container) persistLocked(ctx context.Context) error {
	blob, err := json.Marshal(c.state)
	if err != nil {
		return err
	}
	if err := c.store.Save(ctx, blob); err != nil {
		c.logger.Error("Failed to persist state", zap.Error(err))
		return err
	}
	return nil
}

func normalize(s AppState) AppState {
	if s.Tasks == nil {
		s.Tasks = []task.Task{}
	}
	if s.Habits == nil {
		s.Habits = []habits.Habit{}
	}
	if s.Reflections == nil {
		s.Reflections = map[string]reflection.Reflection{}
	}
	if !s.Theme.IsValid() {
		s.Theme = settings.ThemeLight
	}
	return s
}

func cloneState(s *AppState) AppState {
	out := AppState{
		Tasks:       make([]task.Task, len(s.Tasks)),
		Habits:      make([]habits.Habit, 0, len(s.Habits)),
		Reflections: make(map[string]reflection.Reflection, len(s.Reflections)),
		Theme:       s.Theme,
	}
	copy(out.Tasks, s.Tasks)
	for i := range s.Habits {
		out.Habits = append(out.Habits, cloneHabit(&s.Habits[i]))
	}
	for date, r := range s.Reflections {
		out.Reflections[date] = r
	}
	return out
}

// cloneHabit detaches the history map so callers can never alias the
// container's guarded copy.
func cloneHabit(h *habits.Habit) habits.Habit {
	out := *h
	out.History = make(map[string]bool, len(h.History))
	for date, done := range h.History {
		out.History[date] = done
	}
	return out
}
