package state

import (
	"context"

	"github.com/google/uuid"

	"github.com/ahmedmaged64/LifeQuest/internal/domain/task"
)

// taskRepository implements task.TaskRepository over the container.
type taskRepository struct {
	c *Container
}

func (r *taskRepository) Create(ctx context.Context, t *task.Task) error {
	return r.c.mutate(ctx, func(s *AppState) error {
		s.Tasks = append(s.Tasks, *t)
		return nil
	})
}

func (r *taskRepository) FindByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	var found *task.Task
	r.c.read(func(s *AppState) {
		for i := range s.Tasks {
			if s.Tasks[i].ID == id {
				t := s.Tasks[i]
				found = &t
				return
			}
		}
	})
	if found == nil {
		return nil, task.ErrTaskNotFound
	}
	return found, nil
}

func (r *taskRepository) List(ctx context.Context, filter task.TaskFilter) ([]task.Task, error) {
	out := make([]task.Task, 0)
	r.c.read(func(s *AppState) {
		for i := range s.Tasks {
			if filter.Matches(&s.Tasks[i]) {
				out = append(out, s.Tasks[i])
			}
		}
	})
	return out, nil
}

func (r *taskRepository) Update(ctx context.Context, t *task.Task) error {
	return r.c.mutate(ctx, func(s *AppState) error {
		for i := range s.Tasks {
			if s.Tasks[i].ID == t.ID {
				s.Tasks[i] = *t
				return nil
			}
		}
		return task.ErrTaskNotFound
	})
}

func (r *taskRepository) UpdateWithSuccessor(ctx context.Context, updated *task.Task, successor *task.Task) (bool, error) {
	created := false
	err := r.c.mutate(ctx, func(s *AppState) error {
		idx := -1
		for i := range s.Tasks {
			if s.Tasks[i].ID == updated.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return task.ErrTaskNotFound
		}
		s.Tasks[idx] = *updated

		if successor == nil {
			return nil
		}
		// The duplicate guard keys on (title, date) so repeated toggles
		// materialize at most one next occurrence.
		for i := range s.Tasks {
			if s.Tasks[i].Title == successor.Title && s.Tasks[i].Date == successor.Date {
				return nil
			}
		}
		s.Tasks = append(s.Tasks, *successor)
		created = true
		return nil
	})
	return created, err
}

func (r *taskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.c.mutate(ctx, func(s *AppState) error {
		for i := range s.Tasks {
			if s.Tasks[i].ID == id {
				s.Tasks = append(s.Tasks[:i], s.Tasks[i+1:]...)
				return nil
			}
		}
		return task.ErrTaskNotFound
	})
}
