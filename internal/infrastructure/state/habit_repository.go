package state

import (
	"context"

	"github.com/google/uuid"

	"github.com/ahmedmaged64/LifeQuest/internal/domain/habits"
)

// habitRepository implements habits.Repository over the container.
// Habits are cloned on the way in and out; the history map must never
// leak across the lock boundary.
type habitRepository struct {
	c *Container
}

func (r *habitRepository) Create(ctx context.Context, h *habits.Habit) error {
	return r.c.mutate(ctx, func(s *AppState) error {
		s.Habits = append(s.Habits, cloneHabit(h))
		return nil
	})
}

func (r *habitRepository) FindByID(ctx context.Context, id uuid.UUID) (*habits.Habit, error) {
	var found *habits.Habit
	r.c.read(func(s *AppState) {
		for i := range s.Habits {
			if s.Habits[i].ID == id {
				h := cloneHabit(&s.Habits[i])
				found = &h
				return
			}
		}
	})
	if found == nil {
		return nil, habits.ErrHabitNotFound
	}
	return found, nil
}

func (r *habitRepository) FindAll(ctx context.Context, filter habits.HabitFilter) ([]habits.Habit, error) {
	out := make([]habits.Habit, 0)
	r.c.read(func(s *AppState) {
		for i := range s.Habits {
			if filter.Matches(&s.Habits[i]) {
				out = append(out, cloneHabit(&s.Habits[i]))
			}
		}
	})
	return out, nil
}

func (r *habitRepository) Update(ctx context.Context, h *habits.Habit) error {
	return r.c.mutate(ctx, func(s *AppState) error {
		for i := range s.Habits {
			if s.Habits[i].ID == h.ID {
				s.Habits[i] = cloneHabit(h)
				return nil
			}
		}
		return habits.ErrHabitNotFound
	})
}

func (r *habitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.c.mutate(ctx, func(s *AppState) error {
		for i := range s.Habits {
			if s.Habits[i].ID == id {
				s.Habits = append(s.Habits[:i], s.Habits[i+1:]...)
				return nil
			}
		}
		return habits.ErrHabitNotFound
	})
}
