package state

import (
	"context"

	"github.com/ahmedmaged64/LifeQuest/internal/domain/reflection"
)

// reflectionRepository implements reflection.Repository over the
// container. The map is keyed by date, so upsert is a plain assignment.
type reflectionRepository struct {
	c *Container
}

func (r *reflectionRepository) FindByDate(ctx context.Context, date string) (*reflection.Reflection, error) {
	var found *reflection.Reflection
	r.c.read(func(s *AppState) {
		if entry, ok := s.Reflections[date]; ok {
			found = &entry
		}
	})
	if found == nil {
		return nil, reflection.ErrReflectionNotFound
	}
	return found, nil
}

func (r *reflectionRepository) FindAll(ctx context.Context) ([]reflection.Reflection, error) {
	out := make([]reflection.Reflection, 0)
	r.c.read(func(s *AppState) {
		for _, entry := range s.Reflections {
			out = append(out, entry)
		}
	})
	return out, nil
}

func (r *reflectionRepository) Upsert(ctx context.Context, entry *reflection.Reflection) error {
	return r.c.mutate(ctx, func(s *AppState) error {
		s.Reflections[entry.Date] = *entry
		return nil
	})
}
