package state

import (
	"context"

	"github.com/ahmedmaged64/LifeQuest/internal/domain/settings"
)

// settingsRepository implements settings.Repository over the container.
type settingsRepository struct {
	c *Container
}

func (r *settingsRepository) Get(ctx context.Context) (*settings.Settings, error) {
	var out settings.Settings
	r.c.read(func(s *AppState) {
		out = settings.Settings{Theme: s.Theme}
	})
	return &out, nil
}

func (r *settingsRepository) SetTheme(ctx context.Context, theme settings.Theme) (*settings.Settings, error) {
	err := r.c.mutate(ctx, func(s *AppState) error {
		s.Theme = theme
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &settings.Settings{Theme: theme}, nil
}
