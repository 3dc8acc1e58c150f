package settings

import "context"

type Service interface {
	GetSettings(ctx context.Context) (*Settings, error)
	UpdateTheme(ctx context.Context, theme Theme) (*Settings, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetSettings(ctx context.Context) (*Settings, error) {
	return s.repo.Get(ctx)
}

func (s *service) UpdateTheme(ctx context.Context, theme Theme) (*Settings, error) {
	if !theme.IsValid() {
		return nil, ErrInvalidTheme
	}
	return s.repo.SetTheme(ctx, theme)
}
