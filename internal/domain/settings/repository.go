package settings

import (
	"context"
	"errors"
)

var ErrInvalidTheme = errors.New("invalid theme")

// Repository defines the interface for settings persistence operations
type Repository interface {
	Get(ctx context.Context) (*Settings, error)
	SetTheme(ctx context.Context, theme Theme) (*Settings, error)
}
