package reflection

import (
	"context"
	"errors"
)

var (
	ErrReflectionNotFound = errors.New("reflection not found")
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")
)

// Repository defines the interface for reflection persistence operations
type Repository interface {
	FindByDate(ctx context.Context, date string) (*Reflection, error)
	FindAll(ctx context.Context) ([]Reflection, error)
	Upsert(ctx context.Context, r *Reflection) error
}
