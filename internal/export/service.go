package export

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ahmedmaged64/LifeQuest/internal/infrastructure/state"
)

var ErrInvalidSnapshot = errors.New("invalid snapshot")

// Snapshotter supplies and replaces the whole application state.
type Snapshotter interface {
	Snapshot() state.AppState
	Replace(ctx context.Context, next state.AppState) error
}

// ImportSummary reports how many records an import brought in.
type ImportSummary struct {
	Tasks       int
	Habits      int
	Reflections int
}

type Service interface {
	// ExportJSON serializes the full state as indented JSON. Importing
	// the output reproduces it byte for byte.
	ExportJSON(ctx context.Context) ([]byte, error)
	// ExportCSV renders a sectioned, read-only spreadsheet snapshot.
	ExportCSV(ctx context.Context) ([]byte, error)
	// ImportJSON replaces the entire state with a previously exported
	// snapshot.
	ImportJSON(ctx context.Context, blob []byte) (*ImportSummary, error)
}

type service struct {
	snapshots Snapshotter
}

func NewService(snapshots Snapshotter) Service {
	return &service{snapshots: snapshots}
}

func (s *service) ExportJSON(ctx context.Context) ([]byte, error) {
	snap := s.snapshots.Snapshot()
	return json.MarshalIndent(snap, "", "  ")
}

func (s *service) ExportCSV(ctx context.Context) ([]byte, error) {
	snap := s.snapshots.Snapshot()
	return renderCSV(&snap)
}

func (s *service) ImportJSON(ctx context.Context, blob []byte) (*ImportSummary, error) {
	var next state.AppState
	if err := json.Unmarshal(blob, &next); err != nil {
		return nil, ErrInvalidSnapshot
	}
	if err := s.snapshots.Replace(ctx, next); err != nil {
		return nil, err
	}
	return &ImportSummary{
		Tasks:       len(next.Tasks),
		Habits:      len(next.Habits),
		Reflections: len(next.Reflections),
	}, nil
}
