package reflection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockRepository struct {
	entries map[string]Reflection
}

func newMockRepository() *mockRepository {
	return &mockRepository{entries: make(map[string]Reflection)}
}

func (m *mockRepository) FindByDate(ctx context.Context, date string) (*Reflection, error) {
	r, ok := m.entries[date]
	if !ok {
		return nil, ErrReflectionNotFound
	}
	return &r, nil
}

func (m *mockRepository) FindAll(ctx context.Context) ([]Reflection, error) {
	out := make([]Reflection, 0, len(m.entries))
	for _, r := range m.entries {
		out = append(out, r)
	}
	return out, nil
}

func (m *mockRepository) Upsert(ctx context.Context, r *Reflection) error {
	m.entries[r.Date] = *r
	return nil
}

func TestUpsertReflection(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.UpsertReflection(ctx, "2024-01-05", UpsertReflectionInput{
		Well:        "Finished the report early",
		Improvement: "Less coffee after lunch",
		Journal:     "Quiet day overall.",
	})
	assert.NoError(t, err)
	assert.Equal(t, "2024-01-05", created.Date)

	// A second write for the same date overwrites in place.
	updated, err := svc.UpsertReflection(ctx, "2024-01-05", UpsertReflectionInput{Well: "Revised"})
	assert.NoError(t, err)
	assert.Equal(t, "Revised", updated.Well)
	assert.Empty(t, updated.Journal)
	assert.Len(t, repo.entries, 1)

	_, err = svc.UpsertReflection(ctx, "05/01/2024", UpsertReflectionInput{})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestGetReflection(t *testing.T) {
	repo := newMockRepository()
	repo.entries["2024-01-05"] = Reflection{Date: "2024-01-05", Well: "Shipped the release"}
	svc := NewService(repo)
	ctx := context.Background()

	got, err := svc.GetReflection(ctx, "2024-01-05")
	assert.NoError(t, err)
	assert.Equal(t, "Shipped the release", got.Well)

	_, err = svc.GetReflection(ctx, "2024-01-06")
	assert.ErrorIs(t, err, ErrReflectionNotFound)

	_, err = svc.GetReflection(ctx, "tomorrow")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestListReflectionsSorted(t *testing.T) {
	repo := newMockRepository()
	repo.entries["2024-01-03"] = Reflection{Date: "2024-01-03"}
	repo.entries["2024-01-10"] = Reflection{Date: "2024-01-10"}
	repo.entries["2023-12-31"] = Reflection{Date: "2023-12-31"}
	svc := NewService(repo)

	items, err := svc.ListReflections(context.Background())
	assert.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, "2024-01-10", items[0].Date)
	assert.Equal(t, "2024-01-03", items[1].Date)
	assert.Equal(t, "2023-12-31", items[2].Date)
}
