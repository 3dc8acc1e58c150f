package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestLoadEmpty(t *testing.T) {
	store := openTestStore(t)

	blob, err := store.Load(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, blob)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first := []byte(`{"tasks":[],"habits":[],"reflections":{},"theme":"light"}`)
	assert.NoError(t, store.Save(ctx, first))

	got, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.JSONEq(t, string(first), string(got))

	// A second save replaces the single row rather than adding one.
	second := []byte(`{"tasks":[],"habits":[],"reflections":{},"theme":"dark"}`)
	assert.NoError(t, store.Save(ctx, second))

	got, err = store.Load(ctx)
	assert.NoError(t, err)
	assert.JSONEq(t, string(second), string(got))
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	ctx := context.Background()

	store, err := Open(path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	blob := []byte(`{"theme":"dark"}`)
	assert.NoError(t, store.Save(ctx, blob))
	assert.NoError(t, store.Close())

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Load(ctx)
	assert.NoError(t, err)
	assert.JSONEq(t, string(blob), string(got))
}

func TestPing(t *testing.T) {
	store := openTestStore(t)
	assert.NoError(t, store.Ping(context.Background()))
}
