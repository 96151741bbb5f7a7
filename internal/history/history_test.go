package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func TestStore_AppendAndRecent(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	entries := []Entry{
		{Operation: "import", Model: "m1", OK: true, CreatedAt: base},
		{Operation: "import", Model: "m2", OK: false, Detail: "boom", CreatedAt: base.Add(time.Minute)},
		{Operation: "verify", Model: "m1", OK: true, CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, e := range entries {
		require.NoError(t, store.Append(e))
	}

	got, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Newest first.
	assert.Equal(t, "verify", got[0].Operation)
	assert.Equal(t, "m2", got[1].Model)
	assert.Equal(t, "boom", got[1].Detail)
	assert.False(t, got[1].OK)

	for _, e := range got {
		assert.NotEmpty(t, e.ID, "missing IDs must be generated")
	}
}

func TestStore_RecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Append(Entry{Operation: "import", Model: "m", OK: true}))
	}

	got, err := store.Recent(2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestStore_RecordNeverPanics(t *testing.T) {
	store := openTestStore(t)

	store.Record("delete", "m1", true, "")
	store.Record("delete", "m2", false, "not found")

	got, err := store.Recent(10)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
