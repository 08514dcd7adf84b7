package badger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/sermonsearch/core"
	"github.com/poiesic/sermonsearch/storage"
)

func newTestStore(t *testing.T) *SnapshotStore {
	t.Helper()
	store, backend, err := NewMemorySnapshotStore()
	require.NoError(t, err)
	t.Cleanup(func() {
		store.Close()
		backend.Close()
	})
	return store
}

func snapshotRecords() []core.CatalogRecord {
	records := []core.CatalogRecord{
		{Title: "Faith in Trials", Speaker: "Pastor Seun", Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), DownloadLink: "https://x/1"},
		{Title: "Walking in Love", Speaker: "Temitope Adeola", Date: time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC), DownloadLink: "https://x/2"},
		{Title: "Grace Abounds", Speaker: "Pastor Seun"},
	}
	for i := range records {
		core.NormalizeRecord(&records[i])
	}
	return records
}

func TestNewSnapshotStore(t *testing.T) {
	t.Run("nil backend rejected", func(t *testing.T) {
		_, err := NewSnapshotStore(nil)
		assert.Equal(t, storage.ErrBackendRequired, err)
	})
}

func TestSnapshotStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	records := snapshotRecords()
	before := time.Now().UTC()
	require.NoError(t, store.SaveSnapshot(ctx, records))

	loaded, takenAt, err := store.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, loaded, "records come back in catalog order")
	assert.False(t, takenAt.Before(before.Truncate(time.Second)))
}

func TestSnapshotStore_LoadWithoutSave(t *testing.T) {
	store := newTestStore(t)
	_, _, err := store.LoadSnapshot(context.Background())
	assert.ErrorIs(t, err, storage.ErrNoSnapshot)
}

func TestSnapshotStore_SaveReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.SaveSnapshot(ctx, snapshotRecords()))

	replacement := []core.CatalogRecord{{Title: "Trusting God", Speaker: "Ibukun Awosika"}}
	core.NormalizeRecord(&replacement[0])
	require.NoError(t, store.SaveSnapshot(ctx, replacement))

	loaded, _, err := store.LoadSnapshot(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Trusting God", loaded[0].Title)
}

func TestSnapshotStore_EmptySnapshot(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.SaveSnapshot(ctx, nil))
	loaded, _, err := store.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestSnapshotStore_CancelledContext(t *testing.T) {
	store := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.SaveSnapshot(ctx, snapshotRecords()), context.Canceled)
	_, _, err := store.LoadSnapshot(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
