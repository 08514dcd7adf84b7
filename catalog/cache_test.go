package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/sermonsearch/core"
	"github.com/poiesic/sermonsearch/storage/badger"
)

// stubLoader counts calls and returns a scripted result per call.
type stubLoader struct {
	calls   int
	records []core.CatalogRecord
	err     error
}

func (l *stubLoader) Load(_ context.Context) ([]core.CatalogRecord, error) {
	l.calls++
	if l.err != nil {
		return nil, l.err
	}
	return l.records, nil
}

func sampleRecords() []core.CatalogRecord {
	records := []core.CatalogRecord{
		{Title: "Faith in Trials", Speaker: "Seun", Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
		{Title: "Grace Abounds", Speaker: "Seun"},
	}
	for i := range records {
		core.NormalizeRecord(&records[i])
	}
	return records
}

func TestNewCache(t *testing.T) {
	t.Run("nil loader rejected", func(t *testing.T) {
		_, err := NewCache(nil)
		assert.Equal(t, ErrLoaderRequired, err)
	})

	t.Run("valid loader", func(t *testing.T) {
		cache, err := NewCache(&stubLoader{})
		require.NoError(t, err)
		assert.NotNil(t, cache)
	})
}

func TestCacheLoad_TTL(t *testing.T) {
	ctx := context.Background()
	loader := &stubLoader{records: sampleRecords()}
	cache, err := NewCache(loader, WithTTL(time.Hour))
	require.NoError(t, err)

	first := cache.Load(ctx)
	assert.Len(t, first, 2)
	assert.Equal(t, 1, loader.calls)

	second := cache.Load(ctx)
	assert.Len(t, second, 2)
	assert.Equal(t, 1, loader.calls, "within the TTL the source is not consulted")

	cache.Invalidate()
	cache.Load(ctx)
	assert.Equal(t, 2, loader.calls)
}

func TestCacheLoad_FailureDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	loader := &stubLoader{err: errors.New("boom")}
	cache, err := NewCache(loader, WithTTL(time.Hour))
	require.NoError(t, err)

	records := cache.Load(ctx)
	assert.Empty(t, records)
	assert.False(t, cache.Stale())

	// The emptiness is cached for the window too.
	cache.Load(ctx)
	assert.Equal(t, 1, loader.calls)
}

func TestCacheLoad_FailureServesSnapshot(t *testing.T) {
	ctx := context.Background()

	snapshots, backend, err := badger.NewMemorySnapshotStore()
	require.NoError(t, err)
	defer backend.Close()

	// First a healthy fetch persists the snapshot.
	loader := &stubLoader{records: sampleRecords()}
	cache, err := NewCache(loader, WithTTL(time.Hour), WithSnapshotStore(snapshots))
	require.NoError(t, err)
	require.Len(t, cache.Load(ctx), 2)

	// Then a broken source on a fresh cache serves the stored copy.
	broken, err := NewCache(&stubLoader{err: errors.New("boom")},
		WithTTL(time.Hour), WithSnapshotStore(snapshots))
	require.NoError(t, err)

	records := broken.Load(ctx)
	require.Len(t, records, 2)
	assert.True(t, broken.Stale())
	assert.Equal(t, "Faith in Trials", records[0].Title)
}

func TestCacheLoad_NoSnapshotFallsToEmpty(t *testing.T) {
	ctx := context.Background()

	snapshots, backend, err := badger.NewMemorySnapshotStore()
	require.NoError(t, err)
	defer backend.Close()

	cache, err := NewCache(&stubLoader{err: errors.New("boom")},
		WithTTL(time.Hour), WithSnapshotStore(snapshots))
	require.NoError(t, err)

	assert.Empty(t, cache.Load(ctx))
	assert.False(t, cache.Stale())
}
