package storage

import (
	"context"
	"time"

	"github.com/poiesic/sermonsearch/core"
)

// CatalogSnapshotStore persists a last-known-good copy of the catalog
// so the assistant can keep answering when the live source is down.
// Implementations must be thread-safe and support concurrent access.
type CatalogSnapshotStore interface {
	// SaveSnapshot replaces the stored snapshot wholesale with the
	// given records and stamps it with the current time.
	SaveSnapshot(ctx context.Context, records []core.CatalogRecord) error

	// LoadSnapshot returns the stored records and when they were taken.
	// Returns ErrNoSnapshot when nothing has been saved yet.
	LoadSnapshot(ctx context.Context) ([]core.CatalogRecord, time.Time, error)

	// Close closes the storage backend and releases resources.
	Close() error
}
