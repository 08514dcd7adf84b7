// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package catalog

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/poiesic/sermonsearch/core"
	"github.com/poiesic/sermonsearch/storage"
)

// DefaultTTL is how long a fetched catalog is served before the source
// is consulted again. Staleness inside the window is by design.
const DefaultTTL = 600 * time.Second

// Cache decorates a Loader with a fixed-interval cache and the
// degradation policy of the catalog boundary: a failed fetch serves the
// last persisted snapshot when one exists, otherwise an empty catalog.
// Load never returns an error to the pipeline.
type Cache struct {
	loader    Loader
	ttl       time.Duration
	snapshots storage.CatalogSnapshotStore // optional
	logger    *slog.Logger

	mu        sync.Mutex
	records   []core.CatalogRecord
	fetchedAt time.Time
	stale     bool
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithTTL sets the cache window. Default is DefaultTTL.
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithSnapshotStore enables the last-known-good fallback: every
// successful fetch is persisted, and a failed fetch serves the stored
// copy before degrading to empty.
func WithSnapshotStore(store storage.CatalogSnapshotStore) CacheOption {
	return func(c *Cache) {
		c.snapshots = store
	}
}

// WithCacheLogger sets a custom logger.
func WithCacheLogger(logger *slog.Logger) CacheOption {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCache creates a caching decorator around the loader.
func NewCache(loader Loader, opts ...CacheOption) (*Cache, error) {
	if loader == nil {
		return nil, ErrLoaderRequired
	}

	c := &Cache{
		loader: loader,
		ttl:    DefaultTTL,
		logger: slog.Default().With("component", "catalog-cache"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Load returns the current catalog. Within the TTL window the cached
// copy is served without touching the source. On fetch failure the
// result degrades (snapshot, then empty) rather than erroring; an empty
// catalog is a defined terminal state for the pipeline.
func (c *Cache) Load(ctx context.Context) []core.CatalogRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.fetchedAt.IsZero() && time.Since(c.fetchedAt) < c.ttl {
		return c.records
	}

	records, err := c.loader.Load(ctx)
	if err == nil {
		c.records = records
		c.fetchedAt = time.Now()
		c.stale = false
		c.persistSnapshot(ctx, records)
		return records
	}
	c.logger.Warn("catalog fetch failed", "err", err)

	if c.snapshots != nil {
		snapshot, takenAt, serr := c.snapshots.LoadSnapshot(ctx)
		if serr == nil && len(snapshot) > 0 {
			c.logger.Info("serving catalog snapshot", "records", len(snapshot), "takenAt", takenAt)
			c.records = snapshot
			c.fetchedAt = time.Now()
			c.stale = true
			return snapshot
		}
		if serr != nil && !errors.Is(serr, storage.ErrNoSnapshot) {
			c.logger.Warn("catalog snapshot unavailable", "err", serr)
		}
	}

	// Cache the emptiness too, so a dead source is not hammered on
	// every interaction inside the window.
	c.records = []core.CatalogRecord{}
	c.fetchedAt = time.Now()
	c.stale = false
	return c.records
}

// Stale reports whether the last Load served a persisted snapshot
// instead of a live fetch.
func (c *Cache) Stale() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stale
}

// Invalidate forces the next Load to consult the source.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetchedAt = time.Time{}
}

func (c *Cache) persistSnapshot(ctx context.Context, records []core.CatalogRecord) {
	if c.snapshots == nil || len(records) == 0 {
		return
	}
	if err := c.snapshots.SaveSnapshot(ctx, records); err != nil {
		c.logger.Warn("failed to persist catalog snapshot", "err", err)
	}
}
