package catalog

import (
	"context"

	"github.com/poiesic/sermonsearch/core"
)

// Loader fetches the full talk catalog from its source of truth.
// Implementations return an error on connectivity or format problems;
// degradation to an empty catalog is the Cache's job, not the loader's.
type Loader interface {
	// Load fetches and parses every catalog record.
	Load(ctx context.Context) ([]core.CatalogRecord, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context) ([]core.CatalogRecord, error)

// Load calls the wrapped function.
func (f LoaderFunc) Load(ctx context.Context) ([]core.CatalogRecord, error) {
	return f(ctx)
}
