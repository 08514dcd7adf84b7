package ai

import (
	"context"
	"time"

	"github.com/poiesic/sermonsearch/core"
)

// IntentExtractor converts a raw user query into a structured search
// intent. Implementations must be thread-safe for concurrent use.
type IntentExtractor interface {
	// ExtractIntent analyzes the query and produces a normalized
	// SearchIntent. The today argument anchors relative dates like
	// "yesterday" or "last week".
	//
	// Provider failures, timeouts, malformed responses, and missing
	// credentials must not surface as errors: implementations degrade
	// to the deterministic fallback intent (Source = fallback) and
	// return it with a nil error. This is the terminal error boundary
	// for intent extraction.
	ExtractIntent(ctx context.Context, userQuery string, today time.Time) (*core.IntentResult, error)
}

// Fallback builds the deterministic fallback intent for a query: the
// raw query becomes the keyword phrase and every other field takes its
// documented default. Used when the model is unavailable or returns
// something unusable.
func Fallback(userQuery string) *core.IntentResult {
	intent := core.SearchIntent{
		Keywords: userQuery,
		Limit:    core.DefaultLimit,
		Sort:     core.SortRelevance,
	}
	core.NormalizeIntent(&intent)
	return &core.IntentResult{
		Intent: intent,
		Source: core.IntentSourceFallback,
	}
}
