package mock

import (
	"context"
	"time"

	"github.com/poiesic/sermonsearch/ai"
	"github.com/poiesic/sermonsearch/core"
)

// MockIntentExtractor is a test double for ai.IntentExtractor.
// It allows custom behavior injection via function fields.
type MockIntentExtractor struct {
	// ExtractIntentFunc is called by ExtractIntent if set.
	// If nil, uses the default literal-keyword behavior.
	ExtractIntentFunc func(ctx context.Context, userQuery string, today time.Time) (*core.IntentResult, error)

	callCount int
}

// NewMockIntentExtractor creates a mock intent extractor with default behavior.
func NewMockIntentExtractor() *MockIntentExtractor {
	return &MockIntentExtractor{}
}

// ExtractIntent returns a model-sourced intent with the query echoed as
// the keyword phrase, or whatever ExtractIntentFunc injects.
func (m *MockIntentExtractor) ExtractIntent(ctx context.Context, userQuery string, today time.Time) (*core.IntentResult, error) {
	m.callCount++

	if m.ExtractIntentFunc != nil {
		return m.ExtractIntentFunc(ctx, userQuery, today)
	}

	intent := core.SearchIntent{
		Keywords: userQuery,
		Limit:    core.DefaultLimit,
		Sort:     core.SortRelevance,
	}
	core.NormalizeIntent(&intent)
	return &core.IntentResult{
		Intent: intent,
		Source: core.IntentSourceModel,
	}, nil
}

// CallCount returns the number of times ExtractIntent was called.
func (m *MockIntentExtractor) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockIntentExtractor) Reset() {
	m.callCount = 0
	m.ExtractIntentFunc = nil
}

var _ ai.IntentExtractor = (*MockIntentExtractor)(nil)
