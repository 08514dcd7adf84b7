package mock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/sermonsearch/core"
)

func TestMockIntentExtractor(t *testing.T) {
	t.Run("default echoes the query", func(t *testing.T) {
		m := NewMockIntentExtractor()
		result, err := m.ExtractIntent(context.Background(), "faith", time.Now())
		require.NoError(t, err)
		assert.Equal(t, "faith", result.Intent.Keywords)
		assert.Equal(t, core.IntentSourceModel, result.Source)
	})

	t.Run("custom function injected", func(t *testing.T) {
		m := NewMockIntentExtractor()
		m.ExtractIntentFunc = func(_ context.Context, _ string, _ time.Time) (*core.IntentResult, error) {
			return &core.IntentResult{
				Intent: core.SearchIntent{Speaker: "seun", Limit: 1, Sort: core.SortNewest},
				Source: core.IntentSourceModel,
			}, nil
		}
		result, err := m.ExtractIntent(context.Background(), "ignored", time.Now())
		require.NoError(t, err)
		assert.Equal(t, "seun", result.Intent.Speaker)
	})

	t.Run("call count and reset", func(t *testing.T) {
		m := NewMockIntentExtractor()
		_, _ = m.ExtractIntent(context.Background(), "a", time.Now())
		_, _ = m.ExtractIntent(context.Background(), "b", time.Now())
		assert.Equal(t, 2, m.CallCount())

		m.Reset()
		assert.Equal(t, 0, m.CallCount())
		assert.Nil(t, m.ExtractIntentFunc)
	})
}
