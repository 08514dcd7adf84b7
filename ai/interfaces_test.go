package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/poiesic/sermonsearch/core"
)

func TestFallback(t *testing.T) {
	t.Run("query becomes the keyword phrase", func(t *testing.T) {
		result := Fallback("sermons on faith")
		assert.Equal(t, "sermons on faith", result.Intent.Keywords)
		assert.Equal(t, core.DefaultLimit, result.Intent.Limit)
		assert.Equal(t, core.SortRelevance, result.Intent.Sort)
		assert.True(t, result.FromFallback())
	})

	t.Run("no speaker or date filters", func(t *testing.T) {
		result := Fallback("messages by pastor seun from last year")
		assert.False(t, result.Intent.HasSpeaker())
		assert.True(t, result.Intent.StartDate.IsZero())
		assert.True(t, result.Intent.EndDate.IsZero())
	})

	t.Run("query trimmed via normalization", func(t *testing.T) {
		result := Fallback("  faith  ")
		assert.Equal(t, "faith", result.Intent.Keywords)
	})
}
