package openai

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/sermonsearch/ai"
	"github.com/poiesic/sermonsearch/core"
)

func TestNewIntentExtractor(t *testing.T) {
	t.Run("no api key disables the client", func(t *testing.T) {
		extractor, err := newIntentExtractor(ai.DefaultConfig())
		require.NoError(t, err)
		assert.Nil(t, extractor.client)
	})

	t.Run("with api key", func(t *testing.T) {
		extractor, err := newIntentExtractor(ai.NewConfig(ai.WithAPIKey("test-key")))
		require.NoError(t, err)
		assert.NotNil(t, extractor.client)
	})
}

func TestExtractIntent_NoClientFallsBack(t *testing.T) {
	extractor, err := newIntentExtractor(ai.DefaultConfig())
	require.NoError(t, err)

	result, err := extractor.ExtractIntent(context.Background(), "sermons on faith", time.Now())
	require.NoError(t, err)
	assert.True(t, result.FromFallback())
	assert.Equal(t, "sermons on faith", result.Intent.Keywords)
}

func TestCoerceIntent(t *testing.T) {
	logger := slog.Default()
	str := func(s string) *string { return &s }

	t.Run("all fields present", func(t *testing.T) {
		raw := rawIntent{
			Keywords:  str("faith, trials"),
			Synonyms:  str("trust, perseverance"),
			Speaker:   str("seun"),
			StartDate: str("2024-01-01"),
			EndDate:   str("2024-12-31"),
			Limit:     float64(5),
			Sort:      str("newest"),
		}
		intent := coerceIntent(&raw, logger)
		assert.Equal(t, "faith, trials", intent.Keywords)
		assert.Equal(t, "trust, perseverance", intent.Synonyms)
		assert.Equal(t, "seun", intent.Speaker)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), intent.StartDate)
		assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), intent.EndDate)
		assert.Equal(t, 5, intent.Limit)
		assert.Equal(t, core.SortNewest, intent.Sort)
	})

	t.Run("nil fields default", func(t *testing.T) {
		intent := coerceIntent(&rawIntent{}, logger)
		assert.Empty(t, intent.Keywords)
		assert.Empty(t, intent.Speaker)
		assert.True(t, intent.StartDate.IsZero())
		assert.Equal(t, core.DefaultLimit, intent.Limit)
		assert.Equal(t, core.SortRelevance, intent.Sort)
	})

	t.Run("literal none collapses", func(t *testing.T) {
		raw := rawIntent{Keywords: str("None"), Speaker: str("none")}
		intent := coerceIntent(&raw, logger)
		assert.False(t, intent.HasKeywords())
		assert.False(t, intent.HasSpeaker())
	})

	t.Run("bad date bound dropped", func(t *testing.T) {
		raw := rawIntent{Keywords: str("faith"), StartDate: str("last tuesday")}
		intent := coerceIntent(&raw, logger)
		assert.True(t, intent.StartDate.IsZero())
		assert.Equal(t, "faith", intent.Keywords)
	})
}

func TestCoerceLimit(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"float", float64(3), 3},
		{"numeric string", "7", 7},
		{"padded string", " 2 ", 2},
		{"garbage string", "many", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, coerceLimit(tt.in))
		})
	}
}

func TestParseDate(t *testing.T) {
	logger := slog.Default()
	str := func(s string) *string { return &s }

	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), parseDate(str("2024-03-10"), "start_date", logger))
	assert.True(t, parseDate(nil, "start_date", logger).IsZero())
	assert.True(t, parseDate(str(""), "start_date", logger).IsZero())
	assert.True(t, parseDate(str("none"), "start_date", logger).IsZero())
	assert.True(t, parseDate(str("NULL"), "end_date", logger).IsZero())
	assert.True(t, parseDate(str("10/03/2024"), "start_date", logger).IsZero())
}

func TestRepairJSON(t *testing.T) {
	t.Run("missing opening quote on key", func(t *testing.T) {
		broken := `{"keywords": "faith", sort": "newest"}`
		assert.Equal(t, `{"keywords": "faith", "sort": "newest"}`, repairJSON(broken))
	})

	t.Run("valid json untouched", func(t *testing.T) {
		valid := `{"keywords": "faith", "limit": 5}`
		assert.Equal(t, valid, repairJSON(valid))
	})

	t.Run("empty object untouched", func(t *testing.T) {
		assert.Equal(t, `{}`, repairJSON(`{}`))
	})
}
