package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIntent(t *testing.T) {
	t.Run("defaults applied to empty intent", func(t *testing.T) {
		intent := SearchIntent{}
		NormalizeIntent(&intent)
		assert.Equal(t, DefaultLimit, intent.Limit)
		assert.Equal(t, SortRelevance, intent.Sort)
	})

	t.Run("literal none collapses to empty", func(t *testing.T) {
		intent := SearchIntent{Keywords: "None", Synonyms: "none", Speaker: "NONE"}
		NormalizeIntent(&intent)
		assert.Empty(t, intent.Keywords)
		assert.Empty(t, intent.Synonyms)
		assert.Empty(t, intent.Speaker)
		assert.False(t, intent.HasKeywords())
		assert.False(t, intent.HasSpeaker())
	})

	t.Run("fields trimmed", func(t *testing.T) {
		intent := SearchIntent{Keywords: "  faith  ", Speaker: " seun "}
		NormalizeIntent(&intent)
		assert.Equal(t, "faith", intent.Keywords)
		assert.Equal(t, "seun", intent.Speaker)
	})

	t.Run("negative limit becomes default", func(t *testing.T) {
		intent := SearchIntent{Limit: -3}
		NormalizeIntent(&intent)
		assert.Equal(t, DefaultLimit, intent.Limit)
	})

	t.Run("explicit limit preserved", func(t *testing.T) {
		intent := SearchIntent{Limit: 1}
		NormalizeIntent(&intent)
		assert.Equal(t, 1, intent.Limit)
	})

	t.Run("newest sort preserved case insensitively", func(t *testing.T) {
		intent := SearchIntent{Sort: " Newest "}
		NormalizeIntent(&intent)
		assert.Equal(t, SortNewest, intent.Sort)
	})

	t.Run("unknown sort becomes relevance", func(t *testing.T) {
		intent := SearchIntent{Sort: "oldest"}
		NormalizeIntent(&intent)
		assert.Equal(t, SortRelevance, intent.Sort)
	})
}

func TestNormalizeRecord(t *testing.T) {
	t.Run("missing link gets the placeholder", func(t *testing.T) {
		record := CatalogRecord{Title: "Faith in Trials"}
		NormalizeRecord(&record)
		assert.Equal(t, PlaceholderLink, record.DownloadLink)
	})

	t.Run("id computed when unset", func(t *testing.T) {
		record := CatalogRecord{Title: "Faith in Trials", Speaker: "Seun"}
		NormalizeRecord(&record)
		assert.Equal(t, record.ContentID(), record.Id)
	})

	t.Run("existing id untouched", func(t *testing.T) {
		record := CatalogRecord{Id: 42, Title: "Faith in Trials"}
		NormalizeRecord(&record)
		assert.Equal(t, ID(42), record.Id)
	})

	t.Run("fields trimmed", func(t *testing.T) {
		record := CatalogRecord{Title: " Faith ", Speaker: " Seun ", DownloadLink: " https://x "}
		NormalizeRecord(&record)
		assert.Equal(t, "Faith", record.Title)
		assert.Equal(t, "Seun", record.Speaker)
		assert.Equal(t, "https://x", record.DownloadLink)
	})
}

func TestValidateRecord(t *testing.T) {
	t.Run("valid record", func(t *testing.T) {
		record := CatalogRecord{Title: "Faith in Trials"}
		assert.NoError(t, ValidateRecord(&record))
	})

	t.Run("nil record", func(t *testing.T) {
		err := ValidateRecord(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidRecord)
	})

	t.Run("empty title", func(t *testing.T) {
		record := CatalogRecord{Title: "   "}
		err := ValidateRecord(&record)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptyTitle)
	})

	t.Run("date and speaker optional", func(t *testing.T) {
		record := CatalogRecord{Title: "Untitled Series Part 3"}
		assert.NoError(t, ValidateRecord(&record))
	})
}

func TestValidateMatchType(t *testing.T) {
	assert.NoError(t, ValidateMatchType(MatchTypeExact))
	assert.NoError(t, ValidateMatchType(MatchTypeSuggested))
	assert.ErrorIs(t, ValidateMatchType(MatchType(0)), ErrInvalidMatchType)
	assert.ErrorIs(t, ValidateMatchType(MatchType(7)), ErrInvalidMatchType)
}
