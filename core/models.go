package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated by content-based hashing so that identical catalog
// rows always map to the same identity across fetches and passes.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// MatchType labels how a record was matched against the query.
// The numeric values double as the sort rank: Exact before Suggested.
type MatchType int

const (
	// MatchTypeExact marks a record matched by the primary keyword phrase.
	MatchTypeExact MatchType = iota + 1
	// MatchTypeSuggested marks a record surfaced via the synonym phrase.
	MatchTypeSuggested
)

// String returns the user-facing label for the match type.
func (m MatchType) String() string {
	switch m {
	case MatchTypeExact:
		return "Exact"
	case MatchTypeSuggested:
		return "Suggested"
	default:
		return "Unknown"
	}
}

// SortOrder selects how the ranking pipeline orders its output.
type SortOrder string

const (
	// SortRelevance orders by match type rank, then score, then recency.
	SortRelevance SortOrder = "relevance"
	// SortNewest orders by date descending only.
	SortNewest SortOrder = "newest"
)

// IntentSource records whether a SearchIntent came from the language
// model or from the deterministic fallback. Callers today treat both
// identically; the distinction exists so they do not have to.
type IntentSource int

const (
	// IntentSourceModel means the language model produced the intent.
	IntentSourceModel IntentSource = iota + 1
	// IntentSourceFallback means the deterministic fallback produced it.
	IntentSourceFallback
)

// DefaultLimit is the result batch size used when a query does not ask
// for a specific number of results.
const DefaultLimit = 10

// PlaceholderLink is used when a catalog row carries no download link.
const PlaceholderLink = "#"

// CatalogRecord is one entry in the talk catalog.
// Records are immutable once loaded for the duration of a session.
type CatalogRecord struct {
	Id           ID
	Title        string
	Speaker      string
	Date         time.Time // zero value means the date was absent or unparsable
	DownloadLink string
}

// HasDate reports whether the record carries a usable calendar date.
func (r *CatalogRecord) HasDate() bool {
	return !r.Date.IsZero()
}

// ContentID computes the deterministic identity of the record from its
// visible fields. Used for deduplication between scoring passes and as
// the snapshot storage key.
func (r *CatalogRecord) ContentID() ID {
	key := r.Title + "|" + r.Speaker + "|"
	if r.HasDate() {
		key += r.Date.Format("2006-01-02")
	}
	return IDFromContent(key)
}

// SearchIntent is the structured filter/sort specification derived
// from a free-text query. A SearchIntent is never partially absent:
// NormalizeIntent coerces every field to a usable value.
type SearchIntent struct {
	Keywords  string
	Synonyms  string
	Speaker   string    // empty means no speaker filter
	StartDate time.Time // zero value means no lower bound
	EndDate   time.Time // zero value means no upper bound
	Limit     int
	Sort      SortOrder
}

// HasKeywords reports whether the intent carries a usable topic phrase.
func (si *SearchIntent) HasKeywords() bool {
	return si.Keywords != ""
}

// HasSpeaker reports whether the intent carries a speaker filter.
func (si *SearchIntent) HasSpeaker() bool {
	return si.Speaker != ""
}

// IntentResult pairs an intent with where it came from, so callers can
// distinguish a model-produced intent from the fallback without relying
// on error control flow.
type IntentResult struct {
	Intent SearchIntent
	Source IntentSource
}

// FromFallback reports whether the intent is the deterministic fallback.
func (ir *IntentResult) FromFallback() bool {
	return ir.Source == IntentSourceFallback
}

// ScoredRecord is a CatalogRecord augmented with relevance information.
// Produced fresh per query; never persisted.
type ScoredRecord struct {
	CatalogRecord
	MatchScore int
	MatchCount int
	MatchType  MatchType
}

// ResultSet is an ordered sequence of scored records plus a cursor.
// One live instance per session: replaced wholesale on each new query,
// mutated in place (cursor only) on load-more.
type ResultSet struct {
	Records   []ScoredRecord
	NextIndex int
}

// NewResultSet wraps records as a fresh result set with the cursor at 0.
func NewResultSet(records []ScoredRecord) *ResultSet {
	return &ResultSet{Records: records}
}

// Len returns the total number of records in the set.
func (rs *ResultSet) Len() int {
	return len(rs.Records)
}

// Remaining returns how many records the cursor has not yet served.
func (rs *ResultSet) Remaining() int {
	if rs.NextIndex >= len(rs.Records) {
		return 0
	}
	return len(rs.Records) - rs.NextIndex
}

// NextBatch returns the next pageSize records and advances the cursor
// by exactly the number of records returned. Calling past the end is a
// no-op returning an empty slice.
func (rs *ResultSet) NextBatch(pageSize int) []ScoredRecord {
	if pageSize <= 0 || rs.NextIndex >= len(rs.Records) {
		return []ScoredRecord{}
	}
	end := rs.NextIndex + pageSize
	if end > len(rs.Records) {
		end = len(rs.Records)
	}
	batch := rs.Records[rs.NextIndex:end]
	rs.NextIndex = end
	return batch
}

// CountType returns how many records in the set carry the given match type.
func (rs *ResultSet) CountType(t MatchType) int {
	n := 0
	for i := range rs.Records {
		if rs.Records[i].MatchType == t {
			n++
		}
	}
	return n
}
