package search

import (
	"context"
	"log/slog"
	"sort"

	"github.com/poiesic/sermonsearch/core"
	"github.com/poiesic/sermonsearch/match"
)

const (
	// suggestedTriggerCount is the exact-match count below which the
	// synonym pass runs. With this many exact hits or more, suggested
	// results would only add noise.
	suggestedTriggerCount = 10

	// fallbackScore is stamped on records returned by a pure
	// filter-only query, where no keyword scoring took place.
	fallbackScore = 100

	// DefaultDisplayCap bounds how many records a mixed result set
	// renders into the chat transcript.
	DefaultDisplayCap = 20
)

// NameMatcher decides whether a speaker query refers to a catalog
// speaker field. The default is match.Names.
type NameMatcher func(queryName, candidateName string) bool

// Searcher runs the multi-stage ranking pipeline over the catalog:
// date filter, speaker filter, two-pass keyword/synonym scoring,
// deduplication, and stable ordering.
type Searcher struct {
	scorer     *Scorer
	matchNames NameMatcher
	logger     *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithNameMatcher replaces the speaker name matcher.
func WithNameMatcher(matcher NameMatcher) Option {
	return func(s *Searcher) error {
		if matcher == nil {
			return ErrNameMatcherRequired
		}
		s.matchNames = matcher
		return nil
	}
}

// WithPoolSize sets the scoring worker pool size.
// Default is half the CPU count, minimum 1.
func WithPoolSize(size int) Option {
	return func(s *Searcher) error {
		scorer, err := NewScorer(size)
		if err != nil {
			return err
		}
		if s.scorer != nil {
			s.scorer.Release()
		}
		s.scorer = scorer
		return nil
	}
}

// NewSearcher creates a ranking pipeline with default collaborators.
func NewSearcher(opts ...Option) (*Searcher, error) {
	scorer, err := NewScorer(0)
	if err != nil {
		return nil, err
	}

	s := &Searcher{
		scorer:     scorer,
		matchNames: match.Names,
		logger:     slog.Default().With("component", "searcher"),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			s.scorer.Release()
			return nil, err
		}
	}

	return s, nil
}

// Close releases the scoring worker pool.
func (s *Searcher) Close() error {
	s.scorer.Release()
	return nil
}

// Rank applies the intent to the catalog and returns a fresh result
// set with the cursor at zero.
func (s *Searcher) Rank(ctx context.Context, records []core.CatalogRecord, intent *core.SearchIntent) (*core.ResultSet, error) {
	return s.RankWithMonitor(ctx, records, intent, nil)
}

// RankWithMonitor ranks with stage callbacks for observability.
//
// Stages, in order:
//  1. date-range filter; unset bounds are skipped, records without a
//     date drop out only when a bound is actually applied
//  2. speaker filter via the name matcher, when the intent names one
//  3. exact pass scoring the keyword phrase
//  4. suggested pass scoring the synonym phrase, only when exact
//     matches are sparse; records already matched exactly are removed
//  5. fallback pass for filter-only queries (no keywords, nothing
//     scored): every filtered record returns as an exact match
//  6. sort — "newest" by date alone, otherwise by match-type rank,
//     score, then recency; undated records sink to the bottom
//
// The intent is normalized before use (on a copy, the caller's value
// is untouched), so raw extractor output is safe to pass directly.
//
// An empty catalog flows through as an empty result set, never an error.
func (s *Searcher) RankWithMonitor(ctx context.Context, records []core.CatalogRecord, intent *core.SearchIntent, monitor SearchMonitor) (*core.ResultSet, error) {
	if intent == nil {
		return nil, ErrNilIntent
	}
	normalized := *intent
	core.NormalizeIntent(&normalized)
	intent = &normalized
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	monitor.Start(intent)

	filtered := filterByDate(records, intent)
	monitor.AfterDateFilter(filtered)

	if intent.HasSpeaker() {
		kept := make([]core.CatalogRecord, 0, len(filtered))
		for _, record := range filtered {
			if s.matchNames(intent.Speaker, record.Speaker) {
				kept = append(kept, record)
			}
		}
		filtered = kept
	}
	monitor.AfterSpeakerFilter(filtered)

	exact := s.scorer.Score(filtered, intent.Keywords, core.MatchTypeExact)
	monitor.AfterExactPass(exact)

	var suggested []core.ScoredRecord
	if len(exact) < suggestedTriggerCount && intent.Synonyms != "" {
		suggested = s.scorer.Score(filtered, intent.Synonyms, core.MatchTypeSuggested)
		// Exact takes precedence; no record appears twice.
		if len(exact) > 0 {
			seen := make(map[core.ID]bool, len(exact))
			for i := range exact {
				seen[recordID(&exact[i].CatalogRecord)] = true
			}
			deduped := suggested[:0]
			for _, record := range suggested {
				if !seen[recordID(&record.CatalogRecord)] {
					deduped = append(deduped, record)
				}
			}
			suggested = deduped
		}
	}
	monitor.AfterSuggestedPass(suggested)

	var combined []core.ScoredRecord
	if len(exact) == 0 && len(suggested) == 0 && !intent.HasKeywords() {
		// Filter-only query ("messages by Seun"): return the full
		// filtered rows rather than nothing.
		combined = make([]core.ScoredRecord, 0, len(filtered))
		for _, record := range filtered {
			combined = append(combined, core.ScoredRecord{
				CatalogRecord: record,
				MatchScore:    fallbackScore,
				MatchType:     core.MatchTypeExact,
			})
		}
		monitor.FallbackApplied(combined)
	} else {
		combined = make([]core.ScoredRecord, 0, len(exact)+len(suggested))
		combined = append(combined, exact...)
		combined = append(combined, suggested...)
	}

	sortResults(combined, intent.Sort)

	s.logger.Debug("ranked catalog",
		"candidates", len(filtered),
		"exact", len(exact),
		"suggested", len(suggested),
		"total", len(combined),
		"sort", intent.Sort)

	results := core.NewResultSet(combined)
	monitor.Finish(results)
	return results, nil
}

// filterByDate keeps records inside the intent's date bounds. A zero
// bound is not applied. A record without a date survives only when no
// bound is applied to it, matching comparison-with-unknown semantics.
func filterByDate(records []core.CatalogRecord, intent *core.SearchIntent) []core.CatalogRecord {
	hasStart := !intent.StartDate.IsZero()
	hasEnd := !intent.EndDate.IsZero()
	if !hasStart && !hasEnd {
		kept := make([]core.CatalogRecord, len(records))
		copy(kept, records)
		return kept
	}

	kept := make([]core.CatalogRecord, 0, len(records))
	for _, record := range records {
		if hasStart && (!record.HasDate() || record.Date.Before(intent.StartDate)) {
			continue
		}
		if hasEnd && (!record.HasDate() || record.Date.After(intent.EndDate)) {
			continue
		}
		kept = append(kept, record)
	}
	return kept
}

// sortResults orders records in place. "newest" sorts by date alone;
// relevance sorts by match-type rank, then score, then date. Sorting is
// stable, so equal records keep their insertion order.
func sortResults(records []core.ScoredRecord, order core.SortOrder) {
	if order == core.SortNewest {
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Date.After(records[j].Date)
		})
		return
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].MatchType != records[j].MatchType {
			return records[i].MatchType < records[j].MatchType
		}
		if records[i].MatchScore != records[j].MatchScore {
			return records[i].MatchScore > records[j].MatchScore
		}
		return records[i].Date.After(records[j].Date)
	})
}

// recordID returns the record's identity, computing the content hash
// for records the catalog loader has not normalized.
func recordID(record *core.CatalogRecord) core.ID {
	if record.Id != 0 {
		return record.Id
	}
	return record.ContentID()
}

// LimitSuggested applies the display truncation contract: when the set
// exceeds maxTotal and contains suggested records, suggested records
// are cut to max(0, maxTotal - exactCount). Exact records are always
// kept, so the authoritative ranked order is never discarded, only the
// rendered noise is bounded.
func LimitSuggested(records []core.ScoredRecord, maxTotal int) []core.ScoredRecord {
	if len(records) <= maxTotal {
		return records
	}

	exactCount := 0
	for i := range records {
		if records[i].MatchType == core.MatchTypeExact {
			exactCount++
		}
	}
	if exactCount == len(records) {
		return records
	}

	allowed := maxTotal - exactCount
	if allowed < 0 {
		allowed = 0
	}

	out := make([]core.ScoredRecord, 0, exactCount+allowed)
	keptSuggested := 0
	for _, record := range records {
		if record.MatchType == core.MatchTypeExact {
			out = append(out, record)
			continue
		}
		if keptSuggested < allowed {
			out = append(out, record)
			keptSuggested++
		}
	}
	return out
}
