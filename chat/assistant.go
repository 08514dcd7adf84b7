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


package chat

import (
	"context"
	"log/slog"
	"time"

	"github.com/poiesic/sermonsearch/ai"
	"github.com/poiesic/sermonsearch/catalog"
	"github.com/poiesic/sermonsearch/core"
	"github.com/poiesic/sermonsearch/search"
	"github.com/poiesic/sermonsearch/session"
)

// Assistant orchestrates one conversational interaction: query to
// intent to ranked results to session memory to rendered reply.
type Assistant struct {
	catalog    *catalog.Cache
	extractor  ai.IntentExtractor
	searcher   *search.Searcher
	pageSize   int
	displayCap int
	clock      func() time.Time
	logger     *slog.Logger
}

// Reply is what one interaction hands back to the presentation layer.
type Reply struct {
	// Text is the fully rendered assistant response.
	Text string
	// Records is the batch of results included in the reply.
	Records []core.ScoredRecord
	// Remaining is how many ranked records a "load more" can still serve.
	Remaining int
	// Intent echoes the extracted intent for callers that want it.
	Intent *core.IntentResult
}

// Option configures an Assistant.
type Option func(*Assistant) error

// WithPageSize sets the load-more batch size. Default is 10.
func WithPageSize(size int) Option {
	return func(a *Assistant) error {
		if size > 0 {
			a.pageSize = size
		}
		return nil
	}
}

// WithDisplayCap sets the mixed-result truncation bound.
// Default is search.DefaultDisplayCap.
func WithDisplayCap(maxTotal int) Option {
	return func(a *Assistant) error {
		if maxTotal > 0 {
			a.displayCap = maxTotal
		}
		return nil
	}
}

// WithClock replaces the time source, which anchors relative dates in
// intent extraction. Default is time.Now.
func WithClock(clock func() time.Time) Option {
	return func(a *Assistant) error {
		if clock != nil {
			a.clock = clock
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assistant) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// NewAssistant creates an assistant over the given collaborators.
func NewAssistant(cache *catalog.Cache, extractor ai.IntentExtractor, searcher *search.Searcher, opts ...Option) (*Assistant, error) {
	if cache == nil {
		return nil, ErrCatalogRequired
	}
	if extractor == nil {
		return nil, ErrExtractorRequired
	}
	if searcher == nil {
		return nil, ErrSearcherRequired
	}

	a := &Assistant{
		catalog:    cache,
		extractor:  extractor,
		searcher:   searcher,
		pageSize:   core.DefaultLimit,
		displayCap: search.DefaultDisplayCap,
		clock:      time.Now,
		logger:     slog.Default().With("component", "assistant"),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// HandleQuery runs a fresh search interaction for the session.
//
// The catalog read and the model call are the only blocking stages;
// both degrade rather than fail (empty catalog, fallback intent), so
// the only user-visible error state is total catalog unavailability.
// The truncated ranked result set replaces the session's search memory
// wholesale, with the cursor past the batch rendered here.
func (a *Assistant) HandleQuery(ctx context.Context, sess *session.Session, query string) (*Reply, error) {
	sess.Append(session.RoleUser, query)

	records := a.catalog.Load(ctx)
	if len(records) == 0 {
		text := renderNoCatalog()
		sess.Append(session.RoleAssistant, text)
		return &Reply{Text: text, Records: []core.ScoredRecord{}}, nil
	}

	result, err := a.extractor.ExtractIntent(ctx, query, a.clock())
	if err != nil {
		// Extractors own their fallback; this is a second net in case
		// an implementation leaks an error anyway.
		a.logger.Warn("intent extractor returned an error", "err", err)
		result = ai.Fallback(query)
	}
	intent := result.Intent

	ranked, err := a.searcher.Rank(ctx, records, &intent)
	if err != nil {
		return nil, err
	}

	// Bound rendered noise before the set becomes session memory.
	display := core.NewResultSet(search.LimitSuggested(ranked.Records, a.displayCap))

	batchSize := intent.Limit
	if batchSize > display.Len() {
		batchSize = display.Len()
	}
	batch := display.Records[:batchSize]
	sess.Remember(query, display, batchSize)

	text := renderQueryReply(query, result, display, batch, sess.Remaining())
	sess.Append(session.RoleAssistant, text)

	a.logger.Debug("handled query",
		"session", sess.ID(),
		"results", display.Len(),
		"shown", batchSize,
		"fromFallback", result.FromFallback())

	return &Reply{
		Text:      text,
		Records:   batch,
		Remaining: sess.Remaining(),
		Intent:    result,
	}, nil
}

// LoadMore serves the next batch from the session's remembered result
// set. Exhausted memory is a normal state, not an error.
func (a *Assistant) LoadMore(ctx context.Context, sess *session.Session) (*Reply, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sess.Append(session.RoleUser, "Show more results")
	batch := sess.NextBatch(a.pageSize)
	text := renderMoreReply(batch, sess.Remaining())
	sess.Append(session.RoleAssistant, text)

	return &Reply{
		Text:      text,
		Records:   batch,
		Remaining: sess.Remaining(),
	}, nil
}

// Clear resets the session's transcript and search memory together.
func (a *Assistant) Clear(sess *session.Session) {
	sess.Clear()
}

// Close releases the assistant's ranking resources.
func (a *Assistant) Close() error {
	return a.searcher.Close()
}
