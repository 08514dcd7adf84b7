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


package search

import (
	"runtime"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"github.com/poiesic/sermonsearch/core"
)

// topicScoreThreshold is the partial-ratio a topic must exceed
// (strictly) against a title to count toward the record's score.
// Tuned empirically; do not round.
const topicScoreThreshold = 80

// Scorer computes per-record relevance scores for a topic phrase.
// Scoring a batch fans out over a worker pool; results are written back
// by index, so output is deterministic regardless of scheduling.
type Scorer struct {
	pool *ants.Pool
}

// NewScorer creates a scorer with a worker pool of the given size.
// Sizes below 1 fall back to half the CPU count, minimum 1.
func NewScorer(poolSize int) (*Scorer, error) {
	if poolSize < 1 {
		poolSize = runtime.NumCPU() / 2
		if poolSize < 1 {
			poolSize = 1
		}
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}
	return &Scorer{pool: pool}, nil
}

// Release frees the worker pool. The scorer must not be used afterwards.
func (s *Scorer) Release() {
	s.pool.Release()
}

// Score computes relevance for each record against the topic phrase and
// returns the records that matched, stamped with the given label.
//
// The phrase is split into topics (see splitTopics); an empty topic
// list contributes nothing and yields an empty result. Each topic whose
// fuzzy partial-ratio against the lowercased title exceeds the
// threshold adds its score to the record's MatchScore (scores compound,
// they are not maxed). Records are returned in input order; the input
// is never mutated.
func (s *Scorer) Score(records []core.CatalogRecord, topicPhrase string, label core.MatchType) []core.ScoredRecord {
	topics := splitTopics(topicPhrase)
	if len(topics) == 0 {
		return []core.ScoredRecord{}
	}

	scored := make([]core.ScoredRecord, len(records))
	var wg sync.WaitGroup
	for i := range records {
		wg.Add(1)
		record := records[i]
		idx := i
		if err := s.pool.Submit(func() {
			defer wg.Done()
			scored[idx] = scoreRecord(record, topics, label)
		}); err != nil {
			// Pool exhausted or released: score inline.
			scored[idx] = scoreRecord(record, topics, label)
			wg.Done()
		}
	}
	wg.Wait()

	matched := make([]core.ScoredRecord, 0, len(records))
	for i := range scored {
		if scored[i].MatchScore > 0 {
			matched = append(matched, scored[i])
		}
	}
	return matched
}

// scoreRecord sums the fuzzy scores of every topic that clears the
// threshold against the record's title.
func scoreRecord(record core.CatalogRecord, topics []string, label core.MatchType) core.ScoredRecord {
	title := strings.ToLower(record.Title)
	total := 0
	count := 0
	for _, topic := range topics {
		if score := fuzzy.PartialRatio(topic, title); score > topicScoreThreshold {
			total += score
			count++
		}
	}
	return core.ScoredRecord{
		CatalogRecord: record,
		MatchScore:    total,
		MatchCount:    count,
		MatchType:     label,
	}
}
