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


// Package search implements the deterministic filter/match/rank engine.
//
// The Searcher type applies a structured SearchIntent to the catalog in
// stages:
//   - date-range and fuzzy speaker-name filtering
//   - an exact pass over the keyword phrase and a suggested pass over
//     the synonym phrase when exact matches are sparse
//   - a filter-only fallback so queries without a topic still return
//     the filtered rows
//   - stable ordering by match-type rank, compound fuzzy score, and
//     recency
//
// Scoring fans out over a worker pool but is fully deterministic for a
// given catalog and intent.
package search
