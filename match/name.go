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


package match

import (
	"slices"
	"strings"
	"unicode/utf8"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// aliases maps common short forms to the full name they expand to.
var aliases = map[string]string{
	"dami": "damilola",
	"temi": "temitope",
	"ibk":  "ibukun",
	"pst":  "pastor",
}

// honorifics are stripped from the candidate name before matching.
var honorifics = []string{
	"pastor", "apostle", "rev", "reverend", "prophet", "evangelist",
	"min", "minister", "dr", "mr", "mrs", "pst",
}

// Similarity thresholds, tuned empirically against the live catalog.
// Do not round these.
const (
	containedThreshold = 95 // query literally contained in the candidate
	aliasThreshold     = 80 // expanded alias against the candidate
	shortNameThreshold = 95 // full-string ratio for names of 5 runes or fewer
	longNameThreshold  = 75 // partial ratio for longer names
	shortNameMaxRunes  = 5
)

// Names reports whether a free-text speaker query refers to the given
// catalog speaker field. The query may be a full name or a nickname;
// honorific titles on the candidate are ignored.
//
// Matching is ordered, first hit wins:
//  1. high-confidence partial match (query contained in candidate)
//  2. alias expansion (e.g. "dami" -> "damilola")
//  3. exact whole-word membership in the candidate
//  4. length-sensitive fuzzy fallback; short queries require a near
//     perfect full-string match to avoid collisions like
//     "Seun" vs "Segun"
//
// Empty inputs never match. The function is pure and deterministic.
func Names(queryName, candidateName string) bool {
	query := strings.ToLower(strings.TrimSpace(queryName))
	candidate := stripHonorifics(strings.ToLower(strings.TrimSpace(candidateName)))
	if query == "" || candidate == "" {
		return false
	}

	if fuzzy.PartialRatio(query, candidate) >= containedThreshold {
		return true
	}

	if expanded, ok := aliases[query]; ok {
		if fuzzy.PartialRatio(expanded, candidate) >= aliasThreshold {
			return true
		}
	}

	if slices.Contains(strings.Fields(candidate), query) {
		return true
	}

	if utf8.RuneCountInString(query) <= shortNameMaxRunes {
		return fuzzy.Ratio(query, candidate) >= shortNameThreshold
	}
	return fuzzy.PartialRatio(query, candidate) >= longNameThreshold
}

// stripHonorifics removes leading honorific tokens from a lowercased
// name. Only whole-word prefixes are removed, so "Dr Mr Seun" becomes
// "seun" but "drew" is left alone.
func stripHonorifics(name string) string {
	words := strings.Fields(name)
	for len(words) > 0 && slices.Contains(honorifics, words[0]) {
		words = words[1:]
	}
	return strings.Join(words, " ")
}
