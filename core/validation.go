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


package core

import (
	"fmt"
	"strings"
)

// NormalizeIntent coerces a SearchIntent into its canonical shape.
//
// Coercion rules:
//   - Keywords, Synonyms, Speaker are trimmed; a literal "none"
//     (any case) collapses to empty
//   - Limit <= 0 becomes DefaultLimit
//   - Sort is lowercased; anything other than "newest" becomes
//     SortRelevance
//
// After NormalizeIntent the intent is never partially absent: every
// field carries either a usable value or its documented default.
func NormalizeIntent(intent *SearchIntent) {
	intent.Keywords = collapseNone(intent.Keywords)
	intent.Synonyms = collapseNone(intent.Synonyms)
	intent.Speaker = collapseNone(intent.Speaker)

	if intent.Limit <= 0 {
		intent.Limit = DefaultLimit
	}

	switch SortOrder(strings.ToLower(strings.TrimSpace(string(intent.Sort)))) {
	case SortNewest:
		intent.Sort = SortNewest
	default:
		intent.Sort = SortRelevance
	}
}

// collapseNone trims the string and collapses the literal "none",
// which the model sometimes emits instead of null, to empty.
func collapseNone(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "none") {
		return ""
	}
	return s
}

// NormalizeRecord puts a catalog record into canonical form: fields are
// trimmed, a missing download link gets the placeholder, and the
// content-hash ID is computed if unset.
func NormalizeRecord(record *CatalogRecord) {
	record.Title = strings.TrimSpace(record.Title)
	record.Speaker = strings.TrimSpace(record.Speaker)
	record.DownloadLink = strings.TrimSpace(record.DownloadLink)
	if record.DownloadLink == "" {
		record.DownloadLink = PlaceholderLink
	}
	if record.Id == 0 {
		record.Id = record.ContentID()
	}
}

// ValidateRecord validates a CatalogRecord according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//
// NOT validated (optional by design):
//   - Date (zero is a legal "unknown date")
//   - DownloadLink (defaults to the placeholder)
//   - Speaker (some rows carry no speaker)
func ValidateRecord(record *CatalogRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}
	if strings.TrimSpace(record.Title) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyTitle)
	}
	return nil
}

// ValidateMatchType validates that a MatchType has a valid value.
func ValidateMatchType(t MatchType) error {
	if t != MatchTypeExact && t != MatchTypeSuggested {
		return fmt.Errorf("%w: value %d", ErrInvalidMatchType, t)
	}
	return nil
}
