package chat

import (
	"fmt"
	"strings"

	"github.com/poiesic/sermonsearch/core"
)

// noDateLabel is rendered for records without a usable date.
const noDateLabel = "N/A"

// renderNoCatalog is the one failure allowed to reach the user as a
// direct report: total catalog unavailability.
func renderNoCatalog() string {
	return "The sermon catalog is not reachable right now. Please try again in a few minutes."
}

// renderQueryReply builds the full response for a fresh query: the
// detected-theme caption, a summary line, the first batch of records
// grouped under match-type headers, and a load-more hint.
func renderQueryReply(query string, result *core.IntentResult, results *core.ResultSet, batch []core.ScoredRecord, remaining int) string {
	var b strings.Builder

	if caption := renderCaption(result); caption != "" {
		b.WriteString(caption)
		b.WriteString("\n\n")
	}

	exactCount := results.CountType(core.MatchTypeExact)
	suggestedCount := results.CountType(core.MatchTypeSuggested)

	switch {
	case results.Len() == 0:
		fmt.Fprintf(&b, "I couldn't find any exact matches for %q, and no related topics were found.", query)
		return b.String()
	case exactCount == 0:
		fmt.Fprintf(&b, "I did not find any sermon with an exact match, here are %d related/suggested results:\n", suggestedCount)
	default:
		fmt.Fprintf(&b, "Found %d sermons. Here are the results:\n", results.Len())
	}

	writeBatch(&b, batch, exactCount, true)

	if remaining > 0 {
		fmt.Fprintf(&b, "\n%d more results available — reply \"more\" to see them.", remaining)
	}
	return b.String()
}

// renderMoreReply builds the response for a load-more action.
func renderMoreReply(batch []core.ScoredRecord, remaining int) string {
	if len(batch) == 0 {
		return "There are no more results to show."
	}

	var b strings.Builder
	writeBatch(&b, batch, 0, false)
	if remaining > 0 {
		fmt.Fprintf(&b, "\n%d more results available — reply \"more\" to see them.", remaining)
	}
	return b.String()
}

// renderCaption summarizes what the search understood from the query.
// The fallback intent carries the raw query as its keywords, so even a
// failed extraction produces a caption. Empty only when every field is.
func renderCaption(result *core.IntentResult) string {
	if result == nil {
		return ""
	}
	intent := result.Intent

	var parts []string
	if intent.HasSpeaker() {
		parts = append(parts, "Speaker: "+intent.Speaker)
	}
	if intent.Keywords != "" {
		parts = append(parts, "Keywords: "+intent.Keywords)
	}
	if intent.Synonyms != "" {
		parts = append(parts, "Related: "+intent.Synonyms)
	}
	if len(parts) == 0 {
		return ""
	}
	return "Detected themes: " + strings.Join(parts, " | ")
}

// writeBatch renders records, inserting a section header every time the
// match type changes. Headers are suppressed on load-more batches.
func writeBatch(b *strings.Builder, batch []core.ScoredRecord, exactCount int, withHeaders bool) {
	var section core.MatchType
	for i := range batch {
		record := &batch[i]
		if withHeaders && record.MatchType != section {
			section = record.MatchType
			b.WriteString("\n")
			b.WriteString(sectionHeader(section, exactCount))
			b.WriteString("\n")
		}
		writeRecord(b, record)
	}
}

func sectionHeader(t core.MatchType, exactCount int) string {
	if t == core.MatchTypeExact {
		if exactCount == 1 {
			return "== Exact Match =="
		}
		return "== Exact Matches =="
	}
	return "== Related / Suggested Results =="
}

// writeRecord renders one result as a card: title, speaker, date with
// the N/A sentinel, and the download link.
func writeRecord(b *strings.Builder, record *core.ScoredRecord) {
	dateLabel := noDateLabel
	if record.HasDate() {
		dateLabel = record.Date.Format("2006-01-02")
	}
	fmt.Fprintf(b, "- %s\n", record.Title)
	fmt.Fprintf(b, "    %s | %s\n", record.Speaker, dateLabel)
	fmt.Fprintf(b, "    Download: %s\n", record.DownloadLink)
}
