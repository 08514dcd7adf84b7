package openai

import (
	"fmt"
	"time"
)

const intentResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "keywords": {"type": ["string", "null"]},
    "synonyms": {"type": ["string", "null"]},
    "speaker": {"type": ["string", "null"]},
    "start_date": {"type": ["string", "null"], "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
    "end_date": {"type": ["string", "null"], "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
    "limit": {"type": "integer", "minimum": 1},
    "sort": {"type": "string", "enum": ["relevance", "newest"]}
  },
  "required": ["keywords", "synonyms", "speaker", "start_date", "end_date", "limit", "sort"],
  "additionalProperties": false
}`

const intentPromptTemplate = `You are a search parser for a catalog of recorded sermons. Today is %s.

Analyze the user's query and output a JSON object with search filters.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- "keywords": the core topic of the query, with filler phrasing like "messages about" or "sermons on" stripped. Null if the query has no topic.
- "synonyms": a short comma-separated list of related topics. Example: keywords "generosity" -> synonyms "giving, sacrifice".
- "speaker": the speaker's name with honorific titles (Pastor, Rev, Dr, ...) removed, or null. Keep nicknames as given: "Dami", "Temi", "Ibk" are valid speaker values.
- "start_date"/"end_date": resolve explicit years, months, and relative phrases ("last week", "yesterday") against today's date. Null when the query has no date constraint.
- "limit": "latest message" or "last message" phrasing means limit 1 with sort "newest". Default limit is 10.
- "sort": "newest" only when the user asks for the most recent results; otherwise "relevance".
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "messages by Pastor Dami about faith from 2023"
Output:
{
  "keywords": "faith",
  "synonyms": "trust, belief",
  "speaker": "Dami",
  "start_date": "2023-01-01",
  "end_date": "2023-12-31",
  "limit": 10,
  "sort": "relevance"
}

Example:
Input: "what was the latest sermon"
Output:
{
  "keywords": null,
  "synonyms": null,
  "speaker": null,
  "start_date": null,
  "end_date": null,
  "limit": 1,
  "sort": "newest"
}`

// buildIntentPrompt creates the system prompt with today's date embedded,
// so the model can resolve relative date phrasing.
func buildIntentPrompt(today time.Time) string {
	return fmt.Sprintf(intentPromptTemplate,
		today.Format("2006-01-02"),
		intentResponseSchema)
}
