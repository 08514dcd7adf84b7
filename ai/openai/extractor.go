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


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/poiesic/sermonsearch/ai"
	"github.com/poiesic/sermonsearch/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// IntentExtractor implements ai.IntentExtractor using OpenAI-compatible chat APIs.
type IntentExtractor struct {
	client  llms.Model // nil when no credential is configured
	timeout time.Duration
	logger  *slog.Logger
}

// rawIntent is an internal type used for JSON unmarshaling.
// Fields are loose on purpose: the model's output is untyped and gets
// coerced into core.SearchIntent immediately after parsing.
type rawIntent struct {
	Keywords  *string `json:"keywords"`
	Synonyms  *string `json:"synonyms"`
	Speaker   *string `json:"speaker"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Limit     any     `json:"limit"`
	Sort      *string `json:"sort"`
}

// newIntentExtractor is an internal constructor that returns the concrete type.
func newIntentExtractor(config *ai.Config) (*IntentExtractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	logger := slog.Default().With("component", "openai-intent")

	// No credential means extraction is disabled: every query takes
	// the deterministic fallback path instead of failing.
	if config.APIKey == "" {
		logger.Warn("no API key configured, intent extraction will use the fallback path")
		return &IntentExtractor{
			timeout: config.Timeout,
			logger:  logger,
		}, nil
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(config.APIKey),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &IntentExtractor{
		client:  client,
		timeout: config.Timeout,
		logger:  logger,
	}, nil
}

// NewIntentExtractor creates an intent extractor using the provided configuration.
//
// Returns ai.IntentExtractor interface to enforce abstraction.
func NewIntentExtractor(config *ai.Config) (ai.IntentExtractor, error) {
	return newIntentExtractor(config)
}

// ExtractIntent parses a free-text query into a structured search
// intent using the configured model. Any provider failure, timeout, or
// unparsable response degrades to ai.Fallback with a nil error; no
// automatic retries are performed.
func (e *IntentExtractor) ExtractIntent(ctx context.Context, userQuery string, today time.Time) (*core.IntentResult, error) {
	if e.client == nil {
		return ai.Fallback(userQuery), nil
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildIntentPrompt(today)),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userQuery),
			},
		},
	}

	response, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
	if err != nil {
		e.logger.Warn("model call failed, using fallback intent", "err", err)
		return ai.Fallback(userQuery), nil
	}

	if len(response.Choices) < 1 {
		e.logger.Warn("no choices returned from model, using fallback intent")
		return ai.Fallback(userQuery), nil
	}

	// Strip markdown code fences if present
	responseText := strings.TrimSpace(response.Choices[0].Content)
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")
	responseText = strings.TrimSpace(responseText)

	// Try to repair common JSON issues
	responseText = repairJSON(responseText)

	var raw rawIntent
	if err := json.Unmarshal([]byte(responseText), &raw); err != nil {
		e.logger.Warn("error parsing model response, using fallback intent",
			"response", responseText,
			"err", err)
		return ai.Fallback(userQuery), nil
	}

	intent := coerceIntent(&raw, e.logger)
	e.logger.Debug("extracted intent",
		"keywords", intent.Keywords,
		"synonyms", intent.Synonyms,
		"speaker", intent.Speaker,
		"limit", intent.Limit,
		"sort", intent.Sort)

	return &core.IntentResult{
		Intent: intent,
		Source: core.IntentSourceModel,
	}, nil
}

// coerceIntent converts the loose model output into the strict
// SearchIntent shape, defaulting field by field. An unparsable date
// bound is dropped rather than failing the whole extraction.
func coerceIntent(raw *rawIntent, logger *slog.Logger) core.SearchIntent {
	intent := core.SearchIntent{
		Keywords: stringOrEmpty(raw.Keywords),
		Synonyms: stringOrEmpty(raw.Synonyms),
		Speaker:  stringOrEmpty(raw.Speaker),
		Limit:    coerceLimit(raw.Limit),
		Sort:     core.SortOrder(stringOrEmpty(raw.Sort)),
	}

	intent.StartDate = parseDate(raw.StartDate, "start_date", logger)
	intent.EndDate = parseDate(raw.EndDate, "end_date", logger)

	core.NormalizeIntent(&intent)
	return intent
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// coerceLimit accepts the number, string, or null the model may emit
// for the limit field. Anything unusable collapses to zero, which
// NormalizeIntent turns into the default.
func coerceLimit(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0
		}
		return parsed
	case json.Number:
		parsed, err := n.Int64()
		if err != nil {
			return 0
		}
		return int(parsed)
	default:
		return 0
	}
}

// parseDate parses a YYYY-MM-DD bound. A missing or malformed bound
// yields the zero time, which disables that filter.
func parseDate(s *string, field string, logger *slog.Logger) time.Time {
	if s == nil {
		return time.Time{}
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" || strings.EqualFold(trimmed, "none") || strings.EqualFold(trimmed, "null") {
		return time.Time{}
	}
	parsed, err := time.Parse("2006-01-02", trimmed)
	if err != nil {
		logger.Debug("ignoring unparsable date bound", "field", field, "value", trimmed)
		return time.Time{}
	}
	return parsed
}
