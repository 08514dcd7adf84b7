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


package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/poiesic/sermonsearch/core"
)

// dateLayouts are tried in order when parsing a record's date column.
// A date matching none of them is not fatal; the record simply carries
// no date.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"1/2/2006",
	"January 2, 2006",
	"2 January 2006",
	"Jan 2, 2006",
}

// SheetLoader fetches the catalog as CSV from a published spreadsheet
// export URL. The sheet is treated strictly as a read-only tabular
// provider; the loader owns header mapping and tolerant parsing.
type SheetLoader struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

// SheetOption configures a SheetLoader.
type SheetOption func(*SheetLoader)

// WithHTTPClient replaces the HTTP client. Default has a 30s timeout.
func WithHTTPClient(client *http.Client) SheetOption {
	return func(l *SheetLoader) {
		if client != nil {
			l.client = client
		}
	}
}

// WithSheetLogger sets a custom logger.
func WithSheetLogger(logger *slog.Logger) SheetOption {
	return func(l *SheetLoader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewSheetLoader creates a loader for the given CSV export URL.
func NewSheetLoader(url string, opts ...SheetOption) (*SheetLoader, error) {
	if strings.TrimSpace(url) == "" {
		return nil, ErrEmptyURL
	}

	l := &SheetLoader{
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
		logger: slog.Default().With("component", "sheet-loader"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Load fetches the CSV export and parses it into catalog records.
// Rows without a title are skipped; unparsable dates leave the record
// undated rather than failing the load.
func (l *SheetLoader) Load(ctx context.Context) ([]core.CatalogRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building catalog request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrBadStatus, resp.StatusCode)
	}

	return l.parse(resp.Body)
}

// parse reads the CSV stream into records using the header row to
// locate columns.
func (l *SheetLoader) parse(r io.Reader) ([]core.CatalogRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading catalog header: %w", err)
	}
	columns := mapColumns(header)

	var records []core.CatalogRecord
	skipped := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A single malformed row is not worth losing the catalog.
			skipped++
			continue
		}

		record := core.CatalogRecord{
			Title:        cell(row, columns.title),
			Speaker:      cell(row, columns.speaker),
			DownloadLink: cell(row, columns.link),
			Date:         parseSheetDate(cell(row, columns.date)),
		}
		core.NormalizeRecord(&record)
		if err := core.ValidateRecord(&record); err != nil {
			skipped++
			continue
		}
		records = append(records, record)
	}

	if skipped > 0 {
		l.logger.Warn("skipped unusable catalog rows", "skipped", skipped, "kept", len(records))
	}
	l.logger.Debug("loaded catalog", "records", len(records))
	return records, nil
}

// columnIndexes holds the positions of the known catalog columns.
// A value of -1 means the column is absent.
type columnIndexes struct {
	title   int
	speaker int
	date    int
	link    int
}

// mapColumns locates the known columns in the header row. Header names
// are matched loosely: trimmed, case-insensitive, with a few synonyms
// the live sheets have used over time.
func mapColumns(header []string) columnIndexes {
	columns := columnIndexes{title: -1, speaker: -1, date: -1, link: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "title", "sermon title":
			columns.title = i
		case "speaker", "preacher", "minister":
			columns.speaker = i
		case "date":
			columns.date = i
		case "downloadlink", "download link", "link", "url":
			columns.link = i
		}
	}
	return columns
}

// cell returns the trimmed value at index, or empty when the column is
// absent or the row is short.
func cell(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

// parseSheetDate tries the known layouts. Failure is never fatal: the
// zero time marks the record as undated.
func parseSheetDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
