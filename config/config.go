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

package config

import (
	"time"

	"github.com/poiesic/sermonsearch/ai"
	"github.com/poiesic/sermonsearch/catalog"
	"github.com/poiesic/sermonsearch/session"
)

// Config holds process configuration for the sermon search service.
// Fields carry koanf tags so they can be layered from a YAML file and
// SERMONSEARCH_-prefixed environment variables.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr is the HTTP listen address for the serve command, e.g. ":8080".
	Addr string `koanf:"addr"`

	// CatalogURL points at the published CSV export of the sermon sheet.
	CatalogURL string `koanf:"catalog_url"`

	// CatalogTTL bounds how long a fetched catalog is reused before a
	// refresh is attempted.
	CatalogTTL time.Duration `koanf:"catalog_ttl"`

	// DataDir is where the catalog snapshot database lives. Empty
	// disables snapshot persistence.
	DataDir string `koanf:"data_dir"`

	// PageSize is the number of results returned per "more" request.
	PageSize int `koanf:"page_size"`

	// DisplayCap bounds the combined result set handed to a session.
	DisplayCap int `koanf:"display_cap"`

	// SessionTTL controls how long an idle chat session is retained.
	SessionTTL time.Duration `koanf:"session_ttl"`

	// AIHost is the OpenAI-compatible base URL for intent extraction.
	AIHost string `koanf:"ai_host"`

	// AIModel names the model used for intent extraction.
	AIModel string `koanf:"ai_model"`

	// AIAPIKey authenticates against AIHost. Empty disables the model
	// and every query falls back to deterministic extraction.
	AIAPIKey string `koanf:"ai_api_key"`

	// AITimeout bounds a single intent extraction call.
	AITimeout time.Duration `koanf:"ai_timeout"`

	// ScorerPoolSize sets the number of goroutines used for topic
	// scoring. Zero picks a size from the CPU count.
	ScorerPoolSize int `koanf:"scorer_pool_size"`
}

// New returns a Config populated with defaults.
func New() *Config {
	aiDefaults := ai.DefaultConfig()
	return &Config{
		LogLevel:   "info",
		Addr:       ":8080",
		CatalogTTL: catalog.DefaultTTL,
		PageSize:   10,
		DisplayCap: 20,
		SessionTTL: session.DefaultTTL,
		AIHost:     aiDefaults.Host,
		AIModel:    aiDefaults.Model,
		AITimeout:  aiDefaults.Timeout,
	}
}
