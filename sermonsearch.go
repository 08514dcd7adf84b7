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

package sermonsearch

import (
	"log/slog"

	"github.com/poiesic/sermonsearch/ai"
	"github.com/poiesic/sermonsearch/ai/openai"
	"github.com/poiesic/sermonsearch/catalog"
	"github.com/poiesic/sermonsearch/chat"
	"github.com/poiesic/sermonsearch/config"
	"github.com/poiesic/sermonsearch/search"
	"github.com/poiesic/sermonsearch/session"
	"github.com/poiesic/sermonsearch/storage/badger"
)

// Service wires the catalog, intent extraction, search, and session
// layers into one assistant ready to answer queries.
type Service struct {
	backend   *badger.Backend
	cache     *catalog.Cache
	extractor ai.IntentExtractor
	searcher  *search.Searcher
	assistant *chat.Assistant
	sessions  *session.Store
	logger    *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	extractor ai.IntentExtractor
	loader    catalog.Loader
}

// WithIntentExtractor substitutes the intent extractor, mainly for
// tests and offline use.
func WithIntentExtractor(extractor ai.IntentExtractor) ServiceOption {
	return func(o *serviceOptions) {
		o.extractor = extractor
	}
}

// WithCatalogLoader substitutes the catalog source.
func WithCatalogLoader(loader catalog.Loader) ServiceOption {
	return func(o *serviceOptions) {
		o.loader = loader
	}
}

// NewService builds a Service from cfg. When cfg.DataDir is set the
// catalog cache is backed by a badger snapshot store so a previously
// fetched catalog survives source outages and restarts.
func NewService(cfg *config.Config, opts ...ServiceOption) (*Service, error) {
	if cfg == nil {
		cfg = config.New()
	}
	options := &serviceOptions{}
	for _, opt := range opts {
		opt(options)
	}

	var backend *badger.Backend
	cacheOpts := []catalog.CacheOption{catalog.WithTTL(cfg.CatalogTTL)}
	if cfg.DataDir != "" {
		var err error
		backend, err = badger.OpenBackend(cfg.DataDir, false)
		if err != nil {
			return nil, err
		}
		snapshots, err := badger.NewSnapshotStore(backend)
		if err != nil {
			backend.Close()
			return nil, err
		}
		cacheOpts = append(cacheOpts, catalog.WithSnapshotStore(snapshots))
	}

	loader := options.loader
	if loader == nil {
		var err error
		loader, err = catalog.NewSheetLoader(cfg.CatalogURL)
		if err != nil {
			closeBackend(backend)
			return nil, err
		}
	}

	cache, err := catalog.NewCache(loader, cacheOpts...)
	if err != nil {
		closeBackend(backend)
		return nil, err
	}

	extractor := options.extractor
	if extractor == nil {
		extractor, err = openai.NewIntentExtractor(ai.NewConfig(
			ai.WithHost(cfg.AIHost),
			ai.WithModel(cfg.AIModel),
			ai.WithAPIKey(cfg.AIAPIKey),
			ai.WithTimeout(cfg.AITimeout),
		))
		if err != nil {
			closeBackend(backend)
			return nil, err
		}
	}

	searcher, err := search.NewSearcher(search.WithPoolSize(cfg.ScorerPoolSize))
	if err != nil {
		closeBackend(backend)
		return nil, err
	}

	assistant, err := chat.NewAssistant(cache, extractor, searcher,
		chat.WithPageSize(cfg.PageSize),
		chat.WithDisplayCap(cfg.DisplayCap),
	)
	if err != nil {
		searcher.Close()
		closeBackend(backend)
		return nil, err
	}

	return &Service{
		backend:   backend,
		cache:     cache,
		extractor: extractor,
		searcher:  searcher,
		assistant: assistant,
		sessions:  session.NewStore(),
		logger:    slog.Default(),
	}, nil
}

// Assistant returns the wired chat assistant.
func (s *Service) Assistant() *chat.Assistant {
	return s.assistant
}

// Sessions returns the session store shared by the service's callers.
func (s *Service) Sessions() *session.Store {
	return s.sessions
}

// Catalog returns the catalog cache.
func (s *Service) Catalog() *catalog.Cache {
	return s.cache
}

// Close releases the scoring pool and the snapshot backend.
func (s *Service) Close() error {
	if err := s.assistant.Close(); err != nil {
		s.logger.Error("error closing assistant", "err", err)
	}
	if s.backend != nil {
		if err := s.backend.Close(); err != nil {
			s.logger.Error("error closing backend storage", "err", err)
			return err
		}
	}
	return nil
}

func closeBackend(backend *badger.Backend) {
	if backend != nil {
		backend.Close()
	}
}
