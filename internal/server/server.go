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

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/poiesic/sermonsearch/chat"
	"github.com/poiesic/sermonsearch/session"
)

// Server exposes the chat assistant over HTTP.
type Server struct {
	echo       *echo.Echo
	assistant  *chat.Assistant
	sessions   *session.Store
	sessionTTL time.Duration
	logger     *slog.Logger
}

// Option configures a Server.
type Option func(*Server) error

// WithLogger sets the logger used for request and lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		s.logger = logger
		return nil
	}
}

// WithSessionTTL overrides how long idle chat sessions are kept.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Server) error {
		if ttl <= 0 {
			return fmt.Errorf("session ttl must be positive")
		}
		s.sessionTTL = ttl
		return nil
	}
}

// New creates a Server around an assistant and a session store.
func New(assistant *chat.Assistant, sessions *session.Store, opts ...Option) (*Server, error) {
	if assistant == nil {
		return nil, ErrAssistantRequired
	}
	if sessions == nil {
		return nil, ErrSessionStoreRequired
	}

	s := &Server{
		assistant:  assistant,
		sessions:   sessions,
		sessionTTL: session.DefaultTTL,
		logger:     slog.Default().With("component", "server"),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.HTTPErrorHandler = s.errorHandler

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	h := &chatHandler{server: s}
	h.Register(e.Group("/api"))

	s.echo = e
	return s, nil
}

// Start serves HTTP on addr and blocks until the listener fails or the
// context is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.echo.Start(addr)
	}()
	s.logger.Info("http server listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.echo.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Handler returns the underlying HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) errorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	msg := err.Error()
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if he.Message != nil {
			msg = fmt.Sprint(he.Message)
		}
	}
	req := c.Request()
	s.logger.Warn("request failed",
		"status", code,
		"method", req.Method,
		"path", req.URL.Path,
		"error", err)
	if !c.Response().Committed {
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}
