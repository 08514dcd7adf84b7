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
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/poiesic/sermonsearch/chat"
	"github.com/poiesic/sermonsearch/core"
	"github.com/poiesic/sermonsearch/session"
)

// sessionCookie carries the chat session identifier between requests.
const sessionCookie = "sermonsearch_session"

type chatHandler struct {
	server *Server
}

// Register mounts the chat endpoints on g.
func (h *chatHandler) Register(g *echo.Group) {
	g.POST("/chat", h.handleChat)
	g.POST("/more", h.handleMore)
	g.POST("/clear", h.handleClear)
}

func (h *chatHandler) handleChat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query must not be empty")
	}

	sess := h.resolveSession(c)
	reply, err := h.server.assistant.HandleQuery(c.Request().Context(), sess, query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newChatResponse(sess.ID(), reply))
}

func (h *chatHandler) handleMore(c echo.Context) error {
	sess, err := h.currentSession(c)
	if err != nil {
		return err
	}
	reply, err := h.server.assistant.LoadMore(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newChatResponse(sess.ID(), reply))
}

func (h *chatHandler) handleClear(c echo.Context) error {
	sess, err := h.currentSession(c)
	if err != nil {
		return err
	}
	h.server.assistant.Clear(sess)
	return c.JSON(http.StatusOK, clearResponse{SessionID: sess.ID(), Cleared: true})
}

// resolveSession finds the caller's session from the cookie, creating a
// new one when the cookie is missing or expired, and refreshes the
// cookie either way.
func (h *chatHandler) resolveSession(c echo.Context) *session.Session {
	id := ""
	if cookie, err := c.Cookie(sessionCookie); err == nil {
		id = cookie.Value
	}
	sess := h.server.sessions.EnsureSession(id, h.server.sessionTTL)
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    sess.ID(),
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(h.server.sessionTTL.Seconds()),
	})
	return sess
}

// currentSession requires an existing session; pagination and clearing
// have nothing to act on without one.
func (h *chatHandler) currentSession(c echo.Context) (*session.Session, error) {
	cookie, err := c.Cookie(sessionCookie)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "no active session")
	}
	sess, err := h.server.sessions.GetSession(cookie.Value)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "session expired")
		}
		return nil, err
	}
	return sess, nil
}

func newChatResponse(sessionID string, reply *chat.Reply) chatResponse {
	results := make([]resultPayload, 0, len(reply.Records))
	for _, rec := range reply.Records {
		results = append(results, newResultPayload(rec))
	}
	return chatResponse{
		SessionID: sessionID,
		Text:      reply.Text,
		Results:   results,
		Remaining: reply.Remaining,
	}
}

func newResultPayload(rec core.ScoredRecord) resultPayload {
	date := ""
	if rec.HasDate() {
		date = rec.Date.Format("2006-01-02")
	}
	return resultPayload{
		Title:        rec.Title,
		Speaker:      rec.Speaker,
		Date:         date,
		DownloadLink: rec.DownloadLink,
		MatchType:    rec.MatchType.String(),
		MatchScore:   rec.MatchScore,
	}
}
