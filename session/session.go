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


package session

import (
	"sync"
	"time"

	"github.com/poiesic/sermonsearch/core"
)

// Role identifies who produced a transcript message.
type Role string

const (
	// RoleUser marks a message typed by the user.
	RoleUser Role = "user"
	// RoleAssistant marks a message produced by the assistant.
	RoleAssistant Role = "assistant"
)

// Message is one entry in a session's chat transcript.
type Message struct {
	Role    Role
	Content string
	At      time.Time
}

// Session holds everything one conversation owns: the chat transcript
// and the search memory (last ranked result set plus its cursor).
// All state is guarded by one mutex, so transcript and memory can never
// reset independently of each other.
type Session struct {
	id string

	mu         sync.Mutex
	transcript []Message
	lastQuery  string
	results    *core.ResultSet
	expiresAt  time.Time
}

// newSession is used by the Store; sessions are never created directly.
func newSession(id string, ttl time.Duration) *Session {
	return &Session{
		id:        id,
		expiresAt: time.Now().Add(ttl),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Expire extends the session's lifetime by ttl from now.
func (s *Session) Expire(ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expiresAt = time.Now().Add(ttl)
}

// Expired reports whether the session's lifetime has passed.
func (s *Session) Expired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Now().After(s.expiresAt)
}

// Append adds a message to the chat transcript.
func (s *Session) Append(role Role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, Message{
		Role:    role,
		Content: content,
		At:      time.Now(),
	})
}

// Transcript returns a copy of the chat transcript.
func (s *Session) Transcript() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Remember replaces the search memory wholesale with a fresh result
// set. The cursor starts at shown: the size of the batch the caller has
// already rendered for this query, which is the intent's limit, not
// always the page size.
func (s *Session) Remember(query string, results *core.ResultSet, shown int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if shown < 0 {
		shown = 0
	}
	s.lastQuery = query
	s.results = results
	if results != nil {
		results.NextIndex = shown
	}
}

// LastQuery returns the query that produced the current search memory.
func (s *Session) LastQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastQuery
}

// NextBatch serves the next pageSize records from the remembered result
// set and advances the cursor by exactly the number returned. With no
// memory, or past the end, it returns an empty batch without error.
func (s *Session) NextBatch(pageSize int) []core.ScoredRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.results == nil {
		return []core.ScoredRecord{}
	}
	return s.results.NextBatch(pageSize)
}

// Remaining reports how many remembered records have not been served.
func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.results == nil {
		return 0
	}
	return s.results.Remaining()
}

// ResultCount returns the size of the remembered result set.
func (s *Session) ResultCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.results == nil {
		return 0
	}
	return s.results.Len()
}

// Clear resets the transcript and the search memory together. They are
// guarded by the same mutex, so no observer can see one cleared and the
// other intact.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = nil
	s.lastQuery = ""
	s.results = nil
}
