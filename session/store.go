package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is how long an idle session survives in the store.
const DefaultTTL = 2 * time.Hour

// Store keeps live sessions by ID. Expired sessions are purged lazily
// on access. Each session is exclusively owned by one conversation; the
// store only hands out references.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// EnsureSession returns the session with the given ID, creating it if
// absent or expired. An empty ID allocates a fresh one. The session's
// lifetime is extended by ttl either way.
func (st *Store) EnsureSession(id string, ttl time.Duration) *Session {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	st.purgeLocked()

	if id == "" {
		id = uuid.NewString()
	}
	if existing, ok := st.sessions[id]; ok {
		existing.Expire(ttl)
		return existing
	}

	created := newSession(id, ttl)
	st.sessions[id] = created
	return created
}

// GetSession returns the live session with the given ID.
// Returns ErrSessionNotFound for unknown or expired IDs.
func (st *Store) GetSession(id string) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.purgeLocked()

	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Drop removes a session from the store entirely.
func (st *Store) Drop(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.purgeLocked()
	return len(st.sessions)
}

func (st *Store) purgeLocked() {
	for id, s := range st.sessions {
		if s.Expired() {
			delete(st.sessions, id)
		}
	}
}
