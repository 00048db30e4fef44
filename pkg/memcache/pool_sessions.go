// pkg/mem/pool_sessions.go
package mem

import (
	"sync"
	"time"

	"wayfare/internal/planner"
)

// Session holds the pools built by one fetch action. It survives itinerary
// regenerations until the next fetch or expiry; visited state never lives
// here.
type Session struct {
	ID          string
	Destination planner.Anchor
	Pool        planner.Pool

	Source     *planner.Anchor
	SourcePool planner.Pool

	CreatedAt time.Time
}

type SessionStore interface {
	Put(s Session, ttl time.Duration)

	// Get returns the session if present and not expired.
	Get(id string) (Session, bool)

	Delete(id string)
}

type sessionEntry struct {
	session   Session
	expiresAt time.Time
}

type PoolSessions struct {
	mu   sync.RWMutex
	data map[string]sessionEntry
}

func NewPoolSessions() *PoolSessions {
	return &PoolSessions{
		data: make(map[string]sessionEntry),
	}
}

func (s *PoolSessions) Put(session Session, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[session.ID] = sessionEntry{
		session:   session,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *PoolSessions) Get(id string) (Session, bool) {
	s.mu.RLock()
	e, ok := s.data[id]
	s.mu.RUnlock()

	if !ok {
		return Session{}, false
	}
	if time.Now().After(e.expiresAt) {
		s.Delete(id) // cleanup expired
		return Session{}, false
	}
	return e.session, true
}

func (s *PoolSessions) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}
