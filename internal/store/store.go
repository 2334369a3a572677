// Package store keeps recently completed simulation runs in process memory
// so the API can serve per-trial listings without re-running. It is not
// persistence: entries expire and everything is lost on restart.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"property-risk/internal/montecarlo"
)

type entry struct {
	result    *montecarlo.Result
	expiresAt time.Time
}

// RunStore is a TTL-bounded map of run ID to simulation result.
type RunStore struct {
	mu    sync.RWMutex
	runs  map[string]entry
	ttl   time.Duration
	limit int
}

// New creates a store holding at most limit runs for ttl each.
func New(ttl time.Duration, limit int) *RunStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if limit <= 0 {
		limit = 100
	}
	return &RunStore{
		runs:  make(map[string]entry),
		ttl:   ttl,
		limit: limit,
	}
}

// Put stores a result and returns its generated run ID.
func (s *RunStore) Put(result *montecarlo.Result) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictLocked()
	s.runs[id] = entry{
		result:    result,
		expiresAt: time.Now().Add(s.ttl),
	}
	return id
}

// Get retrieves a stored result if present and not expired.
func (s *RunStore) Get(id string) (*montecarlo.Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.runs[id]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.result, true
}

// Len reports the number of stored runs, expired or not.
func (s *RunStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.runs)
}

// evictLocked drops expired entries, then oldest-expiring entries until
// under the limit. Caller holds the write lock.
func (s *RunStore) evictLocked() {
	now := time.Now()
	for id, e := range s.runs {
		if now.After(e.expiresAt) {
			delete(s.runs, id)
		}
	}
	for len(s.runs) >= s.limit {
		var oldest string
		var oldestAt time.Time
		for id, e := range s.runs {
			if oldest == "" || e.expiresAt.Before(oldestAt) {
				oldest = id
				oldestAt = e.expiresAt
			}
		}
		delete(s.runs, oldest)
	}
}
