package server

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"gridpath/internal/session"
)

var (
	// ErrNotFound is returned for unknown search ids.
	ErrNotFound = errors.New("search not found")
	// ErrFull is returned when the store is at capacity.
	ErrFull = errors.New("too many searches")
)

// entry serializes access to one session; engines are not safe for
// concurrent use.
type entry struct {
	mu      sync.Mutex
	id      string
	created time.Time
	session *session.Session
}

// Store keeps sessions in memory keyed by uuid.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry
	limit   int
}

// NewStore creates a store holding at most limit sessions; limit <= 0 means
// unbounded.
func NewStore(limit int) *Store {
	return &Store{entries: map[string]*entry{}, limit: limit}
}

// Add stores s under a fresh id and returns its entry.
func (st *Store) Add(s *session.Session) (*entry, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.limit > 0 && len(st.entries) >= st.limit {
		return nil, ErrFull
	}
	e := &entry{id: uuid.NewString(), created: time.Now(), session: s}
	st.entries[e.id] = e
	return e, nil
}

// With runs fn while holding the lock of the entry for id.
func (st *Store) With(id string, fn func(*entry) error) error {
	st.mu.RLock()
	e, ok := st.entries[id]
	st.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e)
}

// Delete removes id.
func (st *Store) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.entries[id]; !ok {
		return ErrNotFound
	}
	delete(st.entries, id)
	return nil
}

// Len reports the number of stored sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.entries)
}
