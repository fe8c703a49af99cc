package state

import (
	"sync"

	"github.com/samafzali11/bale-aibot/internal/domain"
)

// Store keeps every user's conversation state in memory.
// Each user gets their own lock, so state operations for one user
// never block operations for another.
type Store struct {
	mu      sync.RWMutex
	entries map[int64]*entry
}

type entry struct {
	mu    sync.Mutex
	state domain.ConversationState
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		entries: make(map[int64]*entry),
	}
}

func (s *Store) entryFor(userID int64) *entry {
	s.mu.RLock()
	e, exists := s.entries[userID]
	s.mu.RUnlock()
	if exists {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, exists = s.entries[userID]; exists {
		return e
	}
	e = &entry{state: domain.IdleState()}
	s.entries[userID] = e
	return e
}

// Get returns a copy of the user's current state; absent users are idle
func (s *Store) Get(userID int64) domain.ConversationState {
	s.mu.RLock()
	e, exists := s.entries[userID]
	s.mu.RUnlock()
	if !exists {
		return domain.IdleState()
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Set replaces the user's state wholesale, discarding any previous payload
func (s *Store) Set(userID int64, st domain.ConversationState) {
	e := s.entryFor(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = st
}

// Reset reverts the user to idle
func (s *Store) Reset(userID int64) {
	s.Set(userID, domain.IdleState())
}

// Update applies fn to the user's state under that user's lock and
// returns a copy of the resulting state. fn must not block; long
// operations belong outside the lock.
func (s *Store) Update(userID int64, fn func(*domain.ConversationState)) domain.ConversationState {
	e := s.entryFor(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.state)
	return e.state
}
