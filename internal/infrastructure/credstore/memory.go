// Package credstore provides credential store backends: an in-process map
// for single-instance deployments and a Redis-backed store for shared state.
package credstore

import (
	"context"
	"sync"
	"time"

	"agentvoice/room-api/internal/domain/credential"
)

// MemoryStore is an in-memory credential store guarded by a RWMutex.
// Credentials issued here do not survive a restart and are not visible to
// other instances.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]credential.Entry
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]credential.Entry),
	}
}

// Put stores an entry under the digest.
func (s *MemoryStore) Put(_ context.Context, digest string, e credential.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[digest] = e
	return nil
}

// Get returns the entry for a digest, or nil when absent.
func (s *MemoryStore) Get(_ context.Context, digest string) (*credential.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[digest]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

// Delete removes an entry and reports whether it existed.
func (s *MemoryStore) Delete(_ context.Context, digest string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[digest]
	delete(s.entries, digest)
	return ok, nil
}

// DeleteExpired removes all entries expired as of now.
func (s *MemoryStore) DeleteExpired(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for digest, e := range s.entries {
		if now.After(e.ExpiresAt) {
			delete(s.entries, digest)
			removed++
		}
	}
	return removed, nil
}

// Len returns the number of stored entries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
