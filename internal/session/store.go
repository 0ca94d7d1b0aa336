// Package session holds session-scoped client state: the set of job ids
// the candidate has applied to during this session. The set grows one
// id at a time on successful application and is cleared only by a full
// session reset at logout, never partially.
package session

import (
	"context"
	"sync"
)

// Store is the applied-job set.
type Store interface {
	// MarkApplied records a successful application for jobID.
	MarkApplied(ctx context.Context, jobID string) error
	// HasApplied reports whether jobID is in the applied set.
	HasApplied(ctx context.Context, jobID string) (bool, error)
	// Reset clears the whole set. Called on logout.
	Reset(ctx context.Context) error
	Close() error
}

// MemoryStore is the default in-process Store.
type MemoryStore struct {
	mu      sync.RWMutex
	applied map[string]struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{applied: make(map[string]struct{})}
}

func (s *MemoryStore) MarkApplied(_ context.Context, jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applied[jobID] = struct{}{}
	return nil
}

func (s *MemoryStore) HasApplied(_ context.Context, jobID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.applied[jobID]
	return ok, nil
}

func (s *MemoryStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applied = make(map[string]struct{})
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
