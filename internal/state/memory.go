package state

import (
	"context"
	"sync"
)

// MemoryStore keeps task state in process memory. It is the default backend;
// after a restart the tasks re-read the sheet and converge again, so losing
// this state only costs a few redundant writes.
type MemoryStore struct {
	mu       sync.Mutex
	rows     map[string]struct{}
	live     map[string]string
	halftime map[string]struct{}
	finals   map[string]struct{}
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rows:     make(map[string]struct{}),
		live:     make(map[string]string),
		halftime: make(map[string]struct{}),
		finals:   make(map[string]struct{}),
	}
}

func (s *MemoryStore) SeenRow(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.rows[key]
	return ok, nil
}

func (s *MemoryStore) MarkRow(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[key] = struct{}{}
	return nil
}

func (s *MemoryStore) LastLive(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live[key], nil
}

func (s *MemoryStore) SetLastLive(_ context.Context, key, fingerprint string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.live[key] = fingerprint
	return nil
}

func (s *MemoryStore) MarkHalftime(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, done := s.halftime[key]; done {
		return false, nil
	}
	s.halftime[key] = struct{}{}
	return true, nil
}

func (s *MemoryStore) MarkFinal(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, done := s.finals[key]; done {
		return false, nil
	}
	s.finals[key] = struct{}{}
	return true, nil
}
