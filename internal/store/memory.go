package store

import (
	"context"
	"fmt"
	"sync"
)

// DefaultMemoryQuota approximates the per-origin budget browsers give local storage
const DefaultMemoryQuota = 5 * 1024 * 1024

// MemoryStore keeps values in process. With a positive quota it rejects any
// write that would push the total key+value size past it.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
	quota  int
	used   int
}

// NewMemoryStore creates an in-memory store. quota <= 0 means unbounded.
func NewMemoryStore(quota int) *MemoryStore {
	return &MemoryStore{
		values: make(map[string]string),
		quota:  quota,
	}
}

func (s *MemoryStore) Read(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Write(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	used := s.used
	if old, ok := s.values[key]; ok {
		used -= len(key) + len(old)
	}
	used += len(key) + len(value)

	if s.quota > 0 && used > s.quota {
		return fmt.Errorf("write %q (%d bytes): %w", key, len(value), ErrQuotaExceeded)
	}

	s.values[key] = value
	s.used = used
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.values[key]; ok {
		s.used -= len(key) + len(old)
		delete(s.values, key)
	}
	return nil
}

// Used returns the bytes currently held
func (s *MemoryStore) Used() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.used
}
