// Package memory provides an in-process key value store used when no
// external backend is configured.
package memory

import (
	"context"
	"sync"

	"github.com/akramov/telepos/internal/core/port"
)

type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewStore() port.StorePort {
	return &Store{values: make(map[string]string)}
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok, nil
}

func (s *Store) Set(_ context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}
