// Package store provides TokenStore implementations: an in-process store,
// a JSON file store, and a Redis-backed store for sessions shared across
// processes.
package store

import (
	"context"
	"sync"

	"github.com/hausbar/drinkwise/internal/core/domain"
)

// MemoryStore keeps the credential pair in process memory. Used for
// one-shot sessions and tests.
type MemoryStore struct {
	mu   sync.RWMutex
	pair domain.TokenPair
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Tokens(_ context.Context) (domain.TokenPair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pair, nil
}

func (s *MemoryStore) Save(_ context.Context, pair domain.TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair = pair
	return nil
}

func (s *MemoryStore) SetAccess(_ context.Context, access string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair.Access = access
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair = domain.TokenPair{}
	return nil
}
