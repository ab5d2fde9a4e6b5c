package session

import (
	"context"
	"sync"
)

// memStore guarda el token en memoria. Útil para tests.
type memStore struct {
	mu    sync.RWMutex
	token string
	set   bool
}

// NewMemory crea un Store en memoria.
func NewMemory() Store {
	return &memStore{}
}

func (s *memStore) Set(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.set = token, true
	return nil
}

func (s *memStore) Get(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.set || s.token == "" {
		return "", ErrNoToken
	}
	return s.token, nil
}

func (s *memStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.set = "", false
	return nil
}
