package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-movie-client/models"
)

// memorySessionStore keeps the session in process memory only.
type memorySessionStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemorySessionStore returns an empty in-memory [SessionStore].
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{values: make(map[string]string, 2)}
}

func (m *memorySessionStore) Token(context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[KeyToken], nil
}

func (m *memorySessionStore) Username(context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[KeyUser], nil
}

func (m *memorySessionStore) Get(context.Context) (models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return models.Session{Token: m.values[KeyToken], Username: m.values[KeyUser]}, nil
}

func (m *memorySessionStore) Save(_ context.Context, token, username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[KeyToken] = token
	m.values[KeyUser] = username
	return nil
}

func (m *memorySessionStore) SetUsername(_ context.Context, username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[KeyUser] = username
	return nil
}

func (m *memorySessionStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.values)
	return nil
}
