package storage

import (
	"errors"
	"sync"
)

// MemoryStore guarda las claves en memoria. Útil para tests o corridas
// efímeras donde no interesa la durabilidad.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]string

	// FailWrites fuerza que todas las escrituras fallen, para probar la
	// degradación ante errores de persistencia
	FailWrites bool
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]string)}
}

func (s *MemoryStore) Read(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.items[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (s *MemoryStore) Write(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWrites {
		return errWriteFailed
	}
	s.items[key] = value
	return nil
}

var errWriteFailed = errors.New("escritura deshabilitada")
