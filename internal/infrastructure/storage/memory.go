package storage

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore implementación en memoria del Store, para tests y desarrollo.
// Serializa igual que los drivers persistentes para que los tests ejerciten
// el mismo camino de marshalling.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore construye un store vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get deserializa el valor de key en v.
func (s *MemoryStore) Get(key string, v any) (bool, error) {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("deserializar %q: %w", key, err)
	}
	return true, nil
}

// Set serializa v bajo key.
func (s *MemoryStore) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serializar %q: %w", key, err)
	}
	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	return nil
}

// Remove elimina la clave.
func (s *MemoryStore) Remove(key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}
