package crmstore

import (
	"fmt"
	"sync"

	"github.com/dominickcapital/crm-api/internal/domain/entity"
	"github.com/dominickcapital/crm-api/internal/domain/repository"
	"github.com/dominickcapital/crm-api/internal/infrastructure/storage"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo persiste la identidad activa bajo crm_user. Se carga una vez
// al arranque, por lo que la sesión sobrevive reinicios del proceso.
type SessionRepo struct {
	mu      sync.RWMutex
	store   storage.Store
	current *entity.Session
}

// NewSessionRepository carga la sesión persistida, si existe.
func NewSessionRepository(store storage.Store) (*SessionRepo, error) {
	r := &SessionRepo{store: store}
	var s entity.Session
	found, err := store.Get(storage.KeySession, &s)
	if err != nil {
		return nil, fmt.Errorf("cargar sesión: %w", err)
	}
	if found {
		r.current = &s
	}
	return r, nil
}

// Current devuelve la sesión activa o nil.
func (r *SessionRepo) Current() *entity.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Save persiste la sesión como identidad activa.
func (r *SessionRepo) Save(s *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.store.Set(storage.KeySession, s); err != nil {
		return err
	}
	r.current = s
	return nil
}

// Clear elimina la identidad activa.
func (r *SessionRepo) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.store.Remove(storage.KeySession); err != nil {
		return err
	}
	r.current = nil
	return nil
}
