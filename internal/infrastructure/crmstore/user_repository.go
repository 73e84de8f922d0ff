package crmstore

import (
	"fmt"
	"sync"

	"github.com/dominickcapital/crm-api/internal/domain"
	"github.com/dominickcapital/crm-api/internal/domain/entity"
	"github.com/dominickcapital/crm-api/internal/domain/repository"
	"github.com/dominickcapital/crm-api/internal/infrastructure/storage"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo directorio de usuarios. Se siembra al inicializar y es de solo
// lectura durante la vida del proceso.
type UserRepo struct {
	mu    sync.RWMutex
	users []*entity.User
}

// NewUserRepository carga el directorio; si el store no tiene usuarios,
// siembra el directorio por defecto y lo persiste.
func NewUserRepository(store storage.Store) (*UserRepo, error) {
	r := &UserRepo{}
	found, err := store.Get(storage.KeyUsers, &r.users)
	if err != nil {
		return nil, fmt.Errorf("cargar usuarios: %w", err)
	}
	if !found || len(r.users) == 0 {
		r.users = SeedUsers()
		if err := store.Set(storage.KeyUsers, r.users); err != nil {
			return nil, fmt.Errorf("sembrar usuarios: %w", err)
		}
	}
	return r, nil
}

// List devuelve el directorio completo.
func (r *UserRepo) List() []*entity.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.User, len(r.users))
	copy(out, r.users)
	return out
}

// GetByID devuelve el usuario o domain.ErrNotFound.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

// FindByEmail devuelve el usuario o domain.ErrNotFound.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ListByRole devuelve los usuarios de un rol en orden de inserción.
func (r *UserRepo) ListByRole(role string) []*entity.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out
}
