// Package crmstore implementa los puertos de repositorio sobre el blob
// store: cada colección vive en memoria y se reescribe completa bajo su
// clave en cada mutación (write-through). Una lectura inmediatamente
// posterior a una escritura siempre ve el cambio.
package crmstore

import (
	"fmt"
	"sync"

	"github.com/dominickcapital/crm-api/internal/domain"
	"github.com/dominickcapital/crm-api/internal/domain/entity"
	"github.com/dominickcapital/crm-api/internal/domain/repository"
	"github.com/dominickcapital/crm-api/internal/infrastructure/storage"
)

var _ repository.LeadRepository = (*LeadRepo)(nil)

// LeadRepo repositorio de leads con colección en memoria.
type LeadRepo struct {
	mu    sync.RWMutex
	store storage.Store
	leads []*entity.Lead
}

// NewLeadRepository carga la colección desde el store una vez al arranque.
func NewLeadRepository(store storage.Store) (*LeadRepo, error) {
	r := &LeadRepo{store: store}
	if _, err := store.Get(storage.KeyLeads, &r.leads); err != nil {
		return nil, fmt.Errorf("cargar leads: %w", err)
	}
	return r, nil
}

// persist reescribe la colección completa. El llamador debe tener el lock.
func (r *LeadRepo) persist() error {
	return r.store.Set(storage.KeyLeads, r.leads)
}

// List devuelve una copia del slice en orden de inserción.
func (r *LeadRepo) List() []*entity.Lead {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Lead, len(r.leads))
	copy(out, r.leads)
	return out
}

// GetByID devuelve el lead o domain.ErrLeadNotFound.
func (r *LeadRepo) GetByID(id string) (*entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.leads {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, domain.ErrLeadNotFound
}

// Add agrega leads al final de la colección y persiste.
func (r *LeadRepo) Add(leads ...*entity.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads = append(r.leads, leads...)
	return r.persist()
}

// Update reemplaza el lead con el mismo ID y persiste.
func (r *LeadRepo) Update(lead *entity.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, l := range r.leads {
		if l.ID == lead.ID {
			r.leads[i] = lead
			return r.persist()
		}
	}
	return domain.ErrLeadNotFound
}

// ReplaceAll sustituye la colección completa y persiste.
func (r *LeadRepo) ReplaceAll(leads []*entity.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads = leads
	return r.persist()
}

// Delete elimina el lead y persiste.
func (r *LeadRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, l := range r.leads {
		if l.ID == id {
			r.leads = append(r.leads[:i], r.leads[i+1:]...)
			return r.persist()
		}
	}
	return domain.ErrLeadNotFound
}

// Filter devuelve los leads que cumplen el predicado, en orden de inserción.
func (r *LeadRepo) Filter(pred func(*entity.Lead) bool) []*entity.Lead {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Lead
	for _, l := range r.leads {
		if pred(l) {
			out = append(out, l)
		}
	}
	return out
}
