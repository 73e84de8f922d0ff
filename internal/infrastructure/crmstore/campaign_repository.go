package crmstore

import (
	"fmt"
	"sync"

	"github.com/dominickcapital/crm-api/internal/domain"
	"github.com/dominickcapital/crm-api/internal/domain/entity"
	"github.com/dominickcapital/crm-api/internal/domain/repository"
	"github.com/dominickcapital/crm-api/internal/infrastructure/storage"
)

var (
	_ repository.CampaignRepository = (*CampaignRepo)(nil)
	_ repository.ClientRepository   = (*ClientRepo)(nil)
)

// CampaignRepo repositorio de campañas de marketing.
type CampaignRepo struct {
	mu        sync.RWMutex
	store     storage.Store
	campaigns []*entity.Campaign
}

// NewCampaignRepository carga la colección desde el store.
func NewCampaignRepository(store storage.Store) (*CampaignRepo, error) {
	r := &CampaignRepo{store: store}
	if _, err := store.Get(storage.KeyCampaigns, &r.campaigns); err != nil {
		return nil, fmt.Errorf("cargar campañas: %w", err)
	}
	return r, nil
}

// List devuelve una copia en orden de inserción.
func (r *CampaignRepo) List() []*entity.Campaign {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Campaign, len(r.campaigns))
	copy(out, r.campaigns)
	return out
}

// Add agrega la campaña y persiste.
func (r *CampaignRepo) Add(c *entity.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.campaigns = append(r.campaigns, c)
	return r.store.Set(storage.KeyCampaigns, r.campaigns)
}

// Count devuelve el total de campañas.
func (r *CampaignRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.campaigns)
}

// ClientRepo repositorio de clientes convertidos.
type ClientRepo struct {
	mu      sync.RWMutex
	store   storage.Store
	clients []*entity.Client
}

// NewClientRepository carga la colección desde el store.
func NewClientRepository(store storage.Store) (*ClientRepo, error) {
	r := &ClientRepo{store: store}
	if _, err := store.Get(storage.KeyClients, &r.clients); err != nil {
		return nil, fmt.Errorf("cargar clientes: %w", err)
	}
	return r, nil
}

// List devuelve una copia en orden de inserción.
func (r *ClientRepo) List() []*entity.Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Client, len(r.clients))
	copy(out, r.clients)
	return out
}

// GetByID devuelve el cliente o domain.ErrNotFound.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Add agrega el cliente y persiste.
func (r *ClientRepo) Add(c *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients = append(r.clients, c)
	return r.store.Set(storage.KeyClients, r.clients)
}

// Update reemplaza el cliente con el mismo ID y persiste.
func (r *ClientRepo) Update(c *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.clients {
		if existing.ID == c.ID {
			r.clients[i] = c
			return r.store.Set(storage.KeyClients, r.clients)
		}
	}
	return domain.ErrNotFound
}

// Count devuelve el total de clientes.
func (r *ClientRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}
