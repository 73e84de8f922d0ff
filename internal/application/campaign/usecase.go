// Package campaign cubre los registros planos del CRM: campañas de
// marketing y clientes convertidos.
package campaign

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dominickcapital/crm-api/internal/application/dto"
	"github.com/dominickcapital/crm-api/internal/domain"
	"github.com/dominickcapital/crm-api/internal/domain/entity"
	"github.com/dominickcapital/crm-api/internal/domain/repository"
)

// UseCase casos de uso de campañas y clientes.
type UseCase struct {
	campaigns repository.CampaignRepository
	clients   repository.ClientRepository
}

// NewUseCase construye el caso de uso de campañas y clientes.
func NewUseCase(campaigns repository.CampaignRepository, clients repository.ClientRepository) *UseCase {
	return &UseCase{campaigns: campaigns, clients: clients}
}

// AddCampaign registra una campaña. El estado por defecto es active.
func (uc *UseCase) AddCampaign(actor *entity.Session, in dto.CreateCampaignRequest) (*entity.Campaign, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrValidation)
	}
	status := in.Status
	if status == "" {
		status = "active"
	}
	c := &entity.Campaign{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Budget:      in.Budget,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Status:      status,
		CreatedAt:   time.Now(),
	}
	if actor != nil {
		c.CreatedBy = actor.ID
		c.CreatedByName = actor.Name
	}
	if err := uc.campaigns.Add(c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListCampaigns devuelve todas las campañas.
func (uc *UseCase) ListCampaigns() []*entity.Campaign {
	return uc.campaigns.List()
}

// AddClient registra un cliente convertido.
func (uc *UseCase) AddClient(actor *entity.Session, in dto.CreateClientRequest) (*entity.Client, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrValidation)
	}
	c := &entity.Client{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Notes:     in.Notes,
		CreatedAt: time.Now(),
	}
	if actor != nil {
		c.CreatedBy = actor.ID
	}
	if err := uc.clients.Add(c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateClient aplica un patch parcial a un cliente.
func (uc *UseCase) UpdateClient(id string, in dto.UpdateClientRequest) (*entity.Client, error) {
	current, err := uc.clients.GetByID(id)
	if err != nil {
		return nil, err
	}
	c := *current
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	if in.Notes != nil {
		c.Notes = *in.Notes
	}
	now := time.Now()
	c.UpdatedAt = &now
	if err := uc.clients.Update(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListClients devuelve todos los clientes.
func (uc *UseCase) ListClients() []*entity.Client {
	return uc.clients.List()
}
