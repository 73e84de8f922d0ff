package repository

import "github.com/dominickcapital/crm-api/internal/domain/entity"

// CampaignRepository define el puerto de persistencia para campañas.
type CampaignRepository interface {
	List() []*entity.Campaign
	Add(c *entity.Campaign) error
	Count() int
}

// ClientRepository define el puerto de persistencia para clientes.
type ClientRepository interface {
	List() []*entity.Client
	GetByID(id string) (*entity.Client, error)
	Add(c *entity.Client) error
	Update(c *entity.Client) error
	Count() int
}
