package dto

import "github.com/shopspring/decimal"

// CreateCampaignRequest alta de campaña de marketing.
type CreateCampaignRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Budget      decimal.Decimal `json:"budget"`
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate"`
	Status      string          `json:"status"` // active por defecto
}

// CreateClientRequest alta de cliente convertido.
type CreateClientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

// UpdateClientRequest patch parcial de un cliente.
type UpdateClientRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Notes *string `json:"notes,omitempty"`
}
