package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Campaign es una campaña de marketing. Registro simple: nunca transiciona de estado.
type Campaign struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Budget        decimal.Decimal `json:"budget,omitempty"`
	StartDate     string          `json:"startDate,omitempty"`
	EndDate       string          `json:"endDate,omitempty"`
	Status        string          `json:"status"` // active por defecto
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy,omitempty"`
	CreatedByName string          `json:"createdByName,omitempty"`
}

// Client es un cliente ya convertido. Registro plano sin ciclo de vida propio.
type Client struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	CreatedBy string     `json:"createdBy,omitempty"`
}
