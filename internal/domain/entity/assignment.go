package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estado inicial de una asignación inversionista-préstamo.
const AssignmentStatusPending = "pending"

// Assignment empareja un lead de préstamo con tasación completada con un
// lead inversionista, junto con los términos de la hipoteca.
// Invariante: a lo sumo una asignación por loanLeadId y una por investorLeadId.
type Assignment struct {
	ID             string `json:"id"`
	LoanLeadID     string `json:"loanLeadId"`
	InvestorLeadID string `json:"investorLeadId"`
	AssignedBy     string `json:"assignedBy"`
	AssignedByName string `json:"assignedByName"`

	LoanAmount      decimal.Decimal `json:"loanAmount"`
	AppraisalAmount decimal.Decimal `json:"appraisalAmount"`

	MortgageAmount   decimal.Decimal `json:"mortgageAmount"`
	AmountToBorrower decimal.Decimal `json:"amountToBorrower"`
	AmountToDominick decimal.Decimal `json:"amountToDominick"`
	InterestRate     decimal.Decimal `json:"interestRate"`
	TermMonths       int             `json:"termMonths"`
	Modality         string          `json:"modality"` // Mensual, etc.

	// Datos de los clientes para referencia rápida.
	BorrowerName string `json:"borrowerName"`
	BorrowerDNI  string `json:"borrowerDNI"`
	InvestorName string `json:"investorName"`
	InvestorDNI  string `json:"investorDNI"`

	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
