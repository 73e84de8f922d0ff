package dto

import "github.com/shopspring/decimal"

// CreateAssignmentRequest emparejamiento préstamo-inversionista con los
// términos de la hipoteca.
type CreateAssignmentRequest struct {
	LoanLeadID       string          `json:"loanLeadId"`
	InvestorLeadID   string          `json:"investorLeadId"`
	MortgageAmount   decimal.Decimal `json:"mortgageAmount"`
	AmountToBorrower decimal.Decimal `json:"amountToBorrower"`
	AmountToDominick decimal.Decimal `json:"amountToDominick"`
	InterestRate     decimal.Decimal `json:"interestRate"`
	TermMonths       int             `json:"termMonths"`
	Modality         string          `json:"modality"`
}

// UpdateAssignmentRequest patch de estado de una asignación.
type UpdateAssignmentRequest struct {
	Status *string `json:"status,omitempty"`
}
