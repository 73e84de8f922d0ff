package dto

import "github.com/shopspring/decimal"

// CreateLeadRequest alta de un lead individual.
type CreateLeadRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Company        string `json:"company"`
	Notes          string `json:"notes"`
	DocumentNumber string `json:"documentNumber"`
	DocumentType   string `json:"documentType"`
	Address        string `json:"address"`
	Departamento   string `json:"departamento"`
	Provincia      string `json:"provincia"`
	Distrito       string `json:"distrito"`
	LeadType       string `json:"leadType"` // "préstamo" (default) | "inversión"
	Source         string `json:"source"`
}

// BulkLeadsRequest importación masiva.
type BulkLeadsRequest struct {
	Leads []CreateLeadRequest `json:"leads"`
}

// UpdateLeadRequest patch parcial de un lead: solo los campos presentes se
// aplican. Un cambio de status limpia el substatus salvo que el patch traiga
// uno válido para el nuevo estado.
type UpdateLeadRequest struct {
	Name              *string          `json:"name,omitempty"`
	Email             *string          `json:"email,omitempty"`
	Phone             *string          `json:"phone,omitempty"`
	Notes             *string          `json:"notes,omitempty"`
	DocumentNumber    *string          `json:"documentNumber,omitempty"`
	DocumentType      *string          `json:"documentType,omitempty"`
	Address           *string          `json:"address,omitempty"`
	Departamento      *string          `json:"departamento,omitempty"`
	Provincia         *string          `json:"provincia,omitempty"`
	Distrito          *string          `json:"distrito,omitempty"`
	Status            *string          `json:"status,omitempty"`
	Substatus         *string          `json:"substatus,omitempty"`
	LoanAmount        *decimal.Decimal `json:"loanAmount,omitempty"`
	InterestRate      *decimal.Decimal `json:"interestRate,omitempty"`
	MeetsRequirements *string          `json:"meetsRequirements,omitempty"`
	Observations      *string          `json:"observations,omitempty"`
}

// DecisionRequest aprobación o rechazo de legal/comercial.
type DecisionRequest struct {
	Decision string `json:"decision"` // approved | rejected
	Comment  string `json:"comment"`  // comentario de aprobación o motivo de rechazo
}

// AppointmentRequest agendamiento de cita.
type AppointmentRequest struct {
	Date          string          `json:"date"`
	Time          string          `json:"time"`
	MeetingType   string          `json:"meetingType"` // presencial | virtual
	AppraisalCost decimal.Decimal `json:"appraisalCost"`
}

// CloserRequest resultado de la cita registrado por el closer.
type CloserRequest struct {
	ClientAttended      string          `json:"clientAttended"` // "si" | "no"
	AcceptsTerms        string          `json:"acceptsTerms"`
	ClientIncome        decimal.Decimal `json:"clientIncome"`
	LoanReason          string          `json:"loanReason"`
	PaymentAgreement    string          `json:"paymentAgreement"`
	PaymentModalityPlan string          `json:"paymentModalityPlan"`
	AppraisalPaid       string          `json:"appraisalPaid"` // "si" | "no"
}

// DocumentPayload blob adjunto con payload inline autodescriptivo.
type DocumentPayload struct {
	Name string `json:"name"`
	Data string `json:"data"`
}

// AppraisalRequest informe de tasación.
type AppraisalRequest struct {
	PrecioTasacion  decimal.Decimal  `json:"precioTasacion"`
	TasacionCochera decimal.Decimal  `json:"tasacionCochera"`
	Situacion       string           `json:"situacion"`
	Area            string           `json:"area"`
	Uso             string           `json:"uso"`
	Reporte         *DocumentPayload `json:"reporteFile"`
}

// StatsResponse métricas del dashboard, recalculadas en cada llamada sobre
// el conjunto visible del usuario.
type StatsResponse struct {
	TotalLeads     int `json:"totalLeads"`
	NewLeads       int `json:"newLeads"`
	Contacted      int `json:"contacted"`
	Qualified      int `json:"qualified"`
	Won            int `json:"won"`
	Lost           int `json:"lost"`
	TotalClients   int `json:"totalClients"`
	TotalCampaigns int `json:"totalCampaigns"`
}

// ExecutiveLoad carga de leads de call center por ejecutivo.
type ExecutiveLoad struct {
	ExecutiveID   string `json:"executiveId"`
	ExecutiveName string `json:"executiveName"`
	Count         int    `json:"count"`
}
