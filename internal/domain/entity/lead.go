package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de lead. El tipo decide el pool de ejecutivos y las etapas posteriores.
const (
	LeadTypePrestamo  = "préstamo"
	LeadTypeInversion = "inversión"
)

// Decisión legal/comercial sobre un lead.
const (
	DecisionApproved = "approved"
	DecisionRejected = "rejected"
)

// Respuestas sí/no de los formularios del closer ("si" / "no").
const (
	RespuestaSi = "si"
	RespuestaNo = "no"
)

// Lead es la entidad central: un prospecto que avanza por el pipeline de
// originación. Los sub-registros de etapa (cita, closer, tasación) se
// adjuntan a lo largo de su ciclo de vida y son de escritura única.
type Lead struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Company        string `json:"company,omitempty"`
	Notes          string `json:"notes,omitempty"`
	DocumentNumber string `json:"documentNumber,omitempty"`
	DocumentType   string `json:"documentType,omitempty"`
	Address        string `json:"address,omitempty"`
	Departamento   string `json:"departamento,omitempty"`
	Provincia      string `json:"provincia,omitempty"`
	Distrito       string `json:"distrito,omitempty"`

	LeadType  string `json:"leadType"`
	Status    string `json:"status"`
	Substatus string `json:"substatus,omitempty"`
	Source    string `json:"source,omitempty"`

	// Campos del formulario del ejecutivo de ventas.
	LoanAmount        decimal.Decimal `json:"loanAmount,omitempty"`
	InterestRate      decimal.Decimal `json:"interestRate,omitempty"`
	MeetsRequirements string          `json:"meetsRequirements,omitempty"`
	Observations      string          `json:"observations,omitempty"`

	AssignedTo     string     `json:"assignedTo,omitempty"`
	AssignedToName string     `json:"assignedToName,omitempty"`
	AssignedAt     *time.Time `json:"assignedAt,omitempty"`

	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
	CreatedBy     string     `json:"createdBy,omitempty"`
	CreatedByName string     `json:"createdByName,omitempty"`

	// Etapa legal.
	LegalStatus          string     `json:"legalStatus,omitempty"`
	LegalApprovedAt      *time.Time `json:"legalApprovedAt,omitempty"`
	LegalRejectedAt      *time.Time `json:"legalRejectedAt,omitempty"`
	LegalApprovalComment string     `json:"legalApprovalComment,omitempty"`
	LegalRejectionReason string     `json:"legalRejectionReason,omitempty"`

	// Etapa comercial.
	CommercialStatus          string     `json:"commercialStatus,omitempty"`
	CommercialApprovedAt      *time.Time `json:"commercialApprovedAt,omitempty"`
	CommercialRejectedAt      *time.Time `json:"commercialRejectedAt,omitempty"`
	CommercialApprovalComment string     `json:"commercialApprovalComment,omitempty"`
	CommercialRejectionReason string     `json:"commercialRejectionReason,omitempty"`

	Appointment   *Appointment   `json:"appointment,omitempty"`
	CloserInfo    *CloserInfo    `json:"closerInfo,omitempty"`
	AppraisalInfo *AppraisalInfo `json:"appraisalInfo,omitempty"`

	// Documentos adjuntos (payload inline autodescriptivo).
	DNIFile          *Document `json:"dniFile,omitempty"`
	PUHRFile         *Document `json:"puhrFile,omitempty"`
	CopiaLiteralFile *Document `json:"copiaLiteralFile,omitempty"`
	PhotographyFile  *Document `json:"photographyFile,omitempty"`
}

// Appointment es la cita agendada por el ejecutivo una vez que legal y
// comercial aprobaron el expediente.
type Appointment struct {
	Date          string          `json:"date"`
	Time          string          `json:"time"`
	MeetingType   string          `json:"meetingType"` // presencial, virtual
	AppraisalCost decimal.Decimal `json:"appraisalCost"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// CloserInfo registra el resultado de la cita: asistencia del cliente y,
// si asistió, las condiciones financieras acordadas.
type CloserInfo struct {
	ClientAttended      string          `json:"clientAttended"` // "si" / "no"
	AcceptsTerms        string          `json:"acceptsTerms,omitempty"`
	ClientIncome        decimal.Decimal `json:"clientIncome,omitempty"`
	LoanReason          string          `json:"loanReason,omitempty"`
	PaymentAgreement    string          `json:"paymentAgreement,omitempty"`
	PaymentModalityPlan string          `json:"paymentModalityPlan,omitempty"`
	AppraisalPaid       string          `json:"appraisalPaid,omitempty"` // "si" / "no"
	CompletedAt         time.Time       `json:"completedAt"`
	CompletedBy         string          `json:"completedBy"`
}

// AppraisalInfo es el informe del gestor de tasación sobre el inmueble.
type AppraisalInfo struct {
	PrecioTasacion  decimal.Decimal `json:"precioTasacion"`
	TasacionCochera decimal.Decimal `json:"tasacionCochera,omitempty"`
	Situacion       string          `json:"situacion"`
	Area            string          `json:"area"`
	Uso             string          `json:"uso"`
	ReporteFile     *Document       `json:"reporteFile"`
	CompletedAt     time.Time       `json:"completedAt"`
}

// IsPrestamo devuelve true para leads de préstamo. Un leadType vacío cuenta
// como préstamo (valor por defecto histórico).
func (l *Lead) IsPrestamo() bool {
	return l.LeadType == LeadTypePrestamo || l.LeadType == ""
}

// IsInversion devuelve true para leads de inversionista.
func (l *Lead) IsInversion() bool {
	return l.LeadType == LeadTypeInversion
}
