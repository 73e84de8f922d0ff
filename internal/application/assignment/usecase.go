// Package assignment implementa el emparejamiento de préstamos con
// inversionistas: búsqueda del inversionista por DNI, validación de
// unicidad por ambos lados y el tope sobre el monto de la hipoteca.
package assignment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dominickcapital/crm-api/internal/application/dto"
	"github.com/dominickcapital/crm-api/internal/domain"
	"github.com/dominickcapital/crm-api/internal/domain/entity"
	"github.com/dominickcapital/crm-api/internal/domain/pipeline"
	"github.com/dominickcapital/crm-api/internal/domain/repository"
)

// PDFGenerator produce la constancia de asignación en PDF.
type PDFGenerator interface {
	AssignmentPDF(a *entity.Assignment) ([]byte, error)
}

// UseCase casos de uso de asignaciones.
type UseCase struct {
	assignments repository.AssignmentRepository
	leads       repository.LeadRepository
	pdf         PDFGenerator
}

// NewUseCase construye el caso de uso de asignaciones.
func NewUseCase(assignments repository.AssignmentRepository, leads repository.LeadRepository, pdf PDFGenerator) *UseCase {
	return &UseCase{assignments: assignments, leads: leads, pdf: pdf}
}

// FindInvestorByDNI busca un lead inversionista por coincidencia exacta de
// documento. Si el inversionista ya está consumido por otra asignación
// devuelve ErrInvestorTaken.
func (uc *UseCase) FindInvestorByDNI(dni string) (*entity.Lead, error) {
	if dni == "" {
		return nil, fmt.Errorf("%w: dni es requerido", domain.ErrValidation)
	}
	matches := uc.leads.Filter(func(l *entity.Lead) bool {
		return l.IsInversion() && l.DocumentNumber == dni
	})
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no existe inversionista con DNI %s", domain.ErrNotFound, dni)
	}
	investor := matches[0]
	if uc.assignments.ByInvestorLead(investor.ID) != nil {
		return nil, fmt.Errorf("%w: el inversionista %s ya tiene préstamo asignado", domain.ErrInvestorTaken, dni)
	}
	return investor, nil
}

// Create empareja un préstamo con tasación completada con un inversionista
// libre. Los montos deben ser positivos y la suma de lo entregado al
// prestatario más la comisión no puede exceder el monto de la hipoteca.
func (uc *UseCase) Create(actor *entity.Session, in dto.CreateAssignmentRequest) (*entity.Assignment, error) {
	loan, err := uc.leads.GetByID(in.LoanLeadID)
	if err != nil {
		return nil, err
	}
	if !pipeline.AppraisalReportReady(loan) {
		return nil, fmt.Errorf("%w: el préstamo no tiene tasación completada", domain.ErrGateNotOpen)
	}
	if uc.assignments.ByLoanLead(loan.ID) != nil {
		return nil, fmt.Errorf("%w: el préstamo ya tiene inversionista asignado", domain.ErrLoanAssigned)
	}

	investor, err := uc.leads.GetByID(in.InvestorLeadID)
	if err != nil {
		return nil, err
	}
	if !investor.IsInversion() {
		return nil, fmt.Errorf("%w: el lead %s no es de tipo inversión", domain.ErrValidation, investor.ID)
	}
	if uc.assignments.ByInvestorLead(investor.ID) != nil {
		return nil, fmt.Errorf("%w: el inversionista ya tiene préstamo asignado", domain.ErrInvestorTaken)
	}

	if !in.MortgageAmount.IsPositive() || !in.AmountToBorrower.IsPositive() || !in.AmountToDominick.IsPositive() {
		return nil, fmt.Errorf("%w: los montos deben ser mayores a cero", domain.ErrValidation)
	}
	if in.AmountToBorrower.Add(in.AmountToDominick).GreaterThan(in.MortgageAmount) {
		return nil, fmt.Errorf("%w: amountToBorrower + amountToDominick excede mortgageAmount", domain.ErrValidation)
	}
	if !in.InterestRate.IsPositive() || in.TermMonths <= 0 {
		return nil, fmt.Errorf("%w: interestRate y termMonths deben ser mayores a cero", domain.ErrValidation)
	}

	a := &entity.Assignment{
		ID:             uuid.New().String(),
		LoanLeadID:     loan.ID,
		InvestorLeadID: investor.ID,

		LoanAmount:       loan.LoanAmount,
		AppraisalAmount:  loan.AppraisalInfo.PrecioTasacion,
		MortgageAmount:   in.MortgageAmount,
		AmountToBorrower: in.AmountToBorrower,
		AmountToDominick: in.AmountToDominick,
		InterestRate:     in.InterestRate,
		TermMonths:       in.TermMonths,
		Modality:         in.Modality,

		BorrowerName: loan.Name,
		BorrowerDNI:  loan.DocumentNumber,
		InvestorName: investor.Name,
		InvestorDNI:  investor.DocumentNumber,

		Status:    entity.AssignmentStatusPending,
		CreatedAt: time.Now(),
	}
	if actor != nil {
		a.AssignedBy = actor.ID
		a.AssignedByName = actor.Name
	}
	if err := uc.assignments.Add(a); err != nil {
		return nil, err
	}
	return a, nil
}

// List devuelve todas las asignaciones.
func (uc *UseCase) List() []*entity.Assignment {
	return uc.assignments.List()
}

// Get devuelve una asignación por ID.
func (uc *UseCase) Get(id string) (*entity.Assignment, error) {
	return uc.assignments.GetByID(id)
}

// Update aplica un patch de estado a la asignación.
func (uc *UseCase) Update(id string, in dto.UpdateAssignmentRequest) (*entity.Assignment, error) {
	current, err := uc.assignments.GetByID(id)
	if err != nil {
		return nil, err
	}
	a := *current
	if in.Status != nil {
		if *in.Status == "" {
			return nil, fmt.Errorf("%w: status no puede ser vacío", domain.ErrValidation)
		}
		a.Status = *in.Status
	}
	now := time.Now()
	a.UpdatedAt = &now
	if err := uc.assignments.Update(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// PDF genera la constancia de asignación en PDF.
func (uc *UseCase) PDF(id string) ([]byte, error) {
	a, err := uc.assignments.GetByID(id)
	if err != nil {
		return nil, err
	}
	return uc.pdf.AssignmentPDF(a)
}
