package repository

import "github.com/dominickcapital/crm-api/internal/domain/entity"

// AssignmentRepository define el puerto de persistencia para asignaciones
// inversionista-préstamo.
type AssignmentRepository interface {
	List() []*entity.Assignment
	GetByID(id string) (*entity.Assignment, error)
	Add(a *entity.Assignment) error
	Update(a *entity.Assignment) error
	// ByLoanLead y ByInvestorLead devuelven nil si no hay asignación para ese lead.
	ByLoanLead(loanLeadID string) *entity.Assignment
	ByInvestorLead(investorLeadID string) *entity.Assignment
}
