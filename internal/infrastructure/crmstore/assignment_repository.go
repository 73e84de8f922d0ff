package crmstore

import (
	"fmt"
	"sync"

	"github.com/dominickcapital/crm-api/internal/domain"
	"github.com/dominickcapital/crm-api/internal/domain/entity"
	"github.com/dominickcapital/crm-api/internal/domain/repository"
	"github.com/dominickcapital/crm-api/internal/infrastructure/storage"
)

var _ repository.AssignmentRepository = (*AssignmentRepo)(nil)

// AssignmentRepo repositorio de asignaciones inversionista-préstamo.
type AssignmentRepo struct {
	mu          sync.RWMutex
	store       storage.Store
	assignments []*entity.Assignment
}

// NewAssignmentRepository carga la colección desde el store.
func NewAssignmentRepository(store storage.Store) (*AssignmentRepo, error) {
	r := &AssignmentRepo{store: store}
	if _, err := store.Get(storage.KeyAssignments, &r.assignments); err != nil {
		return nil, fmt.Errorf("cargar asignaciones: %w", err)
	}
	return r, nil
}

func (r *AssignmentRepo) persist() error {
	return r.store.Set(storage.KeyAssignments, r.assignments)
}

// List devuelve una copia en orden de inserción.
func (r *AssignmentRepo) List() []*entity.Assignment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Assignment, len(r.assignments))
	copy(out, r.assignments)
	return out
}

// GetByID devuelve la asignación o domain.ErrNotFound.
func (r *AssignmentRepo) GetByID(id string) (*entity.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.assignments {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Add agrega la asignación y persiste.
func (r *AssignmentRepo) Add(a *entity.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assignments = append(r.assignments, a)
	return r.persist()
}

// Update reemplaza la asignación con el mismo ID y persiste.
func (r *AssignmentRepo) Update(a *entity.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.assignments {
		if existing.ID == a.ID {
			r.assignments[i] = a
			return r.persist()
		}
	}
	return domain.ErrNotFound
}

// ByLoanLead devuelve la asignación del préstamo o nil.
func (r *AssignmentRepo) ByLoanLead(loanLeadID string) *entity.Assignment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.assignments {
		if a.LoanLeadID == loanLeadID {
			return a
		}
	}
	return nil
}

// ByInvestorLead devuelve la asignación que consume al inversionista o nil.
func (r *AssignmentRepo) ByInvestorLead(investorLeadID string) *entity.Assignment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.assignments {
		if a.InvestorLeadID == investorLeadID {
			return a
		}
	}
	return nil
}
