// Package lead implementa el motor de workflow sobre los leads: alta y
// distribución round-robin, la máquina de estados y subestados, las etapas
// secuenciales del pipeline y las vistas por rol.
package lead

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

// UseCase casos de uso de leads. Todas las operaciones reciben la sesión
// del actor de forma explícita: no hay estado ambiental.
type UseCase struct {
	leads     repository.LeadRepository
	users     repository.UserRepository
	clients   repository.ClientRepository
	campaigns repository.CampaignRepository
}

// NewUseCase construye el caso de uso de leads.
func NewUseCase(leads repository.LeadRepository, users repository.UserRepository, clients repository.ClientRepository, campaigns repository.CampaignRepository) *UseCase {
	return &UseCase{leads: leads, users: users, clients: clients, campaigns: campaigns}
}

func newLeadFrom(actor *entity.Session, in dto.CreateLeadRequest) *entity.Lead {
	leadType := in.LeadType
	if leadType == "" {
		leadType = entity.LeadTypePrestamo // default histórico
	}
	l := &entity.Lead{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		Company:        in.Company,
		Notes:          in.Notes,
		DocumentNumber: in.DocumentNumber,
		DocumentType:   in.DocumentType,
		Address:        in.Address,
		Departamento:   in.Departamento,
		Provincia:      in.Provincia,
		Distrito:       in.Distrito,
		LeadType:       leadType,
		Status:         pipeline.StatusNuevo,
		Source:         in.Source,
		CreatedAt:      time.Now(),
	}
	if actor != nil {
		l.CreatedBy = actor.ID
		l.CreatedByName = actor.Name
	}
	return l
}

// AddLead registra un lead, lo distribuye contra el pool de ejecutivos de
// su tipo y persiste. Con pool vacío el lead queda sin asignar.
func (uc *UseCase) AddLead(actor *entity.Session, in dto.CreateLeadRequest) (*entity.Lead, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrValidation)
	}
	l := newLeadFrom(actor, in)
	if err := uc.leads.Add(l); err != nil {
		return nil, err
	}
	if err := uc.redistribute(l.LeadType); err != nil {
		return nil, err
	}
	return uc.leads.GetByID(l.ID)
}

// AddBulkLeads registra múltiples leads con ID propio cada uno, los
// particiona por tipo y distribuye cada partición contra su propio pool,
// sin contaminación cruzada.
func (uc *UseCase) AddBulkLeads(actor *entity.Session, in dto.BulkLeadsRequest) ([]*entity.Lead, error) {
	if len(in.Leads) == 0 {
		return nil, fmt.Errorf("%w: la lista de leads está vacía", domain.ErrValidation)
	}
	batch := make([]*entity.Lead, 0, len(in.Leads))
	var hasPrestamo, hasInversion bool
	for _, item := range in.Leads {
		l := newLeadFrom(actor, item)
		if l.IsInversion() {
			hasInversion = true
		} else {
			hasPrestamo = true
		}
		batch = append(batch, l)
	}
	if err := uc.leads.Add(batch...); err != nil {
		return nil, err
	}
	if hasPrestamo {
		if err := uc.redistribute(entity.LeadTypePrestamo); err != nil {
			return nil, err
		}
	}
	if hasInversion {
		if err := uc.redistribute(entity.LeadTypeInversion); err != nil {
			return nil, err
		}
	}
	out := make([]*entity.Lead, 0, len(batch))
	for _, l := range batch {
		fresh, err := uc.leads.GetByID(l.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, fresh)
	}
	return out, nil
}

// UpdateLead aplica un patch parcial y estampa updatedAt. Un cambio de
// status limpia el substatus; un substatus provisto debe pertenecer al
// vocabulario cerrado del estado resultante.
func (uc *UseCase) UpdateLead(id string, in dto.UpdateLeadRequest) (*entity.Lead, error) {
	current, err := uc.leads.GetByID(id)
	if err != nil {
		return nil, err
	}
	l := *current

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&l.Name, in.Name)
	applyString(&l.Email, in.Email)
	applyString(&l.Phone, in.Phone)
	applyString(&l.Notes, in.Notes)
	applyString(&l.DocumentNumber, in.DocumentNumber)
	applyString(&l.DocumentType, in.DocumentType)
	applyString(&l.Address, in.Address)
	applyString(&l.Departamento, in.Departamento)
	applyString(&l.Provincia, in.Provincia)
	applyString(&l.Distrito, in.Distrito)
	applyString(&l.MeetsRequirements, in.MeetsRequirements)
	applyString(&l.Observations, in.Observations)
	if in.LoanAmount != nil {
		l.LoanAmount = *in.LoanAmount
	}
	if in.InterestRate != nil {
		l.InterestRate = *in.InterestRate
	}

	if in.Status != nil && *in.Status != l.Status {
		if !pipeline.CanTransition(l.Status, *in.Status) {
			return nil, fmt.Errorf("%w: status desconocido %q", domain.ErrValidation, *in.Status)
		}
		l.Status = *in.Status
		l.Substatus = "" // el subestado es dependiente del estado
	}
	if in.Substatus != nil {
		if *in.Substatus == "" {
			l.Substatus = ""
		} else {
			canonical, ok := pipeline.CanonicalSubstatus(l.Status, *in.Substatus)
			if !ok {
				return nil, fmt.Errorf("%w: substatus %q no válido para el estado %q", domain.ErrValidation, *in.Substatus, l.Status)
			}
			l.Substatus = canonical
		}
	}

	now := time.Now()
	l.UpdatedAt = &now
	if err := uc.leads.Update(&l); err != nil {
		return nil, err
	}
	return &l, nil
}

// DeleteLead elimina el lead de la colección.
func (uc *UseCase) DeleteLead(id string) error {
	return uc.leads.Delete(id)
}

// GetLead devuelve un lead por ID.
func (uc *UseCase) GetLead(id string) (*entity.Lead, error) {
	return uc.leads.GetByID(id)
}
