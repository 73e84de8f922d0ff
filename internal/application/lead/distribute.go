package lead

import (
	"time"

	"github.com/dominickcapital/crm-api/internal/application/dto"
	"github.com/dominickcapital/crm-api/internal/domain/entity"
)

// Distribute asigna round-robin los leads sin asignar al pool de
// ejecutivos: el lead en la posición i dentro del subconjunto sin asignar
// (en orden de inserción) va a eligible[i % len(eligible)]. Determinista y
// sin estado entre llamadas: no hay cursor persistido. Los leads ya
// asignados nunca se reasignan; con pool vacío la entrada vuelve intacta.
func Distribute(leads []*entity.Lead, eligible []*entity.User) []*entity.Lead {
	if len(eligible) == 0 {
		return leads
	}
	out := make([]*entity.Lead, len(leads))
	now := time.Now()
	idx := 0
	for i, l := range leads {
		if l.AssignedTo != "" {
			out[i] = l
			continue
		}
		u := eligible[idx%len(eligible)]
		idx++
		c := *l
		c.AssignedTo = u.ID
		c.AssignedToName = u.Name
		c.AssignedAt = &now
		out[i] = &c
	}
	return out
}

// redistribute corre la distribución sobre la partición del tipo dado
// contra su pool de ejecutivos y reemplaza la colección. Las particiones
// de préstamo e inversión se indexan de forma independiente.
func (uc *UseCase) redistribute(leadType string) error {
	pool := uc.users.ListByRole(entity.ExecutiveRoleFor(leadType))
	if len(pool) == 0 {
		return nil
	}
	matches := func(l *entity.Lead) bool {
		if leadType == entity.LeadTypeInversion {
			return l.IsInversion()
		}
		return l.IsPrestamo()
	}

	all := uc.leads.List()
	partition := make([]*entity.Lead, 0, len(all))
	for _, l := range all {
		if matches(l) {
			partition = append(partition, l)
		}
	}
	distributed := Distribute(partition, pool)

	j := 0
	changed := false
	for i, l := range all {
		if matches(l) {
			if all[i] != distributed[j] {
				all[i] = distributed[j]
				changed = true
			}
			j++
		}
	}
	if !changed {
		return nil
	}
	return uc.leads.ReplaceAll(all)
}

// Distribution devuelve la carga de leads de call center por ejecutivo del
// tipo dado (vista del supervisor).
func (uc *UseCase) Distribution(leadType string) []dto.ExecutiveLoad {
	pool := uc.users.ListByRole(entity.ExecutiveRoleFor(leadType))
	out := make([]dto.ExecutiveLoad, 0, len(pool))
	for _, u := range pool {
		count := len(uc.leads.Filter(func(l *entity.Lead) bool {
			if l.Source != "call_center" || l.AssignedTo != u.ID {
				return false
			}
			if leadType == entity.LeadTypeInversion {
				return l.IsInversion()
			}
			return l.IsPrestamo()
		}))
		out = append(out, dto.ExecutiveLoad{ExecutiveID: u.ID, ExecutiveName: u.Name, Count: count})
	}
	return out
}
