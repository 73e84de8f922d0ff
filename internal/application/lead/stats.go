package lead

import (
	"github.com/dominickcapital/crm-api/internal/application/dto"
	"github.com/dominickcapital/crm-api/internal/domain/entity"
	"github.com/dominickcapital/crm-api/internal/domain/pipeline"
)

// Stats recalcula en cada llamada los contadores sobre el conjunto visible
// del actor. No hay caché ni invalidación: el costo es lineal y el volumen
// de registros, pequeño. Nótese que contacto_no_efectivo y no_contactado
// no tienen contador propio en este desglose.
func (uc *UseCase) Stats(actor *entity.Session) dto.StatsResponse {
	my := uc.MyLeads(actor)

	countStatus := func(status string) int {
		n := 0
		for _, l := range my {
			if l.Status == status {
				n++
			}
		}
		return n
	}

	return dto.StatsResponse{
		TotalLeads:     len(my),
		NewLeads:       countStatus(pipeline.StatusNuevo),
		Contacted:      countStatus(pipeline.StatusContactado),
		Qualified:      countStatus(pipeline.StatusCalificado),
		Won:            countStatus(pipeline.StatusGanado),
		Lost:           countStatus(pipeline.StatusPerdido),
		TotalClients:   uc.clients.Count(),
		TotalCampaigns: uc.campaigns.Count(),
	}
}
