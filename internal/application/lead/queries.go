package lead

import (
	"github.com/dominickcapital/crm-api/internal/domain/entity"
	"github.com/dominickcapital/crm-api/internal/domain/pipeline"
)

// Vistas nombradas por rol. Cada panel consume exactamente una de estas
// consultas; los predicados viven en el paquete pipeline para que no
// diverjan entre vistas.

// MyLeads devuelve el conjunto visible del actor: los ejecutivos ven solo
// sus leads asignados del tipo que atienden; el resto de los roles ve la
// colección completa.
func (uc *UseCase) MyLeads(actor *entity.Session) []*entity.Lead {
	if actor == nil {
		return nil
	}
	switch actor.Role {
	case entity.RoleEjecutivoPrestamos:
		return uc.leads.Filter(func(l *entity.Lead) bool {
			return l.AssignedTo == actor.ID && l.IsPrestamo()
		})
	case entity.RoleEjecutivoInversiones:
		return uc.leads.Filter(func(l *entity.Lead) bool {
			return l.AssignedTo == actor.ID && l.IsInversion()
		})
	default:
		return uc.leads.List()
	}
}

// PendingLegalReview: cola del panel legal (subestado EN VALIDACIÓN).
func (uc *UseCase) PendingLegalReview() []*entity.Lead {
	return uc.leads.Filter(pipeline.NeedsLegalReview)
}

// PendingCommercialReview: aprobados por legal sin decisión comercial.
func (uc *UseCase) PendingCommercialReview() []*entity.Lead {
	return uc.leads.Filter(pipeline.NeedsCommercialReview)
}

// WithAppointments: cola del closer (ambas aprobaciones + cita agendada).
func (uc *UseCase) WithAppointments() []*entity.Lead {
	return uc.leads.Filter(pipeline.HasAppointment)
}

// PendingAppraisal: cola del gestor de tasación (asistió y pagó tasación).
func (uc *UseCase) PendingAppraisal() []*entity.Lead {
	return uc.leads.Filter(pipeline.ReadyForAppraisal)
}

// AppraisalReportsReady: préstamos con tasación completada, listos para
// emparejarse con un inversionista.
func (uc *UseCase) AppraisalReportsReady() []*entity.Lead {
	return uc.leads.Filter(pipeline.AppraisalReportReady)
}
