package pipeline

import "github.com/dominickcapital/crm-api/internal/domain/entity"

// Compuertas secuenciales entre etapas. Cada panel consulta leads mediante
// estos predicados nombrados; centralizarlos evita que los filtros
// diverjan entre vistas.

// NeedsLegalReview: leads en validación aún sin decisión legal.
func NeedsLegalReview(l *entity.Lead) bool {
	return l.Substatus == SubstatusEnValidacion && l.LegalStatus == ""
}

// NeedsCommercialReview: aprobados por legal y sin decisión comercial.
func NeedsCommercialReview(l *entity.Lead) bool {
	return l.LegalStatus == entity.DecisionApproved && l.CommercialStatus == ""
}

// FullyApproved: legal y comercial aprobaron; habilita agendar cita.
func FullyApproved(l *entity.Lead) bool {
	return l.LegalStatus == entity.DecisionApproved && l.CommercialStatus == entity.DecisionApproved
}

// HasAppointment: cita agendada con ambas aprobaciones; entra al panel del closer.
func HasAppointment(l *entity.Lead) bool {
	return FullyApproved(l) && l.Appointment != nil
}

// ReadyForAppraisal: el closer confirmó asistencia y pago de la tasación.
func ReadyForAppraisal(l *entity.Lead) bool {
	return l.CloserInfo != nil &&
		l.CloserInfo.AppraisalPaid == entity.RespuestaSi &&
		l.CloserInfo.ClientAttended == entity.RespuestaSi
}

// AppraisalReportReady: lead de préstamo con tasación completada; candidato
// a emparejarse con un inversionista.
func AppraisalReportReady(l *entity.Lead) bool {
	return l.IsPrestamo() && l.AppraisalInfo != nil && !l.AppraisalInfo.CompletedAt.IsZero()
}
