package lead

import (
	"fmt"
	"time"

	"github.com/dominickcapital/crm-api/internal/application/dto"
	"github.com/dominickcapital/crm-api/internal/domain"
	"github.com/dominickcapital/crm-api/internal/domain/entity"
	"github.com/dominickcapital/crm-api/internal/domain/pipeline"
)

// Etapas secuenciales del pipeline. Cada registro de etapa es de escritura
// única: un segundo intento devuelve ErrConflict. La compuerta de entrada
// de cada etapa se valida contra los predicados de pipeline.

// LegalDecision registra la decisión del área legal. El comentario es
// obligatorio tanto para aprobar como para rechazar.
func (uc *UseCase) LegalDecision(id string, in dto.DecisionRequest) (*entity.Lead, error) {
	current, err := uc.leads.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current.LegalStatus != "" {
		return nil, fmt.Errorf("%w: el lead ya tiene decisión legal", domain.ErrConflict)
	}
	if current.Substatus != pipeline.SubstatusEnValidacion {
		return nil, fmt.Errorf("%w: el lead no está en validación", domain.ErrGateNotOpen)
	}
	if in.Comment == "" {
		return nil, fmt.Errorf("%w: el comentario es obligatorio", domain.ErrValidation)
	}

	l := *current
	now := time.Now()
	switch in.Decision {
	case entity.DecisionApproved:
		l.LegalStatus = entity.DecisionApproved
		l.LegalApprovedAt = &now
		l.LegalApprovalComment = in.Comment
	case entity.DecisionRejected:
		l.LegalStatus = entity.DecisionRejected
		l.LegalRejectedAt = &now
		l.LegalRejectionReason = in.Comment
	default:
		return nil, fmt.Errorf("%w: decision debe ser approved o rejected", domain.ErrValidation)
	}
	l.UpdatedAt = &now
	if err := uc.leads.Update(&l); err != nil {
		return nil, err
	}
	return &l, nil
}

// CommercialDecision registra la decisión comercial. Solo entran leads ya
// aprobados por legal y sin decisión comercial previa.
func (uc *UseCase) CommercialDecision(id string, in dto.DecisionRequest) (*entity.Lead, error) {
	current, err := uc.leads.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current.CommercialStatus != "" {
		return nil, fmt.Errorf("%w: el lead ya tiene decisión comercial", domain.ErrConflict)
	}
	if current.LegalStatus != entity.DecisionApproved {
		return nil, fmt.Errorf("%w: falta la aprobación legal", domain.ErrGateNotOpen)
	}
	if in.Comment == "" {
		return nil, fmt.Errorf("%w: el comentario es obligatorio", domain.ErrValidation)
	}

	l := *current
	now := time.Now()
	switch in.Decision {
	case entity.DecisionApproved:
		l.CommercialStatus = entity.DecisionApproved
		l.CommercialApprovedAt = &now
		l.CommercialApprovalComment = in.Comment
	case entity.DecisionRejected:
		l.CommercialStatus = entity.DecisionRejected
		l.CommercialRejectedAt = &now
		l.CommercialRejectionReason = in.Comment
	default:
		return nil, fmt.Errorf("%w: decision debe ser approved o rejected", domain.ErrValidation)
	}
	l.UpdatedAt = &now
	if err := uc.leads.Update(&l); err != nil {
		return nil, err
	}
	return &l, nil
}

// ScheduleAppointment agenda la cita de un lead con ambas aprobaciones.
// Solo el ejecutivo asignado al lead puede agendar; admin está exento.
func (uc *UseCase) ScheduleAppointment(actor *entity.Session, id string, in dto.AppointmentRequest) (*entity.Lead, error) {
	current, err := uc.leads.GetByID(id)
	if err != nil {
		return nil, err
	}
	if actor != nil && actor.Role != entity.RoleAdmin && current.AssignedTo != actor.ID {
		return nil, fmt.Errorf("%w: el lead está asignado a otro ejecutivo", domain.ErrForbidden)
	}
	if current.Appointment != nil {
		return nil, fmt.Errorf("%w: el lead ya tiene cita agendada", domain.ErrConflict)
	}
	if !pipeline.FullyApproved(current) {
		return nil, fmt.Errorf("%w: se requiere aprobación legal y comercial", domain.ErrGateNotOpen)
	}
	if in.Date == "" || in.Time == "" {
		return nil, fmt.Errorf("%w: date y time son requeridos", domain.ErrValidation)
	}
	if !in.AppraisalCost.IsPositive() {
		return nil, fmt.Errorf("%w: appraisalCost debe ser mayor a cero", domain.ErrValidation)
	}

	l := *current
	now := time.Now()
	l.Appointment = &entity.Appointment{
		Date:          in.Date,
		Time:          in.Time,
		MeetingType:   in.MeetingType,
		AppraisalCost: in.AppraisalCost,
		CreatedAt:     now,
	}
	l.UpdatedAt = &now
	if err := uc.leads.Update(&l); err != nil {
		return nil, err
	}
	return &l, nil
}

// SaveCloserInfo registra el resultado de la cita. clientAttended es siempre
// obligatorio; si el cliente asistió, el resto del formulario también lo es.
func (uc *UseCase) SaveCloserInfo(actor *entity.Session, id string, in dto.CloserRequest) (*entity.Lead, error) {
	current, err := uc.leads.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current.CloserInfo != nil {
		return nil, fmt.Errorf("%w: el lead ya tiene registro del closer", domain.ErrConflict)
	}
	if !pipeline.HasAppointment(current) {
		return nil, fmt.Errorf("%w: el lead no tiene cita agendada", domain.ErrGateNotOpen)
	}
	if in.ClientAttended != entity.RespuestaSi && in.ClientAttended != entity.RespuestaNo {
		return nil, fmt.Errorf("%w: clientAttended debe ser si o no", domain.ErrValidation)
	}
	if in.ClientAttended == entity.RespuestaSi {
		switch {
		case in.AcceptsTerms == "":
			return nil, fmt.Errorf("%w: acceptsTerms es requerido", domain.ErrValidation)
		case !in.ClientIncome.IsPositive():
			return nil, fmt.Errorf("%w: clientIncome debe ser mayor a cero", domain.ErrValidation)
		case in.LoanReason == "":
			return nil, fmt.Errorf("%w: loanReason es requerido", domain.ErrValidation)
		case in.PaymentAgreement == "":
			return nil, fmt.Errorf("%w: paymentAgreement es requerido", domain.ErrValidation)
		case in.AppraisalPaid != entity.RespuestaSi && in.AppraisalPaid != entity.RespuestaNo:
			return nil, fmt.Errorf("%w: appraisalPaid debe ser si o no", domain.ErrValidation)
		}
	}

	l := *current
	now := time.Now()
	info := &entity.CloserInfo{
		ClientAttended: in.ClientAttended,
		CompletedAt:    now,
	}
	if actor != nil {
		info.CompletedBy = actor.Name
	}
	if in.ClientAttended == entity.RespuestaSi {
		info.AcceptsTerms = in.AcceptsTerms
		info.ClientIncome = in.ClientIncome
		info.LoanReason = in.LoanReason
		info.PaymentAgreement = in.PaymentAgreement
		info.PaymentModalityPlan = in.PaymentModalityPlan
		info.AppraisalPaid = in.AppraisalPaid
	}
	l.CloserInfo = info
	l.UpdatedAt = &now
	if err := uc.leads.Update(&l); err != nil {
		return nil, err
	}
	return &l, nil
}

// RescheduleAppointment aún no está implementado.
// TODO: definir con comercial la política de reagendamiento (¿cuenta como
// nueva cita o reemplaza la anterior?) antes de habilitar este flujo.
func (uc *UseCase) RescheduleAppointment(id string) error {
	if _, err := uc.leads.GetByID(id); err != nil {
		return err
	}
	return domain.ErrNotImplemented
}

// MarkAppointmentLost aún no está implementado.
func (uc *UseCase) MarkAppointmentLost(id string) error {
	if _, err := uc.leads.GetByID(id); err != nil {
		return err
	}
	return domain.ErrNotImplemented
}

// SaveAppraisal registra el informe de tasación. Solo entran leads cuyo
// closer confirmó asistencia y pago; el reporte debe ser un PDF.
func (uc *UseCase) SaveAppraisal(id string, in dto.AppraisalRequest) (*entity.Lead, error) {
	current, err := uc.leads.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current.AppraisalInfo != nil {
		return nil, fmt.Errorf("%w: el lead ya tiene tasación registrada", domain.ErrConflict)
	}
	if !pipeline.ReadyForAppraisal(current) {
		return nil, fmt.Errorf("%w: el lead no está listo para tasación", domain.ErrGateNotOpen)
	}
	if !in.PrecioTasacion.IsPositive() {
		return nil, fmt.Errorf("%w: precioTasacion debe ser mayor a cero", domain.ErrValidation)
	}
	if in.Situacion == "" || in.Area == "" || in.Uso == "" {
		return nil, fmt.Errorf("%w: situacion, area y uso son requeridos", domain.ErrValidation)
	}
	if in.Reporte == nil || in.Reporte.Data == "" {
		return nil, fmt.Errorf("%w: reporteFile es requerido", domain.ErrValidation)
	}
	reporte := &entity.Document{Name: in.Reporte.Name, Data: in.Reporte.Data}
	if !reporte.IsPDF() {
		return nil, fmt.Errorf("%w: reporteFile debe ser un PDF", domain.ErrValidation)
	}

	l := *current
	now := time.Now()
	l.AppraisalInfo = &entity.AppraisalInfo{
		PrecioTasacion:  in.PrecioTasacion,
		TasacionCochera: in.TasacionCochera,
		Situacion:       in.Situacion,
		Area:            in.Area,
		Uso:             in.Uso,
		ReporteFile:     reporte,
		CompletedAt:     now,
	}
	l.UpdatedAt = &now
	if err := uc.leads.Update(&l); err != nil {
		return nil, err
	}
	return &l, nil
}
