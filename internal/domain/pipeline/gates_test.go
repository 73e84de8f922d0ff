package pipeline_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dominickcapital/crm-api/internal/domain/entity"
	"github.com/dominickcapital/crm-api/internal/domain/pipeline"
)

// leadAtStage construye un lead avanzado hasta la etapa pedida del pipeline.
func leadAtStage(stage string) *entity.Lead {
	l := &entity.Lead{
		ID:       "lead-1",
		Name:     "Juan Pérez",
		LeadType: entity.LeadTypePrestamo,
		Status:   pipeline.StatusContactado,
	}
	switch stage {
	case "validacion":
		l.Substatus = pipeline.SubstatusEnValidacion
	case "legal":
		l.LegalStatus = entity.DecisionApproved
	case "comercial":
		l.LegalStatus = entity.DecisionApproved
		l.CommercialStatus = entity.DecisionApproved
	case "cita":
		l.LegalStatus = entity.DecisionApproved
		l.CommercialStatus = entity.DecisionApproved
		l.Appointment = &entity.Appointment{Date: "2026-09-15", Time: "10:00", CreatedAt: time.Now()}
	case "closer":
		l.LegalStatus = entity.DecisionApproved
		l.CommercialStatus = entity.DecisionApproved
		l.Appointment = &entity.Appointment{Date: "2026-09-15", Time: "10:00", CreatedAt: time.Now()}
		l.CloserInfo = &entity.CloserInfo{
			ClientAttended: entity.RespuestaSi,
			AppraisalPaid:  entity.RespuestaSi,
			CompletedAt:    time.Now(),
		}
	case "tasacion":
		l.LegalStatus = entity.DecisionApproved
		l.CommercialStatus = entity.DecisionApproved
		l.Appointment = &entity.Appointment{Date: "2026-09-15", Time: "10:00", CreatedAt: time.Now()}
		l.CloserInfo = &entity.CloserInfo{
			ClientAttended: entity.RespuestaSi,
			AppraisalPaid:  entity.RespuestaSi,
			CompletedAt:    time.Now(),
		}
		l.AppraisalInfo = &entity.AppraisalInfo{
			PrecioTasacion: decimal.NewFromInt(150000),
			Situacion:      "habitado",
			Area:           "120m2",
			Uso:            "vivienda",
			CompletedAt:    time.Now(),
		}
	}
	return l
}

func TestNeedsLegalReview(t *testing.T) {
	assert.True(t, pipeline.NeedsLegalReview(leadAtStage("validacion")))
	assert.False(t, pipeline.NeedsLegalReview(leadAtStage("")),
		"sin subestado EN VALIDACIÓN no entra a la cola legal")

	// Un lead ya decidido sale de la cola aunque conserve el subestado.
	decided := leadAtStage("validacion")
	decided.LegalStatus = entity.DecisionRejected
	assert.False(t, pipeline.NeedsLegalReview(decided))
}

func TestNeedsCommercialReview(t *testing.T) {
	assert.True(t, pipeline.NeedsCommercialReview(leadAtStage("legal")))
	assert.False(t, pipeline.NeedsCommercialReview(leadAtStage("validacion")),
		"sin aprobación legal no entra a la cola comercial")
	assert.False(t, pipeline.NeedsCommercialReview(leadAtStage("comercial")),
		"con decisión comercial ya tomada sale de la cola")

	rejected := leadAtStage("validacion")
	rejected.LegalStatus = entity.DecisionRejected
	assert.False(t, pipeline.NeedsCommercialReview(rejected),
		"un rechazo legal no abre la etapa comercial")
}

func TestFullyApproved_HabilitaCita(t *testing.T) {
	assert.True(t, pipeline.FullyApproved(leadAtStage("comercial")))
	assert.False(t, pipeline.FullyApproved(leadAtStage("legal")))

	// legal aprobó pero comercial rechazó
	l := leadAtStage("legal")
	l.CommercialStatus = entity.DecisionRejected
	assert.False(t, pipeline.FullyApproved(l))
}

func TestHasAppointment(t *testing.T) {
	assert.True(t, pipeline.HasAppointment(leadAtStage("cita")))
	assert.False(t, pipeline.HasAppointment(leadAtStage("comercial")),
		"sin cita no entra al panel del closer")
}

func TestReadyForAppraisal(t *testing.T) {
	assert.True(t, pipeline.ReadyForAppraisal(leadAtStage("closer")))

	noPago := leadAtStage("closer")
	noPago.CloserInfo.AppraisalPaid = entity.RespuestaNo
	assert.False(t, pipeline.ReadyForAppraisal(noPago),
		"sin pago de tasación no entra a la cola del gestor")

	noAsistio := leadAtStage("closer")
	noAsistio.CloserInfo.ClientAttended = entity.RespuestaNo
	assert.False(t, pipeline.ReadyForAppraisal(noAsistio))
}

func TestAppraisalReportReady_SoloPrestamos(t *testing.T) {
	assert.True(t, pipeline.AppraisalReportReady(leadAtStage("tasacion")))

	inversion := leadAtStage("tasacion")
	inversion.LeadType = entity.LeadTypeInversion
	assert.False(t, pipeline.AppraisalReportReady(inversion),
		"los leads de inversión no se asignan como préstamos")

	// leadType vacío cuenta como préstamo
	vacio := leadAtStage("tasacion")
	vacio.LeadType = ""
	assert.True(t, pipeline.AppraisalReportReady(vacio))
}
