package lead_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dominickcapital/crm-api/internal/application/dto"
	"github.com/dominickcapital/crm-api/internal/application/lead"
	"github.com/dominickcapital/crm-api/internal/domain"
	"github.com/dominickcapital/crm-api/internal/domain/entity"
	"github.com/dominickcapital/crm-api/internal/domain/pipeline"
)

func strPtr(s string) *string { return &s }

// seedDirectorio directorio mínimo con un ejecutivo por tipo.
func seedDirectorio() []*entity.User {
	return []*entity.User{
		ejecutivo("p1", "Prestamos Uno", entity.RoleEjecutivoPrestamos),
		ejecutivo("i1", "Inversiones Uno", entity.RoleEjecutivoInversiones),
	}
}

// avanzarHastaCita lleva un lead recién creado hasta tener cita agendada.
func avanzarHastaCita(t *testing.T, uc *lead.UseCase, id string) {
	t.Helper()
	aprobarLegalYComercial(t, uc, id)
	_, err := uc.ScheduleAppointment(nil, id, dto.AppointmentRequest{
		Date: "2026-09-20", Time: "11:00", MeetingType: "presencial",
		AppraisalCost: decimal.NewFromInt(500),
	})
	require.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests updateLead: estados y subestados
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateLead_CambioDeEstadoLimpiaSubestado(t *testing.T) {
	uc := buildUseCase(t, seedDirectorio())
	l, err := uc.AddLead(nil, dto.CreateLeadRequest{Name: "Cliente"})
	require.NoError(t, err)

	l, err = uc.UpdateLead(l.ID, dto.UpdateLeadRequest{
		Status:    strPtr(pipeline.StatusContactado),
		Substatus: strPtr("interesado"),
	})
	require.NoError(t, err)
	assert.Equal(t, "INTERESADO", l.Substatus, "el subestado se guarda canónico")

	l, err = uc.UpdateLead(l.ID, dto.UpdateLeadRequest{Status: strPtr(pipeline.StatusCalificado)})
	require.NoError(t, err)
	assert.Empty(t, l.Substatus, "un cambio de estado limpia el subestado")
	assert.NotNil(t, l.UpdatedAt)
}

func TestUpdateLead_SubestadoFueraDeVocabulario(t *testing.T) {
	uc := buildUseCase(t, seedDirectorio())
	l, err := uc.AddLead(nil, dto.CreateLeadRequest{Name: "Cliente"})
	require.NoError(t, err)

	_, err = uc.UpdateLead(l.ID, dto.UpdateLeadRequest{
		Status:    strPtr(pipeline.StatusContactado),
		Substatus: strPtr("INVENTADO"),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateLead_LeadInexistente(t *testing.T) {
	uc := buildUseCase(t, seedDirectorio())
	_, err := uc.UpdateLead("no-existe", dto.UpdateLeadRequest{Name: strPtr("X")})
	assert.ErrorIs(t, err, domain.ErrLeadNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests etapas: compuertas y escritura única
// ──────────────────────────────────────────────────────────────────────────────

func TestLegalDecision_RequiereValidacionYComentario(t *testing.T) {
	uc := buildUseCase(t, seedDirectorio())
	l, err := uc.AddLead(nil, dto.CreateLeadRequest{Name: "Cliente"})
	require.NoError(t, err)

	// Sin subestado EN VALIDACIÓN la compuerta está cerrada.
	_, err = uc.LegalDecision(l.ID, dto.DecisionRequest{Decision: entity.DecisionApproved, Comment: "ok"})
	assert.ErrorIs(t, err, domain.ErrGateNotOpen)

	_, err = uc.UpdateLead(l.ID, dto.UpdateLeadRequest{
		Status:    strPtr(pipeline.StatusContactado),
		Substatus: strPtr("EN VALIDACIÓN"),
	})
	require.NoError(t, err)

	// El comentario es obligatorio.
	_, err = uc.LegalDecision(l.ID, dto.DecisionRequest{Decision: entity.DecisionApproved})
	assert.ErrorIs(t, err, domain.ErrValidation)

	out, err := uc.LegalDecision(l.ID, dto.DecisionRequest{Decision: entity.DecisionApproved, Comment: "expediente completo"})
	require.NoError(t, err)
	assert.Equal(t, entity.DecisionApproved, out.LegalStatus)
	assert.NotNil(t, out.LegalApprovedAt)
	assert.Equal(t, "expediente completo", out.LegalApprovalComment)

	// Escritura única: el segundo intento es conflicto.
	_, err = uc.LegalDecision(l.ID, dto.DecisionRequest{Decision: entity.DecisionRejected, Comment: "cambio de opinión"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCommercialDecision_RequiereAprobacionLegal(t *testing.T) {
	uc := buildUseCase(t, seedDirectorio())
	l, err := uc.AddLead(nil, dto.CreateLeadRequest{Name: "Cliente"})
	require.NoError(t, err)

	_, err = uc.CommercialDecision(l.ID, dto.DecisionRequest{Decision: entity.DecisionApproved, Comment: "ok"})
	assert.ErrorIs(t, err, domain.ErrGateNotOpen)

	_, err = uc.UpdateLead(l.ID, dto.UpdateLeadRequest{
		Status:    strPtr(pipeline.StatusContactado),
		Substatus: strPtr("EN VALIDACIÓN"),
	})
	require.NoError(t, err)
	_, err = uc.LegalDecision(l.ID, dto.DecisionRequest{Decision: entity.DecisionRejected, Comment: "documentos incompletos"})
	require.NoError(t, err)

	// Un rechazo legal mantiene cerrada la etapa comercial.
	_, err = uc.CommercialDecision(l.ID, dto.DecisionRequest{Decision: entity.DecisionApproved, Comment: "ok"})
	assert.ErrorIs(t, err, domain.ErrGateNotOpen)
}

func TestScheduleAppointment_RequiereAmbasAprobaciones(t *testing.T) {
	uc := buildUseCase(t, seedDirectorio())
	l, err := uc.AddLead(nil, dto.CreateLeadRequest{Name: "Cliente"})
	require.NoError(t, err)

	_, err = uc.ScheduleAppointment(nil, l.ID, dto.AppointmentRequest{
		Date: "2026-09-20", Time: "11:00", AppraisalCost: decimal.NewFromInt(500),
	})
	assert.ErrorIs(t, err, domain.ErrGateNotOpen)

	avanzarHastaCita(t, uc, l.ID)

	// La cita es de escritura única.
	_, err = uc.ScheduleAppointment(nil, l.ID, dto.AppointmentRequest{
		Date: "2026-09-21", Time: "12:00", AppraisalCost: decimal.NewFromInt(500),
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// aprobarLegalYComercial deja el lead con ambas aprobaciones, sin cita.
func aprobarLegalYComercial(t *testing.T, uc *lead.UseCase, id string) {
	t.Helper()
	_, err := uc.UpdateLead(id, dto.UpdateLeadRequest{
		Status:    strPtr(pipeline.StatusContactado),
		Substatus: strPtr("EN VALIDACIÓN"),
	})
	require.NoError(t, err)
	_, err = uc.LegalDecision(id, dto.DecisionRequest{Decision: entity.DecisionApproved, Comment: "expediente completo"})
	require.NoError(t, err)
	_, err = uc.CommercialDecision(id, dto.DecisionRequest{Decision: entity.DecisionApproved, Comment: "perfil aceptable"})
	require.NoError(t, err)
}

func TestScheduleAppointment_SoloElEjecutivoAsignado(t *testing.T) {
	uc := buildUseCase(t, seedDirectorio())
	l, err := uc.AddLead(nil, dto.CreateLeadRequest{Name: "Cliente"})
	require.NoError(t, err)
	require.Equal(t, "p1", l.AssignedTo)
	aprobarLegalYComercial(t, uc, l.ID)

	cita := dto.AppointmentRequest{
		Date: "2026-09-20", Time: "11:00", MeetingType: "presencial",
		AppraisalCost: decimal.NewFromInt(500),
	}

	// Otro ejecutivo del mismo rol no puede agendar un lead ajeno.
	otro := &entity.Session{ID: "p2", Name: "Prestamos Dos", Role: entity.RoleEjecutivoPrestamos}
	_, err = uc.ScheduleAppointment(otro, l.ID, cita)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// El ejecutivo asignado sí.
	dueno := &entity.Session{ID: "p1", Name: "Prestamos Uno", Role: entity.RoleEjecutivoPrestamos}
	out, err := uc.ScheduleAppointment(dueno, l.ID, cita)
	require.NoError(t, err)
	assert.NotNil(t, out.Appointment)
}

func TestScheduleAppointment_AdminExento(t *testing.T) {
	uc := buildUseCase(t, seedDirectorio())
	l, err := uc.AddLead(nil, dto.CreateLeadRequest{Name: "Cliente"})
	require.NoError(t, err)
	require.Equal(t, "p1", l.AssignedTo)
	aprobarLegalYComercial(t, uc, l.ID)

	admin := &entity.Session{ID: "1", Name: "Admin Usuario", Role: entity.RoleAdmin}
	out, err := uc.ScheduleAppointment(admin, l.ID, dto.AppointmentRequest{
		Date: "2026-09-20", Time: "11:00", MeetingType: "presencial",
		AppraisalCost: decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	assert.NotNil(t, out.Appointment)
}

func TestSaveCloserInfo_CamposCondicionales(t *testing.T) {
	uc := buildUseCase(t, seedDirectorio())
	l, err := uc.AddLead(nil, dto.CreateLeadRequest{Name: "Cliente"})
	require.NoError(t, err)
	avanzarHastaCita(t, uc, l.ID)

	// clientAttended es obligatorio siempre.
	_, err = uc.SaveCloserInfo(nil, l.ID, dto.CloserRequest{})
	assert.ErrorIs(t, err, domain.ErrValidation)

	// Si asistió, el resto del formulario es obligatorio.
	_, err = uc.SaveCloserInfo(nil, l.ID, dto.CloserRequest{ClientAttended: entity.RespuestaSi})
	assert.ErrorIs(t, err, domain.ErrValidation)

	actor := &entity.Session{ID: "7", Name: "Sofia Closer", Role: entity.RoleCloser}
	out, err := uc.SaveCloserInfo(actor, l.ID, dto.CloserRequest{
		ClientAttended:   entity.RespuestaSi,
		AcceptsTerms:     entity.RespuestaSi,
		ClientIncome:     decimal.NewFromInt(8000),
		LoanReason:       "capital de trabajo",
		PaymentAgreement: "mensual",
		AppraisalPaid:    entity.RespuestaSi,
	})
	require.NoError(t, err)
	assert.Equal(t, "Sofia Closer", out.CloserInfo.CompletedBy)

	// Escritura única.
	_, err = uc.SaveCloserInfo(actor, l.ID, dto.CloserRequest{ClientAttended: entity.RespuestaNo})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSaveCloserInfo_NoAsistioNoExigeFormulario(t *testing.T) {
	uc := buildUseCase(t, seedDirectorio())
	l, err := uc.AddLead(nil, dto.CreateLeadRequest{Name: "Cliente"})
	require.NoError(t, err)
	avanzarHastaCita(t, uc, l.ID)

	out, err := uc.SaveCloserInfo(nil, l.ID, dto.CloserRequest{ClientAttended: entity.RespuestaNo})
	require.NoError(t, err)
	assert.Equal(t, entity.RespuestaNo, out.CloserInfo.ClientAttended)
	assert.Empty(t, out.CloserInfo.AcceptsTerms)
}

func TestRescheduleYMarkLost_NoImplementados(t *testing.T) {
	uc := buildUseCase(t, seedDirectorio())
	l, err := uc.AddLead(nil, dto.CreateLeadRequest{Name: "Cliente"})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.RescheduleAppointment(l.ID), domain.ErrNotImplemented)
	assert.ErrorIs(t, uc.MarkAppointmentLost(l.ID), domain.ErrNotImplemented)
	assert.ErrorIs(t, uc.RescheduleAppointment("no-existe"), domain.ErrLeadNotFound,
		"un lead inexistente responde 404, no 501")
}

func TestSaveAppraisal_GateYReportePDF(t *testing.T) {
	uc := buildUseCase(t, seedDirectorio())
	l, err := uc.AddLead(nil, dto.CreateLeadRequest{Name: "Cliente"})
	require.NoError(t, err)
	avanzarHastaCita(t, uc, l.ID)

	informe := dto.AppraisalRequest{
		PrecioTasacion: decimal.NewFromInt(150000),
		Situacion:      "habitado",
		Area:           "120m2",
		Uso:            "vivienda",
		Reporte:        &dto.DocumentPayload{Name: "tasacion.pdf", Data: "data:application/pdf;base64,JVBERi0="},
	}

	// El closer aún no confirmó asistencia y pago.
	_, err = uc.SaveAppraisal(l.ID, informe)
	assert.ErrorIs(t, err, domain.ErrGateNotOpen)

	_, err = uc.SaveCloserInfo(nil, l.ID, dto.CloserRequest{
		ClientAttended:   entity.RespuestaSi,
		AcceptsTerms:     entity.RespuestaSi,
		ClientIncome:     decimal.NewFromInt(8000),
		LoanReason:       "capital de trabajo",
		PaymentAgreement: "mensual",
		AppraisalPaid:    entity.RespuestaSi,
	})
	require.NoError(t, err)

	// El reporte debe ser PDF.
	conImagen := informe
	conImagen.Reporte = &dto.DocumentPayload{Name: "foto.png", Data: "data:image/png;base64,iVBOR"}
	_, err = uc.SaveAppraisal(l.ID, conImagen)
	assert.ErrorIs(t, err, domain.ErrValidation)

	out, err := uc.SaveAppraisal(l.ID, informe)
	require.NoError(t, err)
	assert.False(t, out.AppraisalInfo.CompletedAt.IsZero())

	_, err = uc.SaveAppraisal(l.ID, informe)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests colas nombradas
// ──────────────────────────────────────────────────────────────────────────────

func TestColas_AvanzanConElPipeline(t *testing.T) {
	uc := buildUseCase(t, seedDirectorio())
	l, err := uc.AddLead(nil, dto.CreateLeadRequest{Name: "Cliente"})
	require.NoError(t, err)

	assert.Empty(t, uc.PendingLegalReview())

	_, err = uc.UpdateLead(l.ID, dto.UpdateLeadRequest{
		Status:    strPtr(pipeline.StatusContactado),
		Substatus: strPtr("EN VALIDACIÓN"),
	})
	require.NoError(t, err)
	assert.Len(t, uc.PendingLegalReview(), 1)
	assert.Empty(t, uc.PendingCommercialReview())

	_, err = uc.LegalDecision(l.ID, dto.DecisionRequest{Decision: entity.DecisionApproved, Comment: "ok"})
	require.NoError(t, err)
	assert.Empty(t, uc.PendingLegalReview(), "decidido sale de la cola legal")
	assert.Len(t, uc.PendingCommercialReview(), 1)

	_, err = uc.CommercialDecision(l.ID, dto.DecisionRequest{Decision: entity.DecisionApproved, Comment: "ok"})
	require.NoError(t, err)
	assert.Empty(t, uc.PendingCommercialReview())
	assert.Empty(t, uc.WithAppointments(), "sin cita todavía")

	_, err = uc.ScheduleAppointment(nil, l.ID, dto.AppointmentRequest{
		Date: "2026-09-20", Time: "11:00", AppraisalCost: decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	assert.Len(t, uc.WithAppointments(), 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests getMyLeads y stats
// ──────────────────────────────────────────────────────────────────────────────

func TestMyLeads_AlcancePorRol(t *testing.T) {
	uc := buildUseCase(t, seedDirectorio())

	_, err := uc.AddBulkLeads(nil, dto.BulkLeadsRequest{Leads: []dto.CreateLeadRequest{
		{Name: "P-A"},
		{Name: "P-B"},
		{Name: "I-A", LeadType: entity.LeadTypeInversion},
	}})
	require.NoError(t, err)

	prestamos := uc.MyLeads(&entity.Session{ID: "p1", Role: entity.RoleEjecutivoPrestamos})
	assert.Len(t, prestamos, 2, "el ejecutivo de préstamos ve solo sus préstamos")

	inversiones := uc.MyLeads(&entity.Session{ID: "i1", Role: entity.RoleEjecutivoInversiones})
	assert.Len(t, inversiones, 1)

	otro := uc.MyLeads(&entity.Session{ID: "p1", Role: entity.RoleEjecutivoInversiones})
	assert.Empty(t, otro, "un ejecutivo no ve leads de otro tipo ni de otro dueño")

	admin := uc.MyLeads(&entity.Session{ID: "x", Role: entity.RoleAdmin})
	assert.Len(t, admin, 3, "los demás roles ven todo")

	legal := uc.MyLeads(&entity.Session{ID: "x", Role: entity.RoleLegal})
	assert.Len(t, legal, 3)
}

func TestStats_RecalculadasSobreElConjuntoVisible(t *testing.T) {
	uc := buildUseCase(t, seedDirectorio())

	_, err := uc.AddBulkLeads(nil, dto.BulkLeadsRequest{Leads: []dto.CreateLeadRequest{
		{Name: "A"}, {Name: "B"}, {Name: "C"},
	}})
	require.NoError(t, err)

	leads := uc.MyLeads(&entity.Session{Role: entity.RoleAdmin})
	_, err = uc.UpdateLead(leads[0].ID, dto.UpdateLeadRequest{Status: strPtr(pipeline.StatusGanado)})
	require.NoError(t, err)
	_, err = uc.UpdateLead(leads[1].ID, dto.UpdateLeadRequest{Status: strPtr(pipeline.StatusPerdido)})
	require.NoError(t, err)

	stats := uc.Stats(&entity.Session{Role: entity.RoleAdmin})
	assert.Equal(t, 3, stats.TotalLeads)
	assert.Equal(t, 1, stats.NewLeads)
	assert.Equal(t, 1, stats.Won)
	assert.Equal(t, 1, stats.Lost)
	assert.Equal(t, 0, stats.Contacted)
	assert.Equal(t, 0, stats.TotalClients)
	assert.Equal(t, 0, stats.TotalCampaigns)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests documentos del expediente
// ──────────────────────────────────────────────────────────────────────────────

func TestDocumentos_SlotsDelExpediente(t *testing.T) {
	uc := buildUseCase(t, seedDirectorio())
	l, err := uc.AddLead(nil, dto.CreateLeadRequest{Name: "Cliente"})
	require.NoError(t, err)

	_, err = uc.AttachDocument(l.ID, "dni", dto.DocumentPayload{Name: "dni.jpg", Data: "data:image/jpeg;base64,xxx"})
	require.NoError(t, err)

	doc, err := uc.GetDocument(l.ID, "dni")
	require.NoError(t, err)
	assert.Equal(t, "dni.jpg", doc.Name)

	_, err = uc.GetDocument(l.ID, "puhr")
	assert.ErrorIs(t, err, domain.ErrNotFound, "slot vacío responde 404")

	_, err = uc.AttachDocument(l.ID, "otro", dto.DocumentPayload{Name: "x", Data: "y"})
	assert.ErrorIs(t, err, domain.ErrValidation, "slot desconocido se rechaza")
}
