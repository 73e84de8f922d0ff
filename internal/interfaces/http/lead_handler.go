package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/dominickcapital/crm-api/internal/application/dto"
	"github.com/dominickcapital/crm-api/internal/application/lead"
	"github.com/dominickcapital/crm-api/internal/domain/entity"
)

// LeadHandler expone el CRUD de leads, las colas del pipeline y las
// operaciones de etapa.
type LeadHandler struct {
	uc *lead.UseCase
}

// NewLeadHandler construye el handler de leads.
func NewLeadHandler(uc *lead.UseCase) *LeadHandler {
	return &LeadHandler{uc: uc}
}

// List godoc
// @Summary      Leads visibles del actor
// @Tags         leads
// @Produce      json
// @Success      200  {array}  entity.Lead
// @Router       /api/leads [get]
func (h *LeadHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.MyLeads(actorFrom(c)))
}

// Create godoc
// @Summary      Registrar un lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLeadRequest  true  "lead"
// @Success      201   {object}  entity.Lead
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/leads [post]
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	l, err := h.uc.AddLead(actorFrom(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(l)
}

// CreateBulk godoc
// @Summary      Registrar leads en lote
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkLeadsRequest  true  "lote"
// @Success      201   {array}  entity.Lead
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/leads/bulk [post]
func (h *LeadHandler) CreateBulk(c *fiber.Ctx) error {
	var in dto.BulkLeadsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddBulkLeads(actorFrom(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ImportCSV godoc
// @Summary      Importar leads desde CSV
// @Tags         leads
// @Accept       text/csv
// @Produce      json
// @Success      201  {array}  entity.Lead
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/leads/import [post]
func (h *LeadHandler) ImportCSV(c *fiber.Ctx) error {
	body := c.Body()
	// multipart con campo "file" o CSV crudo en el body
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			return badBody(c)
		}
		defer f.Close()
		out, err := h.uc.ImportCSV(actorFrom(c), f)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
	out, err := h.uc.ImportCSV(actorFrom(c), bytes.NewReader(body))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Lead por ID
// @Tags         leads
// @Produce      json
// @Param        id  path  string  true  "lead id"
// @Success      200  {object}  entity.Lead
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/leads/{id} [get]
func (h *LeadHandler) GetByID(c *fiber.Ctx) error {
	l, err := h.uc.GetLead(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(l)
}

// Update godoc
// @Summary      Patch parcial de un lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "lead id"
// @Param        body  body  dto.UpdateLeadRequest true  "patch"
// @Success      200   {object}  entity.Lead
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/leads/{id} [patch]
func (h *LeadHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	l, err := h.uc.UpdateLead(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(l)
}

// Delete godoc
// @Summary      Eliminar un lead
// @Tags         leads
// @Param        id  path  string  true  "lead id"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/leads/{id} [delete]
func (h *LeadHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteLead(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Colas del pipeline ────────────────────────────────────────────────────────

// LegalQueue: leads en validación pendientes de decisión legal.
func (h *LeadHandler) LegalQueue(c *fiber.Ctx) error {
	return c.JSON(h.uc.PendingLegalReview())
}

// CommercialQueue: aprobados por legal sin decisión comercial.
func (h *LeadHandler) CommercialQueue(c *fiber.Ctx) error {
	return c.JSON(h.uc.PendingCommercialReview())
}

// AppointmentsQueue: leads con cita agendada para el closer.
func (h *LeadHandler) AppointmentsQueue(c *fiber.Ctx) error {
	return c.JSON(h.uc.WithAppointments())
}

// AppraisalQueue: leads listos para tasación.
func (h *LeadHandler) AppraisalQueue(c *fiber.Ctx) error {
	return c.JSON(h.uc.PendingAppraisal())
}

// AppraisalReportsQueue: préstamos con tasación completada.
func (h *LeadHandler) AppraisalReportsQueue(c *fiber.Ctx) error {
	return c.JSON(h.uc.AppraisalReportsReady())
}

// Distribution godoc
// @Summary      Carga de leads de call center por ejecutivo
// @Tags         leads
// @Produce      json
// @Param        leadType  query  string  false  "préstamo | inversión"
// @Success      200  {array}  dto.ExecutiveLoad
// @Router       /api/leads/distribution [get]
func (h *LeadHandler) Distribution(c *fiber.Ctx) error {
	leadType := c.Query("leadType", entity.LeadTypePrestamo)
	return c.JSON(h.uc.Distribution(leadType))
}

// ── Etapas ────────────────────────────────────────────────────────────────────

// LegalDecision registra la decisión del área legal.
func (h *LeadHandler) LegalDecision(c *fiber.Ctx) error {
	var in dto.DecisionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	l, err := h.uc.LegalDecision(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(l)
}

// CommercialDecision registra la decisión comercial.
func (h *LeadHandler) CommercialDecision(c *fiber.Ctx) error {
	var in dto.DecisionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	l, err := h.uc.CommercialDecision(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(l)
}

// ScheduleAppointment agenda la cita del lead.
func (h *LeadHandler) ScheduleAppointment(c *fiber.Ctx) error {
	var in dto.AppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	l, err := h.uc.ScheduleAppointment(actorFrom(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(l)
}

// SaveCloserInfo registra el resultado de la cita.
func (h *LeadHandler) SaveCloserInfo(c *fiber.Ctx) error {
	var in dto.CloserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	l, err := h.uc.SaveCloserInfo(actorFrom(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(l)
}

// RescheduleAppointment responde 501: el flujo aún está en desarrollo.
func (h *LeadHandler) RescheduleAppointment(c *fiber.Ctx) error {
	return fail(c, h.uc.RescheduleAppointment(c.Params("id")))
}

// MarkAppointmentLost responde 501: el flujo aún está en desarrollo.
func (h *LeadHandler) MarkAppointmentLost(c *fiber.Ctx) error {
	return fail(c, h.uc.MarkAppointmentLost(c.Params("id")))
}

// SaveAppraisal registra el informe de tasación.
func (h *LeadHandler) SaveAppraisal(c *fiber.Ctx) error {
	var in dto.AppraisalRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	l, err := h.uc.SaveAppraisal(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(l)
}

// ── Documentos ────────────────────────────────────────────────────────────────

// AttachDocument guarda un documento en el slot indicado del expediente.
func (h *LeadHandler) AttachDocument(c *fiber.Ctx) error {
	var in dto.DocumentPayload
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	l, err := h.uc.AttachDocument(c.Params("id"), c.Params("slot"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(l)
}

// GetDocument devuelve el documento del slot (nombre + payload inline).
func (h *LeadHandler) GetDocument(c *fiber.Ctx) error {
	doc, err := h.uc.GetDocument(c.Params("id"), c.Params("slot"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(doc)
}
