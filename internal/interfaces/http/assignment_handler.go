package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dominickcapital/crm-api/internal/application/assignment"
	"github.com/dominickcapital/crm-api/internal/application/dto"
)

// AssignmentHandler expone el emparejamiento préstamo-inversionista.
type AssignmentHandler struct {
	uc *assignment.UseCase
}

// NewAssignmentHandler construye el handler de asignaciones.
func NewAssignmentHandler(uc *assignment.UseCase) *AssignmentHandler {
	return &AssignmentHandler{uc: uc}
}

// FindInvestor godoc
// @Summary      Buscar inversionista por DNI
// @Tags         assignments
// @Produce      json
// @Param        dni  query  string  true  "documento exacto"
// @Success      200  {object}  entity.Lead
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/investors/search [get]
func (h *AssignmentHandler) FindInvestor(c *fiber.Ctx) error {
	investor, err := h.uc.FindInvestorByDNI(c.Query("dni"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(investor)
}

// Create godoc
// @Summary      Asignar préstamo a inversionista
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAssignmentRequest  true  "asignación"
// @Success      201   {object}  entity.Assignment
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assignments [post]
func (h *AssignmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAssignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	a, err := h.uc.Create(actorFrom(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(a)
}

// List devuelve todas las asignaciones.
func (h *AssignmentHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// GetByID devuelve una asignación por ID.
func (h *AssignmentHandler) GetByID(c *fiber.Ctx) error {
	a, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(a)
}

// Update aplica un patch de estado a la asignación.
func (h *AssignmentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAssignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	a, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(a)
}

// PDF godoc
// @Summary      Constancia de asignación en PDF
// @Tags         assignments
// @Produce      application/pdf
// @Param        id  path  string  true  "assignment id"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assignments/{id}/pdf [get]
func (h *AssignmentHandler) PDF(c *fiber.Ctx) error {
	data, err := h.uc.PDF(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="constancia-asignacion.pdf"`)
	return c.Send(data)
}
