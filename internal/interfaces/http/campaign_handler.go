package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dominickcapital/crm-api/internal/application/campaign"
	"github.com/dominickcapital/crm-api/internal/application/dto"
)

// CampaignHandler expone campañas de marketing y clientes convertidos.
type CampaignHandler struct {
	uc *campaign.UseCase
}

// NewCampaignHandler construye el handler de campañas y clientes.
func NewCampaignHandler(uc *campaign.UseCase) *CampaignHandler {
	return &CampaignHandler{uc: uc}
}

// ListCampaigns devuelve todas las campañas.
func (h *CampaignHandler) ListCampaigns(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListCampaigns())
}

// CreateCampaign registra una campaña.
func (h *CampaignHandler) CreateCampaign(c *fiber.Ctx) error {
	var in dto.CreateCampaignRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddCampaign(actorFrom(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListClients devuelve todos los clientes.
func (h *CampaignHandler) ListClients(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListClients())
}

// CreateClient registra un cliente convertido.
func (h *CampaignHandler) CreateClient(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddClient(actorFrom(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateClient aplica un patch parcial a un cliente.
func (h *CampaignHandler) UpdateClient(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateClient(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
