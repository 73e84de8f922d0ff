package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dominickcapital/crm-api/internal/application/lead"
)

// DashboardHandler expone las métricas agregadas del dashboard.
type DashboardHandler struct {
	leads *lead.UseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(leads *lead.UseCase) *DashboardHandler {
	return &DashboardHandler{leads: leads}
}

// Stats godoc
// @Summary      Métricas del dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(h.leads.Stats(actorFrom(c)))
}
