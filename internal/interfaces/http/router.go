package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dominickcapital/crm-api/internal/application/assignment"
	"github.com/dominickcapital/crm-api/internal/application/auth"
	"github.com/dominickcapital/crm-api/internal/application/campaign"
	"github.com/dominickcapital/crm-api/internal/application/lead"
	"github.com/dominickcapital/crm-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	LeadUC       *lead.UseCase
	AssignmentUC *assignment.UseCase
	CampaignUC   *campaign.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API. Cada cola y operación de etapa está
// restringida al rol del panel que la consume; admin entra a todo.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público; logout y session requieren token)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)
	authGroup.Get("/session", AuthMiddleware(deps.JWTSecret), authHandler.Session)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Leads
	leadHandler := NewLeadHandler(deps.LeadUC)
	leads := protected.Group("/leads")
	leads.Get("/", leadHandler.List)
	leads.Post("/", RequireRole(
		entity.RoleAdmin, entity.RoleSupervisorCallCenter, entity.RoleMarketing,
		entity.RoleEjecutivoPrestamos, entity.RoleEjecutivoInversiones,
	), leadHandler.Create)
	leads.Post("/bulk", RequireRole(entity.RoleAdmin, entity.RoleSupervisorCallCenter), leadHandler.CreateBulk)
	leads.Post("/import", RequireRole(entity.RoleAdmin, entity.RoleSupervisorCallCenter), leadHandler.ImportCSV)
	leads.Get("/distribution", RequireRole(entity.RoleAdmin, entity.RoleSupervisorCallCenter), leadHandler.Distribution)

	// Colas del pipeline, una por panel
	leads.Get("/queues/legal", RequireRole(entity.RoleAdmin, entity.RoleLegal), leadHandler.LegalQueue)
	leads.Get("/queues/commercial", RequireRole(entity.RoleAdmin, entity.RoleComercial), leadHandler.CommercialQueue)
	leads.Get("/queues/appointments", RequireRole(entity.RoleAdmin, entity.RoleCloser), leadHandler.AppointmentsQueue)
	leads.Get("/queues/appraisal", RequireRole(entity.RoleAdmin, entity.RoleGestorTasacion), leadHandler.AppraisalQueue)
	leads.Get("/queues/appraisal-reports", RequireRole(entity.RoleAdmin, entity.RoleEjecutivoInversiones), leadHandler.AppraisalReportsQueue)

	leads.Get("/:id", leadHandler.GetByID)
	leads.Patch("/:id", leadHandler.Update)
	leads.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleSupervisorCallCenter), leadHandler.Delete)

	// Etapas
	leads.Post("/:id/legal-decision", RequireRole(entity.RoleAdmin, entity.RoleLegal), leadHandler.LegalDecision)
	leads.Post("/:id/commercial-decision", RequireRole(entity.RoleAdmin, entity.RoleComercial), leadHandler.CommercialDecision)
	leads.Post("/:id/appointment", RequireRole(
		entity.RoleAdmin, entity.RoleEjecutivoPrestamos, entity.RoleEjecutivoInversiones,
	), leadHandler.ScheduleAppointment)
	leads.Post("/:id/closer", RequireRole(entity.RoleAdmin, entity.RoleCloser), leadHandler.SaveCloserInfo)
	leads.Post("/:id/closer/reschedule", RequireRole(entity.RoleAdmin, entity.RoleCloser), leadHandler.RescheduleAppointment)
	leads.Post("/:id/closer/mark-lost", RequireRole(entity.RoleAdmin, entity.RoleCloser), leadHandler.MarkAppointmentLost)
	leads.Post("/:id/appraisal", RequireRole(entity.RoleAdmin, entity.RoleGestorTasacion), leadHandler.SaveAppraisal)

	// Documentos del expediente
	leads.Put("/:id/documents/:slot", leadHandler.AttachDocument)
	leads.Get("/:id/documents/:slot", leadHandler.GetDocument)

	// Asignaciones préstamo-inversionista
	assignmentHandler := NewAssignmentHandler(deps.AssignmentUC)
	protected.Get("/investors/search", RequireRole(
		entity.RoleAdmin, entity.RoleEjecutivoInversiones,
	), assignmentHandler.FindInvestor)
	assignments := protected.Group("/assignments", RequireRole(
		entity.RoleAdmin, entity.RoleEjecutivoInversiones,
	))
	assignments.Get("/", assignmentHandler.List)
	assignments.Post("/", assignmentHandler.Create)
	assignments.Get("/:id", assignmentHandler.GetByID)
	assignments.Patch("/:id", assignmentHandler.Update)
	assignments.Get("/:id/pdf", assignmentHandler.PDF)

	// Campañas y clientes
	campaignHandler := NewCampaignHandler(deps.CampaignUC)
	campaigns := protected.Group("/campaigns")
	campaigns.Get("/", campaignHandler.ListCampaigns)
	campaigns.Post("/", RequireRole(entity.RoleAdmin, entity.RoleMarketing), campaignHandler.CreateCampaign)
	clients := protected.Group("/clients")
	clients.Get("/", campaignHandler.ListClients)
	clients.Post("/", campaignHandler.CreateClient)
	clients.Patch("/:id", campaignHandler.UpdateClient)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.LeadUC)
	protected.Get("/dashboard/stats", dashboardHandler.Stats)
}
