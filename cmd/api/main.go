package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/dominickcapital/crm-api/internal/application/assignment"
	"github.com/dominickcapital/crm-api/internal/application/auth"
	"github.com/dominickcapital/crm-api/internal/application/campaign"
	"github.com/dominickcapital/crm-api/internal/application/lead"
	"github.com/dominickcapital/crm-api/internal/infrastructure/crmstore"
	infrapdf "github.com/dominickcapital/crm-api/internal/infrastructure/pdf"
	"github.com/dominickcapital/crm-api/internal/infrastructure/storage"
	httpRouter "github.com/dominickcapital/crm-api/internal/interfaces/http"
	"github.com/dominickcapital/crm-api/pkg/config"
	"github.com/dominickcapital/crm-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Service: "crm-api",
		Env:     cfg.App.Env,
		Level:   "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	store, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir el blob store")
	}
	defer cleanup()

	userRepo, err := crmstore.NewUserRepository(store)
	if err != nil {
		log.Fatal().Err(err).Msg("repositorio de usuarios")
	}
	leadRepo, err := crmstore.NewLeadRepository(store)
	if err != nil {
		log.Fatal().Err(err).Msg("repositorio de leads")
	}
	assignmentRepo, err := crmstore.NewAssignmentRepository(store)
	if err != nil {
		log.Fatal().Err(err).Msg("repositorio de asignaciones")
	}
	campaignRepo, err := crmstore.NewCampaignRepository(store)
	if err != nil {
		log.Fatal().Err(err).Msg("repositorio de campañas")
	}
	clientRepo, err := crmstore.NewClientRepository(store)
	if err != nil {
		log.Fatal().Err(err).Msg("repositorio de clientes")
	}
	sessionRepo, err := crmstore.NewSessionRepository(store)
	if err != nil {
		log.Fatal().Err(err).Msg("repositorio de sesión")
	}

	authUC := auth.NewAuthUseCase(userRepo, sessionRepo, auth.NewVerifier(cfg.Auth.CredentialMode), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	leadUC := lead.NewUseCase(leadRepo, userRepo, clientRepo, campaignRepo)
	assignmentUC := assignment.NewUseCase(assignmentRepo, leadRepo, infrapdf.NewMarotoPDFGenerator())
	campaignUC := campaign.NewUseCase(campaignRepo, clientRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    20 * 1024 * 1024, // documentos inline en base64
	})
	app.Use(recover.New())
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Dominick CRM API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", httpRouter.MetricsHandler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		LeadUC:       leadUC,
		AssignmentUC: assignmentUC,
		CampaignUC:   campaignUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openStore abre el backend configurado. El cleanup cierra el pool de
// PostgreSQL cuando aplica; para los otros drivers es un no-op.
func openStore(ctx context.Context, cfg *config.Config) (storage.Store, func(), error) {
	switch cfg.Storage.Driver {
	case "memory":
		return storage.NewMemoryStore(), func() {}, nil
	case "postgres":
		pool, err := storage.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		store, err := storage.NewPostgresStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, pool.Close, nil
	default: // file
		store, err := storage.NewFileStore(cfg.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}
}
