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
	"github.com/robfig/cron/v3"

	appanalytics "github.com/ignaciodev/inventario-api/internal/application/analytics"
	"github.com/ignaciodev/inventario-api/internal/application/auth"
	"github.com/ignaciodev/inventario-api/internal/application/inventory"
	"github.com/ignaciodev/inventario-api/internal/application/usecase"
	infrapdf "github.com/ignaciodev/inventario-api/internal/infrastructure/pdf"
	"github.com/ignaciodev/inventario-api/internal/infrastructure/postgres"
	httpRouter "github.com/ignaciodev/inventario-api/internal/interfaces/http"
	"github.com/ignaciodev/inventario-api/pkg/config"
	"github.com/ignaciodev/inventario-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	typeRepo := postgres.NewProductTypeRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	applyMovementUC := inventory.NewApplyMovementUseCase(txRunner, productRepo)
	listMovementsUC := inventory.NewListMovementsUseCase(movementRepo)
	reportsUC := inventory.NewReportsUseCase(movementRepo)
	auditUC := inventory.NewAuditUseCase(movementRepo, log)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	typeUC := usecase.NewProductTypeUseCase(typeRepo)
	productUC := usecase.NewProductUseCase(productRepo, typeRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(dashboardRepo)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	pdfGenerator := infrapdf.NewSalesReportGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CompanyUC:     companyUC,
		CustomerUC:    customerUC,
		ProductTypeUC: typeUC,
		ProductUC:     productUC,
		ApplyMovement: applyMovementUC,
		ListMovements: listMovementsUC,
		ReportsUC:     reportsUC,
		DashboardUC:   dashboardUC,
		PDFGenerator:  pdfGenerator,
		JWTSecret:     cfg.JWT.Secret,
	})

	// Auditoría nocturna: contrasta stock_actual contra el libro de
	// movimientos y deja registro de cada divergencia.
	var scheduler *cron.Cron
	if cfg.Jobs.AuditSchedule != "" {
		scheduler = cron.New()
		_, err := scheduler.AddFunc(cfg.Jobs.AuditSchedule, func() {
			auditCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			divergent, err := auditUC.Audit(auditCtx)
			if err != nil {
				log.Error().Err(err).Msg("auditoría de consistencia")
				return
			}
			log.Info().Int("divergencias", len(divergent)).Msg("auditoría de consistencia completada")
		})
		if err != nil {
			log.Fatal().Err(err).Str("schedule", cfg.Jobs.AuditSchedule).Msg("programar auditoría")
		}
		scheduler.Start()
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	if scheduler != nil {
		<-scheduler.Stop().Done()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
