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
	appanalytics "github.com/jhoicas/Gestion-api/internal/application/analytics"
	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/application/billing"
	appschedule "github.com/jhoicas/Gestion-api/internal/application/schedule"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Gestion-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Gestion-api/internal/interfaces/http"
	"github.com/jhoicas/Gestion-api/pkg/config"
	"github.com/jhoicas/Gestion-api/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	officeRepo := postgres.NewOfficeRepository(pool)
	managerOfficeRepo := postgres.NewManagerOfficeRepository(pool)
	departmentRepo := postgres.NewDepartmentRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	assignmentRepo := postgres.NewAssignmentRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	timeEntryRepo := postgres.NewTimeEntryRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	technologyRepo := postgres.NewTechnologyRepository(pool)

	officeUC := usecase.NewOfficeUseCase(officeRepo, departmentRepo, managerOfficeRepo, userRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, officeRepo, departmentRepo)
	projectUC := usecase.NewProjectUseCase(
		projectRepo, officeRepo, employeeRepo,
		assignmentRepo, expenseRepo, technologyRepo,
	)
	technologyUC := usecase.NewTechnologyUseCase(technologyRepo)

	dashboardUC := appanalytics.NewDashboardUseCase(
		userRepo, officeRepo, managerOfficeRepo,
		employeeRepo, departmentRepo, projectRepo, assignmentRepo,
	)
	ledgerUC := appanalytics.NewLedgerUseCase(
		userRepo, officeRepo, managerOfficeRepo,
		employeeRepo, projectRepo, assignmentRepo, expenseRepo,
	)

	timesheetUC := appschedule.NewTimesheetUseCase(timeEntryRepo, projectRepo)

	// PDF: detalle de costos del proyecto adjunto a cada factura
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, projectRepo, ledgerUC, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, employeeRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Gestión Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		OfficeUC:     officeUC,
		EmployeeUC:   employeeUC,
		ProjectUC:    projectUC,
		TechnologyUC: technologyUC,
		DashboardUC:  dashboardUC,
		LedgerUC:     ledgerUC,
		TimesheetUC:  timesheetUC,
		InvoiceUC:    invoiceUC,
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
