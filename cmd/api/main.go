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

	"github.com/jhoicas/gp-dashboard-api/internal/application/cashflow"
	appexport "github.com/jhoicas/gp-dashboard-api/internal/application/export"
	"github.com/jhoicas/gp-dashboard-api/internal/application/holdings"
	"github.com/jhoicas/gp-dashboard-api/internal/application/investors"
	"github.com/jhoicas/gp-dashboard-api/internal/application/overview"
	"github.com/jhoicas/gp-dashboard-api/internal/application/performance"
	"github.com/jhoicas/gp-dashboard-api/internal/application/pipeline"
	"github.com/jhoicas/gp-dashboard-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/gp-dashboard-api/internal/infrastructure/pdf"
	"github.com/jhoicas/gp-dashboard-api/internal/infrastructure/spreadsheet"
	httpRouter "github.com/jhoicas/gp-dashboard-api/internal/interfaces/http"
	"github.com/jhoicas/gp-dashboard-api/pkg/config"
	"github.com/jhoicas/gp-dashboard-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Dataset compilado en el binario. Un año que no parsea es un dataset
	// corrupto: se aborta el arranque, no se sustituye el dato.
	ds, err := memory.LoadDataset()
	if err != nil {
		log.Fatal().Err(err).Msg("carga del dataset")
	}

	fundRepo := memory.NewFundRepository(ds)
	companyRepo := memory.NewCompanyRepository(ds)
	cashflowRepo := memory.NewCashflowRepository(ds)
	pipelineRepo := memory.NewPipelineRepository(ds)
	investorRepo := memory.NewInvestorRepository(ds)
	allocationRepo := memory.NewAllocationRepository(ds)

	performanceUC := performance.NewFundsUseCase(fundRepo)
	holdingsUC := holdings.NewCompaniesUseCase(companyRepo)
	cashflowUC := cashflow.NewAnalysisUseCase(cashflowRepo)
	pipelineUC := pipeline.NewDealsUseCase(pipelineRepo)
	relationsUC := investors.NewRelationsUseCase(investorRepo)
	overviewUC := overview.NewAllocationsUseCase(allocationRepo)

	// Reporte trimestral: PDF real, despacho simulado
	reportGenerator := infrapdf.NewMarotoReportGenerator()
	updateUC := investors.NewUpdateUseCase(relationsUC, performanceUC, reportGenerator, cfg.App.GPName)

	// Exports de tablas como libros de Excel (SpreadsheetML)
	encoder := spreadsheet.NewSpreadsheetMLEncoder()
	exportUC := appexport.NewDownloadUseCase(performanceUC, pipelineUC, encoder)

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
		Title:    "GP Dashboard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PerformanceUC: performanceUC,
		HoldingsUC:    holdingsUC,
		CashflowUC:    cashflowUC,
		PipelineUC:    pipelineUC,
		RelationsUC:   relationsUC,
		UpdateUC:      updateUC,
		OverviewUC:    overviewUC,
		ExportUC:      exportUC,
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
