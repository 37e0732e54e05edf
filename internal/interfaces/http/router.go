package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gp-dashboard-api/internal/application/cashflow"
	"github.com/jhoicas/gp-dashboard-api/internal/application/export"
	"github.com/jhoicas/gp-dashboard-api/internal/application/holdings"
	"github.com/jhoicas/gp-dashboard-api/internal/application/investors"
	"github.com/jhoicas/gp-dashboard-api/internal/application/overview"
	"github.com/jhoicas/gp-dashboard-api/internal/application/performance"
	"github.com/jhoicas/gp-dashboard-api/internal/application/pipeline"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PerformanceUC *performance.FundsUseCase
	HoldingsUC    *holdings.CompaniesUseCase
	CashflowUC    *cashflow.AnalysisUseCase
	PipelineUC    *pipeline.DealsUseCase
	RelationsUC   *investors.RelationsUseCase
	UpdateUC      *investors.UpdateUseCase
	OverviewUC    *overview.AllocationsUseCase
	ExportUC      *export.DownloadUseCase
}

// Router registra las rutas de la API. Todo es público: el dashboard es
// una herramienta interna del GP y la autenticación queda fuera de alcance.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Fund Performance
	perf := api.Group("/performance")
	performanceHandler := NewPerformanceHandler(deps.PerformanceUC)
	perf.Get("/funds", performanceHandler.GetFunds)
	perf.Get("/summary", performanceHandler.GetSummary)
	perf.Get("/irr", performanceHandler.GetIRR)

	// Portfolio Companies
	hold := api.Group("/holdings")
	holdingsHandler := NewHoldingsHandler(deps.HoldingsUC)
	hold.Get("/companies", holdingsHandler.GetCompanies)
	hold.Get("/holding-periods", holdingsHandler.GetHoldingPeriods)
	hold.Get("/value-creation", holdingsHandler.GetValueCreation)
	hold.Get("/timeline", holdingsHandler.GetTimeline)
	hold.Get("/kpis", holdingsHandler.GetKPIs)

	// Cash Flow Analysis
	flows := api.Group("/cashflows")
	cashflowHandler := NewCashflowHandler(deps.CashflowUC)
	flows.Get("/timeline", cashflowHandler.GetTimeline)
	flows.Get("/breakdown", cashflowHandler.GetBreakdown)
	flows.Get("/cumulative", cashflowHandler.GetCumulative)

	// Deal Pipeline
	deals := api.Group("/pipeline")
	pipelineHandler := NewPipelineHandler(deps.PipelineUC)
	deals.Get("/deals", pipelineHandler.GetDeals)
	deals.Get("/stages", pipelineHandler.GetStages)

	// Investor Relations (incluye el reporte trimestral)
	lps := api.Group("/investors")
	investorsHandler := NewInvestorsHandler(deps.RelationsUC, deps.UpdateUC)
	lps.Get("/directory", investorsHandler.GetDirectory)
	lps.Get("/summary", investorsHandler.GetSummary)
	lps.Get("/commitments", investorsHandler.GetCommitments)
	lps.Get("/quarterly-report", investorsHandler.DownloadQuarterlyReport)
	lps.Post("/quarterly-update", investorsHandler.SendQuarterlyUpdate)

	// Portfolio Overview
	over := api.Group("/overview")
	overviewHandler := NewOverviewHandler(deps.OverviewUC)
	over.Get("/allocations", overviewHandler.GetAllocations)

	// Descargas
	exports := api.Group("/exports")
	exportHandler := NewExportHandler(deps.ExportUC)
	exports.Get("/funds", exportHandler.DownloadFunds)
	exports.Get("/pipeline", exportHandler.DownloadPipeline)
}
