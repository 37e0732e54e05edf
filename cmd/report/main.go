// report genera fuera de línea los mismos artefactos que el dashboard sirve
// como descargas: el PDF del reporte trimestral y los libros de Excel de
// fondos y pipeline.
//
// Uso: go run ./cmd/report [directorio/salida]
// Por defecto escribe en el directorio actual.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	appexport "github.com/jhoicas/gp-dashboard-api/internal/application/export"
	"github.com/jhoicas/gp-dashboard-api/internal/application/investors"
	"github.com/jhoicas/gp-dashboard-api/internal/application/performance"
	"github.com/jhoicas/gp-dashboard-api/internal/application/pipeline"
	"github.com/jhoicas/gp-dashboard-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/gp-dashboard-api/internal/infrastructure/pdf"
	"github.com/jhoicas/gp-dashboard-api/internal/infrastructure/spreadsheet"
	"github.com/jhoicas/gp-dashboard-api/pkg/config"
)

func main() {
	outDir := "."
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Crear directorio: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ds, err := memory.LoadDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar dataset: %v\n", err)
		os.Exit(1)
	}

	performanceUC := performance.NewFundsUseCase(memory.NewFundRepository(ds))
	pipelineUC := pipeline.NewDealsUseCase(memory.NewPipelineRepository(ds))
	relationsUC := investors.NewRelationsUseCase(memory.NewInvestorRepository(ds))
	updateUC := investors.NewUpdateUseCase(relationsUC, performanceUC, infrapdf.NewMarotoReportGenerator(), cfg.App.GPName)
	exportUC := appexport.NewDownloadUseCase(performanceUC, pipelineUC, spreadsheet.NewSpreadsheetMLEncoder())

	// Sin selección: los artefactos fuera de línea cubren siempre el
	// portafolio completo.
	report, reportName, err := updateUC.QuarterlyReport(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Reporte trimestral: %v\n", err)
		os.Exit(1)
	}
	writeArtifact(outDir, reportName, report)

	funds, fundsName, err := exportUC.FundsWorkbook(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Libro de fondos: %v\n", err)
		os.Exit(1)
	}
	writeArtifact(outDir, fundsName, funds)

	deals, dealsName, err := exportUC.PipelineWorkbook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Libro del pipeline: %v\n", err)
		os.Exit(1)
	}
	writeArtifact(outDir, dealsName, deals)
}

func writeArtifact(dir, name string, data []byte) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir %s: %v\n", name, err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s (%d bytes)\n", path, len(data))
}
