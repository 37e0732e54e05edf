package export_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gp-dashboard-api/internal/application/export"
	"github.com/jhoicas/gp-dashboard-api/internal/application/performance"
	"github.com/jhoicas/gp-dashboard-api/internal/application/pipeline"
	"github.com/jhoicas/gp-dashboard-api/internal/infrastructure/memory"
)

// fakeEncoder implementa export.TableEncoder capturando el documento que
// recibe; así los tests verifican el armado de la tabla sin depender del
// dialecto concreto del adaptador.
type fakeEncoder struct {
	captured export.TableDocument
	out      []byte
	err      error
}

func (e *fakeEncoder) Encode(doc export.TableDocument) ([]byte, error) {
	e.captured = doc
	if e.err != nil {
		return nil, e.err
	}
	return e.out, nil
}

func buildDownloadUseCase(t *testing.T, enc export.TableEncoder) *export.DownloadUseCase {
	t.Helper()
	ds, err := memory.LoadDataset()
	require.NoError(t, err, "el dataset de muestra debe cargar sin errores")

	funds := performance.NewFundsUseCase(memory.NewFundRepository(ds))
	deals := pipeline.NewDealsUseCase(memory.NewPipelineRepository(ds))
	return export.NewDownloadUseCase(funds, deals, enc)
}

func TestFundsWorkbook_DocumentoCompleto(t *testing.T) {
	enc := &fakeEncoder{out: []byte("<Workbook/>")}
	uc := buildDownloadUseCase(t, enc)

	out, filename, err := uc.FundsWorkbook(nil)
	require.NoError(t, err)

	assert.Equal(t, enc.out, out)
	assert.Equal(t, "company_profile.xls", filename)

	doc := enc.captured
	assert.Equal(t, "Fund Performance", doc.Title)
	assert.Equal(t, "Funds", doc.Sheet)
	assert.Equal(t,
		[]string{"Fund", "Commitment", "Called", "Distributions", "NAV", "IRR", "MOIC", "DPI", "RVPI", "TVPI"},
		doc.Columns)
	require.Len(t, doc.Rows, 3)

	first := doc.Rows[0]
	require.Len(t, first, len(doc.Columns), "cada fila debe cubrir todas las columnas")
	assert.Equal(t, export.CellString, first[0].Kind)
	assert.Equal(t, "Fund I", first[0].Value)
	assert.Equal(t, export.CellNumber, first[1].Kind)
	assert.Equal(t, "100", first[1].Value)
}

func TestFundsWorkbook_RespetaSeleccion(t *testing.T) {
	enc := &fakeEncoder{out: []byte("x")}
	uc := buildDownloadUseCase(t, enc)

	_, _, err := uc.FundsWorkbook([]string{"Fund II"})
	require.NoError(t, err)

	require.Len(t, enc.captured.Rows, 1, "el export respeta el filtro del sidebar")
	assert.Equal(t, "Fund II", enc.captured.Rows[0][0].Value)
}

func TestPipelineWorkbook_DocumentoCompleto(t *testing.T) {
	enc := &fakeEncoder{out: []byte("x")}
	uc := buildDownloadUseCase(t, enc)

	_, filename, err := uc.PipelineWorkbook()
	require.NoError(t, err)

	assert.Equal(t, "deal_pipeline.xls", filename)

	doc := enc.captured
	assert.Equal(t, []string{"Deal", "Stage", "Lead Partner"}, doc.Columns)
	require.Len(t, doc.Rows, 6)
	assert.Equal(t, "Startup A", doc.Rows[0][0].Value)
	assert.Equal(t, "Screening", doc.Rows[0][1].Value)
	assert.Equal(t, "Aditya", doc.Rows[0][2].Value)
}

func TestFundsWorkbook_ErrorDelCodificador(t *testing.T) {
	encErr := errors.New("dialecto roto")
	uc := buildDownloadUseCase(t, &fakeEncoder{err: encErr})

	out, filename, err := uc.FundsWorkbook(nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, encErr)
	assert.Nil(t, out)
	assert.Empty(t, filename)
}
