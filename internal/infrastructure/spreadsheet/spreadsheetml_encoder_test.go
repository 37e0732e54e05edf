package spreadsheet_test

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gp-dashboard-api/internal/application/export"
	"github.com/jhoicas/gp-dashboard-api/internal/domain"
	"github.com/jhoicas/gp-dashboard-api/internal/infrastructure/spreadsheet"
)

func sampleDocument() export.TableDocument {
	return export.TableDocument{
		Title:   "Fund Performance",
		Sheet:   "Funds",
		Columns: []string{"Fund", "Commitment"},
		Rows: [][]export.Cell{
			{export.StringCell("Fund I"), export.IntCell(100)},
			{export.StringCell("Fund II"), export.IntCell(200)},
		},
	}
}

// TestEncode_LibroParseable el libro generado debe ser XML válido con la
// estructura XMLSS: Workbook → Worksheet → Table → Row → Cell → Data.
func TestEncode_LibroParseable(t *testing.T) {
	enc := spreadsheet.NewSpreadsheetMLEncoder()

	out, err := enc.Encode(sampleDocument())
	require.NoError(t, err)
	require.NotEmpty(t, out)

	parsed := etree.NewDocument()
	require.NoError(t, parsed.ReadFromBytes(out), "la salida debe ser XML bien formado")

	root := parsed.Root()
	require.NotNil(t, root)
	assert.Equal(t, "Workbook", root.Tag)
	assert.Equal(t, "urn:schemas-microsoft-com:office:spreadsheet",
		root.SelectAttrValue("xmlns", ""))

	worksheet := root.SelectElement("Worksheet")
	require.NotNil(t, worksheet)
	assert.Equal(t, "Funds", worksheet.SelectAttrValue("ss:Name", ""))

	rows := worksheet.SelectElement("Table").SelectElements("Row")
	require.Len(t, rows, 3, "una fila de encabezado + dos de datos")
}

// TestEncode_DeclaracionMSO la instrucción mso-application es la que hace
// que Windows abra el .xls con Excel.
func TestEncode_DeclaracionMSO(t *testing.T) {
	enc := spreadsheet.NewSpreadsheetMLEncoder()

	out, err := enc.Encode(sampleDocument())
	require.NoError(t, err)

	assert.Contains(t, string(out), `<?mso-application progid="Excel.Sheet"?>`)
	assert.Contains(t, string(out), `<?xml version="1.0" encoding="UTF-8"?>`)
}

func TestEncode_EncabezadoEnNegrilla(t *testing.T) {
	enc := spreadsheet.NewSpreadsheetMLEncoder()

	out, err := enc.Encode(sampleDocument())
	require.NoError(t, err)

	parsed := etree.NewDocument()
	require.NoError(t, parsed.ReadFromBytes(out))

	style := parsed.FindElement("//Styles/Style")
	require.NotNil(t, style)
	assert.Equal(t, "header", style.SelectAttrValue("ss:ID", ""))
	assert.Equal(t, "1", style.FindElement("Font").SelectAttrValue("ss:Bold", ""))

	headerCells := parsed.FindElements("//Table/Row[1]/Cell")
	require.Len(t, headerCells, 2)
	for _, cell := range headerCells {
		assert.Equal(t, "header", cell.SelectAttrValue("ss:StyleID", ""))
	}
}

// TestEncode_TiposDeCelda las celdas numéricas van con ss:Type="Number" y
// el valor canónico sin comillas; las de texto con ss:Type="String".
func TestEncode_TiposDeCelda(t *testing.T) {
	enc := spreadsheet.NewSpreadsheetMLEncoder()

	out, err := enc.Encode(sampleDocument())
	require.NoError(t, err)

	parsed := etree.NewDocument()
	require.NoError(t, parsed.ReadFromBytes(out))

	dataCells := parsed.FindElements("//Table/Row[2]/Cell/Data")
	require.Len(t, dataCells, 2)

	assert.Equal(t, "String", dataCells[0].SelectAttrValue("ss:Type", ""))
	assert.Equal(t, "Fund I", dataCells[0].Text())
	assert.Equal(t, "Number", dataCells[1].SelectAttrValue("ss:Type", ""))
	assert.Equal(t, "100", dataCells[1].Text())
}

func TestEncode_TituloDelDocumento(t *testing.T) {
	enc := spreadsheet.NewSpreadsheetMLEncoder()

	out, err := enc.Encode(sampleDocument())
	require.NoError(t, err)

	parsed := etree.NewDocument()
	require.NoError(t, parsed.ReadFromBytes(out))

	title := parsed.FindElement("//DocumentProperties/Title")
	require.NotNil(t, title)
	assert.Equal(t, "Fund Performance", title.Text())
}

func TestEncode_HojaSinNombreUsaDefault(t *testing.T) {
	enc := spreadsheet.NewSpreadsheetMLEncoder()
	doc := sampleDocument()
	doc.Sheet = ""

	out, err := enc.Encode(doc)
	require.NoError(t, err)

	parsed := etree.NewDocument()
	require.NoError(t, parsed.ReadFromBytes(out))
	assert.Equal(t, "Sheet1", parsed.FindElement("//Worksheet").SelectAttrValue("ss:Name", ""))
}

// ── Documentos malformados ────────────────────────────────────────────────────

func TestEncode_ErrorSinColumnas(t *testing.T) {
	enc := spreadsheet.NewSpreadsheetMLEncoder()

	_, err := enc.Encode(export.TableDocument{Sheet: "Vacía"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGeneracionDoc)
}

func TestEncode_ErrorFilaIrregular(t *testing.T) {
	enc := spreadsheet.NewSpreadsheetMLEncoder()
	doc := sampleDocument()
	doc.Rows = append(doc.Rows, []export.Cell{export.StringCell("suelta")})

	_, err := enc.Encode(doc)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGeneracionDoc)
}
