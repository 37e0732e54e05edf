// Package spreadsheet codifica tablas como libros SpreadsheetML (el XML de
// Excel 2003): un solo documento XML plano, sin zip ni estilos compartidos,
// que Excel, LibreOffice y Google Sheets abren directo.
package spreadsheet

import (
	"bytes"
	"fmt"

	"github.com/beevik/etree"

	"github.com/jhoicas/gp-dashboard-api/internal/application/export"
	"github.com/jhoicas/gp-dashboard-api/internal/domain"
)

const (
	nsSpreadsheet = "urn:schemas-microsoft-com:office:spreadsheet"
	nsOffice      = "urn:schemas-microsoft-com:office:office"
	nsExcel       = "urn:schemas-microsoft-com:office:excel"

	headerStyleID = "header"
)

// SpreadsheetMLEncoder implementa export.TableEncoder usando etree.
type SpreadsheetMLEncoder struct{}

// NewSpreadsheetMLEncoder crea el codificador.
func NewSpreadsheetMLEncoder() *SpreadsheetMLEncoder {
	return &SpreadsheetMLEncoder{}
}

// Encode serializa el documento como libro SpreadsheetML. Valida que el
// documento tenga columnas y que cada fila las cubra todas; un documento
// malformado envuelve domain.ErrGeneracionDoc.
func (e *SpreadsheetMLEncoder) Encode(doc export.TableDocument) ([]byte, error) {
	if len(doc.Columns) == 0 {
		return nil, fmt.Errorf("%w: documento sin columnas", domain.ErrGeneracionDoc)
	}
	for i, row := range doc.Rows {
		if len(row) != len(doc.Columns) {
			return nil, fmt.Errorf("%w: la fila %d tiene %d celdas y la tabla %d columnas",
				domain.ErrGeneracionDoc, i, len(row), len(doc.Columns))
		}
	}

	xmlDoc := etree.NewDocument()
	xmlDoc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	// Le dice a Windows que el .xls es de Excel aunque sea XML plano.
	xmlDoc.CreateProcInst("mso-application", `progid="Excel.Sheet"`)

	workbook := xmlDoc.CreateElement("Workbook")
	workbook.CreateAttr("xmlns", nsSpreadsheet)
	workbook.CreateAttr("xmlns:o", nsOffice)
	workbook.CreateAttr("xmlns:x", nsExcel)
	workbook.CreateAttr("xmlns:ss", nsSpreadsheet)

	if doc.Title != "" {
		props := workbook.CreateElement("DocumentProperties")
		props.CreateAttr("xmlns", nsOffice)
		props.CreateElement("Title").SetText(doc.Title)
	}

	// Un único estilo: encabezados en negrilla.
	styles := workbook.CreateElement("Styles")
	header := styles.CreateElement("Style")
	header.CreateAttr("ss:ID", headerStyleID)
	headerFont := header.CreateElement("Font")
	headerFont.CreateAttr("ss:Bold", "1")

	sheetName := doc.Sheet
	if sheetName == "" {
		sheetName = "Sheet1"
	}
	worksheet := workbook.CreateElement("Worksheet")
	worksheet.CreateAttr("ss:Name", sheetName)
	table := worksheet.CreateElement("Table")

	headerRow := table.CreateElement("Row")
	for _, col := range doc.Columns {
		cell := headerRow.CreateElement("Cell")
		cell.CreateAttr("ss:StyleID", headerStyleID)
		writeData(cell, "String", col)
	}

	for _, row := range doc.Rows {
		tableRow := table.CreateElement("Row")
		for _, c := range row {
			cell := tableRow.CreateElement("Cell")
			switch c.Kind {
			case export.CellNumber:
				writeData(cell, "Number", c.Value)
			default:
				writeData(cell, "String", c.Value)
			}
		}
	}

	xmlDoc.Indent(2)
	var out bytes.Buffer
	if _, err := xmlDoc.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("%w: serializando el libro: %v", domain.ErrGeneracionDoc, err)
	}
	return out.Bytes(), nil
}

func writeData(cell *etree.Element, ssType, value string) {
	data := cell.CreateElement("Data")
	data.CreateAttr("ss:Type", ssType)
	data.SetText(value)
}

var _ export.TableEncoder = (*SpreadsheetMLEncoder)(nil)
