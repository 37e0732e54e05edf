package export

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// CellKind distingue el tipo de dato de una celda exportada. El codificador
// lo usa para anotar el tipo en el formato de salida (texto vs número).
type CellKind int

const (
	CellString CellKind = iota
	CellNumber
)

// Cell es una celda tipada de la tabla. Value lleva la forma canónica en
// texto; para números es la representación decimal sin separadores.
type Cell struct {
	Kind  CellKind
	Value string
}

// StringCell construye una celda de texto.
func StringCell(s string) Cell {
	return Cell{Kind: CellString, Value: s}
}

// NumberCell construye una celda numérica a partir de un decimal.
func NumberCell(d decimal.Decimal) Cell {
	return Cell{Kind: CellNumber, Value: d.String()}
}

// IntCell construye una celda numérica a partir de un entero (años, conteos).
func IntCell(n int) Cell {
	return Cell{Kind: CellNumber, Value: strconv.Itoa(n)}
}

// TableDocument describe una tabla lista para exportar: título del libro,
// nombre de la hoja, encabezados y filas tipadas. El caso de uso arma el
// documento; cómo se serializa es asunto del adaptador.
type TableDocument struct {
	Title   string
	Sheet   string
	Columns []string
	Rows    [][]Cell
}

// TableEncoder define el puerto de salida para serializar tablas en un
// formato de hoja de cálculo. Siguiendo el principio de inversión de
// dependencias (DIP), la aplicación solo conoce este contrato, no el
// dialecto concreto que escribe el adaptador.
type TableEncoder interface {
	Encode(doc TableDocument) ([]byte, error)
}
