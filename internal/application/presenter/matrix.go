// Package presenter convierte la salida del motor en matrices listas para pintar:
// filas = SKU, columnas = día o mes, cada celda con su valor mostrado y su banda de color.
package presenter

import (
	"slices"
	"time"

	"github.com/jhoicas/inventory-command/internal/domain/entity"
)

// DayColumnLayout etiqueta de columna de la vista diaria ("05-01").
const DayColumnLayout = "02-01"

// Band colores de fondo y texto de una celda.
type Band struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`
}

var bands = map[entity.Status]Band{
	entity.StatusRed:   {Background: "#ffcccc", Foreground: "#990000"},
	entity.StatusAmber: {Background: "#fff4cc", Foreground: "#665500"},
	entity.StatusGreen: {Background: "#e6ffcc", Foreground: "#004d00"},
}

// BandFor banda de color según el estado. Solo depende de la etiqueta, nunca del texto mostrado.
func BandFor(s entity.Status) Band {
	if b, ok := bands[s]; ok {
		return b
	}
	return Band{}
}

// Cell celda de la matriz. Status vacío = sin dato para esa columna.
type Cell struct {
	Display string        `json:"display"`
	Status  entity.Status `json:"status"`
	Band    Band          `json:"band"`
}

// Row una fila por SKU (o por descripción en el resumen agrupado por descripción).
type Row struct {
	SKUID string `json:"sku_id"`
	Label string `json:"label"`
	Cells []Cell `json:"cells"`
}

// Matrix tabla pivote: Rows[i].Cells[j] corresponde a Columns[j].
type Matrix struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

func newCell(display string, s entity.Status) Cell {
	return Cell{Display: display, Status: s, Band: BandFor(s)}
}

// DailyMatrix pivota las celdas diarias: una fila por aparición de SKU en orden de entrada, columnas "dd-mm" en orden de fecha.
func DailyMatrix(cells []entity.ProjectionCell) Matrix {
	m := Matrix{Columns: []string{}, Rows: []Row{}}

	colIdx := make(map[time.Time]int)
	dates := []time.Time{}
	for _, c := range cells {
		if _, ok := colIdx[c.Date]; ok {
			continue
		}
		colIdx[c.Date] = -1
		dates = append(dates, c.Date)
	}
	slices.SortFunc(dates, func(a, b time.Time) int { return a.Compare(b) })
	for i, d := range dates {
		colIdx[d] = i
		m.Columns = append(m.Columns, d.Format(DayColumnLayout))
	}

	// Las celdas llegan en orden SKU y luego fecha. Cada tramo consecutivo del mismo SKU es una fila,
	// así un sku_id repetido en la tabla de SKUs da dos filas en lugar de pisar la primera.
	r := -1
	for _, c := range cells {
		j := colIdx[c.Date]
		if r < 0 || m.Rows[r].SKUID != c.SKUID || m.Rows[r].Cells[j].Status != "" {
			m.Rows = append(m.Rows, Row{SKUID: c.SKUID, Label: c.Description, Cells: make([]Cell, len(dates))})
			r = len(m.Rows) - 1
		}
		m.Rows[r].Cells[j] = newCell(c.Display, c.Status)
	}
	return m
}

// SummaryMatrix pivota los resúmenes mensuales. monthOrder fija el orden de columnas (orden de la ventana);
// vacío = orden de aparición en summaries.
func SummaryMatrix(summaries []entity.MonthSummary, monthOrder []string) Matrix {
	if len(monthOrder) == 0 {
		seen := make(map[string]struct{})
		for _, s := range summaries {
			if _, ok := seen[s.MonthLabel]; !ok {
				seen[s.MonthLabel] = struct{}{}
				monthOrder = append(monthOrder, s.MonthLabel)
			}
		}
	}
	m := Matrix{Columns: append([]string{}, monthOrder...), Rows: []Row{}}
	colIdx := make(map[string]int, len(monthOrder))
	for i, label := range monthOrder {
		colIdx[label] = i
	}

	type rowKey struct{ id, label string }
	rowIdx := make(map[rowKey]int)
	for _, s := range summaries {
		j, ok := colIdx[s.MonthLabel]
		if !ok {
			continue
		}
		k := rowKey{s.SKUID, s.Description}
		r, ok := rowIdx[k]
		if !ok {
			r = len(m.Rows)
			rowIdx[k] = r
			m.Rows = append(m.Rows, Row{SKUID: s.SKUID, Label: s.Description, Cells: make([]Cell, len(monthOrder))})
		}
		m.Rows[r].Cells[j] = newCell(s.Display, s.Status)
	}
	return m
}
