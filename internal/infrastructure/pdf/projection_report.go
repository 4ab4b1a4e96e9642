// Package pdf genera el informe de proyección de inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título  │  Ventana (inicio + días) + generado       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN MENSUAL: SKU | mes 1 | mes 2 | ... (bandas color)  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLERO DE ACCIÓN: Fecha | SKU | Descripción | Stock | Est. │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appinventory "github.com/jhoicas/inventory-command/internal/application/inventory"
	"github.com/jhoicas/inventory-command/internal/application/presenter"
	"github.com/jhoicas/inventory-command/internal/domain/entity"
	"github.com/jhoicas/inventory-command/internal/domain/projection"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// monthsPerBlock meses por bloque del resumen: 4 columnas de etiqueta + 2 por mes = 12.
const monthsPerBlock = 4

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appinventory.ReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa inventory.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateProjectionReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateProjectionReport(_ context.Context, data appinventory.ReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(nonEmpty(data.Title, "Proyección de inventario"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionRow("RESUMEN MENSUAL (stock mínimo y peor estado)"))
	m.AddRows(summaryRows(data.Summary)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionRow(fmt.Sprintf("TABLERO DE ACCIÓN (%d celdas en RED o AMBER)", len(data.Board))))
	m.AddRows(boardRows(data.Board)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y ventana + fecha de generación (der).
func headerRow(data appinventory.ReportData) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(nonEmpty(data.Title, "Proyección de inventario"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("Desde %s · %d días", data.Start.Format("02/01/2006"), data.Days), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
			}),
			text.New("Generado: "+data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func sectionRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
	))
}

// summaryRows: la matriz mensual partida en bloques de monthsPerBlock columnas.
func summaryRows(m presenter.Matrix) []core.Row {
	if len(m.Rows) == 0 {
		return []core.Row{emptyRow("Sin SKUs en la ventana.")}
	}
	var rows []core.Row
	for start := 0; start < len(m.Columns); start += monthsPerBlock {
		end := min(start+monthsPerBlock, len(m.Columns))

		header := []core.Col{headerCol("SKU", 4, align.Left)}
		for _, label := range m.Columns[start:end] {
			header = append(header, headerCol(label, 2, align.Center))
		}
		rows = append(rows, row.New(7).Add(header...).WithStyle(&props.Cell{BackgroundColor: colorPrimary}))

		for _, r := range m.Rows {
			cols := []core.Col{col.New(4).Add(text.New(r.Label, props.Text{Size: 8, Top: 1, Left: 1}))}
			for _, c := range r.Cells[start:end] {
				cols = append(cols, bandCol(c, 2))
			}
			rows = append(rows, row.New(6).Add(cols...))
		}
		rows = append(rows, row.New(3))
	}
	return rows
}

// boardRows: una fila por celda no verde, en orden SKU y fecha.
func boardRows(board []entity.ProjectionCell) []core.Row {
	if len(board) == 0 {
		return []core.Row{emptyRow("Ningún SKU bajo el umbral de seguridad en la ventana.")}
	}
	rows := []core.Row{
		row.New(7).Add(
			headerCol("Fecha", 2, align.Left),
			headerCol("SKU", 2, align.Left),
			headerCol("Descripción", 4, align.Left),
			headerCol("Stock", 2, align.Right),
			headerCol("Estado", 2, align.Center),
		).WithStyle(&props.Cell{BackgroundColor: colorPrimary}),
	}
	for _, c := range board {
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(c.Date.Format("02-01-2006"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(c.SKUID, props.Text{Size: 8, Top: 1})),
			col.New(4).Add(text.New(c.Description, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(projection.FormatStock(c.Stock), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
			bandCol(presenter.Cell{Display: string(c.Status), Status: c.Status, Band: presenter.BandFor(c.Status)}, 2),
		))
	}
	return rows
}

func headerCol(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorWhite, Top: 1.5, Left: 1, Right: 1,
	}))
}

// bandCol celda con el fondo y el color de texto de la banda de estado.
func bandCol(c presenter.Cell, size int) core.Col {
	return col.New(size).Add(text.New(c.Display, props.Text{
		Size: 8, Align: align.Center, Top: 1, Color: hexColor(c.Band.Foreground),
	})).WithStyle(&props.Cell{BackgroundColor: hexColor(c.Band.Background)})
}

func emptyRow(msg string) core.Row {
	return row.New(8).Add(col.New(12).Add(text.New(msg, props.Text{Size: 8, Top: 2, Color: colorGray})))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// hexColor "#rrggbb" -> props.Color; nil si el valor no es válido.
func hexColor(s string) *props.Color {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return nil
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil
	}
	return &props.Color{Red: int(v >> 16 & 0xff), Green: int(v >> 8 & 0xff), Blue: int(v & 0xff)}
}
