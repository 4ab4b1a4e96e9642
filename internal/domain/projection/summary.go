package projection

import (
	"strings"
	"time"

	"github.com/jhoicas/inventory-command/internal/domain/entity"
)

// SummaryKey cómo se agrupan las celdas en el resumen mensual.
type SummaryKey int

const (
	// SummaryByID agrupa por identificador de SKU y muestra la descripción.
	SummaryByID SummaryKey = iota
	// SummaryByDescription agrupa por descripción: dos SKUs con la misma descripción se funden en una fila.
	SummaryByDescription
)

// ParseSummaryKey "description" -> SummaryByDescription; cualquier otro valor -> SummaryByID.
func ParseSummaryKey(s string) SummaryKey {
	if strings.EqualFold(strings.TrimSpace(s), "description") {
		return SummaryByDescription
	}
	return SummaryByID
}

type summaryGroup struct {
	key   string
	month time.Time
}

// Summarize resume las celdas por (SKU, mes calendario): stock mínimo y peor estado (RED > AMBER > GREEN).
// El orden de salida es el de primera aparición del grupo en la secuencia de celdas.
func Summarize(cells []entity.ProjectionCell, key SummaryKey) []entity.MonthSummary {
	out := []entity.MonthSummary{}
	index := make(map[summaryGroup]int)

	for _, c := range cells {
		g := summaryGroup{key: c.SKUID, month: MonthOf(c.Date)}
		if key == SummaryByDescription {
			g.key = c.Description
		}

		i, ok := index[g]
		if !ok {
			index[g] = len(out)
			out = append(out, entity.MonthSummary{
				SKUID:       c.SKUID,
				Description: c.Description,
				Month:       g.month,
				MonthLabel:  c.MonthLabel,
				MinStock:    c.Stock,
				Status:      c.Status,
			})
			continue
		}

		s := &out[i]
		if c.Stock.LessThan(s.MinStock) {
			s.MinStock = c.Stock
		}
		s.Status = s.Status.Worse(c.Status)
	}

	for i := range out {
		out[i].Display = FormatStock(out[i].MinStock)
	}
	return out
}

// MonthOf primer día del mes de t (UTC).
func MonthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
