package projection

import "github.com/jhoicas/inventory-command/internal/domain/entity"

// MonthLabels etiquetas de mes distintas en orden de aparición (orden de la ventana).
func MonthLabels(cells []entity.ProjectionCell) []string {
	labels := []string{}
	seen := make(map[string]struct{})
	for _, c := range cells {
		if _, ok := seen[c.MonthLabel]; ok {
			continue
		}
		seen[c.MonthLabel] = struct{}{}
		labels = append(labels, c.MonthLabel)
	}
	return labels
}

// FilterByMonth celdas de un mes (pestaña mensual).
func FilterByMonth(cells []entity.ProjectionCell, label string) []entity.ProjectionCell {
	return filter(cells, func(c entity.ProjectionCell) bool { return c.MonthLabel == label })
}

// FilterByStatus celdas cuyo estado está en statuses.
func FilterByStatus(cells []entity.ProjectionCell, statuses ...entity.Status) []entity.ProjectionCell {
	want := make(map[entity.Status]struct{}, len(statuses))
	for _, s := range statuses {
		want[s] = struct{}{}
	}
	return filter(cells, func(c entity.ProjectionCell) bool {
		_, ok := want[c.Status]
		return ok
	})
}

// Board tablero de acción: todas las celdas que no están en GREEN.
func Board(cells []entity.ProjectionCell) []entity.ProjectionCell {
	return FilterByStatus(cells, entity.StatusRed, entity.StatusAmber)
}

// ItemSeries trayectoria completa de un SKU.
func ItemSeries(cells []entity.ProjectionCell, skuID string) []entity.ProjectionCell {
	return filter(cells, func(c entity.ProjectionCell) bool { return c.SKUID == skuID })
}

func filter(cells []entity.ProjectionCell, keep func(entity.ProjectionCell) bool) []entity.ProjectionCell {
	out := []entity.ProjectionCell{}
	for _, c := range cells {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
