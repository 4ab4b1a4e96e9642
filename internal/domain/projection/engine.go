package projection

import (
	"time"

	"github.com/jhoicas/inventory-command/internal/domain/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Engine motor de proyección. Workers > 1 calcula los SKUs en paralelo;
// cada SKU escribe en su propio tramo del resultado, así el orden es el mismo que en secuencial.
type Engine struct {
	Workers int
}

// Project proyecta de forma secuencial. Ver Engine.Project.
func Project(
	skus []entity.SKU,
	inbound []entity.InboundEvent,
	outbound []entity.OutboundEvent,
	start time.Time,
	horizonDays int,
) []entity.ProjectionCell {
	return Engine{}.Project(skus, inbound, outbound, start, horizonDays)
}

// Project calcula la trayectoria de stock de cada SKU durante horizonDays días desde start.
//
// Por SKU:
//  1. saldo arrastrado = stock_on_hand + entradas anteriores a start − salidas anteriores a start
//  2. cada día d suma entradas(d) y resta salidas(d) sobre el acumulado del día anterior
//  3. estado, marcador y valor mostrado según el saldo del día
//
// Devuelve exactamente len(skus) × horizonDays celdas, en orden SKU y luego fecha.
// Horizonte <= 0 o sin SKUs devuelve una lista vacía. Eventos de SKUs que no están
// en la tabla de SKUs y eventos con fecha desconocida se ignoran.
func (e Engine) Project(
	skus []entity.SKU,
	inbound []entity.InboundEvent,
	outbound []entity.OutboundEvent,
	start time.Time,
	horizonDays int,
) []entity.ProjectionCell {
	if horizonDays <= 0 || len(skus) == 0 {
		return []entity.ProjectionCell{}
	}
	start = DateOf(start)

	idx := buildIndex(inbound, outbound, start, horizonDays)
	out := make([]entity.ProjectionCell, len(skus)*horizonDays)

	walk := func(i int) {
		sku := skus[i]
		walkSKU(sku, idx[sku.ID], start, out[i*horizonDays:(i+1)*horizonDays])
	}

	if e.Workers <= 1 || len(skus) == 1 {
		for i := range skus {
			walk(i)
		}
		return out
	}

	var g errgroup.Group
	g.SetLimit(e.Workers)
	for i := range skus {
		i := i
		g.Go(func() error {
			walk(i)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// skuEvents movimientos de un SKU ya repartidos: lo anterior a la ventana y cada día dentro de ella.
type skuEvents struct {
	pastIn  decimal.Decimal
	pastOut decimal.Decimal
	dayIn   map[int]decimal.Decimal // offset en días desde start
	dayOut  map[int]decimal.Decimal
}

func newSKUEvents() *skuEvents {
	return &skuEvents{
		dayIn:  make(map[int]decimal.Decimal),
		dayOut: make(map[int]decimal.Decimal),
	}
}

// buildIndex recorre cada evento una sola vez. Solo lectura durante el recorrido por SKU.
func buildIndex(inbound []entity.InboundEvent, outbound []entity.OutboundEvent, start time.Time, horizonDays int) map[string]*skuEvents {
	idx := make(map[string]*skuEvents)
	get := func(id string) *skuEvents {
		ev, ok := idx[id]
		if !ok {
			ev = newSKUEvents()
			idx[id] = ev
		}
		return ev
	}

	for _, in := range inbound {
		offset, ok := dayOffset(in.ArrivalDate, start)
		if !ok || offset >= horizonDays {
			continue
		}
		ev := get(in.SKUID)
		if offset < 0 {
			ev.pastIn = ev.pastIn.Add(in.Quantity)
		} else {
			ev.dayIn[offset] = ev.dayIn[offset].Add(in.Quantity)
		}
	}
	for _, o := range outbound {
		offset, ok := dayOffset(o.DispatchDate, start)
		if !ok || offset >= horizonDays {
			continue
		}
		ev := get(o.SKUID)
		if offset < 0 {
			ev.pastOut = ev.pastOut.Add(o.Quantity)
		} else {
			ev.dayOut[offset] = ev.dayOut[offset].Add(o.Quantity)
		}
	}
	return idx
}

// dayOffset días entre start y d; ok=false si la fecha es desconocida.
func dayOffset(d, start time.Time) (int, bool) {
	if d.IsZero() {
		return 0, false
	}
	d = DateOf(d)
	days := int(d.Sub(start).Hours() / 24)
	// Sub satura en ~292 años: una fecha lejana cae fuera de la ventana o en el pasado.
	return days, true
}

func walkSKU(sku entity.SKU, ev *skuEvents, start time.Time, dst []entity.ProjectionCell) {
	if ev == nil {
		ev = newSKUEvents()
	}
	running := sku.StockOnHand.Add(ev.pastIn).Sub(ev.pastOut)

	for i := range dst {
		d := start.AddDate(0, 0, i)
		in := ev.dayIn[i]
		out := ev.dayOut[i]
		running = running.Add(in).Sub(out)

		marker := MarkerFor(in, out)
		dst[i] = entity.ProjectionCell{
			SKUID:           sku.ID,
			Description:     sku.Description,
			Date:            d,
			MonthLabel:      d.Format(entity.MonthLabelLayout),
			Stock:           running,
			SafetyThreshold: sku.SafetyThreshold,
			Status:          Classify(running, sku.SafetyThreshold),
			Marker:          marker,
			Display:         Display(running, marker),
		}
	}
}

// Classify aplica la precedencia: RED si stock < 0; AMBER si stock < umbral; GREEN en otro caso.
func Classify(stock, safety decimal.Decimal) entity.Status {
	switch {
	case stock.IsNegative():
		return entity.StatusRed
	case stock.LessThan(safety):
		return entity.StatusAmber
	default:
		return entity.StatusGreen
	}
}

// MarkerFor marcador del día según las cantidades de entrada y salida.
func MarkerFor(in, out decimal.Decimal) entity.Marker {
	hasIn, hasOut := in.IsPositive(), out.IsPositive()
	switch {
	case hasIn && hasOut:
		return entity.MarkerBoth
	case hasIn:
		return entity.MarkerInbound
	case hasOut:
		return entity.MarkerOutbound
	default:
		return entity.MarkerNone
	}
}

// FormatStock entero si el valor es entero ("10"), decimal en otro caso ("2.5").
func FormatStock(d decimal.Decimal) string {
	if d.IsInteger() {
		return d.StringFixed(0)
	}
	return d.String()
}

// Display valor mostrado en la celda: stock formateado más el glifo del marcador si lo hay.
func Display(stock decimal.Decimal, m entity.Marker) string {
	s := FormatStock(stock)
	if g := m.Glyph(); g != "" {
		return s + " " + g
	}
	return s
}
