// Package projection contiene el núcleo del dominio: normalización de las tablas
// crudas, el motor de proyección día a día, el agregado mensual y las vistas
// derivadas (tablero de acción, pestañas por mes, serie por ítem).
//
// Todo es puro: las mismas entradas producen siempre la misma salida y nada
// retorna error; la tolerancia a datos malos vive en Normalize.
package projection

import (
	"strings"
	"time"

	"github.com/jhoicas/inventory-command/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// NormalizeReport contadores de calidad de datos de una normalización.
type NormalizeReport struct {
	SKUs          int
	Inbound       int
	Outbound      int
	BlankRows     int // filas totalmente vacías descartadas
	CoercedValues int // celdas numéricas no vacías que no se pudieron leer (quedan en 0)
	UnknownDates  int // fechas no vacías ilegibles (quedan como desconocidas)
	MissingDates  int // fechas vacías
}

// Normalize convierte las tablas crudas a tablas tipadas. Nunca falla:
// números ilegibles quedan en cero y fechas ilegibles quedan como desconocidas (time.Time cero).
func Normalize(raw *entity.RawTables) (entity.Tables, NormalizeReport) {
	var rep NormalizeReport
	out := entity.Tables{
		SKUs:     []entity.SKU{},
		Inbound:  []entity.InboundEvent{},
		Outbound: []entity.OutboundEvent{},
	}
	if raw == nil {
		return out, rep
	}

	for _, row := range raw.SKUs {
		if isBlankRow(row) {
			rep.BlankRows++
			continue
		}
		id := strings.TrimSpace(row[entity.ColSKUID])
		desc := strings.TrimSpace(row[entity.ColDescription])
		if desc == "" {
			desc = id
		}
		out.SKUs = append(out.SKUs, entity.SKU{
			ID:              id,
			Description:     desc,
			StockOnHand:     rep.quantity(row[entity.ColStockOnHand]),
			SafetyThreshold: rep.quantity(row[entity.ColSafetyThreshold]),
		})
	}

	for _, row := range raw.Inbound {
		if isBlankRow(row) {
			rep.BlankRows++
			continue
		}
		out.Inbound = append(out.Inbound, entity.InboundEvent{
			SKUID:       strings.TrimSpace(row[entity.ColSKUID]),
			PONumber:    strings.TrimSpace(row[entity.ColPONumber]),
			Quantity:    rep.quantity(row[entity.ColQty]),
			ArrivalDate: rep.date(row[entity.ColArrivalDate]),
		})
	}

	for _, row := range raw.Outbound {
		if isBlankRow(row) {
			rep.BlankRows++
			continue
		}
		out.Outbound = append(out.Outbound, entity.OutboundEvent{
			SKUID:        strings.TrimSpace(row[entity.ColSKUID]),
			OrderNumber:  strings.TrimSpace(row[entity.ColOrderNumber]),
			Quantity:     rep.quantity(row[entity.ColQty]),
			DispatchDate: rep.date(row[entity.ColDispatchDate]),
		})
	}

	rep.SKUs, rep.Inbound, rep.Outbound = len(out.SKUs), len(out.Inbound), len(out.Outbound)
	return out, rep
}

func (r *NormalizeReport) quantity(s string) decimal.Decimal {
	d, ok := ParseQuantity(s)
	if !ok && strings.TrimSpace(s) != "" {
		r.CoercedValues++
	}
	return d
}

func (r *NormalizeReport) date(s string) time.Time {
	if strings.TrimSpace(s) == "" {
		r.MissingDates++
		return time.Time{}
	}
	d := ParseDayFirst(s)
	if d.IsZero() {
		r.UnknownDates++
	}
	return d
}

func isBlankRow(row entity.RawRow) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// ParseQuantity lee un número; vacío o ilegible devuelve cero y ok=false.
func ParseQuantity(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Formatos aceptados tras unificar separadores a "/" (día primero).
var dayFirstLayouts = []string{
	"2/1/2006",
	"2/1/06",
	"2/Jan/2006",
	"2/January/2006",
	"2/Jan/06",
	"Jan/2/2006",
	"January/2/2006",
}

// Si el día primero no es válido (p.ej. 01/13/2025) se reintenta mes primero.
var monthFirstLayouts = []string{
	"1/2/2006",
	"1/2/06",
}

// ParseDayFirst interpreta una fecha con la convención día-mes-año.
// Acepta separadores "/", "-", "." o espacio, años de 2 o 4 dígitos, nombres de mes
// en inglés, sufijo de hora y la forma ISO año-mes-día. Devuelve la fecha a medianoche UTC
// o time.Time cero si no se puede leer.
func ParseDayFirst(s string) time.Time {
	s = stripTime(strings.TrimSpace(s))
	if s == "" {
		return time.Time{}
	}
	s = unifySeparators(s)

	if yearFirst(s) {
		if t, err := time.Parse("2006/1/2", s); err == nil {
			return DateOf(t)
		}
		return time.Time{}
	}
	for _, layout := range dayFirstLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t)
		}
	}
	for _, layout := range monthFirstLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t)
		}
	}
	return time.Time{}
}

// stripTime quita un sufijo de hora: "2025-01-02T10:00:00" o "02/01/2025 10:00".
func stripTime(s string) string {
	if len(s) > 10 && s[10] == 'T' {
		return s[:10]
	}
	fields := strings.Fields(s)
	for len(fields) > 1 {
		last := strings.ToUpper(fields[len(fields)-1])
		if strings.Contains(last, ":") || last == "AM" || last == "PM" {
			fields = fields[:len(fields)-1]
			continue
		}
		break
	}
	return strings.Join(fields, " ")
}

func unifySeparators(s string) string {
	s = strings.NewReplacer("-", "/", ".", "/", ",", " ").Replace(s)
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "/", " ")), "/")
}

func yearFirst(s string) bool {
	if len(s) < 5 || s[4] != '/' {
		return false
	}
	for _, c := range s[:4] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// DateOf trunca al día calendario en UTC. La fecha cero se conserva.
func DateOf(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
