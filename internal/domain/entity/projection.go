package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status banda de salud del stock proyectado.
type Status string

const (
	StatusGreen Status = "GREEN" // sano
	StatusAmber Status = "AMBER" // bajo el umbral de seguridad pero no negativo
	StatusRed   Status = "RED"   // negativo: quiebre
)

// Severity orden de gravedad: RED > AMBER > GREEN.
func (s Status) Severity() int {
	switch s {
	case StatusRed:
		return 2
	case StatusAmber:
		return 1
	default:
		return 0
	}
}

// Worse devuelve el peor de los dos estados.
func (s Status) Worse(o Status) Status {
	if o.Severity() > s.Severity() {
		return o
	}
	return s
}

// Marker indica si el día tuvo entradas, salidas, ambas o ninguna.
type Marker string

const (
	MarkerNone     Marker = "NONE"
	MarkerInbound  Marker = "IN"
	MarkerOutbound Marker = "OUT"
	MarkerBoth     Marker = "BOTH"
)

// Glyph símbolo que se agrega al valor mostrado.
func (m Marker) Glyph() string {
	switch m {
	case MarkerInbound:
		return "▲"
	case MarkerOutbound:
		return "▼"
	case MarkerBoth:
		return "▲▼"
	default:
		return ""
	}
}

// MonthLabelLayout formato de la etiqueta de mes ("January 2025").
const MonthLabelLayout = "January 2006"

// ProjectionCell una celda (SKU, día) de la proyección.
type ProjectionCell struct {
	SKUID           string
	Description     string
	Date            time.Time
	MonthLabel      string
	Stock           decimal.Decimal
	SafetyThreshold decimal.Decimal
	Status          Status
	Marker          Marker
	Display         string
}

// MonthSummary resumen por (SKU, mes): stock mínimo y peor estado.
type MonthSummary struct {
	SKUID       string
	Description string
	Month       time.Time // primer día del mes
	MonthLabel  string
	MinStock    decimal.Decimal
	Status      Status
	Display     string
}
