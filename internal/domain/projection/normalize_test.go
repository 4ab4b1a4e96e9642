package projection_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-command/internal/domain/entity"
	"github.com/jhoicas/inventory-command/internal/domain/projection"
)

func TestParseDayFirst(t *testing.T) {
	cases := map[string]time.Time{
		"02/01/2025":          day(2025, time.January, 2),
		"2/1/2025":            day(2025, time.January, 2),
		"31-12-2024":          day(2024, time.December, 31),
		"5.3.2025":            day(2025, time.March, 5),
		"05/03/25":            day(2025, time.March, 5),
		"2025-01-02":          day(2025, time.January, 2),
		"2025-01-02T10:30:00": day(2025, time.January, 2),
		"02/01/2025 14:00":    day(2025, time.January, 2),
		"02/01/2025 2:00 PM":  day(2025, time.January, 2),
		"7 Feb 2025":          day(2025, time.February, 7),
		"7 february 2025":     day(2025, time.February, 7),
		"Feb 7, 2025":         day(2025, time.February, 7),
		"  09/10/2025  ":      day(2025, time.October, 9),
		"01/13/2025":          day(2025, time.January, 13), // día 13 imposible como mes: mes primero
	}
	for in, want := range cases {
		assert.Equal(t, want, projection.ParseDayFirst(in), "entrada %q", in)
	}
}

func TestParseDayFirst_Desconocidas(t *testing.T) {
	for _, in := range []string{"", "   ", "TBC", "31/02/2025", "2025-13-01", "13/13/2025", "next week"} {
		assert.True(t, projection.ParseDayFirst(in).IsZero(), "entrada %q debe quedar desconocida", in)
	}
}

func TestParseQuantity(t *testing.T) {
	d, ok := projection.ParseQuantity(" 12.5 ")
	assert.True(t, ok)
	assert.Equal(t, "12.5", d.String())

	d, ok = projection.ParseQuantity("-3")
	assert.True(t, ok)
	assert.Equal(t, "-3", d.String())

	for _, in := range []string{"", "n/a", "1,000", "12 units", "NaN"} {
		d, ok := projection.ParseQuantity(in)
		assert.False(t, ok, "entrada %q", in)
		assert.True(t, d.IsZero(), "entrada %q se fuerza a cero", in)
	}
}

func TestNormalize_CoercionYReporte(t *testing.T) {
	raw := &entity.RawTables{
		SKUs: []entity.RawRow{
			{"sku_id": " A1 ", "description": "Tornillo", "stock_on_hand": "10", "safety_threshold": "5"},
			{"sku_id": "B2", "description": "  ", "stock_on_hand": "basura", "safety_threshold": ""},
			{"sku_id": "", "description": "", "stock_on_hand": "", "safety_threshold": ""},
		},
		Inbound: []entity.RawRow{
			{"sku_id": "A1", "po_number": "PO-1", "qty": "5", "arrival_date": "03/01/2025"},
			{"sku_id": "A1", "po_number": "PO-2", "qty": "x", "arrival_date": "pronto"},
		},
		Outbound: []entity.RawRow{
			{"sku_id": "B2", "order_number": "SO-1", "qty": "2.5", "dispatch_date": ""},
		},
	}

	tables, rep := projection.Normalize(raw)

	require.Len(t, tables.SKUs, 2, "la fila totalmente vacía se descarta")
	assert.Equal(t, "A1", tables.SKUs[0].ID)
	assert.Equal(t, "Tornillo", tables.SKUs[0].Description)
	assert.Equal(t, "10", tables.SKUs[0].StockOnHand.String())
	assert.Equal(t, "B2", tables.SKUs[1].Description, "descripción vacía cae al id")
	assert.True(t, tables.SKUs[1].StockOnHand.IsZero())

	require.Len(t, tables.Inbound, 2)
	assert.Equal(t, day(2025, time.January, 3), tables.Inbound[0].ArrivalDate)
	assert.True(t, tables.Inbound[1].ArrivalDate.IsZero())
	assert.True(t, tables.Inbound[1].Quantity.IsZero())

	require.Len(t, tables.Outbound, 1)
	assert.Equal(t, "2.5", tables.Outbound[0].Quantity.String())
	assert.True(t, tables.Outbound[0].DispatchDate.IsZero())

	assert.Equal(t, projection.NormalizeReport{
		SKUs: 2, Inbound: 2, Outbound: 1,
		BlankRows: 1, CoercedValues: 2, UnknownDates: 1, MissingDates: 1,
	}, rep)
}

func TestNormalize_ColumnasFaltantes(t *testing.T) {
	raw := &entity.RawTables{SKUs: []entity.RawRow{{"sku_id": "A"}}}
	tables, _ := projection.Normalize(raw)
	require.Len(t, tables.SKUs, 1)
	assert.True(t, tables.SKUs[0].SafetyThreshold.IsZero())
	assert.NotNil(t, tables.Inbound)
	assert.NotNil(t, tables.Outbound)
}

func TestNormalize_Nil(t *testing.T) {
	tables, rep := projection.Normalize(nil)
	assert.True(t, tables.Empty())
	assert.Zero(t, rep)
}

// Extremo a extremo: filas crudas con ruido -> proyección sin errores.
func TestNormalizeYProyectar(t *testing.T) {
	raw := &entity.RawTables{
		SKUs:     []entity.RawRow{{"sku_id": "A", "stock_on_hand": "10", "safety_threshold": "5"}},
		Inbound:  []entity.RawRow{{"sku_id": "A", "qty": "5", "arrival_date": "03/01/2025"}},
		Outbound: []entity.RawRow{{"sku_id": "A", "qty": "8", "dispatch_date": "02/01/2025"}, {"sku_id": "A", "qty": "1000", "dispatch_date": "??"}},
	}
	tables, _ := projection.Normalize(raw)
	cells := projection.Project(tables.SKUs, tables.Inbound, tables.Outbound, testStart, 3)
	assert.Equal(t, []string{"10", "2", "7"}, stocks(cells))
}
