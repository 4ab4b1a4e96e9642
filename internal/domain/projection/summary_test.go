package projection_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-command/internal/domain/entity"
	"github.com/jhoicas/inventory-command/internal/domain/projection"
)

func TestSummarize_MinimoYPeorEstadoPorMes(t *testing.T) {
	start := day(2025, time.January, 30)
	cells := projection.Project(
		[]entity.SKU{sku("A", "10", "5")},
		nil,
		[]entity.OutboundEvent{
			out("A", "7", day(2025, time.January, 31)), // 3 -> AMBER en enero
			out("A", "5", day(2025, time.February, 1)), // -2 -> RED en febrero
		},
		start, 3,
	)

	sums := projection.Summarize(cells, projection.SummaryByID)
	require.Len(t, sums, 2)

	assert.Equal(t, "January 2025", sums[0].MonthLabel)
	assert.Equal(t, day(2025, time.January, 1), sums[0].Month)
	assert.Equal(t, "3", sums[0].MinStock.String())
	assert.Equal(t, entity.StatusAmber, sums[0].Status)
	assert.Equal(t, "3", sums[0].Display)

	assert.Equal(t, "February 2025", sums[1].MonthLabel)
	assert.Equal(t, "-2", sums[1].MinStock.String())
	assert.Equal(t, entity.StatusRed, sums[1].Status)
}

// Propiedad: estado = peor estado de sus celdas; mínimo = mínimo aritmético.
func TestSummarize_Propiedades(t *testing.T) {
	skus, ins, outs := sampleInputs()
	skus = skus[:3] // sin el SKU duplicado
	cells := projection.Project(skus, ins, outs, testStart, 75)
	sums := projection.Summarize(cells, projection.SummaryByID)

	for _, s := range sums {
		var group []entity.ProjectionCell
		for _, c := range cells {
			if c.SKUID == s.SKUID && c.MonthLabel == s.MonthLabel {
				group = append(group, c)
			}
		}
		require.NotEmpty(t, group)

		worst := entity.StatusGreen
		min := group[0].Stock
		for _, c := range group {
			worst = worst.Worse(c.Status)
			if c.Stock.LessThan(min) {
				min = c.Stock
			}
		}
		assert.Equal(t, worst, s.Status, "%s %s", s.SKUID, s.MonthLabel)
		assert.True(t, min.Equal(s.MinStock), "%s %s", s.SKUID, s.MonthLabel)
	}
	assert.Len(t, sums, 3*3, "75 días desde el 1 de enero tocan 3 meses")
}

func TestSummarize_ClavePorDescripcionFundeSKUs(t *testing.T) {
	a := entity.SKU{ID: "A", Description: "Caja", StockOnHand: dec("10"), SafetyThreshold: dec("0")}
	b := entity.SKU{ID: "B", Description: "Caja", StockOnHand: dec("-1"), SafetyThreshold: dec("0")}
	cells := projection.Project([]entity.SKU{a, b}, nil, nil, testStart, 2)

	byID := projection.Summarize(cells, projection.SummaryByID)
	require.Len(t, byID, 2)
	assert.Equal(t, entity.StatusGreen, byID[0].Status)
	assert.Equal(t, entity.StatusRed, byID[1].Status)

	byDesc := projection.Summarize(cells, projection.SummaryByDescription)
	require.Len(t, byDesc, 1)
	assert.Equal(t, "Caja", byDesc[0].Description)
	assert.Equal(t, "-1", byDesc[0].MinStock.String())
	assert.Equal(t, entity.StatusRed, byDesc[0].Status)
}

func TestSummarize_Vacio(t *testing.T) {
	sums := projection.Summarize(nil, projection.SummaryByID)
	assert.NotNil(t, sums)
	assert.Empty(t, sums)
}

func TestParseSummaryKey(t *testing.T) {
	assert.Equal(t, projection.SummaryByDescription, projection.ParseSummaryKey(" Description "))
	assert.Equal(t, projection.SummaryByID, projection.ParseSummaryKey("id"))
	assert.Equal(t, projection.SummaryByID, projection.ParseSummaryKey(""))
}

func TestStatus_Worse(t *testing.T) {
	assert.Equal(t, entity.StatusRed, entity.StatusAmber.Worse(entity.StatusRed))
	assert.Equal(t, entity.StatusRed, entity.StatusRed.Worse(entity.StatusGreen))
	assert.Equal(t, entity.StatusAmber, entity.StatusGreen.Worse(entity.StatusAmber))
	assert.Equal(t, entity.StatusGreen, entity.StatusGreen.Worse(entity.StatusGreen))
}
