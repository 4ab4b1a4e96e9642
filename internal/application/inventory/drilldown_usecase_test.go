package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-command/internal/application/dto"
	"github.com/jhoicas/inventory-command/internal/application/inventory"
	"github.com/jhoicas/inventory-command/internal/domain"
)

func newDrillDownUC() *inventory.DrillDownUseCase {
	uc, loader := newProjectionUC(rawFixture(), 1)
	return inventory.NewDrillDownUseCase(uc, loader)
}

func TestDrillDown_Item(t *testing.T) {
	uc := newDrillDownUC()
	res, err := uc.Item(context.Background(), "A", dto.ProjectionQuery{})
	require.NoError(t, err)

	assert.Equal(t, "Tornillo", res.Description)
	assert.Equal(t, "5", res.SafetyThreshold.String())
	require.Len(t, res.Series, 3)
	assert.Equal(t, "2 ▼", res.Series[1].Display)

	require.Len(t, res.Inbound, 1)
	assert.Equal(t, "PO-1", res.Inbound[0].Number)
	assert.Equal(t, "03-01-2025", res.Inbound[0].Date)
	require.Len(t, res.Outbound, 2, "incluye salidas fuera de la ventana")
	assert.Equal(t, "10-01-2025", res.Outbound[1].Date)
}

func TestDrillDown_ItemInexistente(t *testing.T) {
	uc := newDrillDownUC()
	_, err := uc.Item(context.Background(), "nope", dto.ProjectionQuery{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Item(context.Background(), " ", dto.ProjectionQuery{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDrillDown_OrdenesDeCompra(t *testing.T) {
	uc := newDrillDownUC()
	list, err := uc.PurchaseOrders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"PO-1", "PO-2"}, list.Numbers)
	assert.Equal(t, 2, list.Total)

	po, err := uc.PurchaseOrder(context.Background(), "PO-1")
	require.NoError(t, err)
	require.Len(t, po.Lines, 2)
	assert.Equal(t, "Tornillo", po.Lines[0].Description)
	assert.Equal(t, "Z", po.Lines[1].SKUID)
	assert.Empty(t, po.Lines[1].Description, "SKU sin maestro: descripción vacía")
	assert.Empty(t, po.Lines[1].Date, "fecha desconocida")

	_, err = uc.PurchaseOrder(context.Background(), "PO-9")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDrillDown_PedidosDeCliente(t *testing.T) {
	uc := newDrillDownUC()
	list, err := uc.Orders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"SO-1"}, list.Numbers)

	so, err := uc.Order(context.Background(), "SO-1")
	require.NoError(t, err)
	require.Len(t, so.Lines, 2)
	assert.Equal(t, "8", so.Lines[0].Qty.String())
	assert.Equal(t, "02-01-2025", so.Lines[0].Date)

	_, err = uc.Order(context.Background(), "SO-9")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
