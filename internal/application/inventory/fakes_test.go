package inventory_test

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/inventory-command/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de los puertos
// ──────────────────────────────────────────────────────────────────────────────

type fakeSource struct {
	tables *entity.RawTables
	err    error
	calls  int
}

func (f *fakeSource) LoadTables(_ context.Context) (*entity.RawTables, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.tables, nil
}

type fakeCache struct {
	mu      sync.Mutex
	entry   *entity.RawTables
	getErr   error
	clearErr error
	cleared  int
}

func (f *fakeCache) Get(_ context.Context) (*entity.RawTables, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	return f.entry, f.entry != nil, nil
}

func (f *fakeCache) Set(_ context.Context, t *entity.RawTables) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entry = t
	return nil
}

func (f *fakeCache) Clear(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.clearErr != nil {
		return f.clearErr
	}
	f.entry = nil
	f.cleared++
	return nil
}

var errBoom = errors.New("boom")

// rawFixture: A con salida el 02/01 y entrada el 03/01; B negativo; PO-1 con un SKU inexistente.
func rawFixture() *entity.RawTables {
	return &entity.RawTables{
		SKUs: []entity.RawRow{
			{"sku_id": "A", "description": "Tornillo", "stock_on_hand": "10", "safety_threshold": "5"},
			{"sku_id": "B", "description": "Tuerca", "stock_on_hand": "-3", "safety_threshold": "0"},
		},
		Inbound: []entity.RawRow{
			{"sku_id": "A", "po_number": "PO-1", "qty": "5", "arrival_date": "03/01/2025"},
			{"sku_id": "Z", "po_number": "PO-1", "qty": "1", "arrival_date": ""},
			{"sku_id": "B", "po_number": "PO-2", "qty": "4", "arrival_date": "20/02/2025"},
		},
		Outbound: []entity.RawRow{
			{"sku_id": "A", "order_number": "SO-1", "qty": "8", "dispatch_date": "02/01/2025"},
			{"sku_id": "A", "order_number": "SO-1", "qty": "1", "dispatch_date": "10/01/2025"},
		},
	}
}
