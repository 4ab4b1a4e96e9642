package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-command/internal/domain"
	"github.com/jhoicas/inventory-command/internal/domain/entity"
	"github.com/jhoicas/inventory-command/internal/domain/repository"
)

var _ repository.SourceRepository = (*SourceRepo)(nil)

const (
	selectSKUs = `
		SELECT sku_id, description, stock_on_hand, safety_threshold
		FROM db_skus ORDER BY row_no`
	selectInbound = `
		SELECT sku_id, po_number, qty, arrival_date
		FROM db_inbound ORDER BY row_no`
	selectOutbound = `
		SELECT sku_id, order_number, qty, dispatch_date
		FROM db_outbound ORDER BY row_no`
)

// SourceRepo implementación de SourceRepository sobre PostgreSQL.
// Las columnas llegan al normalizador como texto, igual que desde CSV.
type SourceRepo struct {
	tx *TxRunner
}

// NewSourceRepository construye el adaptador.
func NewSourceRepository(pool *pgxpool.Pool) *SourceRepo {
	return &SourceRepo{tx: NewTxRunner(pool)}
}

// LoadTables lee las tres tablas en una misma transacción de lectura.
func (r *SourceRepo) LoadTables(ctx context.Context) (*entity.RawTables, error) {
	var out entity.RawTables
	err := r.tx.ReadSnapshot(ctx, func(q Querier) error {
		var err error
		if out.SKUs, err = loadSKUs(ctx, q); err != nil {
			return fmt.Errorf("db_skus: %w", err)
		}
		if out.Inbound, err = loadInbound(ctx, q); err != nil {
			return fmt.Errorf("db_inbound: %w", err)
		}
		if out.Outbound, err = loadOutbound(ctx, q); err != nil {
			return fmt.Errorf("db_outbound: %w", err)
		}
		return nil
	})
	if err != nil {
		if isUndefinedTable(err) {
			return nil, fmt.Errorf("%w: faltan tablas de origen (aplicar migraciones): %v", domain.ErrDataSource, err)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrDataSource, err)
	}
	return &out, nil
}

func loadSKUs(ctx context.Context, q Querier) ([]entity.RawRow, error) {
	rows, err := q.Query(ctx, selectSKUs)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.RawRow, error) {
		var (
			id, desc       *string
			onHand, safety decimal.NullDecimal
		)
		if err := row.Scan(&id, &desc, &onHand, &safety); err != nil {
			return nil, err
		}
		return SKURow(id, desc, onHand, safety), nil
	})
}

func loadInbound(ctx context.Context, q Querier) ([]entity.RawRow, error) {
	rows, err := q.Query(ctx, selectInbound)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.RawRow, error) {
		var (
			id, po *string
			qty    decimal.NullDecimal
			at     *time.Time
		)
		if err := row.Scan(&id, &po, &qty, &at); err != nil {
			return nil, err
		}
		return EventRow(entity.ColPONumber, entity.ColArrivalDate, id, po, qty, at), nil
	})
}

func loadOutbound(ctx context.Context, q Querier) ([]entity.RawRow, error) {
	rows, err := q.Query(ctx, selectOutbound)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.RawRow, error) {
		var (
			id, order *string
			qty       decimal.NullDecimal
			at        *time.Time
		)
		if err := row.Scan(&id, &order, &qty, &at); err != nil {
			return nil, err
		}
		return EventRow(entity.ColOrderNumber, entity.ColDispatchDate, id, order, qty, at), nil
	})
}

// SKURow arma la fila cruda de db_skus; NULL queda como celda vacía.
func SKURow(id, desc *string, onHand, safety decimal.NullDecimal) entity.RawRow {
	return entity.RawRow{
		entity.ColSKUID:           text(id),
		entity.ColDescription:     text(desc),
		entity.ColStockOnHand:     number(onHand),
		entity.ColSafetyThreshold: number(safety),
	}
}

// EventRow arma la fila cruda de db_inbound o db_outbound.
func EventRow(numberCol, dateCol string, id, num *string, qty decimal.NullDecimal, at *time.Time) entity.RawRow {
	return entity.RawRow{
		entity.ColSKUID: text(id),
		numberCol:       text(num),
		entity.ColQty:   number(qty),
		dateCol:         date(at),
	}
}
