package repository

import (
	"context"

	"github.com/jhoicas/inventory-command/internal/domain/entity"
)

// TableCache caché de una sola entrada para las tablas crudas, con TTL fijo.
// Get devuelve ok=false si no hay entrada o ya expiró.
type TableCache interface {
	Get(ctx context.Context) (*entity.RawTables, bool, error)
	Set(ctx context.Context, tables *entity.RawTables) error
	Clear(ctx context.Context) error
}

// CacheStats contadores expuestos en /health.
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
}

// StatsReporter lo implementan las cachés que llevan contadores.
type StatsReporter interface {
	Stats() CacheStats
}
