package repository

import (
	"context"

	"github.com/jhoicas/inventory-command/internal/domain/entity"
)

// SourceRepository define el puerto para leer las tres tablas crudas (SKUs, entradas, salidas).
// Implementaciones: directorio CSV, hoja publicada, PostgreSQL.
// Un fallo de la fuente se devuelve envuelto en domain.ErrDataSource.
type SourceRepository interface {
	LoadTables(ctx context.Context) (*entity.RawTables, error)
}
