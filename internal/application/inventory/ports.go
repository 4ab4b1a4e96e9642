package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/inventory-command/internal/application/presenter"
	"github.com/jhoicas/inventory-command/internal/domain/entity"
)

// TablesProvider entrega las tablas normalizadas. Lo implementa *TableLoader.
type TablesProvider interface {
	Load(ctx context.Context) (entity.Tables, error)
}

// ReportData contenido del informe PDF de proyección.
type ReportData struct {
	Title       string
	GeneratedAt time.Time
	Start       time.Time
	Days        int
	Summary     presenter.Matrix
	Board       []entity.ProjectionCell
}

// ReportGenerator genera el informe PDF (resumen mensual + tablero de acción).
type ReportGenerator interface {
	GenerateProjectionReport(ctx context.Context, data ReportData) ([]byte, error)
}

// WorkbookSheet una hoja del libro exportado.
type WorkbookSheet struct {
	Name   string
	Matrix presenter.Matrix
}

// WorkbookExporter exporta las matrices a un libro de hoja de cálculo.
// Devuelve los bytes del libro y un digest canónico estable usado como ETag.
type WorkbookExporter interface {
	ExportWorkbook(ctx context.Context, sheets []WorkbookSheet) (data []byte, digest string, err error)
}
