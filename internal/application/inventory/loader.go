package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/inventory-command/internal/domain"
	"github.com/jhoicas/inventory-command/internal/domain/entity"
	"github.com/jhoicas/inventory-command/internal/domain/projection"
	"github.com/jhoicas/inventory-command/internal/domain/repository"
	"github.com/jhoicas/inventory-command/pkg/logger"
)

var _ TablesProvider = (*TableLoader)(nil)

// TableLoader lee las tablas crudas de la fuente (pasando por la caché) y las normaliza.
type TableLoader struct {
	source repository.SourceRepository
	cache  repository.TableCache
	log    *logger.Logger
}

// NewTableLoader construye el cargador. log nil = logger mudo.
func NewTableLoader(source repository.SourceRepository, cache repository.TableCache, log *logger.Logger) *TableLoader {
	if log == nil {
		log = logger.Nop()
	}
	return &TableLoader{source: source, cache: cache, log: log.Component("table_loader")}
}

// Load devuelve las tablas normalizadas. Un fallo de la caché no es fatal: se lee de la fuente.
// Un fallo de la fuente se devuelve envuelto en domain.ErrDataSource.
func (l *TableLoader) Load(ctx context.Context) (entity.Tables, error) {
	raw, ok, err := l.cache.Get(ctx)
	if err != nil {
		l.log.Warn().Err(err).Msg("caché de tablas no disponible, se lee la fuente")
	}
	if !ok {
		return l.loadFromSource(ctx)
	}
	l.log.Debug().Msg("tablas desde caché")
	return l.normalize(raw), nil
}

// loadFromSource lee la fuente, intenta guardar en caché y normaliza.
func (l *TableLoader) loadFromSource(ctx context.Context) (entity.Tables, error) {
	raw, err := l.source.LoadTables(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrDataSource) {
			err = fmt.Errorf("%w: %v", domain.ErrDataSource, err)
		}
		return entity.Tables{}, err
	}
	if err := l.cache.Set(ctx, raw); err != nil {
		l.log.Warn().Err(err).Msg("no se pudo guardar en caché")
	}
	l.log.Info().
		Int("skus", len(raw.SKUs)).
		Int("inbound", len(raw.Inbound)).
		Int("outbound", len(raw.Outbound)).
		Msg("tablas cargadas desde la fuente")
	return l.normalize(raw), nil
}

func (l *TableLoader) normalize(raw *entity.RawTables) entity.Tables {
	tables, rep := projection.Normalize(raw)
	if rep.CoercedValues > 0 || rep.UnknownDates > 0 {
		l.log.Warn().
			Int("coerced_values", rep.CoercedValues).
			Int("unknown_dates", rep.UnknownDates).
			Int("missing_dates", rep.MissingDates).
			Int("blank_rows", rep.BlankRows).
			Msg("celdas con formato inválido forzadas a valor por defecto")
	}
	return tables
}

// Refresh vacía la caché y vuelve a leer la fuente. Si la caché no se puede limpiar
// se lee la fuente directamente, sin pasar por la entrada vieja.
func (l *TableLoader) Refresh(ctx context.Context) (entity.Tables, error) {
	if err := l.cache.Clear(ctx); err != nil {
		l.log.Warn().Err(err).Msg("no se pudo limpiar la caché, se lee la fuente")
		return l.loadFromSource(ctx)
	}
	l.log.Info().Msg("caché de tablas limpiada")
	return l.Load(ctx)
}
