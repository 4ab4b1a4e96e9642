package csvsource

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/inventory-command/internal/domain"
	"github.com/jhoicas/inventory-command/internal/domain/entity"
	"github.com/jhoicas/inventory-command/internal/domain/repository"
)

var _ repository.SourceRepository = (*Source)(nil)

// Source lee <dir>/db_skus.csv, <dir>/db_inbound.csv y <dir>/db_outbound.csv.
type Source struct {
	dir     string
	charset string
}

// NewSource construye la fuente. charset vacío = utf-8.
func NewSource(dir, charset string) *Source {
	return &Source{dir: dir, charset: charset}
}

// LoadTables lee las tres tablas. Cualquier fallo se devuelve envuelto en domain.ErrDataSource.
func (s *Source) LoadTables(ctx context.Context) (*entity.RawTables, error) {
	var out entity.RawTables
	for _, t := range []struct {
		name string
		dst  *[]entity.RawRow
	}{
		{entity.TableSKUs, &out.SKUs},
		{entity.TableInbound, &out.Inbound},
		{entity.TableOutbound, &out.Outbound},
	} {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrDataSource, err)
		}
		rows, err := s.readFile(t.name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrDataSource, t.name, err)
		}
		*t.dst = rows
	}
	return &out, nil
}

func (s *Source) readFile(table string) ([]entity.RawRow, error) {
	path := filepath.Join(s.dir, table+".csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseTable(f, s.charset)
}
