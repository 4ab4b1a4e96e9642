// Package sheets lee las tablas crudas de una hoja de cálculo publicada, una hoja por tabla,
// a través del endpoint CSV público (sin credenciales).
package sheets

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/inventory-command/internal/domain"
	"github.com/jhoicas/inventory-command/internal/domain/entity"
	"github.com/jhoicas/inventory-command/internal/domain/repository"
	"github.com/jhoicas/inventory-command/internal/infrastructure/csvsource"
)

var _ repository.SourceRepository = (*Source)(nil)

// MaxSheetBytes tamaño máximo por hoja (32 MB).
const MaxSheetBytes int64 = 32 << 20

// Source descarga db_skus, db_inbound y db_outbound como CSV.
type Source struct {
	baseURL       string
	spreadsheetID string
	httpClient    *http.Client
	maxBytes      int64
}

// NewSource construye la fuente. baseURL p.ej. "https://docs.google.com/spreadsheets/d".
func NewSource(baseURL, spreadsheetID string, timeout time.Duration) *Source {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Source{
		baseURL:       strings.TrimRight(baseURL, "/"),
		spreadsheetID: spreadsheetID,
		httpClient:    &http.Client{Timeout: timeout},
		maxBytes:      MaxSheetBytes,
	}
}

// WithMaxBytes cambia el límite de tamaño por hoja.
func (s *Source) WithMaxBytes(n int64) *Source {
	s.maxBytes = n
	return s
}

// SheetURL URL CSV de una hoja.
func (s *Source) SheetURL(sheet string) string {
	return fmt.Sprintf("%s/%s/gviz/tq?tqx=out:csv&sheet=%s",
		s.baseURL, url.PathEscape(s.spreadsheetID), url.QueryEscape(sheet))
}

// LoadTables descarga las tres hojas. Cualquier fallo se devuelve envuelto en domain.ErrDataSource.
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
		rows, err := s.fetch(ctx, t.name)
		if err != nil {
			return nil, fmt.Errorf("%w: hoja %s: %v", domain.ErrDataSource, t.name, err)
		}
		*t.dst = rows
	}
	return &out, nil
}

func (s *Source) fetch(ctx context.Context, sheet string) ([]entity.RawRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.SheetURL(sheet), nil)
	if err != nil {
		return nil, fmt.Errorf("crear request: %w", err)
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("leer respuesta: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	// una hoja truncada se parsearía como válida con la última fila corrupta
	if int64(len(body)) > s.maxBytes {
		return nil, fmt.Errorf("hoja excede el límite de %d bytes", s.maxBytes)
	}
	// una hoja inexistente o privada responde 200 con una página HTML
	if ct := resp.Header.Get("Content-Type"); strings.Contains(ct, "text/html") {
		return nil, fmt.Errorf("la hoja no está publicada o no existe")
	}
	return csvsource.ParseTable(bytes.NewReader(body), "utf-8")
}
