package sheets_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-command/internal/domain"
	"github.com/jhoicas/inventory-command/internal/infrastructure/sheets"
)

var sheetBodies = map[string]string{
	"db_skus":     "\"sku_id\",\"description\",\"stock_on_hand\",\"safety_threshold\"\n\"A\",\"Tornillo\",\"10\",\"5\"\n",
	"db_inbound":  "\"sku_id\",\"po_number\",\"qty\",\"arrival_date\"\n\"A\",\"PO-1\",\"5\",\"03/01/2025\"\n",
	"db_outbound": "\"sku_id\",\"order_number\",\"qty\",\"dispatch_date\"\n",
}

func newServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sheet-123/gviz/tq" || r.URL.Query().Get("tqx") != "out:csv" {
			http.NotFound(w, r)
			return
		}
		body, ok := sheetBodies[r.URL.Query().Get("sheet")]
		if !ok {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html></html>"))
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSource_LoadTables(t *testing.T) {
	srv := newServer(t, http.StatusOK)
	src := sheets.NewSource(srv.URL+"/", "sheet-123", time.Second)

	tables, err := src.LoadTables(context.Background())
	require.NoError(t, err)
	require.Len(t, tables.SKUs, 1)
	assert.Equal(t, "Tornillo", tables.SKUs[0]["description"])
	assert.Len(t, tables.Inbound, 1)
	assert.Empty(t, tables.Outbound)
}

func TestSource_ErrorHTTP(t *testing.T) {
	srv := newServer(t, http.StatusInternalServerError)
	_, err := sheets.NewSource(srv.URL, "sheet-123", time.Second).LoadTables(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDataSource)
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestSource_HojaNoPublicada(t *testing.T) {
	srv := newServer(t, http.StatusOK)
	_, err := sheets.NewSource(srv.URL, "otra", time.Second).LoadTables(context.Background())
	assert.ErrorIs(t, err, domain.ErrDataSource)
}

// Una hoja más grande que el límite es un error, no una tabla truncada.
func TestSource_HojaExcedeLimite(t *testing.T) {
	srv := newServer(t, http.StatusOK)
	limit := int64(len(sheetBodies["db_skus"]) - 1)
	_, err := sheets.NewSource(srv.URL, "sheet-123", time.Second).WithMaxBytes(limit).LoadTables(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDataSource)
	assert.Contains(t, err.Error(), "hoja excede el límite")
}

func TestSource_HojaJustoEnElLimite(t *testing.T) {
	srv := newServer(t, http.StatusOK)
	var limit int64
	for _, b := range sheetBodies {
		limit = max(limit, int64(len(b)))
	}
	tables, err := sheets.NewSource(srv.URL, "sheet-123", time.Second).WithMaxBytes(limit).LoadTables(context.Background())
	require.NoError(t, err)
	assert.Len(t, tables.Inbound, 1)
}

func TestSheetURL(t *testing.T) {
	src := sheets.NewSource("https://docs.google.com/spreadsheets/d/", "abc", 0)
	assert.Equal(t, "https://docs.google.com/spreadsheets/d/abc/gviz/tq?tqx=out:csv&sheet=db_skus", src.SheetURL("db_skus"))
}
