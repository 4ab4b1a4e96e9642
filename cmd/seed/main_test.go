package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventory-command/internal/domain/entity"
)

func TestSQLValue(t *testing.T) {
	assert.Equal(t, "'O''Brien'", sqlValue(" O'Brien ", kindText))
	assert.Equal(t, "NULL", sqlValue("", kindText))
	assert.Equal(t, "12.5", sqlValue("12.5", kindNumber))
	assert.Equal(t, "NULL", sqlValue("n/a", kindNumber))
	assert.Equal(t, "'2025-01-03'", sqlValue("03/01/2025", kindDate))
	assert.Equal(t, "NULL", sqlValue("pronto", kindDate))
}

func TestWriteInsert(t *testing.T) {
	var b strings.Builder
	rows := []entity.RawRow{
		{"sku_id": "A", "po_number": "PO-1", "qty": "5", "arrival_date": "03/01/2025"},
		{"sku_id": "", "po_number": "PO-2", "qty": "1", "arrival_date": ""},
	}
	n, skipped := writeInsert(&b, 2, tables[1], rows)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, skipped)

	sql := b.String()
	assert.Contains(t, sql, "TRUNCATE db_inbound RESTART IDENTITY;")
	assert.Contains(t, sql, "INSERT INTO db_inbound (sku_id, po_number, qty, arrival_date) VALUES\n  ('A', 'PO-1', 5, '2025-01-03');")
}

func TestWriteInsert_SinFilas(t *testing.T) {
	var b strings.Builder
	n, _ := writeInsert(&b, 1, tables[0], nil)
	assert.Equal(t, 0, n)
	assert.NotContains(t, b.String(), "INSERT")
}
