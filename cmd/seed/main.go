// seed genera un script SQL para poblar db_skus, db_inbound y db_outbound
// a partir de las hojas exportadas como CSV (db_skus.csv, db_inbound.csv, db_outbound.csv).
//
// Uso: go run ./cmd/seed [directorio] [charset]
// Por defecto lee ./data en utf-8 (también iso-8859-1, windows-1252).
// Escribe: internal/infrastructure/postgres/migrations/002_seed_source_tables.sql
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/inventory-command/internal/domain/entity"
	"github.com/jhoicas/inventory-command/internal/domain/projection"
	"github.com/jhoicas/inventory-command/internal/infrastructure/csvsource"
)

// table columnas de cada tabla en el orden del INSERT; kinds indica cómo se escribe cada valor.
type table struct {
	name    string
	columns []string
	kinds   []kind
}

type kind int

const (
	kindText kind = iota
	kindNumber
	kindDate
)

var tables = []table{
	{
		name:    entity.TableSKUs,
		columns: []string{entity.ColSKUID, entity.ColDescription, entity.ColStockOnHand, entity.ColSafetyThreshold},
		kinds:   []kind{kindText, kindText, kindNumber, kindNumber},
	},
	{
		name:    entity.TableInbound,
		columns: []string{entity.ColSKUID, entity.ColPONumber, entity.ColQty, entity.ColArrivalDate},
		kinds:   []kind{kindText, kindText, kindNumber, kindDate},
	},
	{
		name:    entity.TableOutbound,
		columns: []string{entity.ColSKUID, entity.ColOrderNumber, entity.ColQty, entity.ColDispatchDate},
		kinds:   []kind{kindText, kindText, kindNumber, kindDate},
	},
}

func main() {
	dir := "data"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	charset := "utf-8"
	if len(os.Args) > 2 {
		charset = os.Args[2]
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_source_tables.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Datos de origen de la proyección\n")
	fmt.Fprintf(out, "-- Generado desde %s (%s)\n\n", dir, charset)

	for i, t := range tables {
		rows, err := readCSV(filepath.Join(dir, t.name+".csv"), charset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Leer %s: %v\n", t.name, err)
			os.Exit(1)
		}
		n, skipped := writeInsert(out, i+1, t, rows)
		fmt.Printf("%s: %d filas, %d sin sku_id omitidas\n", t.name, n, skipped)
	}
	fmt.Printf("Generado %s\n", outPath)
}

func readCSV(path, charset string) ([]entity.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return csvsource.ParseTable(f, charset)
}

// writeInsert vacía la tabla y escribe un INSERT multi-fila. Las filas sin sku_id se omiten (columna NOT NULL).
func writeInsert(w io.Writer, step int, t table, rows []entity.RawRow) (written, skipped int) {
	fmt.Fprintf(w, "-- %d. %s\n", step, t.name)
	fmt.Fprintf(w, "TRUNCATE %s RESTART IDENTITY;\n", t.name)

	var values []string
	for _, r := range rows {
		if strings.TrimSpace(r[entity.ColSKUID]) == "" {
			skipped++
			continue
		}
		vals := make([]string, len(t.columns))
		for j, col := range t.columns {
			vals[j] = sqlValue(r[col], t.kinds[j])
		}
		values = append(values, "  ("+strings.Join(vals, ", ")+")")
	}
	if len(values) == 0 {
		io.WriteString(w, "\n")
		return 0, skipped
	}
	fmt.Fprintf(w, "INSERT INTO %s (%s) VALUES\n", t.name, strings.Join(t.columns, ", "))
	io.WriteString(w, strings.Join(values, ",\n"))
	io.WriteString(w, ";\n\n")
	return len(values), skipped
}

// sqlValue literal SQL; números y fechas ilegibles quedan en NULL y el normalizador los trata igual que en la hoja.
func sqlValue(s string, k kind) string {
	s = strings.TrimSpace(s)
	switch k {
	case kindNumber:
		d, ok := projection.ParseQuantity(s)
		if !ok {
			return "NULL"
		}
		return d.String()
	case kindDate:
		t := projection.ParseDayFirst(s)
		if t.IsZero() {
			return "NULL"
		}
		return "'" + t.Format("2006-01-02") + "'"
	default:
		if s == "" {
			return "NULL"
		}
		return "'" + escapeSQL(s) + "'"
	}
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
