// Package csvsource lee las tablas crudas desde archivos CSV exportados de la hoja de cálculo
// (db_skus.csv, db_inbound.csv, db_outbound.csv).
package csvsource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/inventory-command/internal/domain/entity"
)

// DecodeReader envuelve r para leerlo como UTF-8 según charset.
// utf-8 (o vacío) descarta el BOM si existe; iso-8859-1 y windows-1252 se decodifican con charmap;
// otros nombres IANA se buscan en ianaindex.
func DecodeReader(r io.Reader, charset string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf-8", "utf8":
		return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())), nil
	case "iso-8859-1", "iso8859-1", "latin1", "latin-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	}
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("csv: charset no soportado %q", charset)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// ParseTable lee un CSV con fila de cabecera. Las columnas se normalizan a minúsculas sin espacios;
// celdas faltantes quedan vacías. Un archivo sin filas devuelve una tabla vacía.
func ParseTable(r io.Reader, charset string) ([]entity.RawRow, error) {
	dr, err := DecodeReader(r, charset)
	if err != nil {
		return nil, err
	}
	reader := csv.NewReader(dr)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []entity.RawRow{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("csv: leer cabecera: %w", err)
	}
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = strings.ToLower(strings.TrimSpace(h))
	}

	rows := []entity.RawRow{}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: fila %d: %w", line, err)
		}
		row := make(entity.RawRow, len(cols))
		for i, c := range cols {
			if c == "" {
				continue
			}
			if _, dup := row[c]; dup {
				continue // columna repetida: gana la primera
			}
			if i < len(record) {
				row[c] = record[i]
			} else {
				row[c] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
