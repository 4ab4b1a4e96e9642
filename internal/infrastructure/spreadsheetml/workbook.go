// Package spreadsheetml exporta matrices de proyección como libro XML Spreadsheet 2003
// (se abre directamente en Excel y LibreOffice), con un estilo por banda de estado.
package spreadsheetml

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	appinventory "github.com/jhoicas/inventory-command/internal/application/inventory"
	"github.com/jhoicas/inventory-command/internal/application/presenter"
	"github.com/jhoicas/inventory-command/internal/domain/entity"
)

const (
	nsSpreadsheet = "urn:schemas-microsoft-com:office:spreadsheet"
	styleHeader   = "header"
	maxSheetName  = 31
)

var _ appinventory.WorkbookExporter = (*Exporter)(nil)

// Exporter implementa inventory.WorkbookExporter.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// ExportWorkbook arma el libro y devuelve sus bytes y el SHA-256 (hex) de su forma canónica C14N.
func (e *Exporter) ExportWorkbook(_ context.Context, sheets []appinventory.WorkbookSheet) ([]byte, string, error) {
	doc := Build(sheets)
	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, "", fmt.Errorf("spreadsheetml: serializar: %w", err)
	}
	digest, err := Digest(doc)
	if err != nil {
		return nil, "", err
	}
	return data, digest, nil
}

// Build arma el documento: estilos, y una hoja por matriz (fila de cabecera + una fila por SKU).
func Build(sheets []appinventory.WorkbookSheet) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateProcInst("mso-application", `progid="Excel.Sheet"`)

	wb := doc.CreateElement("Workbook")
	wb.CreateAttr("xmlns", nsSpreadsheet)
	wb.CreateAttr("xmlns:ss", nsSpreadsheet)

	styles := wb.CreateElement("Styles")
	header := styles.CreateElement("Style")
	header.CreateAttr("ss:ID", styleHeader)
	header.CreateElement("Font").CreateAttr("ss:Bold", "1")
	for _, s := range []entity.Status{entity.StatusRed, entity.StatusAmber, entity.StatusGreen} {
		band := presenter.BandFor(s)
		st := styles.CreateElement("Style")
		st.CreateAttr("ss:ID", string(s))
		interior := st.CreateElement("Interior")
		interior.CreateAttr("ss:Color", band.Background)
		interior.CreateAttr("ss:Pattern", "Solid")
		st.CreateElement("Font").CreateAttr("ss:Color", band.Foreground)
	}

	used := make(map[string]int)
	for _, sh := range sheets {
		ws := wb.CreateElement("Worksheet")
		ws.CreateAttr("ss:Name", uniqueName(SheetName(sh.Name), used))
		addTable(ws, sh.Matrix)
	}

	doc.Indent(1)
	return doc
}

func addTable(ws *etree.Element, m presenter.Matrix) {
	table := ws.CreateElement("Table")
	table.CreateAttr("ss:ExpandedColumnCount", strconv.Itoa(len(m.Columns)+2))
	table.CreateAttr("ss:ExpandedRowCount", strconv.Itoa(len(m.Rows)+1))

	head := table.CreateElement("Row")
	addCell(head, "SKU", styleHeader)
	addCell(head, "Description", styleHeader)
	for _, c := range m.Columns {
		addCell(head, c, styleHeader)
	}
	for _, r := range m.Rows {
		row := table.CreateElement("Row")
		addCell(row, r.SKUID, "")
		addCell(row, r.Label, "")
		for _, c := range r.Cells {
			addCell(row, c.Display, string(c.Status))
		}
	}
}

// addCell celda de texto: el valor mostrado lleva el glifo del marcador, no es numérico.
func addCell(row *etree.Element, value, style string) {
	cell := row.CreateElement("Cell")
	if style != "" {
		cell.CreateAttr("ss:StyleID", style)
	}
	data := cell.CreateElement("Data")
	data.CreateAttr("ss:Type", "String")
	data.SetText(value)
}

// Digest SHA-256 de la forma canónica del elemento raíz. No depende del orden de atributos
// ni de las instrucciones de procesamiento; si C14N falla se usa la serialización directa.
func Digest(doc *etree.Document) (string, error) {
	root := doc.Root()
	if root == nil {
		return "", fmt.Errorf("spreadsheetml: documento sin raíz")
	}
	only := etree.NewDocument()
	only.SetRoot(root.Copy())
	raw, err := only.WriteToBytes()
	if err != nil {
		return "", fmt.Errorf("spreadsheetml: serializar raíz: %w", err)
	}
	canonical, err := canonicalizeXML(raw)
	if err != nil {
		canonical = raw
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

func canonicalizeXML(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	return c14n.Canonicalize(dec)
}

var sheetNameReplacer = strings.NewReplacer(
	"[", "(", "]", ")", ":", "-", "*", "-", "?", "", "/", "-", `\`, "-",
)

// SheetName nombre de hoja válido: sin []:*?/\ y con 31 caracteres como máximo.
func SheetName(s string) string {
	s = strings.TrimSpace(sheetNameReplacer.Replace(s))
	if s == "" {
		s = "Sheet"
	}
	if r := []rune(s); len(r) > maxSheetName {
		s = string(r[:maxSheetName])
	}
	return s
}

func uniqueName(name string, used map[string]int) string {
	key := strings.ToLower(name)
	n := used[key]
	used[key] = n + 1
	if n == 0 {
		return name
	}
	suffix := fmt.Sprintf(" (%d)", n+1)
	r := []rune(name)
	if len(r)+len(suffix) > maxSheetName {
		r = r[:maxSheetName-len(suffix)]
	}
	return string(r) + suffix
}
