package spreadsheetml_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinventory "github.com/jhoicas/inventory-command/internal/application/inventory"
	"github.com/jhoicas/inventory-command/internal/application/presenter"
	"github.com/jhoicas/inventory-command/internal/domain/entity"
	"github.com/jhoicas/inventory-command/internal/infrastructure/spreadsheetml"
)

func sheets() []appinventory.WorkbookSheet {
	m := presenter.Matrix{
		Columns: []string{"01-01", "02-01"},
		Rows: []presenter.Row{{
			SKUID: "A",
			Label: "Tornillo & tuerca",
			Cells: []presenter.Cell{
				{Display: "10", Status: entity.StatusGreen, Band: presenter.BandFor(entity.StatusGreen)},
				{Display: "2 ▼", Status: entity.StatusAmber, Band: presenter.BandFor(entity.StatusAmber)},
			},
		}},
	}
	return []appinventory.WorkbookSheet{{Name: "Summary", Matrix: m}, {Name: "January 2025", Matrix: m}}
}

func TestExportWorkbook_Estructura(t *testing.T) {
	data, digest, err := spreadsheetml.NewExporter().ExportWorkbook(context.Background(), sheets())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("<?xml")))
	assert.Contains(t, string(data), `<?mso-application progid="Excel.Sheet"?>`)
	assert.Len(t, digest, 64)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(data))
	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "Workbook", root.Tag)

	ws := root.SelectElements("Worksheet")
	require.Len(t, ws, 2)
	assert.Equal(t, "January 2025", ws[1].SelectAttrValue("ss:Name", ""))

	rows := ws[0].FindElements("./Table/Row")
	require.Len(t, rows, 2)
	cells := rows[1].SelectElements("Cell")
	require.Len(t, cells, 4)
	assert.Equal(t, "Tornillo & tuerca", cells[1].SelectElement("Data").Text())
	assert.Equal(t, "AMBER", cells[3].SelectAttrValue("ss:StyleID", ""))
	assert.Equal(t, "2 ▼", cells[3].SelectElement("Data").Text())

	styles := root.FindElements("./Styles/Style")
	require.Len(t, styles, 4)
	assert.Equal(t, "#ffcccc", styles[1].SelectElement("Interior").SelectAttrValue("ss:Color", ""))
}

func TestDigest_EstableYSensibleAlContenido(t *testing.T) {
	a, err := spreadsheetml.Digest(spreadsheetml.Build(sheets()))
	require.NoError(t, err)
	b, err := spreadsheetml.Digest(spreadsheetml.Build(sheets()))
	require.NoError(t, err)
	assert.Equal(t, a, b, "mismo contenido, mismo digest")

	changed := sheets()
	changed[0].Matrix.Rows[0].Cells[0].Display = "11"
	c, err := spreadsheetml.Digest(spreadsheetml.Build(changed))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	_, err = spreadsheetml.Digest(etree.NewDocument())
	assert.Error(t, err)
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "Q1-Q2 (2025)", spreadsheetml.SheetName("Q1/Q2 [2025]"))
	assert.Equal(t, "Sheet", spreadsheetml.SheetName(" ? "))
	assert.Len(t, []rune(spreadsheetml.SheetName(strings.Repeat("x", 40))), 31)
}

func TestBuild_NombresRepetidos(t *testing.T) {
	s := sheets()
	s[1].Name = "summary"
	doc := spreadsheetml.Build(s)
	ws := doc.Root().SelectElements("Worksheet")
	require.Len(t, ws, 2)
	assert.Equal(t, "summary (2)", ws[1].SelectAttrValue("ss:Name", ""))
}
