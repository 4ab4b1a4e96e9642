package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-command/internal/application/dto"
	"github.com/jhoicas/inventory-command/internal/application/inventory"
	"github.com/jhoicas/inventory-command/internal/domain"
	"github.com/jhoicas/inventory-command/internal/domain/entity"
)

type fakeReport struct{ got inventory.ReportData }

func (f *fakeReport) GenerateProjectionReport(_ context.Context, data inventory.ReportData) ([]byte, error) {
	f.got = data
	return []byte("%PDF"), nil
}

type fakeWorkbook struct {
	sheets []inventory.WorkbookSheet
	err    error
}

func (f *fakeWorkbook) ExportWorkbook(_ context.Context, sheets []inventory.WorkbookSheet) ([]byte, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	f.sheets = sheets
	return []byte("<Workbook/>"), "digest", nil
}

func TestReport_PDF(t *testing.T) {
	proj, _ := newProjectionUC(rawFixture(), 1)
	pdf := &fakeReport{}
	uc := inventory.NewReportUseCase(proj, pdf, &fakeWorkbook{}, "Inventory Command")

	b, err := uc.PDF(context.Background(), dto.ProjectionQuery{})
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), b)

	assert.Equal(t, "Inventory Command", pdf.got.Title)
	assert.Equal(t, 3, pdf.got.Days)
	assert.Equal(t, []string{"January 2025"}, pdf.got.Summary.Columns)
	require.Len(t, pdf.got.Board, 4)
	assert.Equal(t, entity.StatusAmber, pdf.got.Board[0].Status)
}

func TestReport_WorkbookUnaHojaPorMes(t *testing.T) {
	proj, _ := newProjectionUC(rawFixture(), 1)
	wb := &fakeWorkbook{}
	uc := inventory.NewReportUseCase(proj, &fakeReport{}, wb, "x")

	b, digest, err := uc.Workbook(context.Background(), dto.ProjectionQuery{Days: intPtr(45)})
	require.NoError(t, err)
	assert.NotEmpty(t, b)
	assert.Equal(t, "digest", digest)

	require.Len(t, wb.sheets, 3)
	assert.Equal(t, inventory.SummarySheetName, wb.sheets[0].Name)
	assert.Equal(t, "January 2025", wb.sheets[1].Name)
	assert.Len(t, wb.sheets[1].Matrix.Columns, 31)
	assert.Equal(t, "February 2025", wb.sheets[2].Name)
}

func TestReport_PropagaErrorDeExportacion(t *testing.T) {
	proj, _ := newProjectionUC(rawFixture(), 1)
	uc := inventory.NewReportUseCase(proj, &fakeReport{}, &fakeWorkbook{err: errBoom}, "x")
	_, _, err := uc.Workbook(context.Background(), dto.ProjectionQuery{})
	assert.ErrorIs(t, err, errBoom)

	raw := rawFixture()
	raw.SKUs = nil
	empty, _ := newProjectionUC(raw, 1)
	uc = inventory.NewReportUseCase(empty, &fakeReport{}, &fakeWorkbook{}, "x")
	_, err = uc.PDF(context.Background(), dto.ProjectionQuery{})
	assert.ErrorIs(t, err, domain.ErrNoData)
}
