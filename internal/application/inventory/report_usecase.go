package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventory-command/internal/application/dto"
	"github.com/jhoicas/inventory-command/internal/application/presenter"
	"github.com/jhoicas/inventory-command/internal/domain/projection"
)

// SummarySheetName nombre de la primera hoja del libro exportado.
const SummarySheetName = "Summary"

// ReportUseCase arma el informe PDF y el libro exportable a partir de una corrida.
type ReportUseCase struct {
	projection *ProjectionUseCase
	pdf        ReportGenerator
	workbook   WorkbookExporter
	title      string
	now        func() time.Time
}

// NewReportUseCase construye el caso de uso. title aparece en la cabecera del PDF.
func NewReportUseCase(projection *ProjectionUseCase, pdf ReportGenerator, workbook WorkbookExporter, title string) *ReportUseCase {
	return &ReportUseCase{projection: projection, pdf: pdf, workbook: workbook, title: title, now: time.Now}
}

// PDF informe con el resumen mensual y el tablero de acción.
func (uc *ReportUseCase) PDF(ctx context.Context, q dto.ProjectionQuery) ([]byte, error) {
	run, err := uc.projection.Run(ctx, q)
	if err != nil {
		return nil, err
	}
	months := projection.MonthLabels(run.Cells)
	data := ReportData{
		Title:       uc.title,
		GeneratedAt: uc.now(),
		Start:       run.Start,
		Days:        run.Days,
		Summary:     presenter.SummaryMatrix(projection.Summarize(run.Cells, uc.projection.cfg.SummaryKey), months),
		Board:       projection.Board(run.Cells),
	}
	b, err := uc.pdf.GenerateProjectionReport(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("generar informe: %w", err)
	}
	return b, nil
}

// Workbook libro con una hoja de resumen y una hoja diaria por mes. Devuelve también el digest para ETag.
func (uc *ReportUseCase) Workbook(ctx context.Context, q dto.ProjectionQuery) ([]byte, string, error) {
	run, err := uc.projection.Run(ctx, q)
	if err != nil {
		return nil, "", err
	}
	months := projection.MonthLabels(run.Cells)
	sheets := make([]WorkbookSheet, 0, len(months)+1)
	sheets = append(sheets, WorkbookSheet{
		Name:   SummarySheetName,
		Matrix: presenter.SummaryMatrix(projection.Summarize(run.Cells, uc.projection.cfg.SummaryKey), months),
	})
	for _, label := range months {
		sheets = append(sheets, WorkbookSheet{
			Name:   label,
			Matrix: presenter.DailyMatrix(projection.FilterByMonth(run.Cells, label)),
		})
	}
	b, digest, err := uc.workbook.ExportWorkbook(ctx, sheets)
	if err != nil {
		return nil, "", fmt.Errorf("exportar libro: %w", err)
	}
	return b, digest, nil
}
