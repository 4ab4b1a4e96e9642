package inventory

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/jhoicas/inventory-command/internal/application/dto"
	"github.com/jhoicas/inventory-command/internal/application/presenter"
	"github.com/jhoicas/inventory-command/internal/domain"
	"github.com/jhoicas/inventory-command/internal/domain/entity"
	"github.com/jhoicas/inventory-command/internal/domain/projection"
)

// Vistas de la matriz.
const (
	ViewDaily   = "daily"
	ViewSummary = "summary"
)

// ProjectionConfig parámetros de la ventana y del motor.
type ProjectionConfig struct {
	DefaultDays int
	MaxDays     int
	Workers     int
	SummaryKey  projection.SummaryKey
}

// Run resultado de una corrida: la ventana resuelta, las tablas y la secuencia de celdas.
type Run struct {
	Start  time.Time
	Days   int
	Tables entity.Tables
	Cells  []entity.ProjectionCell
}

// ProjectionUseCase ejecuta el motor sobre las tablas cargadas y arma las vistas.
type ProjectionUseCase struct {
	tables TablesProvider
	engine projection.Engine
	cfg    ProjectionConfig
	now    func() time.Time
}

// NewProjectionUseCase construye el caso de uso.
func NewProjectionUseCase(tables TablesProvider, cfg ProjectionConfig) *ProjectionUseCase {
	return &ProjectionUseCase{
		tables: tables,
		engine: projection.Engine{Workers: cfg.Workers},
		cfg:    cfg,
		now:    time.Now,
	}
}

// WithClock reemplaza el reloj usado para "hoy" (tests).
func (uc *ProjectionUseCase) WithClock(now func() time.Time) *ProjectionUseCase {
	uc.now = now
	return uc
}

// Window resuelve start_date y days. start_date vacío = hoy; days nil = valor por defecto.
// Devuelve ErrInvalidInput si la fecha no es YYYY-MM-DD o days está fuera de [0, MaxDays].
func (uc *ProjectionUseCase) Window(q dto.ProjectionQuery) (time.Time, int, error) {
	var start time.Time
	if s := strings.TrimSpace(q.StartDate); s != "" {
		t, err := time.Parse(dto.DateLayout, s)
		if err != nil {
			return time.Time{}, 0, domain.ErrInvalidInput
		}
		start = t
	} else {
		start = projection.DateOf(uc.now())
	}

	days := uc.cfg.DefaultDays
	if q.Days != nil {
		days = *q.Days
	}
	if days < 0 || days > uc.cfg.MaxDays {
		return time.Time{}, 0, domain.ErrInvalidInput
	}
	return start, days, nil
}

// Run valida la ventana, carga las tablas y proyecta. Sin SKUs devuelve ErrNoData sin llamar al motor.
func (uc *ProjectionUseCase) Run(ctx context.Context, q dto.ProjectionQuery) (*Run, error) {
	start, days, err := uc.Window(q)
	if err != nil {
		return nil, err
	}
	tables, err := uc.tables.Load(ctx)
	if err != nil {
		return nil, err
	}
	if tables.Empty() {
		return nil, domain.ErrNoData
	}
	cells := uc.engine.Project(tables.SKUs, tables.Inbound, tables.Outbound, start, days)
	return &Run{Start: start, Days: days, Tables: tables, Cells: cells}, nil
}

// Project secuencia completa de celdas.
func (uc *ProjectionUseCase) Project(ctx context.Context, q dto.ProjectionQuery) (*dto.ProjectionResponse, error) {
	run, err := uc.Run(ctx, q)
	if err != nil {
		return nil, err
	}
	return toProjectionResponse(run, run.Cells), nil
}

// Board tablero de acción: celdas en RED o AMBER.
func (uc *ProjectionUseCase) Board(ctx context.Context, q dto.ProjectionQuery) (*dto.ProjectionResponse, error) {
	run, err := uc.Run(ctx, q)
	if err != nil {
		return nil, err
	}
	return toProjectionResponse(run, projection.Board(run.Cells)), nil
}

// Summary resumen mensual por SKU.
func (uc *ProjectionUseCase) Summary(ctx context.Context, q dto.ProjectionQuery) (*dto.SummaryResponse, error) {
	run, err := uc.Run(ctx, q)
	if err != nil {
		return nil, err
	}
	sums := projection.Summarize(run.Cells, uc.cfg.SummaryKey)
	out := &dto.SummaryResponse{
		StartDate: run.Start.Format(dto.DateLayout),
		Days:      run.Days,
		Key:       summaryKeyName(uc.cfg.SummaryKey),
		Months:    projection.MonthLabels(run.Cells),
		Summaries: make([]dto.MonthSummaryDTO, 0, len(sums)),
	}
	for _, s := range sums {
		out.Summaries = append(out.Summaries, dto.MonthSummaryDTO{
			SKUID:       s.SKUID,
			Description: s.Description,
			Month:       s.Month.Format(dto.DateLayout),
			MonthLabel:  s.MonthLabel,
			MinStock:    s.MinStock,
			Status:      string(s.Status),
			Display:     s.Display,
		})
	}
	return out, nil
}

// Months etiquetas de mes de la ventana (pestañas).
func (uc *ProjectionUseCase) Months(ctx context.Context, q dto.ProjectionQuery) (*dto.MonthsResponse, error) {
	run, err := uc.Run(ctx, q)
	if err != nil {
		return nil, err
	}
	return &dto.MonthsResponse{
		StartDate: run.Start.Format(dto.DateLayout),
		Days:      run.Days,
		Months:    projection.MonthLabels(run.Cells),
	}, nil
}

// Matrix matriz con bandas de color. view daily (por defecto) o summary; month opcional limita a un mes.
// Un mes que no está en la ventana devuelve ErrNotFound.
func (uc *ProjectionUseCase) Matrix(ctx context.Context, q dto.ProjectionQuery, view, month string) (*presenter.Matrix, error) {
	view = strings.ToLower(strings.TrimSpace(view))
	if view == "" {
		view = ViewDaily
	}
	if view != ViewDaily && view != ViewSummary {
		return nil, domain.ErrInvalidInput
	}
	run, err := uc.Run(ctx, q)
	if err != nil {
		return nil, err
	}
	m, err := uc.matrix(run, view, strings.TrimSpace(month))
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (uc *ProjectionUseCase) matrix(run *Run, view, month string) (presenter.Matrix, error) {
	months := projection.MonthLabels(run.Cells)
	if month != "" && !slices.Contains(months, month) {
		return presenter.Matrix{}, domain.ErrNotFound
	}

	if view == ViewSummary {
		order := months
		if month != "" {
			order = []string{month}
		}
		return presenter.SummaryMatrix(projection.Summarize(run.Cells, uc.cfg.SummaryKey), order), nil
	}
	cells := run.Cells
	if month != "" {
		cells = projection.FilterByMonth(cells, month)
	}
	return presenter.DailyMatrix(cells), nil
}

func summaryKeyName(k projection.SummaryKey) string {
	if k == projection.SummaryByDescription {
		return "description"
	}
	return "id"
}

func toProjectionResponse(run *Run, cells []entity.ProjectionCell) *dto.ProjectionResponse {
	out := &dto.ProjectionResponse{
		StartDate: run.Start.Format(dto.DateLayout),
		Days:      run.Days,
		Total:     len(cells),
		Cells:     make([]dto.ProjectionCellDTO, 0, len(cells)),
	}
	for _, c := range cells {
		out.Cells = append(out.Cells, toCellDTO(c))
	}
	return out
}

func toCellDTO(c entity.ProjectionCell) dto.ProjectionCellDTO {
	return dto.ProjectionCellDTO{
		SKUID:       c.SKUID,
		Description: c.Description,
		Date:        c.Date.Format(dto.DateLayout),
		MonthLabel:  c.MonthLabel,
		Stock:       c.Stock,
		Status:      string(c.Status),
		Marker:      string(c.Marker),
		Display:     c.Display,
	}
}
