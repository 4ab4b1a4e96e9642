package dto

import "github.com/shopspring/decimal"

// ProjectionQuery query params comunes de /api/projection/*.
// StartDate vacío = hoy; Days nil = PROJECTION_DEFAULT_DAYS.
type ProjectionQuery struct {
	StartDate string `query:"start_date"`
	Days      *int   `query:"days"`
}

// ProjectionCellDTO una celda (SKU, día).
type ProjectionCellDTO struct {
	SKUID       string          `json:"sku_id"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	MonthLabel  string          `json:"month_label"`
	Stock       decimal.Decimal `json:"stock"`
	Status      string          `json:"status"`
	Marker      string          `json:"marker"`
	Display     string          `json:"display"`
}

// ProjectionResponse salida de GET /api/projection y /api/projection/board.
type ProjectionResponse struct {
	StartDate string              `json:"start_date"`
	Days      int                 `json:"days"`
	Total     int                 `json:"total"`
	Cells     []ProjectionCellDTO `json:"cells"`
}

// MonthSummaryDTO resumen (SKU, mes).
type MonthSummaryDTO struct {
	SKUID       string          `json:"sku_id"`
	Description string          `json:"description"`
	Month       string          `json:"month"` // primer día del mes
	MonthLabel  string          `json:"month_label"`
	MinStock    decimal.Decimal `json:"min_stock"`
	Status      string          `json:"status"`
	Display     string          `json:"display"`
}

// SummaryResponse salida de GET /api/projection/summary.
type SummaryResponse struct {
	StartDate string            `json:"start_date"`
	Days      int               `json:"days"`
	Key       string            `json:"key"` // id | description
	Months    []string          `json:"months"`
	Summaries []MonthSummaryDTO `json:"summaries"`
}

// MonthsResponse salida de GET /api/projection/months.
type MonthsResponse struct {
	StartDate string   `json:"start_date"`
	Days      int      `json:"days"`
	Months    []string `json:"months"`
}

// RefreshResponse salida de POST /api/data/refresh.
type RefreshResponse struct {
	Message  string `json:"message"`
	SKUs     int    `json:"skus"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}
