package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-command/internal/application/inventory"
)

// ProjectionHandler vistas de la proyección y exportaciones (protegido).
type ProjectionHandler struct {
	uc     *inventory.ProjectionUseCase
	report *inventory.ReportUseCase
}

// NewProjectionHandler construye el handler.
func NewProjectionHandler(uc *inventory.ProjectionUseCase, report *inventory.ReportUseCase) *ProjectionHandler {
	return &ProjectionHandler{uc: uc, report: report}
}

// Project godoc
// @Summary      Proyección diaria
// @Description  Una celda por SKU y día, en orden SKU y luego fecha.
// @Tags         projection
// @Security     Bearer
// @Produce      json
// @Param        start_date  query     string  false  "YYYY-MM-DD (por defecto hoy)"
// @Param        days        query     int     false  "horizonte en días"
// @Success      200         {object}  dto.ProjectionResponse
// @Failure      400         {object}  dto.ErrorResponse
// @Failure      502         {object}  dto.ErrorResponse
// @Failure      503         {object}  dto.ErrorResponse
// @Router       /api/projection [get]
func (h *ProjectionHandler) Project(c *fiber.Ctx) error {
	q, err := parseQuery(c)
	if err != nil {
		return respondError(c, err, "")
	}
	out, err := h.uc.Project(c.UserContext(), q)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen mensual
// @Description  Stock mínimo y peor estado por SKU y mes.
// @Tags         projection
// @Security     Bearer
// @Produce      json
// @Param        start_date  query     string  false  "YYYY-MM-DD"
// @Param        days        query     int     false  "horizonte en días"
// @Success      200         {object}  dto.SummaryResponse
// @Failure      400         {object}  dto.ErrorResponse
// @Failure      503         {object}  dto.ErrorResponse
// @Router       /api/projection/summary [get]
func (h *ProjectionHandler) Summary(c *fiber.Ctx) error {
	q, err := parseQuery(c)
	if err != nil {
		return respondError(c, err, "")
	}
	out, err := h.uc.Summary(c.UserContext(), q)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// Board godoc
// @Summary      Tablero de acción
// @Description  Solo las celdas en RED o AMBER.
// @Tags         projection
// @Security     Bearer
// @Produce      json
// @Param        start_date  query     string  false  "YYYY-MM-DD"
// @Param        days        query     int     false  "horizonte en días"
// @Success      200         {object}  dto.ProjectionResponse
// @Failure      400         {object}  dto.ErrorResponse
// @Failure      503         {object}  dto.ErrorResponse
// @Router       /api/projection/board [get]
func (h *ProjectionHandler) Board(c *fiber.Ctx) error {
	q, err := parseQuery(c)
	if err != nil {
		return respondError(c, err, "")
	}
	out, err := h.uc.Board(c.UserContext(), q)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// Months godoc
// @Summary      Meses de la ventana
// @Tags         projection
// @Security     Bearer
// @Produce      json
// @Param        start_date  query     string  false  "YYYY-MM-DD"
// @Param        days        query     int     false  "horizonte en días"
// @Success      200         {object}  dto.MonthsResponse
// @Failure      503         {object}  dto.ErrorResponse
// @Router       /api/projection/months [get]
func (h *ProjectionHandler) Months(c *fiber.Ctx) error {
	q, err := parseQuery(c)
	if err != nil {
		return respondError(c, err, "")
	}
	out, err := h.uc.Months(c.UserContext(), q)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// Matrix godoc
// @Summary      Matriz con bandas de color
// @Description  view=daily (un mes, columnas = días) o view=summary (columnas = meses).
// @Tags         projection
// @Security     Bearer
// @Produce      json
// @Param        view        query     string  false  "daily | summary"  default(daily)
// @Param        month       query     string  false  "etiqueta de mes, p. ej. January 2025 (vista daily)"
// @Param        start_date  query     string  false  "YYYY-MM-DD"
// @Param        days        query     int     false  "horizonte en días"
// @Success      200         {object}  presenter.Matrix
// @Failure      400         {object}  dto.ErrorResponse
// @Failure      404         {object}  dto.ErrorResponse
// @Router       /api/projection/matrix [get]
func (h *ProjectionHandler) Matrix(c *fiber.Ctx) error {
	q, err := parseQuery(c)
	if err != nil {
		return respondError(c, err, "")
	}
	out, err := h.uc.Matrix(c.UserContext(), q, c.Query("view"), c.Query("month"))
	if err != nil {
		return respondError(c, err, "mes fuera de la ventana")
	}
	return c.JSON(out)
}

// ReportPDF godoc
// @Summary      Informe PDF
// @Description  Resumen mensual y tablero de acción.
// @Tags         projection
// @Security     Bearer
// @Produce      application/pdf
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        days        query  int     false  "horizonte en días"
// @Success      200         {file}    binary
// @Failure      503         {object}  dto.ErrorResponse
// @Router       /api/projection/report.pdf [get]
func (h *ProjectionHandler) ReportPDF(c *fiber.Ctx) error {
	q, err := parseQuery(c)
	if err != nil {
		return respondError(c, err, "")
	}
	b, err := h.report.PDF(c.UserContext(), q)
	if err != nil {
		return respondError(c, err, "")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="projection.pdf"`)
	return c.Send(b)
}

// ExportXML godoc
// @Summary      Libro SpreadsheetML
// @Description  Hoja de resumen y una hoja diaria por mes. ETag = SHA-256 de la forma canónica; If-None-Match devuelve 304.
// @Tags         projection
// @Security     Bearer
// @Produce      application/xml
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        days        query  int     false  "horizonte en días"
// @Success      200         {file}    binary
// @Success      304
// @Failure      503         {object}  dto.ErrorResponse
// @Router       /api/projection/export.xml [get]
func (h *ProjectionHandler) ExportXML(c *fiber.Ctx) error {
	q, err := parseQuery(c)
	if err != nil {
		return respondError(c, err, "")
	}
	b, digest, err := h.report.Workbook(c.UserContext(), q)
	if err != nil {
		return respondError(c, err, "")
	}
	etag := fmt.Sprintf("%q", digest)
	c.Set(fiber.HeaderETag, etag)
	if etagMatches(c.Get(fiber.HeaderIfNoneMatch), etag) {
		return c.SendStatus(fiber.StatusNotModified)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.ms-excel")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="projection.xml"`)
	return c.Send(b)
}

// etagMatches compara If-None-Match (lista separada por comas, "*" o débiles W/) con el ETag.
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "*" || strings.TrimPrefix(part, "W/") == etag {
			return true
		}
	}
	return false
}
