package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-command/internal/application/dto"
	"github.com/jhoicas/inventory-command/internal/application/inventory"
	"github.com/jhoicas/inventory-command/internal/domain/repository"
)

// DataHandler recarga de tablas y estado del servicio.
type DataHandler struct {
	loader  *inventory.TableLoader
	stats   repository.StatsReporter
	service string
}

// NewDataHandler construye el handler. stats puede ser nil.
func NewDataHandler(loader *inventory.TableLoader, stats repository.StatsReporter, service string) *DataHandler {
	return &DataHandler{loader: loader, stats: stats, service: service}
}

// Refresh godoc
// @Summary      Recargar datos
// @Description  Vacía la caché de tablas y vuelve a leer la fuente.
// @Tags         data
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RefreshResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/data/refresh [post]
func (h *DataHandler) Refresh(c *fiber.Ctx) error {
	tables, err := h.loader.Refresh(c.UserContext())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(dto.RefreshResponse{
		Message:  "datos recargados",
		SKUs:     len(tables.SKUs),
		Inbound:  len(tables.Inbound),
		Outbound: len(tables.Outbound),
	})
}

// Health godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func (h *DataHandler) Health(c *fiber.Ctx) error {
	out := dto.HealthResponse{Status: "ok", Service: h.service}
	if h.stats != nil {
		s := h.stats.Stats()
		out.Cache = &dto.CacheStatsResponse{Hits: s.Hits, Misses: s.Misses}
	}
	return c.JSON(out)
}
