package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-command/internal/application/inventory"
)

// DrillDownHandler detalle por artículo, orden de compra y pedido (protegido).
type DrillDownHandler struct {
	uc *inventory.DrillDownUseCase
}

// NewDrillDownHandler construye el handler.
func NewDrillDownHandler(uc *inventory.DrillDownUseCase) *DrillDownHandler {
	return &DrillDownHandler{uc: uc}
}

// Item godoc
// @Summary      Detalle de artículo
// @Description  Serie de stock en la ventana más todas sus entradas y salidas.
// @Tags         drilldown
// @Security     Bearer
// @Produce      json
// @Param        sku_id      path      string  true   "SKU"
// @Param        start_date  query     string  false  "YYYY-MM-DD"
// @Param        days        query     int     false  "horizonte en días"
// @Success      200         {object}  dto.ItemDetailResponse
// @Failure      404         {object}  dto.ErrorResponse
// @Router       /api/items/{sku_id} [get]
func (h *DrillDownHandler) Item(c *fiber.Ctx) error {
	q, err := parseQuery(c)
	if err != nil {
		return respondError(c, err, "")
	}
	out, err := h.uc.Item(c.UserContext(), pathParam(c, "sku_id"), q)
	if err != nil {
		return respondError(c, err, "artículo no encontrado")
	}
	return c.JSON(out)
}

// PurchaseOrders godoc
// @Summary      Órdenes de compra
// @Tags         drilldown
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/purchase-orders [get]
func (h *DrillDownHandler) PurchaseOrders(c *fiber.Ctx) error {
	out, err := h.uc.PurchaseOrders(c.UserContext())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// PurchaseOrder godoc
// @Summary      Líneas de una orden de compra
// @Tags         drilldown
// @Security     Bearer
// @Produce      json
// @Param        po_number  path      string  true  "número de orden"
// @Success      200        {object}  dto.OrderDetailResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{po_number} [get]
func (h *DrillDownHandler) PurchaseOrder(c *fiber.Ctx) error {
	out, err := h.uc.PurchaseOrder(c.UserContext(), pathParam(c, "po_number"))
	if err != nil {
		return respondError(c, err, "orden de compra no encontrada")
	}
	return c.JSON(out)
}

// Orders godoc
// @Summary      Pedidos de clientes
// @Tags         drilldown
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/orders [get]
func (h *DrillDownHandler) Orders(c *fiber.Ctx) error {
	out, err := h.uc.Orders(c.UserContext())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// Order godoc
// @Summary      Líneas de un pedido
// @Tags         drilldown
// @Security     Bearer
// @Produce      json
// @Param        order_number  path      string  true  "número de pedido"
// @Success      200           {object}  dto.OrderDetailResponse
// @Failure      404           {object}  dto.ErrorResponse
// @Router       /api/orders/{order_number} [get]
func (h *DrillDownHandler) Order(c *fiber.Ctx) error {
	out, err := h.uc.Order(c.UserContext(), pathParam(c, "order_number"))
	if err != nil {
		return respondError(c, err, "pedido no encontrado")
	}
	return c.JSON(out)
}

// pathParam parámetro de ruta sin escapes (los números de orden pueden llevar espacios o barras).
func pathParam(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
