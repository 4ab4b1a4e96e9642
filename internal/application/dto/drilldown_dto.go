package dto

import "github.com/shopspring/decimal"

// ItemPointDTO un punto de la serie de un SKU.
type ItemPointDTO struct {
	Date    string          `json:"date"`
	Stock   decimal.Decimal `json:"stock"`
	Status  string          `json:"status"`
	Marker  string          `json:"marker"`
	Display string          `json:"display"`
}

// EventLineDTO una línea de entrada o salida. Date en formato dd-mm-yyyy; vacío si la fecha es desconocida.
type EventLineDTO struct {
	Number      string          `json:"number"` // PO o pedido
	SKUID       string          `json:"sku_id"`
	Description string          `json:"description"`
	Qty         decimal.Decimal `json:"qty"`
	Date        string          `json:"date"`
}

// ItemDetailResponse salida de GET /api/items/:sku_id.
type ItemDetailResponse struct {
	SKUID           string          `json:"sku_id"`
	Description     string          `json:"description"`
	SafetyThreshold decimal.Decimal `json:"safety_threshold"`
	StartDate       string          `json:"start_date"`
	Days            int             `json:"days"`
	Series          []ItemPointDTO  `json:"series"`
	Inbound         []EventLineDTO  `json:"inbound"`
	Outbound        []EventLineDTO  `json:"outbound"`
}

// OrderListResponse números de PO o pedidos distintos, en orden de aparición.
type OrderListResponse struct {
	Total   int      `json:"total"`
	Numbers []string `json:"numbers"`
}

// OrderDetailResponse líneas de un PO o pedido con la descripción del SKU.
type OrderDetailResponse struct {
	Number string         `json:"number"`
	Lines  []EventLineDTO `json:"lines"`
}
