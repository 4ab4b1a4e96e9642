package entity

// Nombres de columnas esperados en las tablas crudas (en minúsculas).
const (
	ColSKUID           = "sku_id"
	ColDescription     = "description"
	ColStockOnHand     = "stock_on_hand"
	ColSafetyThreshold = "safety_threshold"
	ColPONumber        = "po_number"
	ColOrderNumber     = "order_number"
	ColQty             = "qty"
	ColArrivalDate     = "arrival_date"
	ColDispatchDate    = "dispatch_date"
)

// Nombres de las hojas / tablas en la fuente de datos.
const (
	TableSKUs     = "db_skus"
	TableInbound  = "db_inbound"
	TableOutbound = "db_outbound"
)

// RawRow fila tal como llega de la fuente: columna (minúsculas) -> texto sin tipar.
type RawRow map[string]string

// RawTables las tres tablas crudas; es lo que se cachea entre corridas.
type RawTables struct {
	SKUs     []RawRow `json:"skus"`
	Inbound  []RawRow `json:"inbound"`
	Outbound []RawRow `json:"outbound"`
}

// Tables las tres tablas normalizadas listas para el motor.
type Tables struct {
	SKUs     []SKU
	Inbound  []InboundEvent
	Outbound []OutboundEvent
}

// Empty indica si no hay SKUs; sin SKUs no hay nada que proyectar.
func (t *Tables) Empty() bool {
	return t == nil || len(t.SKUs) == 0
}
