package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InboundEvent entrada programada de stock (db_inbound), agrupada por orden de compra.
// ArrivalDate cero significa fecha desconocida: nunca coincide con ningún rango.
type InboundEvent struct {
	SKUID       string
	PONumber    string
	Quantity    decimal.Decimal
	ArrivalDate time.Time
}

// OutboundEvent salida programada de stock (db_outbound), agrupada por pedido de cliente.
// DispatchDate cero significa fecha desconocida.
type OutboundEvent struct {
	SKUID        string
	OrderNumber  string
	Quantity     decimal.Decimal
	DispatchDate time.Time
}
