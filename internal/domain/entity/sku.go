package entity

import "github.com/shopspring/decimal"

// SKU fila normalizada del maestro de SKUs (db_skus).
// Es una foto inmutable durante una corrida de proyección; el orden de las filas define el orden de salida.
type SKU struct {
	ID              string
	Description     string          // cae al ID si viene vacía
	StockOnHand     decimal.Decimal // stock a la fecha de referencia, puede ser negativo
	SafetyThreshold decimal.Decimal // umbral de seguridad (AMBER por debajo)
}
