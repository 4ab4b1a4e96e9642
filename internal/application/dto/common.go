package dto

// DateLayout formato de fechas en query params y respuestas JSON.
const DateLayout = "2006-01-02"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CacheStatsResponse contadores de la caché de tablas.
type CacheStatsResponse struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
}

// HealthResponse salida de GET /health.
type HealthResponse struct {
	Status  string              `json:"status"`
	Service string              `json:"service"`
	Cache   *CacheStatsResponse `json:"cache,omitempty"`
}
