package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	// ErrDataSource la fuente de datos (CSV, hoja publicada, PostgreSQL) falló al cargar.
	ErrDataSource = errors.New("fuente de datos no disponible")
	// ErrNoData la tabla de SKUs llegó vacía: no se proyecta, se reporta "esperando datos".
	ErrNoData = errors.New("esperando conexión de datos")
)
