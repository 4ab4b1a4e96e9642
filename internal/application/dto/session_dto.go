package dto

import "time"

// OpenSessionRequest body para POST /api/session.
type OpenSessionRequest struct {
	Password string `json:"password" validate:"required"`
}

// SessionResponse token de sesión emitido.
type SessionResponse struct {
	Token     string    `json:"token"`
	SessionID string    `json:"session_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
