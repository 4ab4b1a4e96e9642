// Package session abre sesiones de equipo con una contraseña compartida y valida sus tokens.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventory-command/internal/application/dto"
	"github.com/jhoicas/inventory-command/internal/domain"
	"github.com/jhoicas/inventory-command/pkg/jwt"
)

// Config contraseña de equipo y parámetros del token.
// Si PasswordHash (bcrypt) está vacío se hashea Password al construir el caso de uso.
type Config struct {
	PasswordHash string
	Password     string
	Secret       string
	ExpMinutes   int
	Issuer       string
}

// Session estado explícito de la sesión; los handlers lo reciben desde el middleware.
type Session struct {
	ID        string
	ExpiresAt time.Time
}

// UseCase abre y valida sesiones.
type UseCase struct {
	hash []byte
	cfg  Config
}

// NewUseCase construye el caso de uso. Falla si no hay contraseña ni secreto configurados.
func NewUseCase(cfg Config) (*UseCase, error) {
	if cfg.Secret == "" {
		return nil, errors.New("session: JWT_SECRET requerido")
	}
	hash := []byte(cfg.PasswordHash)
	if len(hash) == 0 {
		if cfg.Password == "" {
			return nil, errors.New("session: AUTH_TEAM_PASSWORD_HASH o AUTH_TEAM_PASSWORD requerido")
		}
		h, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("session: hashear contraseña: %w", err)
		}
		hash = h
	} else if _, err := bcrypt.Cost(hash); err != nil {
		return nil, fmt.Errorf("session: hash bcrypt inválido: %w", err)
	}
	cfg.Password = ""
	return &UseCase{hash: hash, cfg: cfg}, nil
}

// Open verifica la contraseña de equipo y emite un token con un id de sesión nuevo.
func (uc *UseCase) Open(in dto.OpenSessionRequest) (*dto.SessionResponse, error) {
	if in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := bcrypt.CompareHashAndPassword(uc.hash, []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	id := uuid.New().String()
	token, err := jwt.Generate(uc.cfg.Secret, id, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	s, err := uc.Validate(token)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{Token: token, SessionID: s.ID, ExpiresAt: s.ExpiresAt}, nil
}

// Validate parsea el token y devuelve la sesión. Token inválido o expirado: ErrUnauthorized.
func (uc *UseCase) Validate(token string) (*Session, error) {
	id, exp, err := jwt.Parse(uc.cfg.Secret, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return &Session{ID: id, ExpiresAt: exp}, nil
}
