package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-command/internal/application/dto"
	"github.com/jhoicas/inventory-command/internal/application/session"
)

// SessionHandler abre sesiones de equipo (público).
type SessionHandler struct {
	uc *session.UseCase
}

// NewSessionHandler construye el handler.
func NewSessionHandler(uc *session.UseCase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// Open godoc
// @Summary      Abrir sesión
// @Description  Verifica la contraseña de equipo y devuelve un token Bearer.
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      dto.OpenSessionRequest  true  "password"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/session [post]
func (h *SessionHandler) Open(c *fiber.Ctx) error {
	var in dto.OpenSessionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Open(in)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}
