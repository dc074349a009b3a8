package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocksync-console/internal/application/dto"
	"github.com/jhoicas/stocksync-console/internal/application/session"
)

// SessionHandler maneja login, logout y el estado de la sesión.
type SessionHandler struct {
	manager *session.Manager
}

// NewSessionHandler construye el handler.
func NewSessionHandler(manager *session.Manager) *SessionHandler {
	return &SessionHandler{manager: manager}
}

// Login autentica contra el backend y persiste la sesión local.
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Email == "" || in.Password == "" {
		return validation(c, "email y password son requeridos")
	}

	info, err := h.manager.Login(c.UserContext(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(info)
}

// Logout destruye la sesión local.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	if err := h.manager.Logout(); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// Info devuelve el estado de la sesión para la cabecera.
func (h *SessionHandler) Info(c *fiber.Ctx) error {
	return c.JSON(h.manager.Info())
}
