package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocksync-console/internal/application/dto"
	"github.com/jhoicas/stocksync-console/internal/application/mutation"
	"github.com/jhoicas/stocksync-console/internal/application/ports"
	"github.com/jhoicas/stocksync-console/internal/application/view"
	"github.com/jhoicas/stocksync-console/internal/domain/entity"
	"github.com/jhoicas/stocksync-console/internal/infrastructure/api"
	"github.com/jhoicas/stocksync-console/pkg/logger"
)

// UserHandler la página de gestión de usuarios.
type UserHandler struct {
	svc  *api.AuthService
	view *view.View[[]entity.User]
	flow *mutation.Flow
}

// NewUserHandler construye el handler.
func NewUserHandler(svc *api.AuthService, notifier ports.Notifier, log *logger.Logger) *UserHandler {
	v := view.New("users", svc.Users, notifier, log)
	return &UserHandler{
		svc:  svc,
		view: v,
		flow: mutation.NewFlow(v, notifier, log),
	}
}

// List ejecuta el ciclo completo de carga y devuelve el snapshot de la vista.
func (h *UserHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.view.Refresh(c.UserContext()))
}

// Register da de alta un usuario.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterUserRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Email == "" || in.UserName == "" || in.Password == "" {
		return validation(c, "email, userName y password son requeridos")
	}
	if len(in.Password) < 8 {
		return validation(c, "password debe tener al menos 8 caracteres")
	}

	err := h.flow.Submit(c.UserContext(), "Usuario registrado.", func(ctx context.Context) error {
		return h.svc.Register(ctx, in)
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
}
