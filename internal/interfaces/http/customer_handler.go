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

// CustomerHandler la página de gestión de clientes.
type CustomerHandler struct {
	svc  *api.CustomerService
	view *view.View[[]entity.Customer]
	flow *mutation.Flow
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(svc *api.CustomerService, notifier ports.Notifier, log *logger.Logger) *CustomerHandler {
	v := view.New("customers", svc.List, notifier, log)
	return &CustomerHandler{
		svc:  svc,
		view: v,
		flow: mutation.NewFlow(v, notifier, log),
	}
}

// List ejecuta el ciclo completo de carga y devuelve el snapshot de la vista.
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.view.Refresh(c.UserContext()))
}

// Create da de alta un cliente.
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.CustomerName == "" {
		return validation(c, "customerName es requerido")
	}

	err := h.flow.Submit(c.UserContext(), "Cliente creado.", func(ctx context.Context) error {
		return h.svc.Create(ctx, in)
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
}

// Update edita el cliente seleccionado.
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	if err := mutation.RequireSelection(id); err != nil {
		return errorJSON(c, err)
	}

	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.CustomerName == "" {
		return validation(c, "customerName es requerido")
	}
	in.ID = id

	err := h.flow.Submit(c.UserContext(), "Cliente actualizado.", func(ctx context.Context) error {
		return h.svc.Update(ctx, in)
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// Delete elimina el cliente seleccionado.
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	if err := mutation.RequireSelection(id); err != nil {
		return errorJSON(c, err)
	}

	err := h.flow.Submit(c.UserContext(), "Cliente eliminado.", func(ctx context.Context) error {
		return h.svc.Delete(ctx, id)
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
