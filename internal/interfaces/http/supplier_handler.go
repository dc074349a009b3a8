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

// SupplierHandler la página de gestión de proveedores.
type SupplierHandler struct {
	svc  *api.SupplierService
	view *view.View[[]entity.Supplier]
	flow *mutation.Flow
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(svc *api.SupplierService, notifier ports.Notifier, log *logger.Logger) *SupplierHandler {
	v := view.New("suppliers", svc.List, notifier, log)
	return &SupplierHandler{
		svc:  svc,
		view: v,
		flow: mutation.NewFlow(v, notifier, log),
	}
}

// List ejecuta el ciclo completo de carga y devuelve el snapshot de la vista.
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.view.Refresh(c.UserContext()))
}

// Create da de alta un proveedor.
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.SupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Name == "" {
		return validation(c, "name es requerido")
	}

	err := h.flow.Submit(c.UserContext(), "Proveedor creado.", func(ctx context.Context) error {
		return h.svc.Create(ctx, in)
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
}

// Update edita el proveedor seleccionado.
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	if err := mutation.RequireSelection(id); err != nil {
		return errorJSON(c, err)
	}

	var in dto.SupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Name == "" {
		return validation(c, "name es requerido")
	}
	in.ID = id

	err := h.flow.Submit(c.UserContext(), "Proveedor actualizado.", func(ctx context.Context) error {
		return h.svc.Update(ctx, in)
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// Delete elimina el proveedor seleccionado.
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	if err := mutation.RequireSelection(id); err != nil {
		return errorJSON(c, err)
	}

	err := h.flow.Submit(c.UserContext(), "Proveedor eliminado.", func(ctx context.Context) error {
		return h.svc.Delete(ctx, id)
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
