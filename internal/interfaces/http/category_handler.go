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

// CategoryHandler la página de gestión de categorías.
type CategoryHandler struct {
	svc  *api.CategoryService
	view *view.View[[]entity.Category]
	flow *mutation.Flow
}

// NewCategoryHandler construye el handler con su vista y su flujo de mutaciones.
func NewCategoryHandler(svc *api.CategoryService, notifier ports.Notifier, log *logger.Logger) *CategoryHandler {
	v := view.New("categories", svc.List, notifier, log)
	return &CategoryHandler{
		svc:  svc,
		view: v,
		flow: mutation.NewFlow(v, notifier, log),
	}
}

// List ejecuta el ciclo completo de carga y devuelve el snapshot de la vista.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.view.Refresh(c.UserContext()))
}

// Create da de alta una categoría y resincroniza el listado.
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Name == "" {
		return validation(c, "name es requerido")
	}

	err := h.flow.Submit(c.UserContext(), "Categoría creada.", func(ctx context.Context) error {
		return h.svc.Create(ctx, in)
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
}

// Update edita la categoría seleccionada.
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	if err := mutation.RequireSelection(id); err != nil {
		return errorJSON(c, err)
	}

	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Name == "" {
		return validation(c, "name es requerido")
	}
	in.ID = id

	err := h.flow.Submit(c.UserContext(), "Categoría actualizada.", func(ctx context.Context) error {
		return h.svc.Update(ctx, in)
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// Delete elimina la categoría seleccionada.
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	if err := mutation.RequireSelection(id); err != nil {
		return errorJSON(c, err)
	}

	err := h.flow.Submit(c.UserContext(), "Categoría eliminada.", func(ctx context.Context) error {
		return h.svc.Delete(ctx, id)
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
