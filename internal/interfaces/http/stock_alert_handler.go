package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocksync-console/internal/application/dto"
	"github.com/jhoicas/stocksync-console/internal/application/mutation"
	"github.com/jhoicas/stocksync-console/internal/application/ports"
	"github.com/jhoicas/stocksync-console/internal/application/view"
	"github.com/jhoicas/stocksync-console/internal/domain/entity"
	"github.com/jhoicas/stocksync-console/internal/infrastructure/api"
	"github.com/jhoicas/stocksync-console/pkg/logger"
)

// StockAlertHandler la página de alertas de reposición y la reposición rápida.
// La vista de alertas es también la que refresca el poller del badge.
type StockAlertHandler struct {
	products *api.ProductService
	view     *view.View[[]entity.StockAlert]
	flow     *mutation.Flow
	poller   *view.Poller
}

// NewStockAlertHandler construye el handler con el poller del badge sin
// arrancar; main lo lanza con el contexto de vida de la aplicación.
func NewStockAlertHandler(
	sales *api.SalesService,
	products *api.ProductService,
	pollInterval time.Duration,
	notifier ports.Notifier,
	log *logger.Logger,
) *StockAlertHandler {
	v := view.New("stock-alerts", sales.ReorderAlerts, notifier, log)
	return &StockAlertHandler{
		products: products,
		view:     v,
		flow:     mutation.NewFlow(v, notifier, log),
		poller:   view.NewPoller(v, pollInterval, log),
	}
}

// List ejecuta el ciclo completo de carga y devuelve el snapshot de la vista.
func (h *StockAlertHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.view.Refresh(c.UserContext()))
}

// Badge devuelve el último snapshot sin disparar una carga síncrona y pide al
// poller un refresco inmediato, igual que abrir el menú de notificaciones.
func (h *StockAlertHandler) Badge(c *fiber.Ctx) error {
	h.poller.Kick()
	return c.JSON(h.view.Snapshot())
}

// Restock repone stock desde la alerta: PATCH add-quantity sobre el producto.
func (h *StockAlertHandler) Restock(c *fiber.Ctx) error {
	productID, _ := c.ParamsInt("productId")
	if err := mutation.RequireSelection(productID); err != nil {
		return errorJSON(c, err)
	}

	var in dto.AddQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.QuantityToAdd <= 0 {
		return validation(c, "quantityToAdd debe ser positivo")
	}

	err := h.flow.Submit(c.UserContext(), "Stock repuesto.", func(ctx context.Context) error {
		return h.products.AddQuantity(ctx, productID, in.QuantityToAdd)
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// Poller expone el poller para que main lo arranque con su contexto.
func (h *StockAlertHandler) Poller() *view.Poller {
	return h.poller
}
