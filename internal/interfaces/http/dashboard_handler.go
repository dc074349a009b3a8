package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocksync-console/internal/application/dashboard"
	"github.com/jhoicas/stocksync-console/internal/application/dto"
	"github.com/jhoicas/stocksync-console/internal/application/usecase"
)

// DashboardHandler la página principal: tarjetas de estadísticas y la
// tarjeta de predicción de stock.
type DashboardHandler struct {
	summary    *dashboard.UseCase
	prediction *usecase.PredictionUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(summary *dashboard.UseCase, prediction *usecase.PredictionUseCase) *DashboardHandler {
	return &DashboardHandler{summary: summary, prediction: prediction}
}

// Summary devuelve las tarjetas de estadísticas. Siempre responde 200: una
// fuente caída llega como tarjeta "N/A", nunca como error de página.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.summary.Summary(c.UserContext()))
}

// Predict envía los indicadores actuales al modelo y devuelve la sugerencia
// de reposición tal cual, sin normalizar.
func (h *DashboardHandler) Predict(c *fiber.Ctx) error {
	var in dto.StockPredictionInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}

	out, err := h.prediction.Predict(c.UserContext(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
