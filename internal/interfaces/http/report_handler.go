package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocksync-console/internal/application/dto"
	"github.com/jhoicas/stocksync-console/internal/application/ports"
	"github.com/jhoicas/stocksync-console/internal/application/report"
	"github.com/jhoicas/stocksync-console/internal/application/view"
	"github.com/jhoicas/stocksync-console/pkg/logger"
)

// ReportHandler la página de reportes y sus descargas.
type ReportHandler struct {
	uc   *report.UseCase
	view *view.View[*dto.ReportBundleDTO]
}

// NewReportHandler construye el handler con su vista.
func NewReportHandler(uc *report.UseCase, notifier ports.Notifier, log *logger.Logger) *ReportHandler {
	return &ReportHandler{
		uc:   uc,
		view: view.New("reports", uc.Fetch, notifier, log),
	}
}

// Get ejecuta el ciclo de carga de los cuatro reportes y devuelve el snapshot.
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.view.Refresh(c.UserContext()))
}

// Export descarga el paquete de reportes en el formato pedido. El export
// obtiene datos frescos: nunca serializa un snapshot viejo de la vista.
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	format := c.Query("format", "xlsx")
	if format != "xlsx" && format != "pdf" {
		return validation(c, "format debe ser xlsx o pdf")
	}

	bundle, err := h.uc.Fetch(c.UserContext())
	if err != nil {
		return errorJSON(c, err)
	}

	var (
		payload     []byte
		contentType string
	)
	switch format {
	case "pdf":
		payload, err = h.uc.ExportPDF(bundle)
		contentType = "application/pdf"
	default:
		payload, err = h.uc.ExportXLSX(bundle)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	if err != nil {
		return errorJSON(c, err)
	}

	filename := fmt.Sprintf("stocksync-reportes-%s.%s", time.Now().Format("2006-01-02"), format)
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(payload)
}
