package export

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/stocksync-console/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// BuildSummaryPDF genera el resumen PDF del paquete de reportes: una sección
// por conjunto de datos con sus filas principales.
func (e *ReportExporter) BuildSummaryPDF(bundle *dto.ReportBundleDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("StockSync — Reporte Consolidado", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionHeader(sheetTopSelling))
	for _, r := range bundle.TopSellingProducts {
		m.AddRows(dataRow(
			r.ProductName,
			fmt.Sprintf("%d uds", r.QuantitySold),
			r.TotalRevenue.StringFixed(2),
		))
	}

	m.AddRows(sectionHeader(sheetByCategory))
	for _, r := range bundle.ProductsByCategory {
		m.AddRows(dataRow(r.CategoryName, fmt.Sprintf("%d productos", r.ProductCount), ""))
	}

	m.AddRows(sectionHeader(sheetPaymentMethod))
	for _, r := range bundle.PaymentMethodSummary {
		m.AddRows(dataRow(
			r.PaymentMethod,
			fmt.Sprintf("%d ventas", r.SalesCount),
			r.TotalAmount.StringFixed(2),
		))
	}

	m.AddRows(sectionHeader(sheetUserSales))
	for _, r := range bundle.UserSalesSummary {
		m.AddRows(dataRow(
			r.UserName,
			fmt.Sprintf("%d ventas", r.SalesCount),
			r.TotalSales.StringFixed(2),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRow() core.Row {
	fecha := time.Now().Format("02/01/2006")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("StockSync — Reporte Consolidado", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func sectionHeader(title string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3,
			}),
		),
	)
}

func dataRow(name, quantity, amount string) core.Row {
	return row.New(6).Add(
		col.New(6).Add(text.New(name, props.Text{Size: 8, Top: 1})),
		col.New(3).Add(text.New(quantity, props.Text{Size: 8, Top: 1, Align: align.Right, Color: colorGray})),
		col.New(3).Add(text.New(amount, props.Text{Size: 8, Top: 1, Align: align.Right})),
	)
}
