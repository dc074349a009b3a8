// Package export serializa el paquete de reportes a formatos descargables:
// libro XLSX multi-hoja y resumen PDF de una página. Es una transformación de
// un solo disparo sobre datos ya cargados en memoria, no un protocolo.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/stocksync-console/internal/application/dto"
)

// Nombres de hoja del libro consolidado.
const (
	sheetTopSelling    = "Top Selling Products"
	sheetByCategory    = "Products By Category"
	sheetPaymentMethod = "Payment Method Summary"
	sheetUserSales     = "User Sales Summary"
)

// ReportExporter implementa report.Exporter.
type ReportExporter struct{}

// NewReportExporter construye el exportador.
func NewReportExporter() *ReportExporter {
	return &ReportExporter{}
}

// BuildWorkbook genera el libro XLSX con las cuatro hojas de reportes y
// devuelve sus bytes.
func (e *ReportExporter) BuildWorkbook(bundle *dto.ReportBundleDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeTopSelling(f, bundle); err != nil {
		return nil, err
	}
	if err := writeByCategory(f, bundle); err != nil {
		return nil, err
	}
	if err := writePaymentMethods(f, bundle); err != nil {
		return nil, err
	}
	if err := writeUserSales(f, bundle); err != nil {
		return nil, err
	}

	// excelize crea "Sheet1" por defecto; el libro solo lleva las hojas de reportes.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("escribir libro XLSX: %w", err)
	}
	return buf.Bytes(), nil
}

func writeTopSelling(f *excelize.File, bundle *dto.ReportBundleDTO) error {
	if _, err := f.NewSheet(sheetTopSelling); err != nil {
		return err
	}
	if err := writeRow(f, sheetTopSelling, 1, "Product ID", "Product Name", "Quantity Sold", "Total Revenue"); err != nil {
		return err
	}
	for i, row := range bundle.TopSellingProducts {
		values := []any{row.ProductID, row.ProductName, row.QuantitySold, row.TotalRevenue.InexactFloat64()}
		if err := writeRow(f, sheetTopSelling, i+2, values...); err != nil {
			return err
		}
	}
	return nil
}

func writeByCategory(f *excelize.File, bundle *dto.ReportBundleDTO) error {
	if _, err := f.NewSheet(sheetByCategory); err != nil {
		return err
	}
	if err := writeRow(f, sheetByCategory, 1, "Category Name", "Product Count"); err != nil {
		return err
	}
	for i, row := range bundle.ProductsByCategory {
		if err := writeRow(f, sheetByCategory, i+2, row.CategoryName, row.ProductCount); err != nil {
			return err
		}
	}
	return nil
}

func writePaymentMethods(f *excelize.File, bundle *dto.ReportBundleDTO) error {
	if _, err := f.NewSheet(sheetPaymentMethod); err != nil {
		return err
	}
	if err := writeRow(f, sheetPaymentMethod, 1, "Payment Method", "Sales Count", "Total Amount"); err != nil {
		return err
	}
	for i, row := range bundle.PaymentMethodSummary {
		values := []any{row.PaymentMethod, row.SalesCount, row.TotalAmount.InexactFloat64()}
		if err := writeRow(f, sheetPaymentMethod, i+2, values...); err != nil {
			return err
		}
	}
	return nil
}

func writeUserSales(f *excelize.File, bundle *dto.ReportBundleDTO) error {
	if _, err := f.NewSheet(sheetUserSales); err != nil {
		return err
	}
	if err := writeRow(f, sheetUserSales, 1, "User Name", "Sales Count", "Total Sales"); err != nil {
		return err
	}
	for i, row := range bundle.UserSalesSummary {
		values := []any{row.UserName, row.SalesCount, row.TotalSales.InexactFloat64()}
		if err := writeRow(f, sheetUserSales, i+2, values...); err != nil {
			return err
		}
	}
	return nil
}

// writeRow escribe values en la fila row (1-based) empezando en la columna A.
func writeRow(f *excelize.File, sheet string, row int, values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
