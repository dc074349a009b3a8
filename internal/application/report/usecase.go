// Package report arma la página de reportes: cuatro conjuntos de datos
// obtenidos en paralelo del backend y un export consolidado descargable.
package report

import (
	"context"

	"github.com/jhoicas/stocksync-console/internal/application/dto"
	"github.com/jhoicas/stocksync-console/internal/domain/entity"
)

const topSellingCount = 10 // productos en el ranking de la página de reportes

// SalesSource los endpoints de ventas que alimentan los reportes.
type SalesSource interface {
	TopSellingProducts(ctx context.Context, topCount int) ([]entity.TopSellingProduct, error)
	PaymentMethodSummary(ctx context.Context) ([]entity.PaymentMethodSummary, error)
	UserSalesSummary(ctx context.Context) ([]entity.UserSalesSummary, error)
}

// ProductSource la distribución de productos por categoría.
type ProductSource interface {
	ProductsByCategory(ctx context.Context) ([]entity.CategoryProductInfo, error)
}

// Exporter serializa el paquete de reportes a un archivo descargable.
type Exporter interface {
	BuildWorkbook(bundle *dto.ReportBundleDTO) ([]byte, error)
	BuildSummaryPDF(bundle *dto.ReportBundleDTO) ([]byte, error)
}

// UseCase obtiene y exporta el paquete de reportes.
type UseCase struct {
	sales    SalesSource
	products ProductSource
	exporter Exporter
}

// NewUseCase construye el caso de uso.
func NewUseCase(sales SalesSource, products ProductSource, exporter Exporter) *UseCase {
	return &UseCase{sales: sales, products: products, exporter: exporter}
}

// Fetch obtiene los cuatro conjuntos de datos en paralelo. Falla si cualquiera
// de las fuentes falla: la página de reportes se muestra completa o degradada,
// nunca a medias.
func (uc *UseCase) Fetch(ctx context.Context) (*dto.ReportBundleDTO, error) {
	type topResult struct {
		rows []entity.TopSellingProduct
		err  error
	}
	type catResult struct {
		rows []entity.CategoryProductInfo
		err  error
	}
	type payResult struct {
		rows []entity.PaymentMethodSummary
		err  error
	}
	type userResult struct {
		rows []entity.UserSalesSummary
		err  error
	}

	topCh := make(chan topResult, 1)
	catCh := make(chan catResult, 1)
	payCh := make(chan payResult, 1)
	userCh := make(chan userResult, 1)

	go func() {
		rows, err := uc.sales.TopSellingProducts(ctx, topSellingCount)
		topCh <- topResult{rows: rows, err: err}
	}()
	go func() {
		rows, err := uc.products.ProductsByCategory(ctx)
		catCh <- catResult{rows: rows, err: err}
	}()
	go func() {
		rows, err := uc.sales.PaymentMethodSummary(ctx)
		payCh <- payResult{rows: rows, err: err}
	}()
	go func() {
		rows, err := uc.sales.UserSalesSummary(ctx)
		userCh <- userResult{rows: rows, err: err}
	}()

	top := <-topCh
	cat := <-catCh
	pay := <-payCh
	user := <-userCh

	for _, err := range []error{top.err, cat.err, pay.err, user.err} {
		if err != nil {
			return nil, err
		}
	}

	return &dto.ReportBundleDTO{
		TopSellingProducts:   top.rows,
		ProductsByCategory:   cat.rows,
		PaymentMethodSummary: pay.rows,
		UserSalesSummary:     user.rows,
	}, nil
}

// ExportXLSX serializa el paquete como libro de cálculo multi-hoja.
func (uc *UseCase) ExportXLSX(bundle *dto.ReportBundleDTO) ([]byte, error) {
	return uc.exporter.BuildWorkbook(bundle)
}

// ExportPDF serializa el paquete como resumen PDF de una página.
func (uc *UseCase) ExportPDF(bundle *dto.ReportBundleDTO) ([]byte, error) {
	return uc.exporter.BuildSummaryPDF(bundle)
}
