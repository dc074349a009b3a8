package report_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocksync-console/internal/application/dto"
	"github.com/jhoicas/stocksync-console/internal/application/report"
	"github.com/jhoicas/stocksync-console/internal/domain"
	"github.com/jhoicas/stocksync-console/internal/domain/entity"
)

// fakeSales implementa report.SalesSource con datos fijos.
type fakeSales struct {
	topErr      error
	gotTopCount int
}

func (f *fakeSales) TopSellingProducts(_ context.Context, topCount int) ([]entity.TopSellingProduct, error) {
	f.gotTopCount = topCount
	if f.topErr != nil {
		return nil, f.topErr
	}
	return []entity.TopSellingProduct{
		{ProductID: 1, ProductName: "Café", QuantitySold: 40, TotalRevenue: decimal.NewFromInt(800)},
	}, nil
}

func (f *fakeSales) PaymentMethodSummary(_ context.Context) ([]entity.PaymentMethodSummary, error) {
	return []entity.PaymentMethodSummary{
		{PaymentMethod: "CASH", SalesCount: 10, TotalAmount: decimal.NewFromInt(500)},
	}, nil
}

func (f *fakeSales) UserSalesSummary(_ context.Context) ([]entity.UserSalesSummary, error) {
	return []entity.UserSalesSummary{
		{UserName: "ana", SalesCount: 7, TotalSales: decimal.NewFromInt(350)},
	}, nil
}

// fakeProducts implementa report.ProductSource.
type fakeProducts struct{}

func (fakeProducts) ProductsByCategory(_ context.Context) ([]entity.CategoryProductInfo, error) {
	return []entity.CategoryProductInfo{{CategoryName: "Bebidas", ProductCount: 12}}, nil
}

// fakeExporter registra el paquete que recibió.
type fakeExporter struct {
	got *dto.ReportBundleDTO
}

func (f *fakeExporter) BuildWorkbook(bundle *dto.ReportBundleDTO) ([]byte, error) {
	f.got = bundle
	return []byte("xlsx"), nil
}

func (f *fakeExporter) BuildSummaryPDF(bundle *dto.ReportBundleDTO) ([]byte, error) {
	f.got = bundle
	return []byte("pdf"), nil
}

// Caso 1: Fetch reúne los cuatro conjuntos y pide el top 10 por defecto.
func TestReportFetch_ReuneLosCuatro(t *testing.T) {
	sales := &fakeSales{}
	uc := report.NewUseCase(sales, fakeProducts{}, &fakeExporter{})

	bundle, err := uc.Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 10, sales.gotTopCount, "el ranking de reportes es top 10")
	assert.Len(t, bundle.TopSellingProducts, 1)
	assert.Len(t, bundle.ProductsByCategory, 1)
	assert.Len(t, bundle.PaymentMethodSummary, 1)
	assert.Len(t, bundle.UserSalesSummary, 1)
}

// Caso 2: Si cualquiera de las fuentes falla, la página entera falla: los
// reportes se muestran completos o no se muestran.
func TestReportFetch_FalloDeUnaFuente(t *testing.T) {
	sales := &fakeSales{topErr: domain.ErrNetwork}
	uc := report.NewUseCase(sales, fakeProducts{}, &fakeExporter{})

	bundle, err := uc.Fetch(context.Background())

	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.Nil(t, bundle)
}

// Caso 3: Los exports delegan en el exporter con el paquete tal cual.
func TestReportExport_DelegaEnExporter(t *testing.T) {
	exporter := &fakeExporter{}
	uc := report.NewUseCase(&fakeSales{}, fakeProducts{}, exporter)

	bundle, err := uc.Fetch(context.Background())
	require.NoError(t, err)

	data, err := uc.ExportXLSX(bundle)
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), data)
	assert.Same(t, bundle, exporter.got)

	data, err = uc.ExportPDF(bundle)
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf"), data)
}
