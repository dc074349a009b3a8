package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stocksync-console/internal/domain/entity"
)

// SalesService endpoints de ventas y reportes contra /Sales.
type SalesService struct {
	client *Client
}

// NewSalesService construye el servicio.
func NewSalesService(client *Client) *SalesService {
	return &SalesService{client: client}
}

// MonthlyRevenue ingreso del mes en curso para la tarjeta del dashboard.
func (s *SalesService) MonthlyRevenue(ctx context.Context) (decimal.Decimal, error) {
	var raw json.RawMessage
	if err := s.client.Do(ctx, http.MethodGet, "/Sales/monthly-revenue", nil, &raw); err != nil {
		return decimal.Zero, err
	}
	return decodeAmount(raw)
}

// ReorderAlerts alertas de reposición calculadas por el backend. La respuesta
// llega como {alerts: [...]}.
func (s *SalesService) ReorderAlerts(ctx context.Context) ([]entity.StockAlert, error) {
	var out struct {
		Alerts []entity.StockAlert `json:"alerts"`
	}
	if err := s.client.Do(ctx, http.MethodGet, "/Sales/reorder-alerts", nil, &out); err != nil {
		return nil, err
	}
	return out.Alerts, nil
}

// TopSellingProducts los topCount productos más vendidos.
func (s *SalesService) TopSellingProducts(ctx context.Context, topCount int) ([]entity.TopSellingProduct, error) {
	var out []entity.TopSellingProduct
	path := fmt.Sprintf("/Sales/top-selling-products?topCount=%d", topCount)
	if err := s.client.Do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PaymentMethodSummary resumen de ventas por método de pago.
func (s *SalesService) PaymentMethodSummary(ctx context.Context) ([]entity.PaymentMethodSummary, error) {
	var out []entity.PaymentMethodSummary
	if err := s.client.Do(ctx, http.MethodGet, "/Sales/payment-method-summary", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserSalesSummary resumen de ventas por usuario.
func (s *SalesService) UserSalesSummary(ctx context.Context) ([]entity.UserSalesSummary, error) {
	var out []entity.UserSalesSummary
	if err := s.client.Do(ctx, http.MethodGet, "/Sales/user-sales-summary", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
