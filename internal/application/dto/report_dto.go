package dto

import "github.com/jhoicas/stocksync-console/internal/domain/entity"

// ReportBundleDTO los cuatro conjuntos de datos de la página de reportes,
// obtenidos en paralelo y exportables como libro XLSX o resumen PDF.
type ReportBundleDTO struct {
	TopSellingProducts   []entity.TopSellingProduct    `json:"topSellingProducts"`
	ProductsByCategory   []entity.CategoryProductInfo  `json:"productsByCategory"`
	PaymentMethodSummary []entity.PaymentMethodSummary `json:"paymentMethodSummary"`
	UserSalesSummary     []entity.UserSalesSummary     `json:"userSalesSummary"`
}

// DashboardSummaryDTO tarjetas de estadísticas del dashboard. Cada tarjeta se
// resuelve de forma independiente: el fallo de una no afecta a las otras.
type DashboardSummaryDTO struct {
	UserCount       StatDTO `json:"userCount"`
	CategoryCount   StatDTO `json:"categoryCount"`
	ProductCount    StatDTO `json:"productCount"`
	StockAlertCount StatDTO `json:"stockAlertCount"`
	MonthlyRevenue  StatDTO `json:"monthlyRevenue"`
}
