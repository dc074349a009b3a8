package entity

import "github.com/shopspring/decimal"

// Filas de los reportes de ventas. Todas vienen calculadas del backend; la
// consola las agrupa para los gráficos y el export consolidado.

// TopSellingProduct fila de GET /Sales/top-selling-products.
type TopSellingProduct struct {
	ProductID    int             `json:"productId"`
	ProductName  string          `json:"productName"`
	QuantitySold int             `json:"quantitySold"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

// CategoryProductInfo fila de GET /Product/products-by-category.
type CategoryProductInfo struct {
	CategoryName string `json:"categoryName"`
	ProductCount int    `json:"productCount"`
}

// PaymentMethodSummary fila de GET /Sales/payment-method-summary.
type PaymentMethodSummary struct {
	PaymentMethod string          `json:"paymentMethod"`
	SalesCount    int             `json:"salesCount"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}

// UserSalesSummary fila de GET /Sales/user-sales-summary.
type UserSalesSummary struct {
	UserName   string          `json:"userName"`
	SalesCount int             `json:"salesCount"`
	TotalSales decimal.Decimal `json:"totalSales"`
}
