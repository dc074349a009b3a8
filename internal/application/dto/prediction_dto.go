package dto

import "github.com/shopspring/decimal"

// StockPredictionInput entrada de la predicción de nivel de stock.
// Son los cuatro indicadores que la tarjeta del dashboard envía al modelo.
type StockPredictionInput struct {
	MonthlyRevenue        decimal.Decimal `json:"monthlyRevenue"`
	TotalProducts         int             `json:"totalProducts"`
	StockAlerts           int             `json:"stockAlerts"`
	CurrentInventoryValue decimal.Decimal `json:"currentInventoryValue"`
}

// StockPredictionOutput salida del modelo: valor objetivo de reposición y el
// razonamiento textual detrás de la sugerencia.
type StockPredictionOutput struct {
	TargetStockRefillValue decimal.Decimal `json:"targetStockRefillValue"`
	Reasoning              string          `json:"reasoning"`
}
