package entity

import "github.com/shopspring/decimal"

// Product representa un producto del inventario tal como lo expone el backend.
// Los precios se manejan con decimal para no perder precisión al reexportarlos.
type Product struct {
	ID                    int             `json:"id"`
	CategoryID            int             `json:"categoryId"`
	SupplierID            int             `json:"supplierId"`
	ProductName           string          `json:"productName"`
	Description           string          `json:"description"`
	PricePerUnit          decimal.Decimal `json:"pricePerUnit"`
	PricePerUnitPurchased decimal.Decimal `json:"pricePerUnitPurchased"`
	StockQuantity         int             `json:"stockQuantity"`
	SKU                   string          `json:"sku"`
	ReorderLevel          int             `json:"reorderLevel"`
	LeadTimeDays          int             `json:"leadTimeDays,omitempty"`
}
