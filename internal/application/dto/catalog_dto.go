package dto

import "github.com/shopspring/decimal"

// Cuerpos de los formularios CRUD. La validación de esquema se resuelve aquí,
// en el borde HTTP de la consola; una entrada inválida nunca llega a la red.

// CategoryRequest alta/edición de categoría.
type CategoryRequest struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SupplierRequest alta/edición de proveedor.
type SupplierRequest struct {
	ID            int    `json:"id,omitempty"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	PhoneNumber   string `json:"phoneNumber"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}

// CustomerRequest alta/edición de cliente.
type CustomerRequest struct {
	ID           int    `json:"id,omitempty"`
	CustomerName string `json:"customerName"`
	PhoneNumber  string `json:"phoneNumber"`
	Email        string `json:"email"`
	Address      string `json:"address"`
}

// ProductRequest alta/edición de producto.
type ProductRequest struct {
	ID                    int             `json:"id,omitempty"`
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

// AddQuantityRequest reposición rápida desde la alerta de stock.
type AddQuantityRequest struct {
	QuantityToAdd int `json:"quantityToAdd"`
}

// RegisterUserRequest alta de usuario desde la página de gestión.
type RegisterUserRequest struct {
	FullName string   `json:"fullName"`
	Email    string   `json:"email"`
	UserName string   `json:"userName"`
	Password string   `json:"password"`
	Roles    []string `json:"roles"`
}
