package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jhoicas/stocksync-console/internal/application/dto"
	"github.com/jhoicas/stocksync-console/internal/domain/entity"
)

// ProductService CRUD de productos contra /Product, más la reposición rápida
// y los agregados que consumen el dashboard y los reportes.
type ProductService struct {
	client *Client
}

// NewProductService construye el servicio.
func NewProductService(client *Client) *ProductService {
	return &ProductService{client: client}
}

// List devuelve todos los productos.
func (s *ProductService) List(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	if err := s.client.Do(ctx, http.MethodGet, "/Product", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create da de alta un producto.
func (s *ProductService) Create(ctx context.Context, in dto.ProductRequest) error {
	return s.client.Do(ctx, http.MethodPost, "/Product", in, nil)
}

// Update edita el producto in.ID.
func (s *ProductService) Update(ctx context.Context, in dto.ProductRequest) error {
	return s.client.Do(ctx, http.MethodPut, fmt.Sprintf("/Product/%d", in.ID), in, nil)
}

// Delete elimina el producto id.
func (s *ProductService) Delete(ctx context.Context, id int) error {
	return s.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/Product/%d", id), nil, nil)
}

// AddQuantity repone stock desde la alerta: PATCH /Product/{id}/add-quantity.
func (s *ProductService) AddQuantity(ctx context.Context, id, quantity int) error {
	in := dto.AddQuantityRequest{QuantityToAdd: quantity}
	return s.client.Do(ctx, http.MethodPatch, fmt.Sprintf("/Product/%d/add-quantity", id), in, nil)
}

// Count devuelve el total de productos para la tarjeta del dashboard.
func (s *ProductService) Count(ctx context.Context) (int, error) {
	var raw json.RawMessage
	if err := s.client.Do(ctx, http.MethodGet, "/Product/Productcount", nil, &raw); err != nil {
		return 0, err
	}
	return decodeCount(raw)
}

// ProductsByCategory distribución de productos por categoría para el gráfico
// de reportes. Este endpoint llega envuelto en {isSuccess, data: {categories}}.
func (s *ProductService) ProductsByCategory(ctx context.Context) ([]entity.CategoryProductInfo, error) {
	var out struct {
		Categories []entity.CategoryProductInfo `json:"categories"`
	}
	if err := s.client.Do(ctx, http.MethodGet, "/Product/products-by-category", nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}
