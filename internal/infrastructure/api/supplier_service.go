package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/stocksync-console/internal/application/dto"
	"github.com/jhoicas/stocksync-console/internal/domain/entity"
)

// SupplierService CRUD de proveedores contra /SupplierInformation.
type SupplierService struct {
	client *Client
}

// NewSupplierService construye el servicio.
func NewSupplierService(client *Client) *SupplierService {
	return &SupplierService{client: client}
}

// List devuelve todos los proveedores.
func (s *SupplierService) List(ctx context.Context) ([]entity.Supplier, error) {
	var out []entity.Supplier
	if err := s.client.Do(ctx, http.MethodGet, "/SupplierInformation", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create da de alta un proveedor.
func (s *SupplierService) Create(ctx context.Context, in dto.SupplierRequest) error {
	return s.client.Do(ctx, http.MethodPost, "/SupplierInformation", in, nil)
}

// Update edita el proveedor in.ID.
func (s *SupplierService) Update(ctx context.Context, in dto.SupplierRequest) error {
	return s.client.Do(ctx, http.MethodPut, fmt.Sprintf("/SupplierInformation/%d", in.ID), in, nil)
}

// Delete elimina el proveedor id.
func (s *SupplierService) Delete(ctx context.Context, id int) error {
	return s.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/SupplierInformation/%d", id), nil, nil)
}
