package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/stocksync-console/internal/application/dto"
	"github.com/jhoicas/stocksync-console/internal/domain/entity"
)

// CustomerService CRUD de clientes contra /Customers.
type CustomerService struct {
	client *Client
}

// NewCustomerService construye el servicio.
func NewCustomerService(client *Client) *CustomerService {
	return &CustomerService{client: client}
}

// List devuelve todos los clientes.
func (s *CustomerService) List(ctx context.Context) ([]entity.Customer, error) {
	var out []entity.Customer
	if err := s.client.Do(ctx, http.MethodGet, "/Customers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create da de alta un cliente.
func (s *CustomerService) Create(ctx context.Context, in dto.CustomerRequest) error {
	return s.client.Do(ctx, http.MethodPost, "/Customers", in, nil)
}

// Update edita el cliente in.ID.
func (s *CustomerService) Update(ctx context.Context, in dto.CustomerRequest) error {
	return s.client.Do(ctx, http.MethodPut, fmt.Sprintf("/Customers/%d", in.ID), in, nil)
}

// Delete elimina el cliente id.
func (s *CustomerService) Delete(ctx context.Context, id int) error {
	return s.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/Customers/%d", id), nil, nil)
}
