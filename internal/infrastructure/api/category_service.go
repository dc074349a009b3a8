package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jhoicas/stocksync-console/internal/application/dto"
	"github.com/jhoicas/stocksync-console/internal/domain/entity"
)

// CategoryService CRUD de categorías contra /Category.
type CategoryService struct {
	client *Client
}

// NewCategoryService construye el servicio.
func NewCategoryService(client *Client) *CategoryService {
	return &CategoryService{client: client}
}

// List devuelve todas las categorías.
func (s *CategoryService) List(ctx context.Context) ([]entity.Category, error) {
	var out []entity.Category
	if err := s.client.Do(ctx, http.MethodGet, "/Category", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create da de alta una categoría.
func (s *CategoryService) Create(ctx context.Context, in dto.CategoryRequest) error {
	return s.client.Do(ctx, http.MethodPost, "/Category", in, nil)
}

// Update edita la categoría in.ID. El backend espera el id también en el cuerpo.
func (s *CategoryService) Update(ctx context.Context, in dto.CategoryRequest) error {
	return s.client.Do(ctx, http.MethodPut, fmt.Sprintf("/Category/%d", in.ID), in, nil)
}

// Delete elimina la categoría id.
func (s *CategoryService) Delete(ctx context.Context, id int) error {
	return s.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/Category/%d", id), nil, nil)
}

// Count devuelve el total de categorías para la tarjeta del dashboard.
func (s *CategoryService) Count(ctx context.Context) (int, error) {
	var raw json.RawMessage
	if err := s.client.Do(ctx, http.MethodGet, "/Category/count", nil, &raw); err != nil {
		return 0, err
	}
	return decodeCount(raw)
}
