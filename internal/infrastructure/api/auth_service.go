package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jhoicas/stocksync-console/internal/application/dto"
	"github.com/jhoicas/stocksync-console/internal/domain/entity"
)

// AuthService endpoints de autenticación y gestión de usuarios.
type AuthService struct {
	client *Client
}

// NewAuthService construye el servicio.
func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

// Login autentica contra POST /Auth/login. Es la única llamada sin credencial.
func (s *AuthService) Login(ctx context.Context, email, password string) (*dto.LoginResult, error) {
	in := dto.LoginRequest{Email: email, Password: password}
	var out dto.LoginResult
	if err := s.client.DoPublic(ctx, http.MethodPost, "/Auth/login", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Users lista los usuarios del sistema.
func (s *AuthService) Users(ctx context.Context) ([]entity.User, error) {
	var out []entity.User
	if err := s.client.Do(ctx, http.MethodGet, "/Auth", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Register da de alta un usuario desde la página de gestión.
func (s *AuthService) Register(ctx context.Context, in dto.RegisterUserRequest) error {
	return s.client.Do(ctx, http.MethodPost, "/Auth/MobileUserRegister", in, nil)
}

// UserCount devuelve el total de usuarios para la tarjeta del dashboard.
func (s *AuthService) UserCount(ctx context.Context) (int, error) {
	var raw json.RawMessage
	if err := s.client.Do(ctx, http.MethodGet, "/Auth/UserCount", nil, &raw); err != nil {
		return 0, err
	}
	return decodeCount(raw)
}
