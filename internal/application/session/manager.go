package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jhoicas/stocksync-console/internal/application/dto"
	"github.com/jhoicas/stocksync-console/internal/domain"
	"github.com/jhoicas/stocksync-console/pkg/logger"
)

// Authenticator puerto hacia el endpoint de login del backend.
// Lo implementa api.AuthService; aquí solo se conoce el contrato.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*dto.LoginResult, error)
}

// Manager orquesta el ciclo de vida de la sesión: login escribe el store,
// logout lo destruye, Info describe el estado actual para la cabecera.
type Manager struct {
	store *Store
	auth  Authenticator
	log   *logger.Logger
}

// NewManager construye el manager.
func NewManager(store *Store, auth Authenticator, log *logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop()
	}
	return &Manager{store: store, auth: auth, log: log}
}

// Login autentica contra el backend y persiste token + perfil.
func (m *Manager) Login(ctx context.Context, in dto.LoginRequest) (*dto.SessionInfo, error) {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, domain.ErrValidation
	}

	res, err := m.auth.Login(ctx, in.Email, in.Password)
	if err != nil {
		// En el login un 401 significa credenciales malas, no sesión caducada.
		if errors.Is(err, domain.ErrAuthExpired) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := m.store.Save(res.Token, res.User); err != nil {
		return nil, err
	}

	m.log.Info().Str("email", in.Email).Msg("sesión iniciada")
	info := m.info()
	return &info, nil
}

// Logout destruye la sesión local. El token del backend sigue siendo válido
// hasta su expiración; la consola simplemente deja de conocerlo.
func (m *Manager) Logout() error {
	if err := m.store.Clear(); err != nil {
		return err
	}
	m.log.Info().Msg("sesión cerrada")
	return nil
}

// Info devuelve el estado de la sesión para la cabecera de la consola.
func (m *Manager) Info() dto.SessionInfo {
	return m.info()
}

func (m *Manager) info() dto.SessionInfo {
	token, ok := m.store.Token()
	if !ok {
		return dto.SessionInfo{Authenticated: false}
	}

	info := dto.SessionInfo{Authenticated: true}
	if user, ok := m.store.User(); ok {
		info.User = user
	}
	if exp := tokenExpiry(token); exp != nil {
		info.ExpiresAt = exp
	}
	return info
}

// tokenExpiry decodifica el claim exp sin verificar la firma: el token es
// opaco para la consola y solo el backend emisor puede validarlo. Devuelve
// nil si el token no es un JWT o no lleva expiración.
func tokenExpiry(token string) *time.Time {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	t := exp.Time
	return &t
}
