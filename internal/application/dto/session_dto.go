package dto

import (
	"time"

	"github.com/jhoicas/stocksync-console/internal/domain/entity"
)

// LoginRequest cuerpo de POST /api/session.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult lo que el backend devuelve en POST /Auth/login.
type LoginResult struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

// SessionInfo estado actual de la sesión local de la consola.
// ExpiresAt sale de los claims del token (decodificados sin verificar firma:
// la verificación es responsabilidad del backend emisor).
type SessionInfo struct {
	Authenticated bool        `json:"authenticated"`
	User          entity.User `json:"user,omitempty"`
	ExpiresAt     *time.Time  `json:"expiresAt,omitempty"`
}
