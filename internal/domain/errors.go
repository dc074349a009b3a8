package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
//
// Taxonomía de fallos de acceso al backend:
//   - ErrNoCredential: no hay token en la sesión local tras agotar los reintentos.
//   - ErrAuthExpired:  el backend respondió 401; la sesión debe renovarse.
//   - ErrNetwork:      fallo de transporte (sin conexión, timeout).
//   - ServerError:     cualquier otro non-2xx, con el detalle del cuerpo si existe.
var (
	ErrNoCredential = errors.New("no hay credencial de sesión disponible")
	ErrAuthExpired  = errors.New("la sesión ha expirado, inicia sesión de nuevo")
	ErrNetwork      = errors.New("no se pudo conectar con el servidor")
	ErrNoSelection  = errors.New("no hay registro seleccionado para la operación")

	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrValidation         = errors.New("entrada inválida")
	ErrNotFound           = errors.New("recurso no encontrado")
)

// ServerError representa una respuesta non-2xx distinta de 401.
// Message lleva el texto del cuerpo de la respuesta si el backend envió alguno.
type ServerError struct {
	Status  int
	Message string
}

// Error implementa error.
func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("el servidor respondió %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("el servidor respondió %d", e.Status)
}

// NewServerError construye un ServerError con mensaje genérico si el cuerpo venía vacío.
func NewServerError(status int, body string) *ServerError {
	return &ServerError{Status: status, Message: body}
}

// IsServerError indica si err envuelve un ServerError y lo devuelve.
func IsServerError(err error) (*ServerError, bool) {
	var se *ServerError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
