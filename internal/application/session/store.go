// Package session gestiona la credencial bearer de la consola: persistencia
// local, resolución con reintentos (la vista puede montarse antes de que el
// login termine de escribir el token) e inspección de los claims.
package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/stocksync-console/internal/domain/entity"
)

const sessionFileName = "session.json"

// sessionFile formato en disco: el análogo del par authToken/user que la
// interfaz original guardaba en el almacenamiento del navegador.
type sessionFile struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

// Store persistencia de la sesión en un archivo JSON bajo el directorio de
// configuración del usuario. Se inyecta explícitamente a quien la necesita;
// no hay estado global ambiente.
type Store struct {
	mu   sync.RWMutex
	path string
}

// NewStore construye el store. dir vacío usa os.UserConfigDir()/stocksync.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "stocksync")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &Store{path: filepath.Join(dir, sessionFileName)}, nil
}

// Token devuelve la credencial actual. ok=false si no hay sesión guardada.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, err := s.read()
	if err != nil || f.Token == "" {
		return "", false
	}
	return f.Token, true
}

// User devuelve el perfil guardado junto al token.
func (s *Store) User() (entity.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, err := s.read()
	if err != nil || f.Token == "" {
		return entity.User{}, false
	}
	return f.User, true
}

// Save persiste token y perfil. Se invoca únicamente desde el flujo de login;
// es el único escritor durante la vida de la sesión.
func (s *Store) Save(token string, user entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(sessionFile{Token: token, User: user}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Clear destruye la sesión (logout). Ignora la ausencia del archivo.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (s *Store) read() (*sessionFile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	var f sessionFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}
