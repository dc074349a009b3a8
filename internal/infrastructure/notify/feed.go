// Package notify implementa el puerto Notifier: el equivalente de los toasts
// de la interfaz. Cada notificación se registra en el log estructurado y se
// acumula en un feed en memoria que la cabecera de la consola puede consultar.
package notify

import (
	"sync"
	"time"

	"github.com/jhoicas/stocksync-console/internal/application/ports"
	"github.com/jhoicas/stocksync-console/pkg/logger"
)

const feedCapacity = 50

// Verificar en tiempo de compilación que Feed implementa Notifier.
var _ ports.Notifier = (*Feed)(nil)

// Notification un aviso visible al usuario.
type Notification struct {
	Level       string    `json:"level"` // success, error
	Title       string    `json:"title"`
	Description string    `json:"description"`
	At          time.Time `json:"at"`
}

// Feed buffer circular de notificaciones recientes.
type Feed struct {
	mu      sync.Mutex
	entries []Notification
	log     *logger.Logger
}

// NewFeed construye el feed.
func NewFeed(log *logger.Logger) *Feed {
	if log == nil {
		log = logger.Nop()
	}
	return &Feed{log: log}
}

// Success registra un aviso de operación exitosa.
func (f *Feed) Success(title, description string) {
	f.log.Info().Str("title", title).Msg(description)
	f.push(Notification{Level: "success", Title: title, Description: description, At: time.Now()})
}

// Error registra un aviso de fallo con descripción legible.
func (f *Feed) Error(title, description string) {
	f.log.Warn().Str("title", title).Msg(description)
	f.push(Notification{Level: "error", Title: title, Description: description, At: time.Now()})
}

// Recent devuelve las notificaciones acumuladas, de la más nueva a la más vieja.
func (f *Feed) Recent() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Notification, len(f.entries))
	for i, n := range f.entries {
		out[len(f.entries)-1-i] = n
	}
	return out
}

func (f *Feed) push(n Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.entries = append(f.entries, n)
	if len(f.entries) > feedCapacity {
		f.entries = f.entries[len(f.entries)-feedCapacity:]
	}
}
