// Package view implementa la máquina de estados Loading → Ready | Unavailable
// que gobierna lo que cada página de la consola muestra. Cada transición
// reemplaza el estado mostrado por completo: nunca conviven datos Ready con un
// spinner de Loading para la misma vista.
package view

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/stocksync-console/internal/application/ports"
	"github.com/jhoicas/stocksync-console/internal/domain"
	"github.com/jhoicas/stocksync-console/pkg/logger"
)

// Status estado de una vista.
type Status string

const (
	StatusLoading     Status = "loading"
	StatusReady       Status = "ready"
	StatusUnavailable Status = "unavailable"
)

// Códigos de razón de una vista no disponible.
const (
	ReasonNoCredential = "NO_CREDENTIAL"
	ReasonAuthExpired  = "AUTH_EXPIRED"
	ReasonServerError  = "SERVER_ERROR"
	ReasonNetworkError = "NETWORK_ERROR"
)

// Snapshot lo que la vista muestra en un instante dado.
type Snapshot[T any] struct {
	Status Status `json:"status"`
	Data   T      `json:"data,omitempty"`
	Reason string `json:"reason,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// LoadFunc obtiene los datos de la vista. Normalmente envuelve una llamada
// autenticada al backend (Gate → fetch → decode).
type LoadFunc[T any] func(ctx context.Context) (T, error)

// View vista tipada con una función de carga fija. Las recargas concurrentes
// se resuelven con last-write-wins: gana el fetch que inició más tarde,
// independientemente del orden en que terminen.
type View[T any] struct {
	name     string
	load     LoadFunc[T]
	notifier ports.Notifier
	log      *logger.Logger

	mu      sync.Mutex
	current Snapshot[T]
	gen     uint64 // generación del último Refresh iniciado
	applied uint64 // generación del último resultado aplicado
}

// New construye la vista en estado Loading (el estado de montaje).
func New[T any](name string, load LoadFunc[T], notifier ports.Notifier, log *logger.Logger) *View[T] {
	if notifier == nil {
		notifier = ports.NopNotifier{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &View[T]{
		name:     name,
		load:     load,
		notifier: notifier,
		log:      log,
		current:  Snapshot[T]{Status: StatusLoading},
	}
}

// Refresh ejecuta el ciclo completo de carga y devuelve el snapshot
// resultante. Un fallo notifica al usuario y deja la vista Unavailable; los
// datos Ready anteriores se descartan, no hay superposición parcial.
func (v *View[T]) Refresh(ctx context.Context) Snapshot[T] {
	v.mu.Lock()
	v.gen++
	myGen := v.gen
	// Entrar en Loading también reemplaza el estado completo: los datos Ready
	// anteriores no deben convivir con el spinner.
	v.current = Snapshot[T]{Status: StatusLoading}
	v.mu.Unlock()

	data, err := v.load(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()

	// Un Refresh iniciado después ya aplicó su resultado: este queda obsoleto.
	if myGen <= v.applied {
		return v.current
	}
	v.applied = myGen

	if err != nil {
		reason, detail := classify(err)
		v.current = Snapshot[T]{Status: StatusUnavailable, Reason: reason, Detail: detail}
		v.log.Warn().Str("view", v.name).Str("reason", reason).Str("detail", detail).Msg("vista no disponible")
		v.notifier.Error("Error", detail)
		return v.current
	}

	v.current = Snapshot[T]{Status: StatusReady, Data: data}
	return v.current
}

// Resync recarga la vista descartando el snapshot. Es el gancho que usa el
// flujo de mutaciones para resincronizar tras un submit exitoso.
func (v *View[T]) Resync(ctx context.Context) {
	v.Refresh(ctx)
}

// Snapshot devuelve el estado actual sin disparar una carga.
func (v *View[T]) Snapshot() Snapshot[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

// classify mapea la taxonomía de errores de dominio a códigos de razón y a un
// texto legible para la notificación.
func classify(err error) (reason, detail string) {
	switch {
	case errors.Is(err, domain.ErrNoCredential):
		return ReasonNoCredential, domain.ErrNoCredential.Error()
	case errors.Is(err, domain.ErrAuthExpired):
		return ReasonAuthExpired, domain.ErrAuthExpired.Error()
	case errors.Is(err, domain.ErrNetwork):
		return ReasonNetworkError, domain.ErrNetwork.Error()
	default:
		if se, ok := domain.IsServerError(err); ok {
			return ReasonServerError, se.Error()
		}
		return ReasonServerError, err.Error()
	}
}
