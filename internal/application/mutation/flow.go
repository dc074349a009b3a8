// Package mutation implementa el ciclo submit-y-resincroniza de los
// formularios: una llamada autenticada al backend y, si tuvo éxito, una
// recarga completa de la vista asociada. El diseño acepta consistencia
// eventual antes que parches locales especulativos.
package mutation

import (
	"context"

	"github.com/jhoicas/stocksync-console/internal/application/ports"
	"github.com/jhoicas/stocksync-console/internal/application/view"
	"github.com/jhoicas/stocksync-console/internal/domain"
	"github.com/jhoicas/stocksync-console/pkg/logger"
)

// Operation una llamada de mutación al backend (POST, PUT, PATCH o DELETE).
type Operation func(ctx context.Context) error

// Flow liga las mutaciones de una página con la vista que deben resincronizar.
type Flow struct {
	target   view.Refresher
	notifier ports.Notifier
	log      *logger.Logger
}

// NewFlow construye el flujo para una vista.
func NewFlow(target view.Refresher, notifier ports.Notifier, log *logger.Logger) *Flow {
	if notifier == nil {
		notifier = ports.NopNotifier{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Flow{target: target, notifier: notifier, log: log}
}

// Submit ejecuta la operación. En éxito notifica y recarga la vista (refetch
// completo, no parche local); en fallo notifica la razón y deja intacto el
// último estado Ready de la vista.
func (f *Flow) Submit(ctx context.Context, description string, op Operation) error {
	if err := op(ctx); err != nil {
		f.log.Warn().Str("operation", description).Err(err).Msg("mutación fallida")
		f.notifier.Error("Error", err.Error())
		return err
	}

	f.notifier.Success("Éxito", description)
	f.target.Resync(ctx)
	return nil
}

// RequireSelection guarda de precondición para update/delete construidos desde
// la fila seleccionada: sin id válido la operación se rechaza antes de tocar
// la red.
func RequireSelection(id int) error {
	if id <= 0 {
		return domain.ErrNoSelection
	}
	return nil
}
