package view

import (
	"context"
	"time"

	"github.com/jhoicas/stocksync-console/pkg/logger"
)

// Refresher recarga una vista descartando el resultado. Lo satisface View[T].
type Refresher interface {
	Resync(ctx context.Context)
}

// Poller recarga una vista en un intervalo fijo y bajo demanda. Es el único
// refresco en segundo plano del sistema: el badge de alertas de stock se
// actualiza cada cinco minutos y al abrir su menú.
type Poller struct {
	target   Refresher
	interval time.Duration
	kick     chan struct{}
	log      *logger.Logger
}

// NewPoller construye el poller sin arrancarlo.
func NewPoller(target Refresher, interval time.Duration, log *logger.Logger) *Poller {
	if log == nil {
		log = logger.Nop()
	}
	return &Poller{
		target:   target,
		interval: interval,
		kick:     make(chan struct{}, 1),
		log:      log,
	}
}

// Run ejecuta el ciclo de refresco hasta que el contexto se cancele. El ticker
// se detiene al salir; no quedan timers huérfanos tras el apagado.
func (p *Poller) Run(ctx context.Context) {
	p.target.Resync(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.Debug().Msg("poller detenido")
			return
		case <-ticker.C:
			p.target.Resync(ctx)
		case <-p.kick:
			p.target.Resync(ctx)
		}
	}
}

// Kick solicita un refresco inmediato (el menú de notificaciones se abrió).
// No bloquea: si ya hay un kick pendiente, se colapsan en uno.
func (p *Poller) Kick() {
	select {
	case p.kick <- struct{}{}:
	default:
	}
}
