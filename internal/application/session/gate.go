package session

import (
	"context"
	"time"

	"github.com/jhoicas/stocksync-console/internal/domain"
	"github.com/jhoicas/stocksync-console/pkg/logger"
)

// TokenReader lectura de la credencial actual. ok=false cuando no hay sesión.
type TokenReader interface {
	Token() (string, bool)
}

// Gate resuelve la credencial antes de cualquier llamada autenticada.
//
// Si el store aún no tiene token (ventana entre el login y la escritura de la
// sesión), espera delay y reintenta hasta maxRetries veces. Agotar los
// reintentos devuelve domain.ErrNoCredential: el caller debe degradar la vista
// ("N/A" o notificación de autenticación), nunca fallar en silencio.
//
// La cancelación del contexto aborta los reintentos pendientes; un caller que
// se desmonta no deja timers huérfanos.
type Gate struct {
	reader     TokenReader
	maxRetries int
	delay      time.Duration
	log        *logger.Logger
}

// NewGate construye el gate. Valores observados razonables: 3–5 reintentos,
// 500–1500 ms de espera.
func NewGate(reader TokenReader, maxRetries int, delay time.Duration, log *logger.Logger) *Gate {
	if log == nil {
		log = logger.Nop()
	}
	return &Gate{reader: reader, maxRetries: maxRetries, delay: delay, log: log}
}

// Resolve devuelve la credencial o domain.ErrNoCredential tras agotar los
// reintentos. No tiene más efectos que lecturas del store y timers.
func (g *Gate) Resolve(ctx context.Context) (string, error) {
	if token, ok := g.reader.Token(); ok {
		return token, nil
	}

	for attempt := 1; attempt <= g.maxRetries; attempt++ {
		timer := time.NewTimer(g.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", ctx.Err()
		case <-timer.C:
		}

		if token, ok := g.reader.Token(); ok {
			g.log.Debug().Int("attempt", attempt).Msg("credencial resuelta tras reintento")
			return token, nil
		}
	}

	g.log.Warn().Int("retries", g.maxRetries).Msg("credencial ausente tras agotar reintentos")
	return "", domain.ErrNoCredential
}
