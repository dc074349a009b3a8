package view_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stocksync-console/internal/application/view"
)

// countingRefresher cuenta las resincronizaciones pedidas por el poller.
type countingRefresher struct {
	calls atomic.Int32
}

func (r *countingRefresher) Resync(_ context.Context) {
	r.calls.Add(1)
}

func waitForCalls(t *testing.T, r *countingRefresher, want int32) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if r.calls.Load() >= want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("esperaba al menos %d resincronizaciones, hubo %d", want, r.calls.Load())
}

// Caso 1: Run resincroniza al arrancar y luego en cada tick del intervalo.
func TestPoller_RefrescaEnIntervalo(t *testing.T) {
	target := &countingRefresher{}
	poller := view.NewPoller(target, 5*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go poller.Run(ctx)

	// Refresco inicial más al menos dos ticks.
	waitForCalls(t, target, 3)
}

// Caso 2: Kick fuerza un refresco inmediato sin esperar el tick (abrir el
// menú de alertas refresca el badge al instante).
func TestPoller_KickRefrescaInmediato(t *testing.T) {
	target := &countingRefresher{}
	poller := view.NewPoller(target, time.Hour, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go poller.Run(ctx)

	waitForCalls(t, target, 1) // refresco inicial

	poller.Kick()
	waitForCalls(t, target, 2)
}

// Caso 3: Cancelar el contexto detiene el ciclo; no quedan refrescos después.
func TestPoller_CancelacionDetiene(t *testing.T) {
	target := &countingRefresher{}
	poller := view.NewPoller(target, 5*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		poller.Run(ctx)
		close(done)
	}()

	waitForCalls(t, target, 2)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run no terminó tras cancelar el contexto")
	}

	settled := target.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, settled, target.calls.Load(),
		"tras la cancelación no debe haber más refrescos")
}

// Caso 4: Kicks repetidos con el poller ocupado se colapsan sin bloquear.
func TestPoller_KickNoBloquea(t *testing.T) {
	target := &countingRefresher{}
	poller := view.NewPoller(target, time.Hour, nil)

	// Sin Run activo: el canal tiene capacidad 1, el resto se descarta.
	for i := 0; i < 10; i++ {
		poller.Kick()
	}
}
