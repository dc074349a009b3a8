package mutation_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocksync-console/internal/application/mutation"
	"github.com/jhoicas/stocksync-console/internal/domain"
)

// spyRefresher registra si la vista fue resincronizada.
type spyRefresher struct {
	resyncs int
}

func (r *spyRefresher) Resync(_ context.Context) {
	r.resyncs++
}

// spyNotifier acumula notificaciones por nivel.
type spyNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (s *spyNotifier) Success(_, description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.successes = append(s.successes, description)
}

func (s *spyNotifier) Error(_, description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = append(s.errors, description)
}

// Caso 1: Mutación exitosa → notificación de éxito y resincronización de la
// vista (refetch completo, nunca parche local).
func TestFlowSubmit_ExitoResincroniza(t *testing.T) {
	target := &spyRefresher{}
	notifier := &spyNotifier{}
	flow := mutation.NewFlow(target, notifier, nil)

	err := flow.Submit(context.Background(), "Categoría creada.", func(ctx context.Context) error {
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, target.resyncs, "el éxito debe recargar la vista")
	assert.Equal(t, []string{"Categoría creada."}, notifier.successes)
	assert.Empty(t, notifier.errors)
}

// Caso 2: Mutación fallida → notificación de error, la vista no se toca y el
// error se propaga al caller.
func TestFlowSubmit_FalloDejaVistaIntacta(t *testing.T) {
	target := &spyRefresher{}
	notifier := &spyNotifier{}
	flow := mutation.NewFlow(target, notifier, nil)

	boom := errors.New("backend caído")
	err := flow.Submit(context.Background(), "Categoría creada.", func(ctx context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Zero(t, target.resyncs, "un fallo no debe tocar la vista")
	assert.Empty(t, notifier.successes)
	require.Len(t, notifier.errors, 1)
	assert.Equal(t, "backend caído", notifier.errors[0])
}

// Caso 3: Fallo de autenticación en la mutación → el error expirado llega al
// caller con su mensaje legible; la vista tampoco se resincroniza.
func TestFlowSubmit_SesionExpirada(t *testing.T) {
	target := &spyRefresher{}
	notifier := &spyNotifier{}
	flow := mutation.NewFlow(target, notifier, nil)

	err := flow.Submit(context.Background(), "Producto actualizado.", func(ctx context.Context) error {
		return domain.ErrAuthExpired
	})

	assert.ErrorIs(t, err, domain.ErrAuthExpired)
	assert.Zero(t, target.resyncs)
	require.Len(t, notifier.errors, 1)
	assert.Equal(t, "la sesión ha expirado, inicia sesión de nuevo", notifier.errors[0])
}

// Caso 4: RequireSelection rechaza ids inválidos antes de tocar la red.
func TestRequireSelection(t *testing.T) {
	assert.ErrorIs(t, mutation.RequireSelection(0), domain.ErrNoSelection)
	assert.ErrorIs(t, mutation.RequireSelection(-3), domain.ErrNoSelection)
	assert.NoError(t, mutation.RequireSelection(1))
}
