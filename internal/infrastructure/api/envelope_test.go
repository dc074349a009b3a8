package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocksync-console/internal/infrastructure/api"
)

// El backend real es inconsistente entre endpoints: payload desnudo, sobre
// {isSuccess, data}, conteos como número o como objeto. Estos tests fijan que
// toda esa deriva se normaliza en el cliente y los servicios devuelven siempre
// la forma canónica.

// Caso 1: Listado desnudo → se decodifica directo.
func TestDecode_PayloadDesnudo(t *testing.T) {
	client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"name":"Bebidas"}]`))
	})

	rows, err := api.NewCategoryService(client).List(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Bebidas", rows[0].Name)
}

// Caso 2: El mismo listado envuelto en {isSuccess, data} → mismo resultado.
func TestDecode_SobreIsSuccessData(t *testing.T) {
	client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"isSuccess":true,"data":[{"id":1,"name":"Bebidas"}]}`))
	})

	rows, err := api.NewCategoryService(client).List(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Bebidas", rows[0].Name)
}

// Caso 3: Sobre {data} sin isSuccess (payment-method-summary) → también se
// desenvuelve.
func TestDecode_SobreSoloData(t *testing.T) {
	client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"paymentMethod":"CASH","salesCount":3,"totalAmount":"150.50"}]}`))
	})

	rows, err := api.NewSalesService(client).PaymentMethodSummary(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "CASH", rows[0].PaymentMethod)
	assert.Equal(t, "150.5", rows[0].TotalAmount.String())
}

// Caso 4: Conteo como número desnudo y como objeto {count} → mismo entero.
func TestDecode_FormasDeConteo(t *testing.T) {
	bodies := []string{`42`, `{"count":42}`, `{"isSuccess":true,"data":42}`}

	for _, body := range bodies {
		payload := body
		client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(payload))
		})

		n, err := api.NewCategoryService(client).Count(context.Background())

		require.NoError(t, err, "cuerpo: %s", payload)
		assert.Equal(t, 42, n, "cuerpo: %s", payload)
	}
}

// Caso 5: Ingreso mensual como número desnudo y como {totalRevenue}.
func TestDecode_FormasDeIngresoMensual(t *testing.T) {
	bodies := []string{`1250.75`, `{"totalRevenue":1250.75}`}

	for _, body := range bodies {
		payload := body
		client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(payload))
		})

		amount, err := api.NewSalesService(client).MonthlyRevenue(context.Background())

		require.NoError(t, err, "cuerpo: %s", payload)
		assert.Equal(t, "1250.75", amount.StringFixed(2), "cuerpo: %s", payload)
	}
}

// Caso 6: Alertas de reposición envueltas en {alerts}.
func TestDecode_AlertasEnvueltas(t *testing.T) {
	client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"alerts":[{"productId":9,"productName":"Café","currentStock":2,"urgencyLevel":"HIGH"}]}`))
	})

	alerts, err := api.NewSalesService(client).ReorderAlerts(context.Background())

	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "Café", alerts[0].ProductName)
	assert.Equal(t, "HIGH", alerts[0].UrgencyLevel)
}

// Caso 7: Distribución por categoría con sobre y objeto {categories} anidado.
func TestDecode_ProductosPorCategoria(t *testing.T) {
	client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"isSuccess":true,"data":{"categories":[{"categoryName":"Lácteos","productCount":12}]}}`))
	})

	rows, err := api.NewProductService(client).ProductsByCategory(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Lácteos", rows[0].CategoryName)
	assert.Equal(t, 12, rows[0].ProductCount)
}

// Caso 8: Un cuerpo fuera de todo esquema conocido se rechaza con error.
func TestDecode_ConteoFueraDeEsquema(t *testing.T) {
	client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total":42}`))
	})

	_, err := api.NewCategoryService(client).Count(context.Background())
	assert.Error(t, err, "un conteo irreconocible no debe pasar en silencio")
}
