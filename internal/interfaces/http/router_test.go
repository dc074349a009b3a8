package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocksync-console/internal/application/dashboard"
	"github.com/jhoicas/stocksync-console/internal/application/report"
	"github.com/jhoicas/stocksync-console/internal/application/session"
	"github.com/jhoicas/stocksync-console/internal/domain/entity"
	"github.com/jhoicas/stocksync-console/internal/infrastructure/api"
	"github.com/jhoicas/stocksync-console/internal/infrastructure/export"
	"github.com/jhoicas/stocksync-console/internal/infrastructure/notify"
	apphttp "github.com/jhoicas/stocksync-console/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeBackend registra cada llamada recibida y responde según la ruta.
type fakeBackend struct {
	mu       sync.Mutex
	requests []string // "GET /Category"
	handler  http.HandlerFunc
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.requests = append(b.requests, r.Method+" "+r.URL.Path)
	b.mu.Unlock()
	b.handler(w, r)
}

func (b *fakeBackend) count(call string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, req := range b.requests {
		if req == call {
			n++
		}
	}
	return n
}

// console levanta la consola completa cableada contra el backend falso: store
// con sesión ya iniciada, gate sin esperas, servicios reales y el router.
func console(t *testing.T, backend *fakeBackend) (*fiber.App, *notify.Feed) {
	t.Helper()

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	store, err := session.NewStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Save("tok-test", entity.User{ID: "u-1", UserName: "ana"}))

	gate := session.NewGate(store, 1, time.Millisecond, nil)
	client := api.NewClient(srv.URL, 5*time.Second, gate, nil)

	authSvc := api.NewAuthService(client)
	categorySvc := api.NewCategoryService(client)
	productSvc := api.NewProductService(client)
	supplierSvc := api.NewSupplierService(client)
	customerSvc := api.NewCustomerService(client)
	salesSvc := api.NewSalesService(client)

	feed := notify.NewFeed(nil)
	manager := session.NewManager(store, authSvc, nil)
	reportUC := report.NewUseCase(salesSvc, productSvc, export.NewReportExporter())
	summaryUC := dashboard.NewUseCase(dashboard.Sources{
		UserCount:      authSvc.UserCount,
		CategoryCount:  categorySvc.Count,
		ProductCount:   productSvc.Count,
		AlertCount:     func(ctx context.Context) (int, error) { return 0, nil },
		MonthlyRevenue: salesSvc.MonthlyRevenue,
	}, nil)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Session:    apphttp.NewSessionHandler(manager),
		Dashboard:  apphttp.NewDashboardHandler(summaryUC, nil),
		Categories: apphttp.NewCategoryHandler(categorySvc, feed, nil),
		Products:   apphttp.NewProductHandler(productSvc, categorySvc, supplierSvc, feed, nil),
		Suppliers:  apphttp.NewSupplierHandler(supplierSvc, feed, nil),
		Customers:  apphttp.NewCustomerHandler(customerSvc, feed, nil),
		Users:      apphttp.NewUserHandler(authSvc, feed, nil),
		Alerts:     apphttp.NewStockAlertHandler(salesSvc, productSvc, time.Hour, feed, nil),
		Reports:    apphttp.NewReportHandler(reportUC, feed, nil),
		Feed:       feed,
	})
	return app, feed
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del ciclo de páginas
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Página de categorías con backend sano → snapshot ready con datos.
func TestCategorias_CargaReady(t *testing.T) {
	backend := &fakeBackend{handler: func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"name":"Bebidas"}]`))
	}}
	app, _ := console(t, backend)

	resp, body := doJSON(t, app, http.MethodGet, "/api/categories/", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ready", body["status"])
	data, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 1)
}

// Caso 2: Backend con 401 → snapshot unavailable AUTH_EXPIRED con el mensaje
// legible, y la notificación queda en el feed.
func TestCategorias_SesionExpirada(t *testing.T) {
	backend := &fakeBackend{handler: func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "expired", http.StatusUnauthorized)
	}}
	app, feed := console(t, backend)

	resp, body := doJSON(t, app, http.MethodGet, "/api/categories/", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode, "la página responde; el fallo va dentro del snapshot")
	assert.Equal(t, "unavailable", body["status"])
	assert.Equal(t, "AUTH_EXPIRED", body["reason"])
	assert.Equal(t, "la sesión ha expirado, inicia sesión de nuevo", body["detail"])

	recent := feed.Recent()
	require.NotEmpty(t, recent)
	assert.Equal(t, "error", recent[0].Level)
}

// Caso 3: Eliminar una categoría dispara el DELETE al backend y después el
// refetch completo del listado (submit-y-resincroniza, nunca parche local).
func TestCategorias_DeleteResincroniza(t *testing.T) {
	backend := &fakeBackend{handler: func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Write([]byte(`[]`))
	}}
	app, feed := console(t, backend)

	resp, _ := doJSON(t, app, http.MethodDelete, "/api/categories/5", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, backend.count("DELETE /Category/5"))
	assert.Equal(t, 1, backend.count("GET /Category"), "el éxito debe refrescar el listado")

	recent := feed.Recent()
	require.NotEmpty(t, recent)
	assert.Equal(t, "success", recent[0].Level)
	assert.Equal(t, "Categoría eliminada.", recent[0].Description)
}

// Caso 4: Mutación fallida → error al caller y ningún refetch.
func TestCategorias_DeleteFallidoNoRefresca(t *testing.T) {
	backend := &fakeBackend{handler: func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}}
	app, _ := console(t, backend)

	resp, body := doJSON(t, app, http.MethodDelete, "/api/categories/5", nil)

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "BACKEND_ERROR", body["code"])
	assert.Zero(t, backend.count("GET /Category"), "un fallo no debe disparar refetch")
}

// Caso 5: Crear sin nombre se rechaza en la consola sin tocar el backend.
func TestCategorias_ValidacionLocal(t *testing.T) {
	backend := &fakeBackend{handler: func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}}
	app, _ := console(t, backend)

	resp, body := doJSON(t, app, http.MethodPost, "/api/categories/", map[string]string{"description": "sin nombre"})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Empty(t, backend.requests, "la validación local no debe tocar la red")
}

// Caso 6: Restock sin producto seleccionado → NO_SELECTION antes de la red.
func TestAlertas_RestockSinSeleccion(t *testing.T) {
	backend := &fakeBackend{handler: func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"alerts":[]}`))
	}}
	app, _ := console(t, backend)

	resp, body := doJSON(t, app, http.MethodPatch, "/api/stock-alerts/0/restock", map[string]int{"quantityToAdd": 5})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "NO_SELECTION", body["code"])
	assert.Empty(t, backend.requests)
}

// Caso 7: Restock válido → PATCH add-quantity y refetch de las alertas.
func TestAlertas_RestockExitoso(t *testing.T) {
	backend := &fakeBackend{handler: func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.Write([]byte(`{"alerts":[]}`))
	}}
	app, _ := console(t, backend)

	resp, _ := doJSON(t, app, http.MethodPatch, "/api/stock-alerts/9/restock", map[string]int{"quantityToAdd": 5})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, backend.count("PATCH /Product/9/add-quantity"))
	assert.Equal(t, 1, backend.count("GET /Sales/reorder-alerts"), "el éxito debe refrescar las alertas")
}

// Caso 8: El badge devuelve el snapshot actual sin carga síncrona.
func TestAlertas_BadgeNoCargaSincrono(t *testing.T) {
	backend := &fakeBackend{handler: func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"alerts":[]}`))
	}}
	app, _ := console(t, backend)

	resp, body := doJSON(t, app, http.MethodGet, "/api/stock-alerts/badge", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "loading", body["status"], "sin poller corriendo el snapshot sigue en su estado inicial")
	assert.Zero(t, backend.count("GET /Sales/reorder-alerts"), "el badge nunca carga en línea")
}

// Caso 9: Login correcto persiste la sesión y la expone en Info.
func TestSesion_LoginYEstado(t *testing.T) {
	backend := &fakeBackend{handler: func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/Auth/login") {
			json.NewEncoder(w).Encode(map[string]any{
				"token": "tok-nuevo",
				"user":  map[string]any{"id": "u-1", "userName": "ana"},
			})
			return
		}
		w.Write([]byte(`[]`))
	}}
	app, _ := console(t, backend)

	resp, body := doJSON(t, app, http.MethodPost, "/api/session/login", map[string]string{
		"email":    "ana@stocksync.local",
		"password": "secreta123",
	})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["authenticated"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/session/", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["authenticated"])
}

// Caso 10: Credenciales malas → 401 UNAUTHORIZED, no "sesión expirada".
func TestSesion_LoginCredencialesMalas(t *testing.T) {
	backend := &fakeBackend{handler: func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	}}
	app, _ := console(t, backend)

	resp, body := doJSON(t, app, http.MethodPost, "/api/session/login", map[string]string{
		"email":    "ana@stocksync.local",
		"password": "incorrecta",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", body["code"])
	assert.Equal(t, "credenciales inválidas", body["message"])
}

// Caso 11: El dashboard degrada por tarjeta: un conteo caído llega como N/A
// y el resto con su valor, siempre con HTTP 200.
func TestDashboard_DegradacionPorTarjeta(t *testing.T) {
	backend := &fakeBackend{handler: func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/Auth/UserCount"):
			http.Error(w, "boom", http.StatusInternalServerError)
		case strings.HasSuffix(r.URL.Path, "/monthly-revenue"):
			w.Write([]byte(`1250.75`))
		default:
			w.Write([]byte(`7`))
		}
	}}
	app, _ := console(t, backend)

	resp, body := doJSON(t, app, http.MethodGet, "/api/dashboard/summary", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	users := body["userCount"].(map[string]any)
	assert.Equal(t, "N/A", users["value"])
	assert.Equal(t, false, users["available"])

	products := body["productCount"].(map[string]any)
	assert.Equal(t, "7", products["value"])

	revenue := body["monthlyRevenue"].(map[string]any)
	assert.Equal(t, "1250.75", revenue["value"])
}

// Caso 12: El export de reportes descarga un XLSX con cabeceras de archivo.
func TestReportes_ExportXLSX(t *testing.T) {
	backend := &fakeBackend{handler: func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/products-by-category") {
			w.Write([]byte(`{"isSuccess":true,"data":{"categories":[]}}`))
			return
		}
		w.Write([]byte(`[]`))
	}}
	app, _ := console(t, backend)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/export?format=xlsx", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "attachment")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), ".xlsx")
}

// Caso 13: Formato de export desconocido se rechaza con VALIDATION.
func TestReportes_ExportFormatoInvalido(t *testing.T) {
	backend := &fakeBackend{handler: func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}}
	app, _ := console(t, backend)

	resp, body := doJSON(t, app, http.MethodGet, "/api/reports/export?format=csv", nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Empty(t, backend.requests, "un formato inválido no debe disparar los fetch")
}
