// Package api implementa el acceso autenticado al API REST de StockSync.
// Una sola pieza (Client.Do) resuelve la credencial, adjunta el header bearer
// y clasifica la respuesta en la taxonomía de dominio; los servicios por
// endpoint solo declaran método, ruta y forma del payload.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/stocksync-console/internal/domain"
	"github.com/jhoicas/stocksync-console/pkg/logger"
)

const maxResponseBytes = 4 << 20 // los listados del backend caben de sobra

// CredentialResolver entrega la credencial bearer antes de cada llamada.
// Lo implementa session.Gate.
type CredentialResolver interface {
	Resolve(ctx context.Context) (string, error)
}

// Client cliente HTTP del backend. Todas las respuestas non-2xx se traducen a
// la taxonomía de dominio: 401 → ErrAuthExpired, otro estado → ServerError con
// el texto del cuerpo si existe, fallo de transporte → ErrNetwork.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      CredentialResolver
	log        *logger.Logger
}

// NewClient construye el cliente. baseURL sin barra final, ej.
// "https://localhost:7232/api".
func NewClient(baseURL string, timeout time.Duration, creds CredentialResolver, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		creds:      creds,
		log:        log,
	}
}

// Do ejecuta una llamada autenticada. body se serializa como JSON si no es
// nil; out se decodifica desde la respuesta si no es nil (desenvolviendo el
// sobre {isSuccess,data} si el endpoint lo trae).
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	token, err := c.creds.Resolve(ctx)
	if err != nil {
		return err
	}
	return c.roundTrip(ctx, method, path, token, body, out)
}

// DoPublic ejecuta una llamada sin credencial (solo el login la usa).
func (c *Client) DoPublic(ctx context.Context, method, path string, body, out any) error {
	return c.roundTrip(ctx, method, path, "", body, out)
}

func (c *Client) roundTrip(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: leer respuesta: %v", domain.ErrNetwork, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return domain.ErrAuthExpired
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.NewServerError(resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	return c.decode(method, path, raw, out)
}
