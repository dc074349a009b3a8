// Package ai contiene los adaptadores hacia modelos generativos. La consola
// no implementa ningún algoritmo de predicción: delega en el colaborador
// externo detrás del puerto StockPredictor.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stocksync-console/internal/application/dto"
	"github.com/jhoicas/stocksync-console/internal/application/ports"
)

// Verificar en tiempo de compilación que GeminiService implementa StockPredictor.
var _ ports.StockPredictor = (*GeminiService)(nil)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	// systemPrompt define el rol del modelo y el formato de salida. Con
	// response_mime_type=application/json Gemini devuelve JSON puro, sin
	// bloques de markdown que limpiar.
	systemPrompt = `Eres un asistente que analiza datos de inventario y sugiere valores óptimos de reposición.
Dados el ingreso mensual, el total de productos, el número de alertas de stock y el valor actual del inventario,
devuelve ÚNICAMENTE un objeto JSON (sin texto adicional) con la estructura exacta:
{
  "targetStockRefillValue": <número: valor objetivo de reposición del inventario>,
  "reasoning": "<explicación concisa del valor sugerido>"
}

Reglas:
- Considera tendencias de venta, variedad de productos y riesgo de quiebres de stock.
- targetStockRefillValue siempre debe ser mayor que el valor actual del inventario.
- reasoning: máximo 300 caracteres.`
)

// GeminiService adaptador que implementa StockPredictor llamando a la API REST
// de Google Gemini.
type GeminiService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-1.5-flash".
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	ResponseMIMEType string  `json:"responseMimeType"`
	Temperature      float32 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// llmPredictionPayload es el JSON que esperamos recibir del modelo.
type llmPredictionPayload struct {
	TargetStockRefillValue decimal.Decimal `json:"targetStockRefillValue"`
	Reasoning              string          `json:"reasoning"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// PredictStockTarget llama a Gemini con los cuatro indicadores del dashboard y
// devuelve el valor objetivo de reposición sugerido. Sin reintentos: la tarjeta
// muestra el fallo y el usuario puede volver a pedir la predicción.
func (s *GeminiService) PredictStockTarget(
	ctx context.Context,
	in dto.StockPredictionInput,
) (*dto.StockPredictionOutput, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}

	userText := fmt.Sprintf(
		"Ingreso mensual: %s\nTotal de productos: %d\nAlertas de stock: %d\nValor actual del inventario: %s",
		in.MonthlyRevenue, in.TotalProducts, in.StockAlerts, in.CurrentInventoryValue,
	)

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemPrompt}},
		},
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: userText}},
			},
		},
		GenerationConfig: genConfig{
			ResponseMIMEType: "application/json",
			Temperature:      0.2,
			MaxOutputTokens:  256,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("AI: Gemini respondió %d: %s", resp.StatusCode, string(rawBody))
	}

	var gr geminiResponse
	if err := json.Unmarshal(rawBody, &gr); err != nil {
		return nil, fmt.Errorf("AI: decodificar respuesta: %w", err)
	}
	if gr.Error != nil {
		return nil, fmt.Errorf("AI: error de Gemini %d: %s", gr.Error.Code, gr.Error.Message)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("AI: respuesta sin candidatos")
	}

	var out llmPredictionPayload
	text := gr.Candidates[0].Content.Parts[0].Text
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("AI: el modelo no devolvió el esquema esperado: %w", err)
	}

	return &dto.StockPredictionOutput{
		TargetStockRefillValue: out.TargetStockRefillValue,
		Reasoning:              out.Reasoning,
	}, nil
}
