package ports

import (
	"context"

	"github.com/jhoicas/stocksync-console/internal/application/dto"
)

// StockPredictor define el puerto de salida hacia el modelo generativo que
// sugiere el valor objetivo de reposición de inventario. Cualquier adaptador
// (Gemini, OpenAI, mock) debe implementar esta interfaz; la aplicación solo
// conoce este contrato, no la implementación concreta.
//
// El colaborador es opaco: no hay reintentos ni validación más allá del
// esquema de entrada/salida. El contexto debe llevar un timeout para evitar
// bloqueos en la llamada externa.
type StockPredictor interface {
	PredictStockTarget(ctx context.Context, in dto.StockPredictionInput) (*dto.StockPredictionOutput, error)
}
