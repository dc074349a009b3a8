package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/stocksync-console/internal/application/dto"
	"github.com/jhoicas/stocksync-console/internal/application/ports"
	"github.com/jhoicas/stocksync-console/internal/domain"
)

const predictionTimeout = 30 * time.Second

// PredictionUseCase valida la entrada de la tarjeta de predicción y delega en
// el puerto StockPredictor. El modelo es un colaborador opaco: aquí no hay
// algoritmo, solo validación de esquema y timeout.
type PredictionUseCase struct {
	predictor ports.StockPredictor
}

// NewPredictionUseCase construye el caso de uso.
func NewPredictionUseCase(predictor ports.StockPredictor) *PredictionUseCase {
	return &PredictionUseCase{predictor: predictor}
}

// Predict ejecuta la predicción. Una entrada fuera de esquema se rechaza con
// ErrValidation sin tocar la red.
func (uc *PredictionUseCase) Predict(
	ctx context.Context,
	in dto.StockPredictionInput,
) (*dto.StockPredictionOutput, error) {
	if in.MonthlyRevenue.IsNegative() || in.CurrentInventoryValue.IsNegative() {
		return nil, domain.ErrValidation
	}
	if in.TotalProducts < 1 || in.StockAlerts < 0 {
		return nil, domain.ErrValidation
	}

	ctx, cancel := context.WithTimeout(ctx, predictionTimeout)
	defer cancel()

	return uc.predictor.PredictStockTarget(ctx, in)
}
