// Package dashboard arma las tarjetas de estadísticas de la página principal.
package dashboard

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stocksync-console/internal/application/dto"
	"github.com/jhoicas/stocksync-console/pkg/logger"
)

// CountSource un endpoint de conteo del backend.
type CountSource func(ctx context.Context) (int, error)

// RevenueSource el ingreso mensual del backend.
type RevenueSource func(ctx context.Context) (decimal.Decimal, error)

// Sources las cinco fuentes de las tarjetas del dashboard.
type Sources struct {
	UserCount      CountSource
	CategoryCount  CountSource
	ProductCount   CountSource
	AlertCount     CountSource
	MonthlyRevenue RevenueSource
}

// UseCase obtiene las cinco tarjetas en paralelo. Cada tarjeta se degrada a
// "N/A" de forma independiente: el fallo de una fuente nunca tumba el resto
// del dashboard.
type UseCase struct {
	sources Sources
	log     *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(sources Sources, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{sources: sources, log: log}
}

// Summary construye el DashboardSummaryDTO con una goroutine por tarjeta.
func (uc *UseCase) Summary(ctx context.Context) dto.DashboardSummaryDTO {
	type statResult struct {
		field string
		stat  dto.StatDTO
	}

	results := make(chan statResult, 5)

	countStat := func(field string, source CountSource) {
		n, err := source(ctx)
		if err != nil {
			uc.log.Warn().Str("stat", field).Err(err).Msg("tarjeta degradada a N/A")
			results <- statResult{field: field, stat: dto.UnavailableStat()}
			return
		}
		results <- statResult{field: field, stat: dto.StatDTO{Value: strconv.Itoa(n), Available: true}}
	}

	go countStat("users", uc.sources.UserCount)
	go countStat("categories", uc.sources.CategoryCount)
	go countStat("products", uc.sources.ProductCount)
	go countStat("alerts", uc.sources.AlertCount)
	go func() {
		revenue, err := uc.sources.MonthlyRevenue(ctx)
		if err != nil {
			uc.log.Warn().Str("stat", "revenue").Err(err).Msg("tarjeta degradada a N/A")
			results <- statResult{field: "revenue", stat: dto.UnavailableStat()}
			return
		}
		results <- statResult{field: "revenue", stat: dto.StatDTO{Value: revenue.StringFixed(2), Available: true}}
	}()

	var out dto.DashboardSummaryDTO
	for i := 0; i < 5; i++ {
		r := <-results
		switch r.field {
		case "users":
			out.UserCount = r.stat
		case "categories":
			out.CategoryCount = r.stat
		case "products":
			out.ProductCount = r.stat
		case "alerts":
			out.StockAlertCount = r.stat
		case "revenue":
			out.MonthlyRevenue = r.stat
		}
	}
	return out
}
