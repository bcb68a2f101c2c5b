// Package usecase implements the dashboard session and the composite loader.
package usecase

import (
	"context"

	predentity "stock_dashboard/internal/feature/prediction/domain/entity"
	symentity "stock_dashboard/internal/feature/symbollist/domain/entity"
	tsentity "stock_dashboard/internal/feature/timeseries/domain/entity"
	"stock_dashboard/internal/shared/async"
)

// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).

// SymbolFinder resolves reference records.
type SymbolFinder interface {
	// FindSymbol returns symbollist domain.ErrSymbolNotFound for unknown codes.
	FindSymbol(ctx context.Context, code string) (*symentity.Symbol, error)
}

// SeriesRequester starts series requests.
type SeriesRequester interface {
	RequestSeries(ctx context.Context, symbol string, r tsentity.TimeRange) *async.Future[tsentity.TimeSeries]
}

// PredictionRequester starts forecast requests.
type PredictionRequester interface {
	RequestPrediction(ctx context.Context, symbol string) *async.Future[predentity.PointForecast]
}
