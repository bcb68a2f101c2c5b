// Package usecase implements the point predictor and its asynchronous
// request contract.
package usecase

import (
	"context"
	"log/slog"
	"time"

	"stock_dashboard/internal/feature/prediction/domain/entity"
	"stock_dashboard/internal/shared/async"
	"stock_dashboard/internal/shared/latency"
	"stock_dashboard/internal/shared/randsrc"
)

// PriceLookup resolves the current reference price of a symbol.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type PriceLookup interface {
	LookupReferencePrice(ctx context.Context, code string) float64
}

// PredictionUsecase produces point forecasts on demand.
type PredictionUsecase struct {
	prices  PriceLookup
	params  Params
	delay   latency.Simulator
	timeout time.Duration
	sources randsrc.Factory
}

// NewPredictionUsecase creates a PredictionUsecase.
// A nil delay resolves requests immediately; timeout <= 0 disables the deadline.
func NewPredictionUsecase(prices PriceLookup, params Params, delay latency.Simulator, timeout time.Duration, sources randsrc.Factory) *PredictionUsecase {
	if delay == nil {
		delay = latency.None{}
	}
	if sources == nil {
		sources = randsrc.NewFactory(0, randsrc.PredictionStream)
	}
	return &PredictionUsecase{
		prices:  prices,
		params:  params,
		delay:   delay,
		timeout: timeout,
		sources: sources,
	}
}

// PredictPoint synchronously forecasts symbol. It never fails.
func (u *PredictionUsecase) PredictPoint(ctx context.Context, symbol string) entity.PointForecast {
	price := u.prices.LookupReferencePrice(ctx, symbol)
	fc := Predict(symbol, price, u.sources(), u.params)

	slog.Debug("forecast generated",
		"symbol", symbol,
		"change_percent", fc.ChangePercent,
		"recommendation", string(fc.Recommendation),
	)
	return fc
}

// RequestPrediction starts an asynchronous forecast request.
func (u *PredictionUsecase) RequestPrediction(ctx context.Context, symbol string) *async.Future[entity.PointForecast] {
	return async.Go(ctx, u.delay, u.timeout, func() (entity.PointForecast, error) {
		return u.PredictPoint(context.WithoutCancel(ctx), symbol), nil
	})
}
