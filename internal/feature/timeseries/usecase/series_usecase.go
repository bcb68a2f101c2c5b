// Package usecase implements the random-walk series generator and its
// asynchronous request contract.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"stock_dashboard/internal/feature/timeseries/domain"
	"stock_dashboard/internal/feature/timeseries/domain/entity"
	"stock_dashboard/internal/shared/async"
	"stock_dashboard/internal/shared/latency"
	"stock_dashboard/internal/shared/randsrc"
)

// PriceLookup resolves the current reference price of a symbol.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type PriceLookup interface {
	// LookupReferencePrice never fails; unknown symbols resolve to a fallback price.
	LookupReferencePrice(ctx context.Context, code string) float64
}

// SeriesUsecase generates time series on demand.
type SeriesUsecase struct {
	prices  PriceLookup
	params  Params
	delay   latency.Simulator
	timeout time.Duration
	sources randsrc.Factory
	now     func() time.Time
}

// NewSeriesUsecase creates a SeriesUsecase.
// A nil delay resolves requests immediately; timeout <= 0 disables the deadline.
func NewSeriesUsecase(prices PriceLookup, params Params, delay latency.Simulator, timeout time.Duration, sources randsrc.Factory) *SeriesUsecase {
	if delay == nil {
		delay = latency.None{}
	}
	if sources == nil {
		sources = randsrc.NewFactory(0, randsrc.SeriesStream)
	}
	return &SeriesUsecase{
		prices:  prices,
		params:  params,
		delay:   delay,
		timeout: timeout,
		sources: sources,
		now:     time.Now,
	}
}

// GenerateSeries synchronously builds the series for symbol over r.
// The only error is an unsupported range.
func (u *SeriesUsecase) GenerateSeries(ctx context.Context, symbol string, r entity.TimeRange) (entity.TimeSeries, error) {
	if !r.Valid() {
		return entity.TimeSeries{}, fmt.Errorf("%w: %q", domain.ErrInvalidTimeRange, r)
	}

	price := u.prices.LookupReferencePrice(ctx, symbol)
	ts := Generate(price, r, u.now(), u.sources(), u.params)
	ts.Symbol = symbol

	slog.Debug("series generated",
		"symbol", symbol,
		"range", string(r),
		"historical", len(ts.Historical),
		"predictions", len(ts.Predictions),
	)
	return ts, nil
}

// RequestSeries starts an asynchronous series request. Once the simulated
// round trip elapses, generation runs to completion even if ctx is
// cancelled; the caller simply stops waiting.
func (u *SeriesUsecase) RequestSeries(ctx context.Context, symbol string, r entity.TimeRange) *async.Future[entity.TimeSeries] {
	if !r.Valid() {
		return async.Failed[entity.TimeSeries](fmt.Errorf("%w: %q", domain.ErrInvalidTimeRange, r))
	}

	return async.Go(ctx, u.delay, u.timeout, func() (entity.TimeSeries, error) {
		return u.GenerateSeries(context.WithoutCancel(ctx), symbol, r)
	})
}
