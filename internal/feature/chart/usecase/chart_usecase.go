// Package usecase implements the chart projector and the chart request flow.
package usecase

import (
	"context"
	"fmt"

	"stock_dashboard/internal/feature/chart/domain"
	"stock_dashboard/internal/feature/chart/domain/entity"
	tsentity "stock_dashboard/internal/feature/timeseries/domain/entity"
	"stock_dashboard/internal/shared/async"
)

// SeriesRequester starts series requests.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SeriesRequester interface {
	RequestSeries(ctx context.Context, symbol string, r tsentity.TimeRange) *async.Future[tsentity.TimeSeries]
}

// ChartUsecase fetches a series and projects it.
type ChartUsecase struct {
	series SeriesRequester
}

// NewChartUsecase creates a ChartUsecase.
func NewChartUsecase(series SeriesRequester) *ChartUsecase {
	return &ChartUsecase{series: series}
}

// Render returns the scene for symbol over r. Unlike Project it rejects
// empty viewports, since they come from user input.
func (u *ChartUsecase) Render(ctx context.Context, symbol string, r tsentity.TimeRange, vp entity.Viewport) (entity.Scene, error) {
	if !vp.Valid() {
		return entity.Scene{}, fmt.Errorf("%w: %vx%v", domain.ErrInvalidViewport, vp.Width, vp.Height)
	}

	ts, err := u.series.RequestSeries(ctx, symbol, r).Await(ctx)
	if err != nil {
		return entity.Scene{}, fmt.Errorf("render %s: %w", symbol, err)
	}
	return Project(ts, vp), nil
}
