package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	chartdomain "stock_dashboard/internal/feature/chart/domain"
	chartentity "stock_dashboard/internal/feature/chart/domain/entity"
	chartusecase "stock_dashboard/internal/feature/chart/usecase"
	"stock_dashboard/internal/feature/dashboard/domain/entity"
	symdomain "stock_dashboard/internal/feature/symbollist/domain"
	tsentity "stock_dashboard/internal/feature/timeseries/domain/entity"
)

// Loader builds a complete dashboard view in one call.
type Loader struct {
	symbols     SymbolFinder
	series      SeriesRequester
	predictions PredictionRequester
}

// NewLoader creates a Loader.
func NewLoader(symbols SymbolFinder, series SeriesRequester, predictions PredictionRequester) *Loader {
	return &Loader{symbols: symbols, series: series, predictions: predictions}
}

// Load fetches the reference record, the series and the forecast
// concurrently and projects the series onto vp. The first failure cancels
// the remaining requests.
func (l *Loader) Load(ctx context.Context, code string, r tsentity.TimeRange, vp chartentity.Viewport) (entity.View, error) {
	if !vp.Valid() {
		return entity.View{}, fmt.Errorf("%w: %vx%v", chartdomain.ErrInvalidViewport, vp.Width, vp.Height)
	}

	view := entity.View{Range: r}
	eg, gctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		sym, err := l.symbols.FindSymbol(gctx, code)
		if err != nil {
			if errors.Is(err, symdomain.ErrSymbolNotFound) {
				return nil
			}
			return fmt.Errorf("symbol %s: %w", code, err)
		}
		view.Symbol = sym
		return nil
	})
	eg.Go(func() error {
		ts, err := l.series.RequestSeries(gctx, code, r).Await(gctx)
		if err != nil {
			return fmt.Errorf("series %s: %w", code, err)
		}
		view.Series = ts
		return nil
	})
	eg.Go(func() error {
		fc, err := l.predictions.RequestPrediction(gctx, code).Await(gctx)
		if err != nil {
			return fmt.Errorf("forecast %s: %w", code, err)
		}
		view.Forecast = fc
		return nil
	})

	if err := eg.Wait(); err != nil {
		return entity.View{}, err
	}

	view.Scene = chartusecase.Project(view.Series, vp)
	return view, nil
}
