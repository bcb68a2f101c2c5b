package usecase

import (
	"context"
	"sync"
	"time"

	predentity "stock_dashboard/internal/feature/prediction/domain/entity"
	symdomain "stock_dashboard/internal/feature/symbollist/domain"
	symentity "stock_dashboard/internal/feature/symbollist/domain/entity"
	tsentity "stock_dashboard/internal/feature/timeseries/domain/entity"
	"stock_dashboard/internal/shared/async"
	"stock_dashboard/internal/shared/latency"
)

// gate is a latency.Simulator released by closing the channel.
type gate chan struct{}

func (g gate) Wait(ctx context.Context) error {
	select {
	case <-g:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

var _ latency.Simulator = gate(nil)

// mockSymbols is a mock implementation of SymbolFinder.
type mockSymbols struct {
	FindSymbolFunc func(ctx context.Context, code string) (*symentity.Symbol, error)
}

func (m *mockSymbols) FindSymbol(ctx context.Context, code string) (*symentity.Symbol, error) {
	if m.FindSymbolFunc != nil {
		return m.FindSymbolFunc(ctx, code)
	}
	switch code {
	case "AAPL":
		return &symentity.Symbol{Code: "AAPL", Name: "Apple Inc.", Price: 182.63}, nil
	case "MSFT":
		return &symentity.Symbol{Code: "MSFT", Name: "Microsoft Corporation", Price: 402.56}, nil
	}
	return nil, symdomain.ErrSymbolNotFound
}

// mockSeries is a mock implementation of SeriesRequester. Requests for
// symbols with a gate block until the gate is closed.
type mockSeries struct {
	mu    sync.Mutex
	gates map[string]gate
	err   map[tsentity.TimeRange]error
	calls int
}

func (m *mockSeries) RequestSeries(ctx context.Context, symbol string, r tsentity.TimeRange) *async.Future[tsentity.TimeSeries] {
	m.mu.Lock()
	m.calls++
	var delay latency.Simulator = latency.None{}
	if g, ok := m.gates[symbol]; ok {
		delay = g
	}
	err := m.err[r]
	m.mu.Unlock()

	return async.Go(ctx, delay, 0, func() (tsentity.TimeSeries, error) {
		if err != nil {
			return tsentity.TimeSeries{}, err
		}
		return tsentity.TimeSeries{
			Symbol:     symbol,
			Range:      r,
			Historical: []tsentity.HistoricalPoint{{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Close: 100}},
		}, nil
	})
}

// mockPredictions is a mock implementation of PredictionRequester.
type mockPredictions struct {
	gates map[string]gate
	err   error
}

func (m *mockPredictions) RequestPrediction(ctx context.Context, symbol string) *async.Future[predentity.PointForecast] {
	var delay latency.Simulator = latency.None{}
	if g, ok := m.gates[symbol]; ok {
		delay = g
	}
	return async.Go(ctx, delay, 0, func() (predentity.PointForecast, error) {
		if m.err != nil {
			return predentity.PointForecast{}, m.err
		}
		return predentity.PointForecast{Symbol: symbol, CurrentPrice: 100, Recommendation: predentity.Hold}, nil
	})
}
