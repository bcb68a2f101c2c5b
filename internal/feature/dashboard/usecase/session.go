package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"stock_dashboard/internal/feature/dashboard/domain"
	"stock_dashboard/internal/feature/dashboard/domain/entity"
	symdomain "stock_dashboard/internal/feature/symbollist/domain"
	tsdomain "stock_dashboard/internal/feature/timeseries/domain"
	tsentity "stock_dashboard/internal/feature/timeseries/domain/entity"
)

// Session holds the selected symbol and time range of one viewer and
// keeps the displayed data in step with them.
//
// Every change starts a refresh that requests the series and the forecast
// concurrently. Refreshes may overlap; a result is applied only if no newer
// change happened since its request was issued, so the last request wins
// regardless of completion order.
type Session struct {
	symbols     SymbolFinder
	series      SeriesRequester
	predictions PredictionRequester

	mu    sync.Mutex
	state entity.State
}

// NewSession creates a Session with no selection and the default range.
func NewSession(symbols SymbolFinder, series SeriesRequester, predictions PredictionRequester) *Session {
	return &Session{
		symbols:     symbols,
		series:      series,
		predictions: predictions,
		state:       entity.State{Range: tsentity.DefaultRange},
	}
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() entity.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SelectStock selects code and refreshes the data. An unknown code clears
// the selection and the displayed data without failing. It blocks until
// both requests settle; ErrSuperseded means a newer change took over.
func (s *Session) SelectStock(ctx context.Context, code string) error {
	sym, err := s.symbols.FindSymbol(ctx, code)
	if err != nil {
		if !errors.Is(err, symdomain.ErrSymbolNotFound) {
			return fmt.Errorf("select %s: %w", code, err)
		}
		s.mu.Lock()
		s.state.Generation++
		s.state.Selected = nil
		s.state.Series = nil
		s.state.Forecast = nil
		s.state.Loading = false
		s.mu.Unlock()

		slog.Info("selection cleared", "symbol", code)
		return nil
	}

	s.mu.Lock()
	s.state.Selected = sym
	r := s.state.Range
	g := s.begin()
	s.mu.Unlock()

	return s.refresh(ctx, g, sym.Code, r)
}

// SetTimeRange changes the range and refreshes the data when a symbol is selected.
func (s *Session) SetTimeRange(ctx context.Context, r tsentity.TimeRange) error {
	if !r.Valid() {
		return fmt.Errorf("set range: %w: %q", tsdomain.ErrInvalidTimeRange, r)
	}

	s.mu.Lock()
	s.state.Range = r
	if s.state.Selected == nil {
		s.state.Generation++
		s.mu.Unlock()
		return nil
	}
	code := s.state.Selected.Code
	g := s.begin()
	s.mu.Unlock()

	return s.refresh(ctx, g, code, r)
}

// begin starts a new generation. Callers hold s.mu.
func (s *Session) begin() uint64 {
	s.state.Generation++
	s.state.Loading = true
	return s.state.Generation
}

func (s *Session) refresh(ctx context.Context, g uint64, code string, r tsentity.TimeRange) error {
	fs := s.series.RequestSeries(ctx, code, r)
	fp := s.predictions.RequestPrediction(ctx, code)

	// independent: a failed series must not cancel the forecast
	var eg errgroup.Group
	eg.Go(func() error {
		ts, err := fs.Await(ctx)
		return s.apply(g, code, "series", err, func() { s.state.Series = &ts })
	})
	eg.Go(func() error {
		fc, err := fp.Await(ctx)
		return s.apply(g, code, "forecast", err, func() { s.state.Forecast = &fc })
	})
	err := eg.Wait()

	s.mu.Lock()
	if s.state.Generation == g {
		s.state.Loading = false
	}
	s.mu.Unlock()

	return err
}

// apply stores a result if generation g is still current.
func (s *Session) apply(g uint64, code, what string, err error, set func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Generation != g {
		slog.Debug("stale result discarded", "symbol", code, "kind", what, "generation", g)
		return fmt.Errorf("%s for %s: %w", what, code, domain.ErrSuperseded)
	}
	if err != nil {
		slog.Warn("dashboard refresh failed", "symbol", code, "kind", what, "error", err)
		return fmt.Errorf("%s for %s: %w", what, code, err)
	}
	set()
	return nil
}
