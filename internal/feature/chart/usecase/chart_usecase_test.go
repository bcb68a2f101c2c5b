package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_dashboard/internal/feature/chart/domain"
	"stock_dashboard/internal/feature/chart/domain/entity"
	tsentity "stock_dashboard/internal/feature/timeseries/domain/entity"
	"stock_dashboard/internal/shared/async"
)

// mockSeriesRequester is a mock implementation of SeriesRequester.
type mockSeriesRequester struct {
	RequestSeriesFunc func(ctx context.Context, symbol string, r tsentity.TimeRange) *async.Future[tsentity.TimeSeries]
}

func (m *mockSeriesRequester) RequestSeries(ctx context.Context, symbol string, r tsentity.TimeRange) *async.Future[tsentity.TimeSeries] {
	if m.RequestSeriesFunc != nil {
		return m.RequestSeriesFunc(ctx, symbol, r)
	}
	return async.Resolved(tsentity.TimeSeries{})
}

func TestChartUsecase_Render(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	tests := []struct {
		name     string
		vp       entity.Viewport
		mockFunc func(ctx context.Context, symbol string, r tsentity.TimeRange) *async.Future[tsentity.TimeSeries]
		wantErr  error
		wantHist int
	}{
		{
			name: "success: projects the requested series",
			vp:   entity.Viewport{Width: 800, Height: 400},
			mockFunc: func(ctx context.Context, symbol string, r tsentity.TimeRange) *async.Future[tsentity.TimeSeries] {
				return async.Resolved(generated(r, 1))
			},
			wantHist: 7,
		},
		{
			name:    "failure: empty viewport",
			vp:      entity.Viewport{Width: 0, Height: 400},
			wantErr: domain.ErrInvalidViewport,
		},
		{
			name: "failure: series request failed",
			vp:   entity.Viewport{Width: 800, Height: 400},
			mockFunc: func(ctx context.Context, symbol string, r tsentity.TimeRange) *async.Future[tsentity.TimeSeries] {
				return async.Failed[tsentity.TimeSeries](errBoom)
			},
			wantErr: errBoom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := NewChartUsecase(&mockSeriesRequester{RequestSeriesFunc: tt.mockFunc})
			scene, err := uc.Render(context.Background(), "AAPL", tsentity.Range1W, tt.vp)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, scene.Historical.Points, tt.wantHist)
			assert.Equal(t, tt.vp, scene.Viewport)
		})
	}
}
