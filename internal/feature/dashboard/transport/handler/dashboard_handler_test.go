package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chartentity "stock_dashboard/internal/feature/chart/domain/entity"
	"stock_dashboard/internal/feature/dashboard/domain/entity"
	"stock_dashboard/internal/feature/dashboard/transport/http/dto"
	predentity "stock_dashboard/internal/feature/prediction/domain/entity"
	symentity "stock_dashboard/internal/feature/symbollist/domain/entity"
	tsentity "stock_dashboard/internal/feature/timeseries/domain/entity"
	"stock_dashboard/internal/shared/async"
)

// mockLoader is a mock implementation of DashboardLoader.
type mockLoader struct {
	LoadFunc func(ctx context.Context, code string, r tsentity.TimeRange, vp chartentity.Viewport) (entity.View, error)
}

func (m *mockLoader) Load(ctx context.Context, code string, r tsentity.TimeRange, vp chartentity.Viewport) (entity.View, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, code, r, vp)
	}
	return entity.View{}, nil
}

func serveDashboard(l DashboardLoader, path string) *httptest.ResponseRecorder {
	h := NewDashboardHandler(l)
	router := gin.New()
	router.GET("/dashboard/:symbol", h.GetDashboard)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestDashboardHandler_GetDashboard(t *testing.T) {
	t.Parallel()

	l := &mockLoader{
		LoadFunc: func(ctx context.Context, code string, r tsentity.TimeRange, vp chartentity.Viewport) (entity.View, error) {
			assert.Equal(t, "AAPL", code)
			assert.Equal(t, tsentity.Range3M, r)
			assert.Equal(t, chartentity.Viewport{Width: 800, Height: 300}, vp)
			return entity.View{
				Symbol:   &symentity.Symbol{Code: "AAPL", Name: "Apple Inc.", Price: 182.63},
				Range:    r,
				Series:   tsentity.TimeSeries{Symbol: code, Range: r},
				Forecast: predentity.PointForecast{Symbol: code, Recommendation: predentity.Sell},
				Scene:    chartentity.Scene{Viewport: vp},
			}, nil
		},
	}

	w := serveDashboard(l, "/dashboard/AAPL?range=3m&height=300")

	require.Equal(t, http.StatusOK, w.Code)
	var body dto.DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Symbol)
	assert.Equal(t, "Apple Inc.", body.Symbol.Name)
	assert.Equal(t, "3m", body.Range)
	assert.Equal(t, "sell", body.Forecast.Recommendation)
	assert.Equal(t, 300.0, body.Chart.Height)
}

func TestDashboardHandler_GetDashboard_UnknownSymbol(t *testing.T) {
	t.Parallel()

	w := serveDashboard(&mockLoader{}, "/dashboard/ZZZZ")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"symbol":null`)
}

func TestDashboardHandler_GetDashboard_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		path           string
		loadErr        error
		expectedStatus int
	}{
		{name: "bad range", path: "/dashboard/AAPL?range=x", expectedStatus: http.StatusBadRequest},
		{name: "bad viewport", path: "/dashboard/AAPL?width=-3", expectedStatus: http.StatusBadRequest},
		{name: "timeout", path: "/dashboard/AAPL", loadErr: fmt.Errorf("series AAPL: %w", async.ErrRequestTimeout), expectedStatus: http.StatusGatewayTimeout},
		{name: "internal", path: "/dashboard/AAPL", loadErr: fmt.Errorf("boom"), expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := &mockLoader{
				LoadFunc: func(ctx context.Context, code string, r tsentity.TimeRange, vp chartentity.Viewport) (entity.View, error) {
					return entity.View{}, tt.loadErr
				},
			}

			w := serveDashboard(l, tt.path)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
}
