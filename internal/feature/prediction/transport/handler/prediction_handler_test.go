package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"stock_dashboard/internal/feature/prediction/domain/entity"
	"stock_dashboard/internal/shared/async"
)

// mockPredictionUsecase is a mock implementation of PredictionUsecase.
type mockPredictionUsecase struct {
	RequestPredictionFunc func(ctx context.Context, symbol string) *async.Future[entity.PointForecast]
}

func (m *mockPredictionUsecase) RequestPrediction(ctx context.Context, symbol string) *async.Future[entity.PointForecast] {
	if m.RequestPredictionFunc != nil {
		return m.RequestPredictionFunc(ctx, symbol)
	}
	return async.Resolved(entity.PointForecast{})
}

func TestNewPredictionHandler(t *testing.T) {
	t.Parallel()

	h := NewPredictionHandler(&mockPredictionUsecase{})

	assert.NotNil(t, h)
	assert.NotNil(t, h.uc)
}

func TestPredictionHandler_GetPrediction(t *testing.T) {

	tests := []struct {
		name           string
		mockFunc       func(ctx context.Context, symbol string) *async.Future[entity.PointForecast]
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: returns forecast",
			mockFunc: func(ctx context.Context, symbol string) *async.Future[entity.PointForecast] {
				return async.Resolved(entity.PointForecast{
					Symbol: symbol, CurrentPrice: 100, PredictedPrice: 105,
					ChangePercent: 5, Confidence: 80, Recommendation: entity.Buy,
				})
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"symbol":"AAPL","currentPrice":100,"predictedPrice":105,
				"changePercent":5,"confidence":80,"recommendation":"buy"}`,
		},
		{
			name: "failure: timeout",
			mockFunc: func(ctx context.Context, symbol string) *async.Future[entity.PointForecast] {
				return async.Failed[entity.PointForecast](fmt.Errorf("request 7: %w", async.ErrRequestTimeout))
			},
			expectedStatus: http.StatusGatewayTimeout,
			expectedBody:   `{"error":"request 7: request timed out"}`,
		},
		{
			name: "failure: unexpected error",
			mockFunc: func(ctx context.Context, symbol string) *async.Future[entity.PointForecast] {
				return async.Failed[entity.PointForecast](errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"boom"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewPredictionHandler(&mockPredictionUsecase{RequestPredictionFunc: tt.mockFunc})
			router := gin.New()
			router.GET("/predictions/:symbol", h.GetPrediction)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/predictions/AAPL", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
