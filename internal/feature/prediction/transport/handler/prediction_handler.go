// Package handler provides HTTP handlers for the prediction feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/api"
	"stock_dashboard/internal/feature/prediction/domain/entity"
	"stock_dashboard/internal/feature/prediction/transport/http/dto"
	"stock_dashboard/internal/shared/async"
)

// PredictionUsecase starts forecast requests.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type PredictionUsecase interface {
	RequestPrediction(ctx context.Context, symbol string) *async.Future[entity.PointForecast]
}

// PredictionHandler serves point forecasts.
type PredictionHandler struct {
	uc PredictionUsecase
}

// NewPredictionHandler creates a new PredictionHandler.
func NewPredictionHandler(uc PredictionUsecase) *PredictionHandler {
	return &PredictionHandler{uc: uc}
}

// GetPrediction returns the forecast for a symbol.
//
// Endpoint:
// GET /predictions/:symbol
func (h *PredictionHandler) GetPrediction(c *gin.Context) {
	symbol := c.Param("symbol")

	f := h.uc.RequestPrediction(c.Request.Context(), symbol)
	fc, err := f.Await(c.Request.Context())
	if err != nil {
		slog.Warn("prediction request failed", "symbol", symbol, "request_id", f.ID(), "error", err)
		c.JSON(api.StatusForError(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromForecast(fc))
}
