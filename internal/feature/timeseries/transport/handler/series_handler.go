// Package handler provides HTTP handlers for the timeseries feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/api"
	"stock_dashboard/internal/feature/timeseries/domain"
	"stock_dashboard/internal/feature/timeseries/domain/entity"
	"stock_dashboard/internal/feature/timeseries/transport/http/dto"
	"stock_dashboard/internal/shared/async"
)

// SeriesUsecase starts series requests.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type SeriesUsecase interface {
	RequestSeries(ctx context.Context, symbol string, r entity.TimeRange) *async.Future[entity.TimeSeries]
}

// SeriesHandler serves generated time series.
type SeriesHandler struct {
	uc SeriesUsecase
}

// NewSeriesHandler creates a new SeriesHandler.
func NewSeriesHandler(uc SeriesUsecase) *SeriesHandler {
	return &SeriesHandler{uc: uc}
}

// GetSeries returns the historical and predicted series for a symbol.
//
// Endpoint:
// GET /series/:symbol?range=1m
func (h *SeriesHandler) GetSeries(c *gin.Context) {
	symbol := c.Param("symbol")
	r, err := entity.ParseTimeRange(c.Query("range"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	f := h.uc.RequestSeries(c.Request.Context(), symbol, r)
	ts, err := f.Await(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTimeRange) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Warn("series request failed", "symbol", symbol, "range", string(r), "request_id", f.ID(), "error", err)
		c.JSON(api.StatusForError(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromSeries(ts))
}
