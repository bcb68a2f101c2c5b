// Package handler provides HTTP handlers for the chart feature.
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/api"
	"stock_dashboard/internal/feature/chart/domain"
	"stock_dashboard/internal/feature/chart/domain/entity"
	"stock_dashboard/internal/feature/chart/transport/http/dto"
	tsdomain "stock_dashboard/internal/feature/timeseries/domain"
	tsentity "stock_dashboard/internal/feature/timeseries/domain/entity"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 400
)

// ChartUsecase renders chart scenes.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ChartUsecase interface {
	Render(ctx context.Context, symbol string, r tsentity.TimeRange, vp entity.Viewport) (entity.Scene, error)
}

// ChartHandler serves chart geometry.
type ChartHandler struct {
	uc ChartUsecase
}

// NewChartHandler creates a new ChartHandler.
func NewChartHandler(uc ChartUsecase) *ChartHandler {
	return &ChartHandler{uc: uc}
}

// ParseViewport reads width and height query parameters, applying defaults
// for missing values. Shared with the dashboard handler.
func ParseViewport(c *gin.Context) (entity.Viewport, error) {
	w, err := parseDimension(c.Query("width"), DefaultWidth)
	if err != nil {
		return entity.Viewport{}, fmt.Errorf("%w: width %v", domain.ErrInvalidViewport, err)
	}
	h, err := parseDimension(c.Query("height"), DefaultHeight)
	if err != nil {
		return entity.Viewport{}, fmt.Errorf("%w: height %v", domain.ErrInvalidViewport, err)
	}
	vp := entity.Viewport{Width: w, Height: h}
	if !vp.Valid() {
		return entity.Viewport{}, fmt.Errorf("%w: %vx%v", domain.ErrInvalidViewport, w, h)
	}
	return vp, nil
}

func parseDimension(raw string, def float64) (float64, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.ParseFloat(raw, 64)
}

// GetChart returns the scene for a symbol.
//
// Endpoint:
// GET /chart/:symbol?range=1m&width=800&height=400
func (h *ChartHandler) GetChart(c *gin.Context) {
	symbol := c.Param("symbol")
	r, err := tsentity.ParseTimeRange(c.Query("range"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	vp, err := ParseViewport(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	scene, err := h.uc.Render(c.Request.Context(), symbol, r, vp)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidViewport) || errors.Is(err, tsdomain.ErrInvalidTimeRange) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Warn("chart render failed", "symbol", symbol, "range", string(r), "error", err)
		c.JSON(api.StatusForError(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromScene(scene))
}
