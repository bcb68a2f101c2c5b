// Package handler provides the HTTP handler for the composite dashboard view.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/api"
	chartdomain "stock_dashboard/internal/feature/chart/domain"
	chartentity "stock_dashboard/internal/feature/chart/domain/entity"
	charthandler "stock_dashboard/internal/feature/chart/transport/handler"
	"stock_dashboard/internal/feature/dashboard/domain/entity"
	"stock_dashboard/internal/feature/dashboard/transport/http/dto"
	tsdomain "stock_dashboard/internal/feature/timeseries/domain"
	tsentity "stock_dashboard/internal/feature/timeseries/domain/entity"
)

// DashboardLoader builds composite views.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type DashboardLoader interface {
	Load(ctx context.Context, code string, r tsentity.TimeRange, vp chartentity.Viewport) (entity.View, error)
}

// DashboardHandler serves everything a dashboard page needs in one response.
type DashboardHandler struct {
	loader DashboardLoader
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(loader DashboardLoader) *DashboardHandler {
	return &DashboardHandler{loader: loader}
}

// GetDashboard returns quote, series, forecast and chart geometry for a symbol.
//
// Endpoint:
// GET /dashboard/:symbol?range=1m&width=800&height=400
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	symbol := c.Param("symbol")
	r, err := tsentity.ParseTimeRange(c.Query("range"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	vp, err := charthandler.ParseViewport(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.loader.Load(c.Request.Context(), symbol, r, vp)
	if err != nil {
		if errors.Is(err, chartdomain.ErrInvalidViewport) || errors.Is(err, tsdomain.ErrInvalidTimeRange) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Warn("dashboard load failed", "symbol", symbol, "range", string(r), "error", err)
		c.JSON(api.StatusForError(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromView(view))
}
