// Package handler provides HTTP handlers for the portfolio feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/api"
	"stock_dashboard/internal/feature/portfolio/domain"
	"stock_dashboard/internal/feature/portfolio/transport/http/dto"
	symdomain "stock_dashboard/internal/feature/symbollist/domain"
	symentity "stock_dashboard/internal/feature/symbollist/domain/entity"
	symdto "stock_dashboard/internal/feature/symbollist/transport/http/dto"
	"stock_dashboard/internal/platform/clientid"
)

// PortfolioUsecase manages bookmarks.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type PortfolioUsecase interface {
	Add(ctx context.Context, clientID, code string) error
	Remove(ctx context.Context, clientID, code string) error
	Toggle(ctx context.Context, clientID, code string) (bool, error)
	List(ctx context.Context, clientID string) ([]symentity.Symbol, error)
}

// PortfolioHandler serves the bookmark endpoints. It expects clientid.Middleware upstream.
type PortfolioHandler struct {
	uc PortfolioUsecase
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(uc PortfolioUsecase) *PortfolioHandler {
	return &PortfolioHandler{uc: uc}
}

// List returns the bookmarked symbols.
// GET /portfolio
func (h *PortfolioHandler) List(c *gin.Context) {
	id := clientid.FromContext(c)
	symbols, err := h.uc.List(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PortfolioResponse{ClientID: id, Symbols: symdto.FromEntities(symbols)})
}

// Add bookmarks a symbol.
// PUT /portfolio/:symbol
func (h *PortfolioHandler) Add(c *gin.Context) {
	id, code := clientid.FromContext(c), c.Param("symbol")
	if err := h.uc.Add(c.Request.Context(), id, code); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MembershipResponse{ClientID: id, Symbol: code, InPortfolio: true})
}

// Remove drops a bookmark.
// DELETE /portfolio/:symbol
func (h *PortfolioHandler) Remove(c *gin.Context) {
	id, code := clientid.FromContext(c), c.Param("symbol")
	if err := h.uc.Remove(c.Request.Context(), id, code); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MembershipResponse{ClientID: id, Symbol: code, InPortfolio: false})
}

// Toggle flips a bookmark.
// POST /portfolio/:symbol/toggle
func (h *PortfolioHandler) Toggle(c *gin.Context) {
	id, code := clientid.FromContext(c), c.Param("symbol")
	in, err := h.uc.Toggle(c.Request.Context(), id, code)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MembershipResponse{ClientID: id, Symbol: code, InPortfolio: in})
}

func (h *PortfolioHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, symdomain.ErrSymbolNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrMissingClientID):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("portfolio operation failed", "path", c.FullPath(), "error", err)
		c.JSON(api.StatusForError(err), api.ErrorResponse{Error: "portfolio unavailable"})
	}
}
