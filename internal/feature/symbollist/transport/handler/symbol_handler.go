package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/feature/symbollist/domain/entity"
	"stock_dashboard/internal/feature/symbollist/transport/http/dto"
)

// SymbolUsecase is the subset of the symbol usecase the handler needs.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type SymbolUsecase interface {
	ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error)
	Overview(ctx context.Context, limit int) ([]entity.Symbol, error)
	Search(ctx context.Context, term string) ([]entity.Symbol, error)
}

// SymbolHandler handles HTTP requests for the reference universe.
type SymbolHandler struct {
	uc SymbolUsecase
}

// NewSymbolHandler creates a new SymbolHandler.
func NewSymbolHandler(uc SymbolUsecase) *SymbolHandler {
	return &SymbolHandler{uc: uc}
}

// List returns every active symbol in universe order.
func (h *SymbolHandler) List(c *gin.Context) {
	symbols, err := h.uc.ListActiveSymbols(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromEntities(symbols))
}

// Overview returns the market overview list.
// GET /symbols/overview?limit=6
func (h *SymbolHandler) Overview(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	symbols, err := h.uc.Overview(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromEntities(symbols))
}

// Search filters the universe by code or name.
// GET /symbols/search?q=app
func (h *SymbolHandler) Search(c *gin.Context) {
	symbols, err := h.uc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromEntities(symbols))
}
