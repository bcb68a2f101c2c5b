// Package usecase implements the business logic for symbol-related operations.
package usecase

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"stock_dashboard/internal/feature/symbollist/domain"
	"stock_dashboard/internal/feature/symbollist/domain/entity"
)

const (
	// FallbackPrice is the reference price of any symbol outside the universe.
	FallbackPrice = 100.0
	// DefaultOverviewSize is the number of symbols shown in the market overview.
	DefaultOverviewSize = 6
)

// SymbolRepository abstracts the persistence layer for the reference universe.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolRepository interface {
	// ListActive returns active symbols in universe order.
	ListActive(ctx context.Context) ([]entity.Symbol, error)
	// FindByCode returns domain.ErrSymbolNotFound for unknown codes.
	FindByCode(ctx context.Context, code string) (*entity.Symbol, error)
}

// SymbolUsecase provides business logic for symbol operations.
type SymbolUsecase struct {
	repo SymbolRepository
}

// NewSymbolUsecase creates a new SymbolUsecase with the given repository.
func NewSymbolUsecase(r SymbolRepository) *SymbolUsecase {
	return &SymbolUsecase{repo: r}
}

// ListActiveSymbols returns all active symbols in universe order.
func (u *SymbolUsecase) ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error) {
	return u.repo.ListActive(ctx)
}

// Overview returns the largest symbols by market capitalization.
// A non-positive limit uses DefaultOverviewSize.
func (u *SymbolUsecase) Overview(ctx context.Context, limit int) ([]entity.Symbol, error) {
	if limit <= 0 {
		limit = DefaultOverviewSize
	}

	symbols, err := u.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	sorted := slices.Clone(symbols)
	slices.SortStableFunc(sorted, func(a, b entity.Symbol) int {
		switch {
		case a.MarketCap > b.MarketCap:
			return -1
		case a.MarketCap < b.MarketCap:
			return 1
		default:
			return 0
		}
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

// Search matches the term against code and name, case-insensitively.
// An empty term matches nothing.
func (u *SymbolUsecase) Search(ctx context.Context, term string) ([]entity.Symbol, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return []entity.Symbol{}, nil
	}

	symbols, err := u.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entity.Symbol, 0, len(symbols))
	for _, s := range symbols {
		if strings.Contains(strings.ToLower(s.Code), term) || strings.Contains(strings.ToLower(s.Name), term) {
			out = append(out, s)
		}
	}
	return out, nil
}

// FindSymbol returns the reference record for code.
func (u *SymbolUsecase) FindSymbol(ctx context.Context, code string) (*entity.Symbol, error) {
	return u.repo.FindByCode(ctx, code)
}

// LookupReferencePrice returns the current price of code, or FallbackPrice
// when the code is unknown or the repository cannot answer.
func (u *SymbolUsecase) LookupReferencePrice(ctx context.Context, code string) float64 {
	s, err := u.repo.FindByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, domain.ErrSymbolNotFound) {
			slog.Warn("reference price lookup failed, using fallback", "symbol", code, "error", err)
		}
		return FallbackPrice
	}
	return s.Price
}
