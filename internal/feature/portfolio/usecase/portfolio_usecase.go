// Package usecase implements per-client portfolio bookmarks.
package usecase

import (
	"context"
	"fmt"

	"stock_dashboard/internal/feature/portfolio/domain"
	symentity "stock_dashboard/internal/feature/symbollist/domain/entity"
)

// Store keeps one bookmark set per client.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type Store interface {
	Add(ctx context.Context, clientID, code string) error
	Remove(ctx context.Context, clientID, code string) error
	Contains(ctx context.Context, clientID, code string) (bool, error)
	Members(ctx context.Context, clientID string) ([]string, error)
}

// SymbolCatalog validates codes and supplies the universe order.
type SymbolCatalog interface {
	ListActiveSymbols(ctx context.Context) ([]symentity.Symbol, error)
	// FindSymbol returns symbollist domain.ErrSymbolNotFound for unknown codes.
	FindSymbol(ctx context.Context, code string) (*symentity.Symbol, error)
}

// PortfolioUsecase manages bookmark sets.
type PortfolioUsecase struct {
	store   Store
	symbols SymbolCatalog
}

// NewPortfolioUsecase creates a PortfolioUsecase.
func NewPortfolioUsecase(store Store, symbols SymbolCatalog) *PortfolioUsecase {
	return &PortfolioUsecase{store: store, symbols: symbols}
}

// Add bookmarks code. Adding a code twice is a no-op.
func (u *PortfolioUsecase) Add(ctx context.Context, clientID, code string) error {
	if clientID == "" {
		return domain.ErrMissingClientID
	}
	if _, err := u.symbols.FindSymbol(ctx, code); err != nil {
		return fmt.Errorf("add %s: %w", code, err)
	}
	return u.store.Add(ctx, clientID, code)
}

// Remove drops code. Removing an absent code is a no-op.
func (u *PortfolioUsecase) Remove(ctx context.Context, clientID, code string) error {
	if clientID == "" {
		return domain.ErrMissingClientID
	}
	return u.store.Remove(ctx, clientID, code)
}

// Contains reports whether code is bookmarked.
func (u *PortfolioUsecase) Contains(ctx context.Context, clientID, code string) (bool, error) {
	if clientID == "" {
		return false, domain.ErrMissingClientID
	}
	return u.store.Contains(ctx, clientID, code)
}

// Toggle flips the membership of code and returns the new state.
func (u *PortfolioUsecase) Toggle(ctx context.Context, clientID, code string) (bool, error) {
	in, err := u.Contains(ctx, clientID, code)
	if err != nil {
		return false, err
	}
	if in {
		return false, u.store.Remove(ctx, clientID, code)
	}
	if err := u.Add(ctx, clientID, code); err != nil {
		return false, err
	}
	return true, nil
}

// List returns the bookmarked symbols in universe order. Bookmarks that
// are no longer part of the universe are skipped.
func (u *PortfolioUsecase) List(ctx context.Context, clientID string) ([]symentity.Symbol, error) {
	if clientID == "" {
		return nil, domain.ErrMissingClientID
	}

	codes, err := u.store.Members(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if len(codes) == 0 {
		return []symentity.Symbol{}, nil
	}

	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}

	all, err := u.symbols.ListActiveSymbols(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]symentity.Symbol, 0, len(codes))
	for _, s := range all {
		if _, ok := set[s.Code]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}
