package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"stock_dashboard/internal/feature/symbollist/domain"
	"stock_dashboard/internal/feature/symbollist/domain/entity"
	"stock_dashboard/internal/feature/symbollist/usecase"
)

// mockSymbolRepository is a mock implementation of the SymbolRepository interface.
type mockSymbolRepository struct {
	ListActiveFunc func(ctx context.Context) ([]entity.Symbol, error)
	FindByCodeFunc func(ctx context.Context, code string) (*entity.Symbol, error)
}

func (m *mockSymbolRepository) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockSymbolRepository) FindByCode(ctx context.Context, code string) (*entity.Symbol, error) {
	if m.FindByCodeFunc != nil {
		return m.FindByCodeFunc(ctx, code)
	}
	return nil, domain.ErrSymbolNotFound
}

func universe() []entity.Symbol {
	return []entity.Symbol{
		{Code: "AAPL", Name: "Apple Inc.", Price: 182.63, MarketCap: 2_850_000_000_000, IsActive: true, SortKey: 1},
		{Code: "MSFT", Name: "Microsoft Corporation", Price: 402.56, MarketCap: 2_990_000_000_000, IsActive: true, SortKey: 2},
		{Code: "GOOGL", Name: "Alphabet Inc.", Price: 171.19, MarketCap: 2_140_000_000_000, IsActive: true, SortKey: 3},
		{Code: "TSLA", Name: "Tesla, Inc.", Price: 248.48, MarketCap: 790_000_000_000, IsActive: true, SortKey: 4},
		{Code: "NVDA", Name: "NVIDIA Corporation", Price: 116.01, MarketCap: 2_860_000_000_000, IsActive: true, SortKey: 5},
	}
}

func codes(symbols []entity.Symbol) []string {
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, s.Code)
	}
	return out
}

func TestNewSymbolUsecase(t *testing.T) {
	t.Parallel()

	uc := usecase.NewSymbolUsecase(&mockSymbolRepository{})
	assert.NotNil(t, uc, "usecase should not be nil")
}

func TestSymbolUsecase_ListActiveSymbols(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		mockListActive func(ctx context.Context) ([]entity.Symbol, error)
		expected       []string
		wantErr        bool
	}{
		{
			name:           "success: keeps universe order",
			mockListActive: func(ctx context.Context) ([]entity.Symbol, error) { return universe(), nil },
			expected:       []string{"AAPL", "MSFT", "GOOGL", "TSLA", "NVDA"},
		},
		{
			name:           "success: empty universe",
			mockListActive: func(ctx context.Context) ([]entity.Symbol, error) { return []entity.Symbol{}, nil },
			expected:       []string{},
		},
		{
			name:           "failure: repository returns error",
			mockListActive: func(ctx context.Context) ([]entity.Symbol, error) { return nil, errors.New("database connection failed") },
			wantErr:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := usecase.NewSymbolUsecase(&mockSymbolRepository{ListActiveFunc: tt.mockListActive})
			symbols, err := uc.ListActiveSymbols(context.Background())

			if tt.wantErr {
				assert.EqualError(t, err, "database connection failed")
				assert.Nil(t, symbols)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, codes(symbols))
		})
	}
}

func TestSymbolUsecase_Overview(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		limit    int
		expected []string
	}{
		{name: "orders by market cap descending", limit: 10, expected: []string{"MSFT", "NVDA", "AAPL", "GOOGL", "TSLA"}},
		{name: "truncates to limit", limit: 2, expected: []string{"MSFT", "NVDA"}},
		{name: "non-positive limit uses default", limit: 0, expected: []string{"MSFT", "NVDA", "AAPL", "GOOGL", "TSLA"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &mockSymbolRepository{
				ListActiveFunc: func(ctx context.Context) ([]entity.Symbol, error) { return universe(), nil },
			}
			uc := usecase.NewSymbolUsecase(repo)

			symbols, err := uc.Overview(context.Background(), tt.limit)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, codes(symbols))
		})
	}
}

func TestSymbolUsecase_Overview_DoesNotReorderSource(t *testing.T) {
	t.Parallel()

	src := universe()
	repo := &mockSymbolRepository{
		ListActiveFunc: func(ctx context.Context) ([]entity.Symbol, error) { return src, nil },
	}

	_, err := usecase.NewSymbolUsecase(repo).Overview(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "MSFT", "GOOGL", "TSLA", "NVDA"}, codes(src))
}

func TestSymbolUsecase_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		term     string
		expected []string
	}{
		{name: "empty term matches nothing", term: "", expected: []string{}},
		{name: "blank term matches nothing", term: "   ", expected: []string{}},
		{name: "matches code case-insensitively", term: "aapl", expected: []string{"AAPL"}},
		{name: "matches name substring", term: "corp", expected: []string{"MSFT", "NVDA"}},
		{name: "matches code or name", term: "t", expected: []string{"MSFT", "GOOGL", "TSLA", "NVDA"}},
		{name: "no match", term: "zzzz", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &mockSymbolRepository{
				ListActiveFunc: func(ctx context.Context) ([]entity.Symbol, error) { return universe(), nil },
			}
			symbols, err := usecase.NewSymbolUsecase(repo).Search(context.Background(), tt.term)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, codes(symbols))
		})
	}
}

func TestSymbolUsecase_LookupReferencePrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		code     string
		findErr  error
		expected float64
	}{
		{name: "known symbol returns its price", code: "AAPL", expected: 182.63},
		{name: "unknown symbol falls back", code: "ZZZZ", findErr: domain.ErrSymbolNotFound, expected: usecase.FallbackPrice},
		{name: "repository failure falls back", code: "AAPL", findErr: errors.New("redis down"), expected: usecase.FallbackPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &mockSymbolRepository{
				FindByCodeFunc: func(ctx context.Context, code string) (*entity.Symbol, error) {
					if tt.findErr != nil {
						return nil, tt.findErr
					}
					for _, s := range universe() {
						if s.Code == code {
							return &s, nil
						}
					}
					return nil, domain.ErrSymbolNotFound
				},
			}

			price := usecase.NewSymbolUsecase(repo).LookupReferencePrice(context.Background(), tt.code)
			assert.Equal(t, tt.expected, price)
		})
	}
}

func TestSymbolUsecase_ListActiveSymbols_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := &mockSymbolRepository{
		ListActiveFunc: func(ctx context.Context) ([]entity.Symbol, error) {
			return nil, ctx.Err()
		},
	}

	symbols, err := usecase.NewSymbolUsecase(repo).ListActiveSymbols(ctx)
	assert.Nil(t, symbols)
	assert.ErrorIs(t, err, context.Canceled)
}
