// Package dto defines data transfer objects for the symbollist HTTP API.
package dto

import "stock_dashboard/internal/feature/symbollist/domain/entity"

// SymbolItem represents a quote in the API response.
// It contains only the public-facing fields needed by clients.
type SymbolItem struct {
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	Volume        int64   `json:"volume"`
	MarketCap     int64   `json:"marketCap"`
}

// FromEntity converts a domain symbol to its response shape.
func FromEntity(s entity.Symbol) SymbolItem {
	return SymbolItem{
		Code:          s.Code,
		Name:          s.Name,
		Price:         s.Price,
		Change:        s.Change,
		ChangePercent: s.ChangePercent,
		Volume:        s.Volume,
		MarketCap:     s.MarketCap,
	}
}

// FromEntities converts a slice; the result is never nil.
func FromEntities(ss []entity.Symbol) []SymbolItem {
	out := make([]SymbolItem, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromEntity(s))
	}
	return out
}
