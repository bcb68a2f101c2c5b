// Package dto defines data transfer objects for the portfolio HTTP API.
package dto

import symdto "stock_dashboard/internal/feature/symbollist/transport/http/dto"

// PortfolioResponse is the body of GET /portfolio.
type PortfolioResponse struct {
	ClientID string               `json:"clientId"`
	Symbols  []symdto.SymbolItem `json:"symbols"`
}

// MembershipResponse reports the state of one bookmark after a write.
type MembershipResponse struct {
	ClientID    string `json:"clientId"`
	Symbol      string `json:"symbol"`
	InPortfolio bool   `json:"inPortfolio"`
}
