// Package dto defines data transfer objects for the prediction HTTP API.
package dto

import "stock_dashboard/internal/feature/prediction/domain/entity"

// ForecastResponse is the body of GET /predictions/:symbol.
type ForecastResponse struct {
	Symbol         string  `json:"symbol"`
	CurrentPrice   float64 `json:"currentPrice"`
	PredictedPrice float64 `json:"predictedPrice"`
	ChangePercent  float64 `json:"changePercent"`
	Confidence     float64 `json:"confidence"`
	Recommendation string  `json:"recommendation"`
}

// FromForecast converts a domain forecast to its response shape.
func FromForecast(fc entity.PointForecast) ForecastResponse {
	return ForecastResponse{
		Symbol:         fc.Symbol,
		CurrentPrice:   fc.CurrentPrice,
		PredictedPrice: fc.PredictedPrice,
		ChangePercent:  fc.ChangePercent,
		Confidence:     fc.Confidence,
		Recommendation: string(fc.Recommendation),
	}
}
