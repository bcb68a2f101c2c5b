// Package entity defines the domain models for the prediction feature.
package entity

// Recommendation is the action suggested by a forecast.
type Recommendation string

const (
	Buy  Recommendation = "buy"
	Sell Recommendation = "sell"
	Hold Recommendation = "hold"
)

// PointForecast is a single-horizon forecast for one symbol.
// It is derived per request and never stored.
type PointForecast struct {
	Symbol         string
	CurrentPrice   float64
	PredictedPrice float64
	ChangePercent  float64        // Predicted change in percent
	Confidence     float64        // 0 to 100
	Recommendation Recommendation // Determined by ChangePercent alone
}
