// Package dto defines data transfer objects for the timeseries HTTP API.
package dto

import "stock_dashboard/internal/feature/timeseries/domain/entity"

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// HistoricalPointResponse is one historical day.
type HistoricalPointResponse struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// PredictionPointResponse is one forecast day. Absent optional values are omitted.
type PredictionPointResponse struct {
	Date       string   `json:"date"`
	Prediction float64  `json:"prediction"`
	UpperBound *float64 `json:"upperBound,omitempty"`
	LowerBound *float64 `json:"lowerBound,omitempty"`
	Actual     *float64 `json:"actual,omitempty"`
}

// SeriesResponse is the body of GET /series/:symbol.
type SeriesResponse struct {
	Symbol      string                    `json:"symbol"`
	Range       string                    `json:"range"`
	Historical  []HistoricalPointResponse `json:"historical"`
	Predictions []PredictionPointResponse `json:"predictions"`
}

// FromSeries converts a domain series to its response shape.
func FromSeries(ts entity.TimeSeries) SeriesResponse {
	out := SeriesResponse{
		Symbol:      ts.Symbol,
		Range:       string(ts.Range),
		Historical:  make([]HistoricalPointResponse, 0, len(ts.Historical)),
		Predictions: make([]PredictionPointResponse, 0, len(ts.Predictions)),
	}
	for _, h := range ts.Historical {
		out.Historical = append(out.Historical, HistoricalPointResponse{
			Date:   h.Date.UTC().Format(DateLayout),
			Open:   h.Open,
			High:   h.High,
			Low:    h.Low,
			Close:  h.Close,
			Volume: h.Volume,
		})
	}
	for _, p := range ts.Predictions {
		out.Predictions = append(out.Predictions, PredictionPointResponse{
			Date:       p.Date.UTC().Format(DateLayout),
			Prediction: p.Prediction,
			UpperBound: p.UpperBound,
			LowerBound: p.LowerBound,
			Actual:     p.Actual,
		})
	}
	return out
}
