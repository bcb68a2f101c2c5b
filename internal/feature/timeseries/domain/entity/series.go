// Package entity defines the domain models for the timeseries feature.
package entity

import "time"

// HistoricalPoint is one generated trading day.
// Invariant: Low <= min(Open, Close), High >= max(Open, Close), Close >= 1.
type HistoricalPoint struct {
	Date   time.Time // Calendar date at 00:00 UTC
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// PredictionPoint is one day of the forecast window.
// Bounds and Actual are optional; when bounds are present
// LowerBound <= Prediction <= UpperBound.
type PredictionPoint struct {
	Date       time.Time
	Prediction float64
	UpperBound *float64
	LowerBound *float64
	Actual     *float64
}

// HalfWidth returns the band half-width, or 0 when the point has no bounds.
func (p PredictionPoint) HalfWidth() float64 {
	if p.UpperBound == nil || p.LowerBound == nil {
		return 0
	}
	return (*p.UpperBound - *p.LowerBound) / 2
}

// TimeSeries is the historical window followed by the forecast window.
// The first prediction date is the day after the last historical date.
type TimeSeries struct {
	Symbol      string
	Range       TimeRange
	Historical  []HistoricalPoint
	Predictions []PredictionPoint
}

// LastClose returns the most recent historical close, or 0 for an empty series.
func (s TimeSeries) LastClose() float64 {
	if len(s.Historical) == 0 {
		return 0
	}
	return s.Historical[len(s.Historical)-1].Close
}
