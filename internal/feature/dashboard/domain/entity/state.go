// Package entity defines the presentation state of the dashboard.
package entity

import (
	chartentity "stock_dashboard/internal/feature/chart/domain/entity"
	predentity "stock_dashboard/internal/feature/prediction/domain/entity"
	symentity "stock_dashboard/internal/feature/symbollist/domain/entity"
	tsentity "stock_dashboard/internal/feature/timeseries/domain/entity"
)

// State is what a dashboard session currently shows.
// Series and Forecast keep their last good values while a refresh is in flight.
type State struct {
	Selected   *symentity.Symbol
	Range      tsentity.TimeRange
	Series     *tsentity.TimeSeries
	Forecast   *predentity.PointForecast
	Loading    bool
	Generation uint64 // bumped on every selection or range change
}

// View is the one-shot composite returned by the loader.
// Symbol is nil for codes outside the universe; the data then uses the fallback price.
type View struct {
	Symbol   *symentity.Symbol
	Range    tsentity.TimeRange
	Series   tsentity.TimeSeries
	Forecast predentity.PointForecast
	Scene    chartentity.Scene
}
