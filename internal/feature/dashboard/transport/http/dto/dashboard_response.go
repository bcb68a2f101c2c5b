// Package dto defines data transfer objects for the dashboard HTTP API.
package dto

import (
	chartdto "stock_dashboard/internal/feature/chart/transport/http/dto"
	"stock_dashboard/internal/feature/dashboard/domain/entity"
	preddto "stock_dashboard/internal/feature/prediction/transport/http/dto"
	symdto "stock_dashboard/internal/feature/symbollist/transport/http/dto"
	tsdto "stock_dashboard/internal/feature/timeseries/transport/http/dto"
)

// DashboardResponse is the body of GET /dashboard/:symbol.
type DashboardResponse struct {
	Symbol   *symdto.SymbolItem       `json:"symbol"`
	Range    string                   `json:"range"`
	Series   tsdto.SeriesResponse     `json:"series"`
	Forecast preddto.ForecastResponse `json:"forecast"`
	Chart    chartdto.SceneResponse   `json:"chart"`
}

// FromView converts a loaded view to its response shape.
func FromView(v entity.View) DashboardResponse {
	out := DashboardResponse{
		Range:    string(v.Range),
		Series:   tsdto.FromSeries(v.Series),
		Forecast: preddto.FromForecast(v.Forecast),
		Chart:    chartdto.FromScene(v.Scene),
	}
	if v.Symbol != nil {
		item := symdto.FromEntity(*v.Symbol)
		out.Symbol = &item
	}
	return out
}
