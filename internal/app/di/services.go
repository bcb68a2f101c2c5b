package di

import (
	"stock_dashboard/internal/app/config"
	"stock_dashboard/internal/app/router"
	chartusecase "stock_dashboard/internal/feature/chart/usecase"
	charthandler "stock_dashboard/internal/feature/chart/transport/handler"
	dashboardhandler "stock_dashboard/internal/feature/dashboard/transport/handler"
	dashboardusecase "stock_dashboard/internal/feature/dashboard/usecase"
	portfoliohandler "stock_dashboard/internal/feature/portfolio/transport/handler"
	portfoliousecase "stock_dashboard/internal/feature/portfolio/usecase"
	predictionhandler "stock_dashboard/internal/feature/prediction/transport/handler"
	predictionusecase "stock_dashboard/internal/feature/prediction/usecase"
	symbollisthandler "stock_dashboard/internal/feature/symbollist/transport/handler"
	symbollistusecase "stock_dashboard/internal/feature/symbollist/usecase"
	serieshandler "stock_dashboard/internal/feature/timeseries/transport/handler"
	seriesusecase "stock_dashboard/internal/feature/timeseries/usecase"
	platformhandler "stock_dashboard/internal/platform/http/handler"
	"stock_dashboard/internal/shared/latency"
	"stock_dashboard/internal/shared/randsrc"
)

// Services holds the usecases shared by the server and the snapshot command.
type Services struct {
	Symbols     *symbollistusecase.SymbolUsecase
	Series      *seriesusecase.SeriesUsecase
	Predictions *predictionusecase.PredictionUsecase
	Charts      *chartusecase.ChartUsecase
	Loader      *dashboardusecase.Loader
	Portfolio   *portfoliousecase.PortfolioUsecase
}

// NewServices builds the usecases from the configuration. The series and the
// prediction generators draw from separate streams of the configured seed.
func NewServices(cfg *config.Config, symbols symbollistusecase.SymbolRepository, store portfoliousecase.Store) *Services {
	symbolUC := symbollistusecase.NewSymbolUsecase(symbols)

	seriesUC := seriesusecase.NewSeriesUsecase(
		symbolUC,
		cfg.Series,
		latency.NewFixed(cfg.Latency.Series),
		cfg.Latency.RequestTimeout,
		randsrc.NewFactory(cfg.RandomSeed, randsrc.SeriesStream),
	)
	predictionUC := predictionusecase.NewPredictionUsecase(
		symbolUC,
		cfg.Prediction,
		latency.NewFixed(cfg.Latency.Prediction),
		cfg.Latency.RequestTimeout,
		randsrc.NewFactory(cfg.RandomSeed, randsrc.PredictionStream),
	)

	return &Services{
		Symbols:     symbolUC,
		Series:      seriesUC,
		Predictions: predictionUC,
		Charts:      chartusecase.NewChartUsecase(seriesUC),
		Loader:      dashboardusecase.NewLoader(symbolUC, seriesUC, predictionUC),
		Portfolio:   portfoliousecase.NewPortfolioUsecase(store, symbolUC),
	}
}

// NewSession starts a dashboard session over the services.
func (s *Services) NewSession() *dashboardusecase.Session {
	return dashboardusecase.NewSession(s.Symbols, s.Series, s.Predictions)
}

// NewHandlers builds the HTTP handlers over the services.
func NewHandlers(s *Services, health *platformhandler.HealthHandler) router.Handlers {
	return router.Handlers{
		Health:     health,
		Symbols:    symbollisthandler.NewSymbolHandler(s.Symbols),
		Series:     serieshandler.NewSeriesHandler(s.Series),
		Prediction: predictionhandler.NewPredictionHandler(s.Predictions),
		Chart:      charthandler.NewChartHandler(s.Charts),
		Dashboard:  dashboardhandler.NewDashboardHandler(s.Loader),
		Portfolio:  portfoliohandler.NewPortfolioHandler(s.Portfolio),
	}
}
