// Package router wires the HTTP routes.
package router

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	charthandler "stock_dashboard/internal/feature/chart/transport/handler"
	dashboardhandler "stock_dashboard/internal/feature/dashboard/transport/handler"
	portfoliohandler "stock_dashboard/internal/feature/portfolio/transport/handler"
	predictionhandler "stock_dashboard/internal/feature/prediction/transport/handler"
	symbollisthandler "stock_dashboard/internal/feature/symbollist/transport/handler"
	serieshandler "stock_dashboard/internal/feature/timeseries/transport/handler"
	"stock_dashboard/internal/platform/clientid"
	platformhandler "stock_dashboard/internal/platform/http/handler"
	"stock_dashboard/internal/platform/ratelimit"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Health     *platformhandler.HealthHandler
	Symbols    *symbollisthandler.SymbolHandler
	Series     *serieshandler.SeriesHandler
	Prediction *predictionhandler.PredictionHandler
	Chart      *charthandler.ChartHandler
	Dashboard  *dashboardhandler.DashboardHandler
	Portfolio  *portfoliohandler.PortfolioHandler
}

// CORSConfig allows the browser dashboard to call the API. CORS_ALLOW_ORIGINS
// is a comma separated list; when unset every origin is allowed.
func CORSConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "HEAD", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", clientid.Header},
		ExposeHeaders: []string{"Content-Length", clientid.Header},
		MaxAge:        12 * time.Hour,
	}
	if v := os.Getenv("CORS_ALLOW_ORIGINS"); v != "" {
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowOrigins = append(cfg.AllowOrigins, o)
			}
		}
	}
	if len(cfg.AllowOrigins) == 0 {
		cfg.AllowAllOrigins = true
	}
	return cfg
}

// NewRouter builds the gin engine. A nil limiter disables rate limiting.
func NewRouter(h Handlers, limiter *ratelimit.Limiter) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(CORSConfig()))

	// Health checks are never throttled
	r.GET("/healthz", h.Health.Health)
	r.HEAD("/healthz", h.Health.Health)
	r.OPTIONS("/healthz", h.Health.Health)

	api := r.Group("/")
	if limiter != nil {
		api.Use(limiter.Middleware())
	}
	{
		api.GET("/symbols", h.Symbols.List)
		api.GET("/symbols/overview", h.Symbols.Overview)
		api.GET("/symbols/search", h.Symbols.Search)

		api.GET("/series/:symbol", h.Series.GetSeries)
		api.GET("/predictions/:symbol", h.Prediction.GetPrediction)
		api.GET("/chart/:symbol", h.Chart.GetChart)
		api.GET("/dashboard/:symbol", h.Dashboard.GetDashboard)
	}

	// Bookmarks are scoped to the anonymous client id
	portfolio := api.Group("/portfolio")
	portfolio.Use(clientid.Middleware())
	{
		portfolio.GET("", h.Portfolio.List)
		portfolio.PUT("/:symbol", h.Portfolio.Add)
		portfolio.DELETE("/:symbol", h.Portfolio.Remove)
		portfolio.POST("/:symbol/toggle", h.Portfolio.Toggle)
	}

	return r
}
