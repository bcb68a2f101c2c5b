package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"stock_dashboard/internal/app/config"
	"stock_dashboard/internal/app/di"
	"stock_dashboard/internal/app/router"
	platformdb "stock_dashboard/internal/platform/db"
	platformhandler "stock_dashboard/internal/platform/http/handler"
	"stock_dashboard/internal/platform/ratelimit"
	platformredis "stock_dashboard/internal/platform/redis"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf(".env not loaded: %v", err)
	}

	cfg, err := config.Load(os.Getenv("TUNING_FILE"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := config.NewLogger(os.Stdout, cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	slog.SetDefault(logger)

	// db
	db, err := platformdb.Open(platformdb.LoadConfigFromEnv())
	if err != nil {
		slog.Error("database unavailable", "error", err)
		os.Exit(1)
	}

	// Redis is optional
	var rdb *redisv9.Client
	if rcfg := platformredis.LoadConfig(); rcfg.Enabled() {
		if tmp, err := platformredis.NewRedisClient(ctx, rcfg); err != nil {
			slog.Warn("Redis unavailable, running without cache")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	symbols, err := di.NewSymbolRepository(ctx, db, rdb, cfg.SymbolCacheTTL)
	if err != nil {
		slog.Error("symbol repository setup failed", "error", err)
		os.Exit(1)
	}

	svc := di.NewServices(cfg, symbols, di.NewPortfolioStore(rdb))
	health := platformhandler.NewHealthHandler(platformhandler.RedisPing(rdb), platformhandler.GormPing(db))
	engine := router.NewRouter(di.NewHandlers(svc, health), ratelimit.NewLimiter(ratelimit.LoadConfig()))

	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", s.Addr)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}
	slog.Info("server stopped")
}
