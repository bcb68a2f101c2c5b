// Command snapshot selects one stock in a dashboard session and prints the
// resulting view as JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"stock_dashboard/internal/app/config"
	"stock_dashboard/internal/app/di"
	chartentity "stock_dashboard/internal/feature/chart/domain/entity"
	chartusecase "stock_dashboard/internal/feature/chart/usecase"
	dashboardentity "stock_dashboard/internal/feature/dashboard/domain/entity"
	"stock_dashboard/internal/feature/dashboard/transport/http/dto"
	tsentity "stock_dashboard/internal/feature/timeseries/domain/entity"
	platformdb "stock_dashboard/internal/platform/db"
)

var errUnknownSymbol = errors.New("unknown symbol")

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf(".env not loaded: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("snapshot", flag.ContinueOnError)
	symbol := fs.String("symbol", "AAPL", "stock code to select")
	rng := fs.String("range", string(tsentity.DefaultRange), "time range (1d,1w,1m,3m,6m,1y,5y)")
	width := fs.Float64("width", 800, "chart width")
	height := fs.Float64("height", 400, "chart height")
	tuning := fs.String("tuning", os.Getenv("TUNING_FILE"), "YAML tuning file")
	seed := fs.Uint64("seed", 0, "random seed, 0 for a fresh one")
	delays := fs.Bool("delays", false, "keep the simulated request latency")
	if err := fs.Parse(args); err != nil {
		return err
	}

	r, err := tsentity.ParseTimeRange(*rng)
	if err != nil {
		return err
	}
	vp := chartentity.Viewport{Width: *width, Height: *height}
	if !vp.Valid() {
		return fmt.Errorf("invalid viewport %vx%v", *width, *height)
	}

	cfg, err := config.Load(*tuning)
	if err != nil {
		return err
	}
	if *seed != 0 {
		cfg.RandomSeed = *seed
	}
	if !*delays {
		cfg.Latency = config.Latency{}
	}

	db, err := platformdb.Open(platformdb.Config{Driver: platformdb.DriverSQLite})
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer func() { _ = sqlDB.Close() }()
	}

	symbols, err := di.NewSymbolRepository(ctx, db, nil, 0)
	if err != nil {
		return err
	}
	svc := di.NewServices(cfg, symbols, di.NewPortfolioStore(nil))

	session := svc.NewSession()
	if err := session.SetTimeRange(ctx, r); err != nil {
		return err
	}
	if err := session.SelectStock(ctx, *symbol); err != nil {
		return err
	}

	state := session.Snapshot()
	if state.Selected == nil || state.Series == nil || state.Forecast == nil {
		return fmt.Errorf("%w: %q", errUnknownSymbol, *symbol)
	}

	view := dashboardentity.View{
		Symbol:   state.Selected,
		Range:    state.Range,
		Series:   *state.Series,
		Forecast: *state.Forecast,
		Scene:    chartusecase.Project(*state.Series, vp),
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(dto.FromView(view))
}
