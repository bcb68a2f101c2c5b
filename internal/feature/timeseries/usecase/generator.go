package usecase

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"

	"stock_dashboard/internal/feature/timeseries/domain"
	"stock_dashboard/internal/feature/timeseries/domain/entity"
)

// Params tunes the random walk. The defaults are demo constants, not a
// fitted model; they are exposed so deployments can adjust them.
type Params struct {
	VolatilityRatio          float64 `yaml:"volatility_ratio"`           // daily step size as a fraction of price
	Trend                    float64 `yaml:"trend"`                      // per-day drift
	LongTrend                float64 `yaml:"long_trend"`                 // drift for the longest range
	MinPrice                 float64 `yaml:"min_price"`                  // floor for every generated close
	OpenSpread               float64 `yaml:"open_spread"`                // open = close*(1-U(0,OpenSpread))
	WickSpread               float64 `yaml:"wick_spread"`                // high/low = close*(1±U(0,WickSpread))
	VolumeMin                float64 `yaml:"volume_min"`
	VolumeMax                float64 `yaml:"volume_max"`
	Horizon                  int     `yaml:"horizon"`                    // forecast length in days
	ForecastVolatilityFactor float64 `yaml:"forecast_volatility_factor"` // scales volatility after today
	ForecastTrendFactor      float64 `yaml:"forecast_trend_factor"`      // scales drift after today
	BandBase                 float64 `yaml:"band_base"`                  // band half-width fraction on day one
	BandStep                 float64 `yaml:"band_step"`                  // added per forecast day
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		VolatilityRatio:          0.02,
		Trend:                    0.01,
		LongTrend:                0.05,
		MinPrice:                 1.0,
		OpenSpread:               0.01,
		WickSpread:               0.015,
		VolumeMin:                5_000_000,
		VolumeMax:                15_000_000,
		Horizon:                  30,
		ForecastVolatilityFactor: 1.2,
		ForecastTrendFactor:      1.5,
		BandBase:                 0.05,
		BandStep:                 0.01,
	}
}

// Validate rejects tunings that would break the point invariants.
func (p Params) Validate() error {
	switch {
	case p.VolatilityRatio < 0:
		return fmt.Errorf("%w: volatility_ratio must be >= 0", domain.ErrInvalidParams)
	case p.MinPrice <= 0:
		return fmt.Errorf("%w: min_price must be > 0", domain.ErrInvalidParams)
	case p.OpenSpread < 0 || p.OpenSpread >= 1:
		return fmt.Errorf("%w: open_spread must be in [0,1)", domain.ErrInvalidParams)
	case p.WickSpread < 0 || p.WickSpread >= 1:
		return fmt.Errorf("%w: wick_spread must be in [0,1)", domain.ErrInvalidParams)
	case p.VolumeMin < 0 || p.VolumeMax < p.VolumeMin:
		return fmt.Errorf("%w: volume range must satisfy 0 <= min <= max", domain.ErrInvalidParams)
	case p.Horizon <= 0:
		return fmt.Errorf("%w: horizon must be > 0", domain.ErrInvalidParams)
	case p.ForecastVolatilityFactor < 0:
		return fmt.Errorf("%w: forecast_volatility_factor must be >= 0", domain.ErrInvalidParams)
	case p.BandBase < 0 || p.BandStep < 0:
		return fmt.Errorf("%w: band fractions must be >= 0", domain.ErrInvalidParams)
	case p.BandBase+p.BandStep*float64(p.Horizon-1) >= 1:
		return fmt.Errorf("%w: band would reach a non-positive lower bound", domain.ErrInvalidParams)
	}
	return nil
}

// trend returns the per-day drift for r.
func (p Params) trend(r entity.TimeRange) float64 {
	if r.IsLongest() {
		return p.LongTrend
	}
	return p.Trend
}

// sampler draws uniform values from a single source so a seeded source
// yields a reproducible series.
type sampler struct {
	src rand.Source
}

func (s sampler) uniform(lo, hi float64) float64 {
	return distuv.Uniform{Min: lo, Max: hi, Src: s.src}.Rand()
}

// CivilDate truncates t to its calendar date at 00:00 UTC.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Generate builds a series whose last historical close equals price.
//
// It walks backward from price for r.Days() days ending at today, derives
// open, high, low and volume for each close, then walks forward for
// p.Horizon days with a widening confidence band. The function is pure given
// src and never fails; an unknown range produces no historical points.
func Generate(price float64, r entity.TimeRange, today time.Time, src rand.Source, p Params) entity.TimeSeries {
	s := sampler{src: src}
	days := r.Days()
	volatility := price * p.VolatilityRatio
	trend := p.trend(r)
	end := CivilDate(today)

	closes := make([]float64, days)
	if days > 0 {
		closes[days-1] = price
		for i := days - 2; i >= 0; i-- {
			next := closes[i+1] + s.uniform(-volatility, volatility) - trend
			closes[i] = math.Max(next, p.MinPrice)
		}
	}

	historical := make([]entity.HistoricalPoint, 0, days)
	for i, c := range closes {
		open := c * (1 - s.uniform(0, p.OpenSpread))
		high := c * (1 + s.uniform(0, p.WickSpread))
		low := c * (1 - s.uniform(0, p.WickSpread))
		volume := int64(math.Floor(s.uniform(p.VolumeMin, p.VolumeMax)))

		historical = append(historical, entity.HistoricalPoint{
			Date:   end.AddDate(0, 0, i-(days-1)),
			Open:   open,
			High:   math.Max(high, math.Max(open, c)),
			Low:    math.Min(low, math.Min(open, c)),
			Close:  c,
			Volume: volume,
		})
	}

	last := price
	lastDate := end.AddDate(0, 0, -1)
	if days > 0 {
		last = closes[days-1]
		lastDate = historical[days-1].Date
	}

	fv := volatility * p.ForecastVolatilityFactor
	ft := trend * p.ForecastTrendFactor
	predictions := make([]entity.PredictionPoint, 0, p.Horizon)
	running := last
	for i := 0; i < p.Horizon; i++ {
		running = math.Max(running+s.uniform(-fv, fv)+ft, p.MinPrice)
		frac := p.BandBase + float64(i)*p.BandStep
		upper := running * (1 + frac)
		lower := running * (1 - frac)

		predictions = append(predictions, entity.PredictionPoint{
			Date:       lastDate.AddDate(0, 0, i+1),
			Prediction: running,
			UpperBound: &upper,
			LowerBound: &lower,
		})
	}

	return entity.TimeSeries{
		Range:       r,
		Historical:  historical,
		Predictions: predictions,
	}
}
