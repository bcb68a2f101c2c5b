package usecase

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"stock_dashboard/internal/feature/prediction/domain"
	"stock_dashboard/internal/feature/prediction/domain/entity"
)

// Thresholds configure Classify.
type Thresholds struct {
	BuyAbove  float64 `yaml:"buy_above"`
	SellBelow float64 `yaml:"sell_below"`
}

// Params tunes the predictor. The ranges and thresholds are demo
// constants with no statistical derivation.
type Params struct {
	ChangeMin     float64    `yaml:"change_min"`
	ChangeMax     float64    `yaml:"change_max"`
	ConfidenceMin float64    `yaml:"confidence_min"`
	ConfidenceMax float64    `yaml:"confidence_max"`
	Thresholds    Thresholds `yaml:"thresholds"`
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		ChangeMin:     -3,
		ChangeMax:     7,
		ConfidenceMin: 75,
		ConfidenceMax: 95,
		Thresholds: Thresholds{
			BuyAbove:  3,
			SellBelow: -1,
		},
	}
}

// Validate rejects inverted ranges and confidences outside [0,100].
func (p Params) Validate() error {
	switch {
	case p.ChangeMin > p.ChangeMax:
		return fmt.Errorf("%w: change_min > change_max", domain.ErrInvalidParams)
	case p.ChangeMin <= -100:
		return fmt.Errorf("%w: change_min must be > -100", domain.ErrInvalidParams)
	case p.ConfidenceMin > p.ConfidenceMax:
		return fmt.Errorf("%w: confidence_min > confidence_max", domain.ErrInvalidParams)
	case p.ConfidenceMin < 0 || p.ConfidenceMax > 100:
		return fmt.Errorf("%w: confidence must stay within [0,100]", domain.ErrInvalidParams)
	case p.Thresholds.SellBelow > p.Thresholds.BuyAbove:
		return fmt.Errorf("%w: sell_below > buy_above", domain.ErrInvalidParams)
	}
	return nil
}

// Classify is a fixed three-way threshold classifier, not a learned model.
// The first matching rule wins: above BuyAbove is a buy, below SellBelow
// is a sell, anything else is a hold.
func Classify(changePercent float64, th Thresholds) entity.Recommendation {
	switch {
	case changePercent > th.BuyAbove:
		return entity.Buy
	case changePercent < th.SellBelow:
		return entity.Sell
	default:
		return entity.Hold
	}
}

// Predict draws one change and one confidence from src.
func Predict(symbol string, price float64, src rand.Source, p Params) entity.PointForecast {
	change := distuv.Uniform{Min: p.ChangeMin, Max: p.ChangeMax, Src: src}.Rand()
	confidence := distuv.Uniform{Min: p.ConfidenceMin, Max: p.ConfidenceMax, Src: src}.Rand()

	return entity.PointForecast{
		Symbol:         symbol,
		CurrentPrice:   price,
		PredictedPrice: price * (1 + change/100),
		ChangePercent:  change,
		Confidence:     confidence,
		Recommendation: Classify(change, p.Thresholds),
	}
}
