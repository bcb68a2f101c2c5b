// Package domain defines domain-level errors for the timeseries feature.
package domain

import "errors"

var (
	// ErrInvalidTimeRange indicates a range tag outside 1d, 1w, 1m, 3m, 6m, 1y, 5y.
	ErrInvalidTimeRange = errors.New("invalid time range")
)

var (
	// ErrInvalidParams indicates generator tuning that cannot satisfy the series invariants.
	ErrInvalidParams = errors.New("invalid series parameters")
)
