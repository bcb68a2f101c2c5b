// Package domain defines domain-level errors for the prediction feature.
package domain

import "errors"

var (
	// ErrInvalidParams indicates predictor tuning with empty or inverted ranges.
	ErrInvalidParams = errors.New("invalid prediction parameters")
)
