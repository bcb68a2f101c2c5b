// Package domain defines domain-level errors for the portfolio feature.
package domain

import "errors"

var (
	// ErrMissingClientID indicates a request without a client identifier.
	ErrMissingClientID = errors.New("missing client id")
)
