// Package domain defines domain-level errors for the dashboard feature.
package domain

import "errors"

var (
	// ErrSuperseded marks a result that arrived after a newer request was issued.
	// The result is discarded; callers usually ignore this error.
	ErrSuperseded = errors.New("superseded by a newer request")
)
