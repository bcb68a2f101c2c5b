// Package domain defines domain-level errors for the chart feature.
package domain

import "errors"

var (
	// ErrInvalidViewport indicates a width or height that is not a positive finite number.
	ErrInvalidViewport = errors.New("invalid viewport")
)
