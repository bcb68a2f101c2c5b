// Package domain defines domain-level errors for the symbollist feature.
package domain

import "errors"

var (
	// ErrSymbolNotFound indicates that the code is not part of the reference universe.
	// The price lookup never returns it; it falls back to a default price instead.
	ErrSymbolNotFound = errors.New("symbol not found")
)
