// Package api holds the response envelopes shared by every HTTP handler.
package api

import (
	"context"
	"errors"
	"net/http"

	"stock_dashboard/internal/shared/async"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusForError maps errors that are common to all features.
// Feature specific sentinels (bad input, unknown symbol) are mapped by the handler first.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, async.ErrRequestTimeout), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		// client went away; nobody reads the body
		return 499
	default:
		return http.StatusInternalServerError
	}
}
