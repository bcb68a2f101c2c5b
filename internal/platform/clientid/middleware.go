// Package clientid identifies anonymous dashboard clients.
package clientid

import (
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// Header carries the client identifier in both directions.
	Header = "X-Client-ID"
	// ContextKey is where the middleware stores the identifier in the gin context.
	ContextKey = "clientID"
)

var validID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Middleware reads the client identifier from the request header, issuing a
// new UUID when it is missing or malformed. The identifier is echoed back so
// the client can reuse it.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(Header)
		if !validID.MatchString(id) {
			id = uuid.NewString()
		}

		c.Set(ContextKey, id)
		c.Header(Header, id)
		c.Next()
	}
}

// FromContext returns the identifier set by Middleware, or "" when the
// middleware did not run.
func FromContext(c *gin.Context) string {
	return c.GetString(ContextKey)
}
