package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID is the header used to propagate a request identifier.
const HeaderRequestID = "X-Request-ID"

const contextRequestIDKey = "requestID"

// RequestID propagates the incoming X-Request-ID or assigns a fresh one, and
// echoes it on the response so log lines can be correlated across services.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(contextRequestIDKey, id)
		c.Writer.Header().Set(HeaderRequestID, id)
		c.Next()
	}
}

// GetRequestID returns the request id assigned by RequestID, or "" when the
// middleware is not installed.
func GetRequestID(c *gin.Context) string {
	id, _ := c.Get(contextRequestIDKey)
	s, _ := id.(string)
	return s
}
