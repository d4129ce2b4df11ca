package middleware

import (
	"github.com/ErlanBelekov/phonebook/internal/requestid"
	"github.com/gin-gonic/gin"
)

// RequestID injects a request ID into the context and response header.
// A well-formed incoming X-Request-ID is preserved, anything else is replaced.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := requestid.Resolve(c.GetHeader(requestid.Header))

		c.Request = c.Request.WithContext(requestid.WithRequestID(c.Request.Context(), id))
		c.Header(requestid.Header, id)
		c.Next()
	}
}
