package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"smartcars-insurance/pkg/log"
)

// HeaderRequestID is the request id header, honored when the caller
// already set one.
const HeaderRequestID = "X-Request-ID"

// RequestID attaches a request id to the request context so every log
// line of a chat request can be correlated.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		ctx := log.ContextWithRequestID(c.Request.Context(), reqID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, reqID)

		c.Next()
	}
}
