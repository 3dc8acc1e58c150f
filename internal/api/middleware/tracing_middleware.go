package middleware

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/gin-gonic/gin"
)

// RequestIDHeader names the header carrying the request correlation ID.
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// TracingMiddleware tags every request with a correlation ID so the log
// lines of one call can be tied together. An incoming ID is reused and
// echoed back; requests without one get a fresh ID.
type TracingMiddleware struct{}

// NewTracingMiddleware creates a new tracing middleware
func NewTracingMiddleware() *TracingMiddleware {
	return &TracingMiddleware{}
}

// TraceRequest assigns the correlation ID and exposes it on the response
func (m *TracingMiddleware) TraceRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = generateID()
		}

		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// RequestID retrieves the correlation ID assigned to the current request.
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// generateID generates a random ID
func generateID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
