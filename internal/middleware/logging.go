package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StructuredLoggingMiddleware creates a Gin middleware handler that assigns a trace id
// and injects a request-scoped logger into the request context.
// An incoming X-Trace-Id header is reused; otherwise a new UUID is generated.
func StructuredLoggingMiddleware(baseLogger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		traceID := c.GetHeader(TraceIDHeader)
		if traceID == "" || len(traceID) > 128 {
			traceID = uuid.NewString()
		}

		// Create a logger enriched with request-specific fields
		requestLogger := baseLogger.With(
			slog.String("trace_id", traceID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
		)

		c.Header(TraceIDHeader, traceID)

		ctx := context.WithValue(c.Request.Context(), traceIDCtxKey, traceID)
		c.Request = c.Request.WithContext(WithLogger(ctx, requestLogger))

		c.Next()

		requestLogger.Info("Request completed",
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		)
	}
}

// abortWithError stops the chain with the standard error envelope.
func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"traceId": GetTraceIDFromCtx(c.Request.Context()),
		"error":   gin.H{"code": code, "message": message},
	})
}
