package middleware

import (
	"context"
	"log/slog"
)

// contextKey is the type for values this package stores in a request context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey  = contextKey("logger")
	traceIDCtxKey = contextKey("traceID")
	subjectCtxKey = contextKey("subject")
)

// TraceIDHeader carries the request trace id in and out of the service.
const TraceIDHeader = "X-Trace-Id"

// GetLoggerFromCtx retrieves the request-scoped logger from a standard context.
// It returns the default logger if none is found.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// GetTraceIDFromCtx returns the trace id assigned by StructuredLoggingMiddleware, or "".
func GetTraceIDFromCtx(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	traceID, _ := ctx.Value(traceIDCtxKey).(string)
	return traceID
}

// GetSubjectFromCtx returns the authenticated token subject, if any.
func GetSubjectFromCtx(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectCtxKey).(string)
	return subject, ok && subject != ""
}
