// Package logger provides structured logging utilities with context propagation.
package logger

import (
	"context"
	"fmt"
	"maps"

	"github.com/kart-io/logger"
	"github.com/kart-io/logger/core"
)

type contextKey int

const (
	loggerFieldsKey contextKey = iota
	contextLoggerKey
)

type loggerFields map[string]any

func getLoggerFields(ctx context.Context) loggerFields {
	if lf, ok := ctx.Value(loggerFieldsKey).(loggerFields); ok {
		return lf
	}
	return nil
}

func withField(ctx context.Context, key string, value any) context.Context {
	lf := maps.Clone(getLoggerFields(ctx))
	if lf == nil {
		lf = make(loggerFields, 1)
	}
	lf[key] = value
	return context.WithValue(ctx, loggerFieldsKey, lf)
}

// WithRequestID adds request_id to the context logger fields.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		return ctx
	}
	return withField(ctx, "request_id", requestID)
}

// WithCommand adds the CLI subcommand name to the context logger fields.
func WithCommand(ctx context.Context, command string) context.Context {
	if command == "" {
		return ctx
	}
	return withField(ctx, "command", command)
}

// WithError adds structured error fields to the context.
func WithError(ctx context.Context, err error) context.Context {
	if err == nil {
		return ctx
	}
	ctx = withField(ctx, "error_message", err.Error())
	return withField(ctx, "error_type", fmt.Sprintf("%T", err))
}

// WithFields adds multiple custom fields to the context at once.
// Non-string keys and a trailing key without a value are ignored.
func WithFields(ctx context.Context, keysAndValues ...any) context.Context {
	if len(keysAndValues) < 2 {
		return ctx
	}

	lf := maps.Clone(getLoggerFields(ctx))
	if lf == nil {
		lf = make(loggerFields, len(keysAndValues)/2)
	}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			lf[key] = keysAndValues[i+1]
		}
	}
	return context.WithValue(ctx, loggerFieldsKey, lf)
}

// GetContextFields retrieves all logger fields from context as a slice.
// Returns nil if no fields are present.
func GetContextFields(ctx context.Context) []any {
	lf := getLoggerFields(ctx)
	if len(lf) == 0 {
		return nil
	}
	slice := make([]any, 0, len(lf)*2)
	for k, v := range lf {
		slice = append(slice, k, v)
	}
	return slice
}

// GetLogger retrieves or creates a context-aware logger.
// The returned logger includes all fields stored in the context.
func GetLogger(ctx context.Context) core.Logger {
	if ctxLogger, ok := ctx.Value(contextLoggerKey).(core.Logger); ok {
		return ctxLogger
	}

	base := logger.Global()
	if fields := GetContextFields(ctx); len(fields) > 0 {
		return base.With(fields...)
	}
	return base
}

// WithLogger stores a pre-configured logger in the context.
func WithLogger(ctx context.Context, log core.Logger) context.Context {
	return context.WithValue(ctx, contextLoggerKey, log)
}

// LogError logs err with the context fields attached.
func LogError(ctx context.Context, msg string, err error) {
	GetLogger(WithError(ctx, err)).Errorw(msg)
}
