package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/champ-oss/action-update-app/pkg/domain/types"
)

type ctxRunIDKey struct{}

// CtxRunID returns run ID from context. If run ID is not set, return new run ID and context with it
func CtxRunID(ctx context.Context) (types.RunID, context.Context) {
	if id, ok := ctx.Value(ctxRunIDKey{}).(types.RunID); ok {
		return id, ctx
	}

	newID := types.NewRunID()
	return newID, context.WithValue(ctx, ctxRunIDKey{}, newID)
}

type ctxLoggerKey struct{}

// With returns a new context with logger
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From returns logger from context. If logger is not set, return default logger
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return defaultLogger
}

type ctxTimeKey struct{}
type TimeFunc func() time.Time

// CtxTime returns time from context. If time is not set, return current time and context with it
func CtxTime(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ctxTimeKey{}).(TimeFunc); ok {
		return t()
	}
	return time.Now()
}

// CtxWithTime returns a new context with time function
func CtxWithTime(ctx context.Context, timeFunc TimeFunc) context.Context {
	return context.WithValue(ctx, ctxTimeKey{}, timeFunc)
}
