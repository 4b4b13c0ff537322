package api

import (
	"context"
	"log/slog"

	"github.com/International-Combat-Archery-Alliance/middleware"
	"github.com/google/uuid"
)

type ctxKey string

const ctxRequestIdKey ctxKey = "REQUEST_ID"

func ctxWithRequestId(ctx context.Context, requestId uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxRequestIdKey, requestId)
}

func getRequestIdFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ctxRequestIdKey).(uuid.UUID)
	return id, ok
}

func ctxWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return middleware.CtxWithLogger(ctx, logger)
}

func (a *API) getLoggerOrBaseLogger(ctx context.Context) *slog.Logger {
	if logger, ok := middleware.GetLoggerFromCtx(ctx); ok {
		return logger
	}
	return a.logger
}
