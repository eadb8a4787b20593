package common

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dstapl/osrs-gph/internal/application/mediator"
)

// RunIDMiddleware gives every request without a run id a fresh one
func RunIDMiddleware(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
	if _, ok := RunIDFromContext(ctx); !ok {
		ctx = WithRunID(ctx, uuid.NewString())
	}
	return next(ctx, request)
}

// LoggingMiddleware logs each request's type, duration and outcome
func LoggingMiddleware(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
	logger := LoggerFromContext(ctx)
	requestType := fmt.Sprintf("%T", request)
	start := time.Now()

	logger.Debug("handling request", "request", requestType)
	response, err := next(ctx, request)
	if err != nil {
		logger.Error("request failed", "request", requestType, "duration", time.Since(start), "error", err)
		return nil, err
	}

	logger.Debug("request handled", "request", requestType, "duration", time.Since(start))
	return response, nil
}
