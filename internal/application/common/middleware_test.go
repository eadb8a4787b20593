package common_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstapl/osrs-gph/internal/application/common"
	"github.com/dstapl/osrs-gph/internal/application/mediator"
)

type probe struct{}

func TestRunIDMiddleware(t *testing.T) {
	var seen string
	next := func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		seen, _ = common.RunIDFromContext(ctx)
		return nil, nil
	}

	_, err := common.RunIDMiddleware(context.Background(), &probe{}, next)
	require.NoError(t, err)
	assert.Len(t, seen, 36)

	ctx := common.WithRunID(context.Background(), "overview-1234abcd")
	_, err = common.RunIDMiddleware(ctx, &probe{}, next)
	require.NoError(t, err)
	assert.Equal(t, "overview-1234abcd", seen)
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := common.WithRunID(common.WithLogger(context.Background(), logger), "run-1")

	_, err := common.LoggingMiddleware(ctx, &probe{}, func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return nil, errors.New("boom")
	})

	require.Error(t, err)
	out := buf.String()
	assert.Contains(t, out, "request failed")
	assert.Contains(t, out, "*common_test.probe")
	assert.Contains(t, out, "run_id=run-1")
}

func TestLoggerFromContext_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, slog.Default(), common.LoggerFromContext(context.Background()))
}
