package metrics

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/dstapl/osrs-gph/internal/application/mediator"
)

// PrometheusMiddleware records the duration and outcome of every mediator request.
// Request names drop the package prefix: "*queries.ComputeOverviewsQuery"
// becomes "ComputeOverviewsQuery".
func PrometheusMiddleware(collector *RequestMetricsCollector) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		// Skip metrics if collector is nil (metrics disabled)
		if collector == nil {
			return next(ctx, request)
		}

		name := extractRequestName(request)
		start := time.Now()

		response, err := next(ctx, request)

		collector.RecordRequest(name, time.Since(start).Seconds(), err == nil)
		return response, err
	}
}

func extractRequestName(request mediator.Request) string {
	if request == nil {
		return "UnknownRequest"
	}

	fullName := strings.TrimPrefix(reflect.TypeOf(request).String(), "*")
	if i := strings.LastIndex(fullName, "."); i >= 0 {
		return fullName[i+1:]
	}
	return fullName
}
