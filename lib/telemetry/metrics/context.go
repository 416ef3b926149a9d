package metrics

import (
	"context"

	"github.com/artie-labs/materializer/lib/telemetry/metrics/base"
)

type contextKey struct{}

func InjectMetricsClientIntoCtx(ctx context.Context, metricsClient base.Client) context.Context {
	return context.WithValue(ctx, contextKey{}, metricsClient)
}

func FromContext(ctx context.Context) base.Client {
	metricsClient, isOk := ctx.Value(contextKey{}).(base.Client)
	if !isOk {
		return NullMetricsProvider{}
	}

	return metricsClient
}
