package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/jsamuelsen/go-fortune/telemetry"

// CommandMetrics holds per-invocation CLI metrics.
type CommandMetrics struct {
	invocations metric.Int64Counter
	duration    metric.Float64Histogram
}

// NewCommandMetrics creates CLI metrics on mp, or on the global meter
// provider when mp is nil.
func NewCommandMetrics(mp metric.MeterProvider) (*CommandMetrics, error) {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}

	meter := mp.Meter(instrumentationName)

	invocations, err := meter.Int64Counter(
		"fortune.invocations",
		metric.WithDescription("Number of CLI invocations"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		"fortune.duration",
		metric.WithDescription("CLI invocation duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &CommandMetrics{
		invocations: invocations,
		duration:    duration,
	}, nil
}

// Record counts one invocation of command that finished with outcome.
// A nil receiver records nothing.
func (m *CommandMetrics) Record(ctx context.Context, command, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("fortune.command", command),
		attribute.String("fortune.outcome", outcome),
	)

	m.invocations.Add(ctx, 1, attrs)
	m.duration.Record(ctx, elapsed.Seconds(), attrs)
}
