package telemetry

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Provider is the analyser's metrics and tracing surface: one span per
// run, counters for steps and passes, and a histogram of how many nodes a
// prune removed.
type Provider struct {
	tracer trace.Tracer
	steps  metric.Int64Counter
	passes metric.Int64Counter
	pruned metric.Int64Histogram
}

// NewProvider builds a Provider from the given meter and tracer providers,
// falling back to the global OpenTelemetry providers when either is nil
// (the common case for a binary that hasn't wired an exporter yet).
func NewProvider(meterProvider metric.MeterProvider, tracerProvider trace.TracerProvider) (*Provider, error) {
	if meterProvider == nil {
		meterProvider = otel.GetMeterProvider()
	}
	if tracerProvider == nil {
		tracerProvider = otel.GetTracerProvider()
	}

	meter := meterProvider.Meter("github.com/nnir/tensorplan/analyser")

	steps, err := meter.Int64Counter("analyser.steps",
		metric.WithDescription("propagation steps attempted, successful or not"))
	if err != nil {
		return nil, err
	}
	passes, err := meter.Int64Counter("analyser.passes",
		metric.WithDescription("forward/backward passes completed"))
	if err != nil {
		return nil, err
	}
	pruned, err := meter.Int64Histogram("analyser.pruned_nodes",
		metric.WithDescription("nodes removed by a single prune"))
	if err != nil {
		return nil, err
	}

	return &Provider{
		tracer: tracerProvider.Tracer("github.com/nnir/tensorplan/analyser"),
		steps:  steps,
		passes: passes,
		pruned: pruned,
	}, nil
}

// StartRun opens a span for one analyser run tagged with a fresh
// correlation id, returning the derived context, that id, and the span
// (the caller must End it).
func (p *Provider) StartRun(ctx context.Context) (context.Context, uuid.UUID, trace.Span) {
	id := uuid.New()
	ctx, span := p.tracer.Start(ctx, "analyser.run",
		trace.WithAttributes(attribute.String("run.id", id.String())))
	return ctx, id, span
}

// RecordStep increments the step counter for one propagation direction
// ("forward" or "backward").
func (p *Provider) RecordStep(ctx context.Context, direction string) {
	p.steps.Add(ctx, 1, metric.WithAttributes(attribute.String("direction", direction)))
}

// RecordPass increments the pass counter for one propagation direction.
func (p *Provider) RecordPass(ctx context.Context, direction string) {
	p.passes.Add(ctx, 1, metric.WithAttributes(attribute.String("direction", direction)))
}

// RecordPrune records how many nodes a single PruneUnused call removed.
func (p *Provider) RecordPrune(ctx context.Context, removed int) {
	p.pruned.Record(ctx, int64(removed))
}
