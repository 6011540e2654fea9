// Package otel configures OpenTelemetry tracing for launchpad processes.
package otel

import (
	"context"
	"os"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	envEndpoint    = "LAUNCHPAD_OTEL_ENDPOINT"
	envEnabled     = "LAUNCHPAD_OTEL_ENABLED"
	envSampleRatio = "LAUNCHPAD_OTEL_SAMPLE_RATIO"
)

// Options controls tracer provider construction.
type Options struct {
	// Endpoint is the OTLP/HTTP collector URL. Empty disables tracing.
	Endpoint string
	// Disabled forces the no-op provider even when Endpoint is set.
	Disabled bool
	// SampleRatio is the parent-based sampling ratio; values outside (0,1]
	// sample every trace.
	SampleRatio float64
}

// OptionsFromEnv reads tracing options from LAUNCHPAD_OTEL_* variables.
func OptionsFromEnv() Options {
	opts := Options{
		Endpoint: strings.TrimSpace(os.Getenv(envEndpoint)),
		Disabled: strings.EqualFold(strings.TrimSpace(os.Getenv(envEnabled)), "false"),
	}
	if raw := strings.TrimSpace(os.Getenv(envSampleRatio)); raw != "" {
		if ratio, err := strconv.ParseFloat(raw, 64); err == nil {
			opts.SampleRatio = ratio
		}
	}
	return opts
}

// Setup initialises tracing for the given service using environment options.
//
// Tracing is opt-in: without LAUNCHPAD_OTEL_ENDPOINT, or with
// LAUNCHPAD_OTEL_ENABLED=false, the returned shutdown is a no-op and no
// global provider is registered.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	return SetupWithOptions(ctx, serviceName, OptionsFromEnv())
}

// SetupWithOptions initialises tracing with explicit options. The returned
// shutdown flushes pending spans and should be deferred by the caller.
func SetupWithOptions(ctx context.Context, serviceName string, opts Options) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }
	if opts.Disabled || strings.TrimSpace(opts.Endpoint) == "" {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(strings.TrimSpace(opts.Endpoint)),
	)
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return noop, err
	}

	sampler := sdktrace.AlwaysSample()
	if opts.SampleRatio > 0 && opts.SampleRatio < 1 {
		sampler = sdktrace.ParentBased(sdktrace.TraceIDRatioBased(opts.SampleRatio))
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer from the global provider. Before Setup
// registers a provider this is the no-op tracer.
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}
