// Package telemetry wires the OpenTelemetry tracer provider. Spans come from
// the otelhttp transport of the API client and from the catalog service.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-movie-client/internal/config"
	"github.com/MKhiriev/go-movie-client/internal/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Setup installs a global tracer provider exporting to cfg.Endpoint over OTLP
// gRPC. With no endpoint configured tracing stays on the global no-op
// provider and the returned ShutdownFunc does nothing.
func Setup(ctx context.Context, cfg config.ClientTelemetry, serviceName, serviceVersion string, log *logger.Logger) (ShutdownFunc, error) {
	if cfg.Endpoint == "" {
		log.Debug().Msg("tracing disabled")
		return noopShutdown, nil
	}

	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}

	exporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return noopShutdown, fmt.Errorf("otlp exporter: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(
		semconv.ServiceName(serviceName),
		semconv.ServiceVersion(serviceVersion),
	))
	if err != nil {
		log.Warn().Err(err).Msg("otel resource error")
	}

	provider := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
	)
	otel.SetTracerProvider(provider)

	log.Info().Str("endpoint", cfg.Endpoint).Msg("tracing enabled")

	return withTimeout(provider.Shutdown, cfg.ShutdownTimeout), nil
}

// withTimeout bounds shutdown so an unreachable collector cannot hang exit.
func withTimeout(shutdown ShutdownFunc, timeout time.Duration) ShutdownFunc {
	if timeout <= 0 {
		return shutdown
	}
	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return shutdown(ctx)
	}
}
