package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName — имя трейсера для спанов воркера.
const InstrumentationName = "github.com/Gunvolt24/reservation-worker"

// Tracer возвращает трейсер из глобального провайдера (no-op, пока SetupTracing не вызван).
func Tracer() trace.Tracer {
	return otel.Tracer(InstrumentationName)
}

// SetupTracing настраивает OTLP/HTTP экспорт, семплинг и глобальные пропагаторы.
// attrs добавляются в ресурс (например, имя очереди).
// Возвращает функцию корректного завершения провайдера.
func SetupTracing(
	ctx context.Context,
	serviceName, endpoint string,
	sampleRatio float64,
	attrs ...attribute.KeyValue,
) (func(context.Context) error, error) {
	// Дефолты: endpoint и границы семплинга [0..1].
	if endpoint == "" {
		endpoint = "localhost:4318"
	}
	sampleRatio = clampRatio(sampleRatio)

	// Экспортёр OTLP/HTTP без TLS.
	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	resAttrs := append([]attribute.KeyValue{
		semconv.ServiceName(serviceName),
		attribute.String("telemetry.sdk", "opentelemetry"),
	}, attrs...)

	// Провайдер трейсинга: батч-экспорт, семплинг и ресурсы.
	traceProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampleRatio))),
		sdktrace.WithResource(resource.NewWithAttributes(semconv.SchemaURL, resAttrs...)),
	)

	// Глобальный провайдер и пропагатор (TraceContext + Baggage).
	otel.SetTracerProvider(traceProvider)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{}, propagation.Baggage{},
		),
	)

	return traceProvider.Shutdown, nil
}

func clampRatio(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
