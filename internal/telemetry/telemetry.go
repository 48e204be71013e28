package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutlog"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

const (
	serviceName    = "noughts-and-crosses"
	serviceVersion = "v0.1.0"
)

// Settings selects where each signal is written.
type Settings struct {
	TraceFile  string
	MetricFile string
	LogFile    string
}

// Shutdown flushes and stops every provider.
type Shutdown func(context.Context) error

// InitOtel installs global trace, metric and log providers that export to files.
// The terminal belongs to the UI, so nothing is written to stdout.
func InitOtel(settings Settings) (Shutdown, error) {
	var files []*os.File
	closeFiles := func() error {
		var errs []error
		for _, f := range files {
			errs = append(errs, f.Close())
		}
		return errors.Join(errs...)
	}
	open := func(path string) (io.Writer, error) {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open telemetry file %s: %w", path, err)
		}
		files = append(files, f)
		return f, nil
	}
	fail := func(err error) (Shutdown, error) {
		return nil, errors.Join(err, closeFiles())
	}

	// --- Create shared resource ---
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return fail(fmt.Errorf("failed to create resource: %w", err))
	}

	// --- Setup Traces ---
	traceOut, err := open(settings.TraceFile)
	if err != nil {
		return fail(err)
	}
	traceExporter, err := stdouttrace.New(stdouttrace.WithWriter(traceOut))
	if err != nil {
		return fail(fmt.Errorf("failed to create trace exporter: %w", err))
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
	)

	// --- Setup Metrics ---
	metricOut, err := open(settings.MetricFile)
	if err != nil {
		return fail(err)
	}
	metricExporter, err := stdoutmetric.New(stdoutmetric.WithWriter(metricOut))
	if err != nil {
		return fail(fmt.Errorf("failed to create metric exporter: %w", err))
	}
	mp := metric.NewMeterProvider(
		metric.WithReader(metric.NewPeriodicReader(metricExporter, metric.WithInterval(30*time.Second))),
		metric.WithResource(res),
	)

	// --- Setup Logs ---
	logOut, err := open(settings.LogFile)
	if err != nil {
		return fail(err)
	}
	logExporter, err := stdoutlog.New(stdoutlog.WithWriter(logOut))
	if err != nil {
		return fail(fmt.Errorf("failed to create log exporter: %w", err))
	}
	lp := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(logExporter)),
		sdklog.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	global.SetLoggerProvider(lp)

	// --- Shutdown function ---
	shutdown := func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		var errs []error
		if err := tp.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to shutdown TracerProvider: %w", err))
		}
		if err := mp.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to shutdown MeterProvider: %w", err))
		}
		if err := lp.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to shutdown LoggerProvider: %w", err))
		}
		if err := closeFiles(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close telemetry files: %w", err))
		}
		return errors.Join(errs...)
	}

	return shutdown, nil
}
