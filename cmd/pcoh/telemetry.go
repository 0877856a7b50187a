// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// telemetry holds the providers installed for one CLI run.
type telemetry struct {
	tp       *sdktrace.TracerProvider
	mp       *sdkmetric.MeterProvider
	registry *prometheus.Registry
}

// setupTelemetry installs the global tracer provider (spans printed to w)
// and the global meter provider backed by a private Prometheus registry.
// Both are optional; with neither flag the engine's instruments stay no-ops.
func setupTelemetry(w io.Writer, tracing, metrics bool) (*telemetry, error) {
	t := &telemetry{}
	res := resource.NewWithAttributes(
		"",
		attribute.String("service.name", "pcoh"),
	)

	if tracing {
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("init tracer: %w", err)
		}
		t.tp = sdktrace.NewTracerProvider(
			sdktrace.WithSyncer(exporter),
			sdktrace.WithResource(res),
			sdktrace.WithSampler(sdktrace.AlwaysSample()),
		)
		otel.SetTracerProvider(t.tp)
	}

	if metrics {
		t.registry = prometheus.NewRegistry()
		exporter, err := promexporter.New(promexporter.WithRegisterer(t.registry))
		if err != nil {
			return nil, fmt.Errorf("init meter: %w", err)
		}
		t.mp = sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(exporter),
			sdkmetric.WithResource(res),
		)
		otel.SetMeterProvider(t.mp)
	}

	return t, nil
}

// writeMetrics prints one line per gathered metric family. No-op without
// --metrics.
func (t *telemetry) writeMetrics(w io.Writer) error {
	if t.registry == nil {
		return nil
	}
	families, err := t.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err = fmt.Fprintf(w, "# metric %s %s (%d series)\n",
			mf.GetName(), mf.GetType(), len(mf.GetMetric())); err != nil {
			return err
		}
	}

	return nil
}

// shutdown flushes and stops the installed providers.
func (t *telemetry) shutdown(ctx context.Context) error {
	var errs []error
	if t.tp != nil {
		errs = append(errs, t.tp.Shutdown(ctx))
	}
	if t.mp != nil {
		errs = append(errs, t.mp.Shutdown(ctx))
	}

	return errors.Join(errs...)
}
