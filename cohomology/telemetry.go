// SPDX-License-Identifier: MIT

package cohomology

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter for engine operations.
var (
	tracer = otel.Tracer("pershom.cohomology")
	meter  = otel.Meter("pershom.cohomology")
)

// Metrics for Compute.
var (
	computeLatency metric.Float64Histogram
	computeTotal   metric.Int64Counter
	cellsProcessed metric.Int64Counter
	pairsEmitted   metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		computeLatency, err = meter.Float64Histogram(
			"pershom_compute_duration_seconds",
			metric.WithDescription("Duration of persistence computations"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		computeTotal, err = meter.Int64Counter(
			"pershom_compute_total",
			metric.WithDescription("Total number of persistence computations"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		cellsProcessed, err = meter.Int64Counter(
			"pershom_cells_processed_total",
			metric.WithDescription("Cells reduced by the engine"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		pairsEmitted, err = meter.Int64Counter(
			"pershom_pairs_emitted_total",
			metric.WithDescription("Persistence pairs kept after filtering, by dimension"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordComputeMetrics records one Compute run.
func recordComputeMetrics(ctx context.Context, duration time.Duration, s Stats, success bool) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.Bool("success", success),
		attribute.Int("characteristic", int(s.Characteristic)),
	)
	computeLatency.Record(ctx, duration.Seconds(), attrs)
	computeTotal.Add(ctx, 1, attrs)
	if !success {
		return
	}
	cellsProcessed.Add(ctx, int64(s.Cells))
	for d, n := range s.PairsByDim {
		if n > 0 {
			pairsEmitted.Add(ctx, int64(n), metric.WithAttributes(attribute.Int("dimension", d)))
		}
	}
}

// startComputeSpan creates the span of a Compute call.
func startComputeSpan(ctx context.Context, cells, dim int, p uint32) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Persistence.Compute",
		trace.WithAttributes(
			attribute.Int("complex.cells", cells),
			attribute.Int("complex.dimension", dim),
			attribute.Int("field.characteristic", int(p)),
		),
	)
}

// endComputeSpan sets the result attributes and status, then ends the span.
func endComputeSpan(span trace.Span, s Stats, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(
			attribute.Int("diagram.pairs", s.Pairs),
			attribute.Int("diagram.essential", s.Essential),
			attribute.Int("annotation.columns", s.Columns),
		)
	}
	span.End()
}
