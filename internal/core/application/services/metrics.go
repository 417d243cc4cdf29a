package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "sales/orders"

type serviceMetrics struct {
	created metric.Int64Counter
	updated metric.Int64Counter
	deleted metric.Int64Counter
	failed  metric.Int64Counter
}

// newServiceMetrics registers the order counters on meter. A nil meter uses
// the global meter provider.
func newServiceMetrics(meter metric.Meter) (*serviceMetrics, error) {
	if meter == nil {
		meter = otel.Meter(meterName)
	}

	var (
		m   serviceMetrics
		err error
	)
	if m.created, err = meter.Int64Counter("orders.created",
		metric.WithDescription("Orders created"),
		metric.WithUnit("{order}"),
	); err != nil {
		return nil, err
	}
	if m.updated, err = meter.Int64Counter("orders.updated",
		metric.WithDescription("Draft orders updated"),
		metric.WithUnit("{order}"),
	); err != nil {
		return nil, err
	}
	if m.deleted, err = meter.Int64Counter("orders.deleted",
		metric.WithDescription("Draft orders deleted"),
		metric.WithUnit("{order}"),
	); err != nil {
		return nil, err
	}
	if m.failed, err = meter.Int64Counter("orders.operation_failed",
		metric.WithDescription("Order operations that ended with an unexpected error"),
		metric.WithUnit("{error}"),
	); err != nil {
		return nil, err
	}
	return &m, nil
}

func noopMetrics() *serviceMetrics {
	meter := noop.NewMeterProvider().Meter(meterName)
	m, _ := newServiceMetrics(meter)
	return m
}

func (m *serviceMetrics) recordFailure(ctx context.Context, operation string) {
	m.failed.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", operation)))
}
