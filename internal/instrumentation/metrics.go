package instrumentation

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys.
const (
	attrEvent  = "event"
	attrResult = "result"
)

// Result values for notification delivery.
const (
	ResultSuccess    = "success"
	ResultError      = "error"
	ResultSuppressed = "suppressed"
)

// Metrics provides methods for recording webhook receiver metrics.
// The zero value is a no-op recorder.
type Metrics struct {
	eventsTotal        metric.Int64Counter
	notificationsTotal metric.Int64Counter
}

// NewMetrics creates a Metrics instance with all instruments initialized.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}
	var err error

	m.eventsTotal, err = meter.Int64Counter(
		"webhook_events_total",
		metric.WithDescription("Total number of webhook events received"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook_events_total counter: %w", err)
	}

	m.notificationsTotal, err = meter.Int64Counter(
		"notifications_total",
		metric.WithDescription("Total number of notification deliveries attempted"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create notifications_total counter: %w", err)
	}

	return m, nil
}

// RecordEvent records one received webhook event by name.
func (m *Metrics) RecordEvent(ctx context.Context, event string) {
	if m.eventsTotal == nil {
		return
	}
	m.eventsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(attrEvent, event),
	))
}

// RecordNotification records one notification delivery attempt.
func (m *Metrics) RecordNotification(ctx context.Context, result string) {
	if m.notificationsTotal == nil {
		return
	}
	m.notificationsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(attrResult, result),
	))
}
