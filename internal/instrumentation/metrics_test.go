package instrumentation

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/metric/noop"
)

func TestMetricsZeroValueIsNoop(t *testing.T) {
	// Callers hold a *Metrics even when instrumentation is disabled; the
	// zero value must be safe to use.
	var m Metrics
	m.RecordEvent(context.Background(), "chat_message.sent")
	m.RecordNotification(context.Background(), ResultSuccess)
}

func TestNewMetrics(t *testing.T) {
	m, err := NewMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("NewMetrics returned error: %v", err)
	}
	m.RecordEvent(context.Background(), "meeting.started")
	m.RecordNotification(context.Background(), ResultError)
	m.RecordNotification(context.Background(), ResultSuppressed)
}
