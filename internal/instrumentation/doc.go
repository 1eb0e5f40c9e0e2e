// Package instrumentation provides OpenTelemetry metrics for the webhook
// receiver, exported in Prometheus format.
//
// The provider wires an otel meter to a Prometheus exporter; the recorder's
// zero value is a no-op so callers never need nil checks when
// instrumentation is disabled.
package instrumentation
