package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds all application metrics.
type Metrics struct {
	meter metric.Meter

	// HTTP metrics
	HTTPRequestsTotal   metric.Int64Counter
	HTTPRequestDuration metric.Float64Histogram
	HTTPRequestsActive  metric.Int64UpDownCounter

	// Deletion metrics
	DeletionsTotal         metric.Int64Counter
	DeletionDuration       metric.Float64Histogram
	LinkParseFailuresTotal metric.Int64Counter
}

// NewMetrics creates and registers all application metrics.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{meter: meter}

	var err error

	// HTTP metrics
	m.HTTPRequestsTotal, err = meter.Int64Counter(
		"http.server.requests.total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{requests}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating http_requests_total: %w", err)
	}

	m.HTTPRequestDuration, err = meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating http_request_duration: %w", err)
	}

	m.HTTPRequestsActive, err = meter.Int64UpDownCounter(
		"http.server.requests.active",
		metric.WithDescription("Number of active HTTP requests"),
		metric.WithUnit("{requests}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating http_requests_active: %w", err)
	}

	// Deletion metrics
	m.DeletionsTotal, err = meter.Int64Counter(
		"slack.deletions.total",
		metric.WithDescription("Total number of chat.delete calls by outcome"),
		metric.WithUnit("{deletions}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating slack_deletions_total: %w", err)
	}

	m.DeletionDuration, err = meter.Float64Histogram(
		"slack.deletion.duration",
		metric.WithDescription("chat.delete round-trip duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating slack_deletion_duration: %w", err)
	}

	m.LinkParseFailuresTotal, err = meter.Int64Counter(
		"slack.link_parse.failures.total",
		metric.WithDescription("Total number of commands whose text held no message link"),
		metric.WithUnit("{commands}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating slack_link_parse_failures_total: %w", err)
	}

	return m, nil
}

// RecordHTTPRequest records HTTP request metrics.
func (m *Metrics) RecordHTTPRequest(ctx context.Context, method, path string, statusCode int, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.String("http.method", method),
		attribute.String("http.route", path),
		attribute.Int("http.status_code", statusCode),
	}

	m.HTTPRequestsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.HTTPRequestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordDeletion records the outcome of one chat.delete call.
func (m *Metrics) RecordDeletion(ctx context.Context, outcome, code string, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.String("outcome", outcome),
		attribute.String("code", code),
	}

	m.DeletionsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.DeletionDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attribute.String("outcome", outcome)))
}

// RecordLinkParseFailure counts a command whose text could not be parsed.
func (m *Metrics) RecordLinkParseFailure(ctx context.Context) {
	m.LinkParseFailuresTotal.Add(ctx, 1)
}
