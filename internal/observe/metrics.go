// Package observe wires OpenTelemetry metrics and tracing for the spellbook
// service. Instruments are created from an explicit metric.MeterProvider so
// tests can read them back through a ManualReader.
package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/KirkDiggler/spellbook-api"

// Lookup statuses
const (
	StatusFound    = "found"
	StatusNotFound = "not_found"
)

// Metrics holds the metric instruments for the spellbook service
type Metrics struct {
	// Lookups counts GetSpell calls, with attribute status=found|not_found
	Lookups metric.Int64Counter

	// QueryDuration is the time spent evaluating a query
	QueryDuration metric.Float64Histogram

	// QueryResults is the number of spells a query returned
	QueryResults metric.Int64Histogram

	// CatalogSize is the number of spells in the live index
	CatalogSize metric.Int64Gauge

	// CatalogReloads counts catalog loads, with attribute status=ok|error
	CatalogReloads metric.Int64Counter
}

// Query latencies are in-memory set operations, so the buckets start well
// below a millisecond.
var queryBuckets = []float64{
	0.00001, 0.000025, 0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.005, 0.01,
}

var resultBuckets = []float64{0, 1, 5, 10, 25, 50, 100, 200, 400}

// NewMetrics creates the instruments on mp
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.Lookups, err = m.Int64Counter("spellbook.lookups",
		metric.WithDescription("Spell lookups by name, by status."),
	); err != nil {
		return nil, err
	}
	if met.QueryDuration, err = m.Float64Histogram("spellbook.query.duration",
		metric.WithDescription("Latency of catalog queries."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(queryBuckets...),
	); err != nil {
		return nil, err
	}
	if met.QueryResults, err = m.Int64Histogram("spellbook.query.results",
		metric.WithDescription("Number of spells returned per query."),
		metric.WithExplicitBucketBoundaries(resultBuckets...),
	); err != nil {
		return nil, err
	}
	if met.CatalogSize, err = m.Int64Gauge("spellbook.catalog.size",
		metric.WithDescription("Number of spells in the live catalog."),
	); err != nil {
		return nil, err
	}
	if met.CatalogReloads, err = m.Int64Counter("spellbook.catalog.reloads",
		metric.WithDescription("Catalog loads, by status."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// RecordLookup counts one GetSpell call
func (m *Metrics) RecordLookup(ctx context.Context, found bool) {
	status := StatusFound
	if !found {
		status = StatusNotFound
	}
	m.Lookups.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}

// RecordQuery records the latency and result size of one query
func (m *Metrics) RecordQuery(ctx context.Context, seconds float64, results int) {
	m.QueryDuration.Record(ctx, seconds)
	m.QueryResults.Record(ctx, int64(results))
}

// RecordReload records the outcome of a catalog load; size is only reported
// for successful loads.
func (m *Metrics) RecordReload(ctx context.Context, size int, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.CatalogReloads.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
	if err == nil {
		m.CatalogSize.Record(ctx, int64(size))
	}
}
