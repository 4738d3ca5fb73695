package db

import (
	"context"
	"encoding/json"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storeOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_operation_duration_seconds",
			Help:    "Time spent loading or replacing a collection",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"collection", "operation"},
	)
	storeOpErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_operation_errors_total",
			Help: "Failed collection loads and replaces",
		},
		[]string{"collection", "operation"},
	)
	storeRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "store_collection_records",
			Help: "Number of records in a collection as of its last load or replace",
		},
		[]string{"collection"},
	)
)

type instrumented struct {
	next Backend
}

// Instrument wraps a Backend with Prometheus timing and error counters.
func Instrument(next Backend) Backend {
	return &instrumented{next: next}
}

func (i *instrumented) Load(ctx context.Context, name string) ([]json.RawMessage, error) {
	start := time.Now()
	records, err := i.next.Load(ctx, name)
	storeOpDuration.WithLabelValues(name, "load").Observe(time.Since(start).Seconds())
	if err != nil {
		storeOpErrors.WithLabelValues(name, "load").Inc()
		return nil, err
	}
	storeRecords.WithLabelValues(name).Set(float64(len(records)))
	return records, nil
}

func (i *instrumented) Replace(ctx context.Context, name string, records []json.RawMessage) error {
	start := time.Now()
	err := i.next.Replace(ctx, name, records)
	storeOpDuration.WithLabelValues(name, "replace").Observe(time.Since(start).Seconds())
	if err != nil {
		storeOpErrors.WithLabelValues(name, "replace").Inc()
		return err
	}
	storeRecords.WithLabelValues(name).Set(float64(len(records)))
	return nil
}

func (i *instrumented) Close(ctx context.Context) error {
	return i.next.Close(ctx)
}
