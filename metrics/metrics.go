// Package metrics exposes Prometheus instrumentation for the arrivals
// service: feed fetch outcomes, record volumes through the pipeline, and
// request latency.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	reg *prometheus.Registry

	FeedFetches     *prometheus.CounterVec // provider label
	FeedFetchErrors *prometheus.CounterVec // provider label

	RecordsSeen prometheus.Counter
	RecordsKept prometheus.Counter

	RequestDuration prometheus.Histogram
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		FeedFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arrivals_feed_fetches_total",
			Help: "Total feed fetches by provider.",
		}, []string{"provider"}),
		FeedFetchErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arrivals_feed_fetch_errors_total",
			Help: "Total failed feed fetches by provider.",
		}, []string{"provider"}),
		RecordsSeen: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arrivals_records_seen_total",
			Help: "Raw records handed to the pipeline.",
		}),
		RecordsKept: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arrivals_records_kept_total",
			Help: "Records surviving normalization and deduplication.",
		}),
		RequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "arrivals_request_duration_seconds",
			Help:    "Duration of arrival estimate requests, fetch included.",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
		}),
	}

	reg.MustRegister(
		c.FeedFetches, c.FeedFetchErrors,
		c.RecordsSeen, c.RecordsKept,
		c.RequestDuration,
	)

	return c
}

func (c *Collector) Handler() http.Handler { return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{}) }
