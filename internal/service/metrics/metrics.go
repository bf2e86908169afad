// Package metrics registers the Prometheus instruments of the analysis API.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "stocksense",
			Subsystem: "api",
			Name:      "latency_seconds",
			Help:      "Latency of analysis endpoints",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	RequestErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stocksense",
			Subsystem: "api",
			Name:      "errors_total",
			Help:      "Errors by analysis endpoint",
		},
		[]string{"endpoint"},
	)

	UpstreamErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stocksense",
			Subsystem: "upstream",
			Name:      "errors_total",
			Help:      "Failed calls by upstream provider",
		},
		[]string{"provider"},
	)

	CacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stocksense",
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Bar payload cache hits and misses",
		},
		[]string{"result"},
	)
)

func Register() {
	once.Do(func() {
		prometheus.MustRegister(RequestLatency, RequestErrors, UpstreamErrors, CacheHits)
	})
}
