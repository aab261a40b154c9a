package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "campusconnect_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// ARStreamConnections is the gauge of active AR projection streams.
	ARStreamConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "campusconnect_ar_stream_connections",
		Help: "Number of active AR projection WebSocket streams",
	})

	// ARFramesTotal counts AR projection frames served by transport.
	ARFramesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campusconnect_ar_frames_total",
		Help: "Total AR projection frames computed",
	}, []string{"transport"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
