package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "giro_ops", Name: "upstream_requests_total", Help: "Requests issued to the platform API"},
		[]string{"method", "status"},
	)
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "giro_ops",
			Name:      "upstream_request_duration_seconds",
			Help:      "Platform API request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "status"},
	)

	PollCyclesTotal   = promauto.NewCounter(prometheus.CounterOpts{Namespace: "giro_ops", Name: "poll_cycles_total", Help: "Control-tower refresh cycles"})
	PollFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: "giro_ops", Name: "poll_failures_total", Help: "Refresh cycles with at least one failed source"})
	StaleDropsTotal   = promauto.NewCounter(prometheus.CounterOpts{Namespace: "giro_ops", Name: "stale_snapshots_dropped_total", Help: "Snapshots discarded because their filter was superseded"})

	SessionsActive   = promauto.NewGauge(prometheus.GaugeOpts{Namespace: "giro_ops", Name: "sessions_active", Help: "Authenticated console sessions"})
	LoginsTotal      = promauto.NewCounterVec(prometheus.CounterOpts{Namespace: "giro_ops", Name: "logins_total", Help: "Login attempts"}, []string{"outcome"})
	AuditEventsTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: "giro_ops", Name: "audit_events_total", Help: "Audit events published"})

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "giro_ops", Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "giro_ops",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
