package rest

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metrics groups the collectors recorded by the server.
type metrics struct {
	requests *prometheus.CounterVec
	points   prometheus.Histogram
	solve    *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "planar_requests_total",
			Help: "Counts API requests by route and HTTP status code",
		}, []string{"endpoint", "code"}),
		points: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "planar_request_points",
			Help:    "Number of points per successfully answered request",
			Buckets: prometheus.ExponentialBuckets(2, 4, 10),
		}),
		solve: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "planar_solve_seconds",
			Help:    "Time spent computing a result, by operation",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"operation"}),
	}
	reg.MustRegister(m.requests, m.points, m.solve)

	return m
}
