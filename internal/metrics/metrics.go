package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "phonebook"

var (
	// Auth metrics

	AuthAttemptsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Registration and login attempts, by operation and outcome.",
	}, []string{"operation", "outcome"})

	AuthGateRejectionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_gate_rejections_total",
		Help:      "Requests rejected by the auth middleware, by reason.",
	}, []string{"reason"})

	// Contact metrics

	ContactOperationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_operations_total",
		Help:      "Contacts created, edited or deleted.",
	}, []string{"operation"})

	// HTTP metrics

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests.",
	}, []string{"method", "path", "status"})
)

func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		AuthAttemptsTotal,
		AuthGateRejectionsTotal,
		ContactOperationsTotal,
		HTTPRequestDuration,
		HTTPRequestsTotal,
	)
}

// Prober is satisfied by *health.Checker.
type Prober interface {
	LivenessHandler() http.Handler
	ReadinessHandler() http.Handler
}

// NewServer exposes /metrics, /healthz and /readyz on addr.
func NewServer(addr string, prober Prober) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", prober.LivenessHandler())
	mux.Handle("/readyz", prober.ReadinessHandler())
	return &http.Server{Addr: addr, Handler: mux}
}
