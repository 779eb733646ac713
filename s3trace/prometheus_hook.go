package s3trace

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusHook records request counts and latencies by method/status,
// grounded in zombar-tunnelmesh's coord.CoordMetrics promauto-registered
// CounterVec/HistogramVec pattern (SPEC_FULL.md §9/§10).
type PrometheusHook struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewPrometheusHook registers s3go's request/latency metrics against
// registry. A nil registry uses prometheus.DefaultRegisterer.
func NewPrometheusHook(registry prometheus.Registerer) *PrometheusHook {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	return &PrometheusHook{
		requests: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "s3go_requests_total",
			Help: "Total number of S3 requests issued, by method and status.",
		}, []string{"method", "status"}),
		latency: promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
			Name: "s3go_request_duration_seconds",
			Help: "S3 request latency in seconds, by method.",
		}, []string{"method"}),
	}
}

// Request is a no-op; PrometheusHook only records on Response.
func (h *PrometheusHook) Request(req *http.Request) {}

// Response records the outcome of one request.
func (h *PrometheusHook) Response(req *http.Request, res *http.Response, dur time.Duration, err error) {
	status := "error"
	if res != nil {
		status = strconv.Itoa(res.StatusCode)
	}
	h.requests.WithLabelValues(req.Method, status).Inc()
	h.latency.WithLabelValues(req.Method).Observe(dur.Seconds())
}
