package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bankmanager/internal/core"
)

// Metrics holds the application collectors on a private registry, so several
// instances can live in one process.
type Metrics struct {
	Operations      *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bankmanager_operations_total",
			Help: "Directory operations by name and outcome",
		}, []string{"operation", "outcome"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bankmanager_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route and status",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route", "status"}),
		registry: reg,
	}
}

// RecordOperation satisfies core.Recorder.
func (m *Metrics) RecordOperation(op string, err error) {
	m.Operations.WithLabelValues(op, Outcome(err)).Inc()
}

// ObserveRequest records one HTTP request. Call with time.Now() taken before
// the handler ran.
func (m *Metrics) ObserveRequest(method, route string, status int, start time.Time) {
	m.RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Outcome buckets an operation error into a small fixed label set.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, core.ErrNotFound), errors.Is(err, core.ErrSnapshotNotFound):
		return "not_found"
	case errors.Is(err, core.ErrDuplicateName),
		errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrInsufficientFunds),
		errors.Is(err, core.ErrSameAccount),
		errors.Is(err, core.ErrAccountLimit),
		errors.Is(err, core.ErrNonZeroBalance):
		return "rejected"
	default:
		return "error"
	}
}
