// Package metrics exposes Prometheus counters for reservation traffic.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Submission and deletion outcomes used as the "result" label.
const (
	ResultCreated  = "created"
	ResultError    = "error"
	ResultDeleted  = "deleted"
	ResultNotFound = "not_found"
)

// Metrics holds the collectors for one server instance.
type Metrics struct {
	registry    *prometheus.Registry
	submissions *prometheus.CounterVec
	deletions   *prometheus.CounterVec
	active      prometheus.Gauge
}

// New creates the collectors and registers them on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "reservations",
			Name:      "submissions_total",
			Help:      "Reservation submissions by result.",
		}, []string{"result"}),
		deletions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "reservations",
			Name:      "deletions_total",
			Help:      "Reservation deletions by result.",
		}, []string{"result"}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "reservations",
			Name:      "active",
			Help:      "Number of reservations currently held.",
		}),
	}
	m.registry.MustRegister(m.submissions, m.deletions, m.active)
	return m
}

// ObserveSubmission counts one submission with the given result.
func (m *Metrics) ObserveSubmission(result string) {
	m.submissions.WithLabelValues(result).Inc()
}

// ObserveDeletion counts one deletion attempt.
func (m *Metrics) ObserveDeletion(removed bool) {
	if removed {
		m.deletions.WithLabelValues(ResultDeleted).Inc()
		return
	}
	m.deletions.WithLabelValues(ResultNotFound).Inc()
}

// SetActive records the current number of stored reservations.
func (m *Metrics) SetActive(n int) {
	m.active.Set(float64(n))
}

// ReservationAdded bumps the active gauge after a successful create.
func (m *Metrics) ReservationAdded() {
	m.active.Inc()
}

// ReservationRemoved lowers the active gauge after a successful delete.
func (m *Metrics) ReservationRemoved() {
	m.active.Dec()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
