// Package metrics exposes Prometheus collectors for interaction webhooks.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "interactor"

// Outcome labels, one per terminal stage of the request pipeline.
const (
	OutcomeOK                = "ok"
	OutcomeBadRequest        = "bad_request"
	OutcomeUnauthorized      = "unauthorized"
	OutcomeDecodeError       = "decode_error"
	OutcomeUnhandled         = "unhandled"
	OutcomeInvalidTransition = "invalid_transition"
	OutcomeHandlerError      = "handler_error"
	OutcomeConfigError       = "config_error"
)

// Metrics is a set of collectors registered in their own registry,
// so that multiple servers (e.g. in tests) do not collide.
type Metrics struct {
	registry *prometheus.Registry

	Interactions *prometheus.CounterVec
	Duration     *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Interactions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interactions_total",
			Help:      "Inbound interaction webhooks, by interaction kind and outcome.",
		}, []string{"kind", "outcome"}),
		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "interaction_duration_seconds",
			Help:      "Time to verify, dispatch, and reply to an interaction webhook.",
			Buckets:   []float64{.001, .005, .01, .05, .1, .25, .5, 1, 2.5},
		}, []string{"kind"}),
	}
}

// Observe records the outcome and duration of a single interaction.
func (m *Metrics) Observe(kind, outcome string, start time.Time) {
	m.Interactions.WithLabelValues(kind, outcome).Inc()
	m.Duration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

// Handler serves the collectors in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
