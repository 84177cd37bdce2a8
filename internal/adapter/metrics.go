package adapter

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CompileRecorder observes compilation attempts.
type CompileRecorder interface {
	ObserveCompile(outcome string, duration time.Duration)
	ObserveEvent(command string)
}

// NopRecorder discards every observation.
type NopRecorder struct{}

// ObserveCompile implements CompileRecorder.
func (NopRecorder) ObserveCompile(string, time.Duration) {}

// ObserveEvent implements CompileRecorder.
func (NopRecorder) ObserveEvent(string) {}

// PrometheusRecorder records compile outcomes into its own registry.
type PrometheusRecorder struct {
	registry *prometheus.Registry
	outcomes *prometheus.CounterVec
	duration prometheus.Histogram
	events   *prometheus.CounterVec
}

// NewPrometheusRecorder constructs a recorder with a private registry.
func NewPrometheusRecorder() *PrometheusRecorder {
	r := &PrometheusRecorder{
		registry: prometheus.NewRegistry(),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "playground",
			Name:      "compile_outcomes_total",
			Help:      "Compilation attempts by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "playground",
			Name:      "compile_duration_seconds",
			Help:      "Time spent compiling a project.",
			Buckets:   prometheus.DefBuckets,
		}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "playground",
			Name:      "events_total",
			Help:      "Ingested events by command.",
		}, []string{"command"}),
	}

	r.registry.MustRegister(r.outcomes, r.duration, r.events)

	return r
}

// ObserveCompile implements CompileRecorder.
func (r *PrometheusRecorder) ObserveCompile(outcome string, duration time.Duration) {
	r.outcomes.WithLabelValues(outcome).Inc()
	r.duration.Observe(duration.Seconds())
}

// ObserveEvent implements CompileRecorder.
func (r *PrometheusRecorder) ObserveEvent(command string) {
	r.events.WithLabelValues(command).Inc()
}

// Outcomes exposes the outcome counter.
func (r *PrometheusRecorder) Outcomes() *prometheus.CounterVec {
	return r.outcomes
}

// Handler serves the registry in the Prometheus text format.
func (r *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
