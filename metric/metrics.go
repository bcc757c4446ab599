// Package metric provides a prometheus-backed validation.Recorder and
// an optional HTTP endpoint for scraping it.
package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/david4096/sparql-agent-sub003/validation"
)

// Recorder counts validation outcomes and violations by type.
type Recorder struct {
	registry    *prometheus.Registry
	validations *prometheus.CounterVec
	violations  *prometheus.CounterVec
}

// NewRecorder creates a Recorder with its own registry, so multiple
// recorders never collide on metric names.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	r := &Recorder{
		registry: registry,
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shexval_validations_total",
			Help: "Records validated, labelled by result.",
		}, []string{"result"}),
		violations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shexval_violations_total",
			Help: "Violations produced, labelled by violation type.",
		}, []string{"type"}),
	}
	registry.MustRegister(r.validations, r.violations)
	return r
}

// RecordValidation implements validation.Recorder.
func (r *Recorder) RecordValidation(valid bool) {
	result := "valid"
	if !valid {
		result = "invalid"
	}
	r.validations.WithLabelValues(result).Inc()
}

// RecordViolation implements validation.Recorder.
func (r *Recorder) RecordViolation(vtype validation.ViolationType) {
	r.violations.WithLabelValues(string(vtype)).Inc()
}

// Handler returns an HTTP handler exposing the recorder's metrics in
// prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

var _ validation.Recorder = (*Recorder)(nil)
