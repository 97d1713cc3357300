// SPDX-License-Identifier: MIT
// Package: swift/builder
//
// metrics.go — the Recorder collaborator and its two implementations.
//
// A Builder is single-threaded per instance, so every Recorder call below
// is a synchronous, unlocked increment/observe; no counter here needs
// its own mutex.

package builder

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder receives counters and observations from a Builder's ingress
// and finalize calls. Implementations must not block or panic; a
// Builder never checks Recorder's return value because it has none.
type Recorder interface {
	// RequirementAdded counts one requirement added through
	// Builder.AddRequirement or replayed by Builder.AddGenericSignature,
	// tagged by its requirement kind and ConstraintResult.
	RequirementAdded(kind string, result string)
	// DelayedRetry counts one full pass of the delayed-queue drain run by
	// Finalize; it is not called per individual requirement retried.
	DelayedRetry()
	// Diagnostic counts one emitted diagnostic, tagged by its kind name.
	Diagnostic(kind string)
	// FixedPointPasses observes how many passes the delayed-queue drain
	// (solver.Solver.Drain) took to reach a fixed point for one Finalize
	// call.
	FixedPointPasses(n int)
}

// NopRecorder discards everything; it is the Builder's zero-value
// default so Recorder is never nil internally.
type NopRecorder struct{}

func (NopRecorder) RequirementAdded(kind, result string) {}
func (NopRecorder) DelayedRetry()                        {}
func (NopRecorder) Diagnostic(kind string)               {}
func (NopRecorder) FixedPointPasses(n int)               {}

// PrometheusRecorder reports the same counters through a caller-supplied
// prometheus.Registerer, so a host process can expose them alongside its
// own metrics instead of going through the default global registry.
type PrometheusRecorder struct {
	requirementsTotal *prometheus.CounterVec
	delayedRetryTotal prometheus.Counter
	diagnosticsTotal  *prometheus.CounterVec
	fixedPointPasses  prometheus.Histogram
}

// NewPrometheusRecorder registers its collectors against reg and returns
// a Recorder backed by them. reg must not be nil.
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	r := &PrometheusRecorder{
		requirementsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gsb_requirements_total",
				Help: "Total number of requirements added to a generic signature builder, by kind and outcome.",
			},
			[]string{"kind", "result"},
		),
		delayedRetryTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "gsb_delayed_retries_total",
				Help: "Total number of delayed-queue drain passes run by Finalize.",
			},
		),
		diagnosticsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gsb_diagnostics_total",
				Help: "Total number of diagnostics emitted, by kind.",
			},
			[]string{"kind"},
		),
		fixedPointPasses: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gsb_finalize_fixed_point_passes",
				Help:    "Number of passes the delayed-queue drain took to reach a fixed point per Finalize call.",
				Buckets: prometheus.LinearBuckets(1, 1, 10),
			},
		),
	}
	reg.MustRegister(r.requirementsTotal, r.delayedRetryTotal, r.diagnosticsTotal, r.fixedPointPasses)
	return r
}

func (r *PrometheusRecorder) RequirementAdded(kind, result string) {
	r.requirementsTotal.WithLabelValues(kind, result).Inc()
}

func (r *PrometheusRecorder) DelayedRetry() {
	r.delayedRetryTotal.Inc()
}

func (r *PrometheusRecorder) Diagnostic(kind string) {
	r.diagnosticsTotal.WithLabelValues(kind).Inc()
}

func (r *PrometheusRecorder) FixedPointPasses(n int) {
	r.fixedPointPasses.Observe(float64(n))
}
