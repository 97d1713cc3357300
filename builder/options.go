// SPDX-License-Identifier: MIT
// Package: swift/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • The core solver/pa/finalize/canon packages themselves MUST NOT
//     panic on ordinary input; only option constructors do.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"go.uber.org/zap"
)

// Option customizes a Builder before its first ingress call.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*builderConfig)

// WithLogger attaches a zap logger for the Builder's diagnostic and
// lifecycle logging. Panics on nil to surface programmer error early.
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = log
	}
}

// WithMetrics attaches a Recorder the Builder reports counters and
// observations to. Panics on nil; use NopRecorder{} explicitly to opt
// out rather than passing nil.
func WithMetrics(rec Recorder) Option {
	if rec == nil {
		panic("builder: WithMetrics(nil)")
	}
	return func(c *builderConfig) {
		c.metrics = rec
	}
}

// WithCorrelationID overrides the Builder's auto-generated correlation
// ID, for callers that already have a request-scoped trace ID to
// thread through. Panics on empty.
func WithCorrelationID(id string) Option {
	if id == "" {
		panic("builder: WithCorrelationID(\"\")")
	}
	return func(c *builderConfig) {
		c.correlationID = id
	}
}

// WithAllowConcreteGenericParams sets the default allowConcreteGenericParams
// finalize-time flag so callers that always finalize the same way don't
// have to repeat it at every Finalize call; Finalize
// still takes its own explicit parameter and overrides this when set
// true there (the option only changes the zero-value default).
func WithAllowConcreteGenericParams() Option {
	return func(c *builderConfig) {
		c.allowConcrete = true
	}
}
