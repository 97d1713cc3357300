// SPDX-License-Identifier: MIT
// Package: swift/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).

package builder

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// builderConfig aggregates every knob an Option can set. It is resolved
// once in New and then read-only for the Builder's lifetime.
type builderConfig struct {
	logger        *zap.Logger
	metrics       Recorder
	correlationID string
	allowConcrete bool
}

// newBuilderConfig applies opts in order over deterministic defaults: a
// no-op logger, a no-op metrics recorder, and a freshly minted
// correlation ID (so every Builder instance is traceable in logs even
// when the caller supplies none of its own).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		logger:        zap.NewNop(),
		metrics:       NopRecorder{},
		correlationID: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
