// Package finalize runs the ordered finalization pass over a builder's
// arena: draining the delayed-requirement queue to a fixed point,
// detecting self-referential concrete/superclass bounds, filtering and
// diagnosing redundant per-class constraints, computing derived same-type
// components for canonical emission, checking unresolved generic
// parameters, and attempting typo correction on anything still
// unresolved. Run must be called exactly once per builder instance,
// after which no further mutation is legal.
package finalize
