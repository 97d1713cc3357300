// SPDX-License-Identifier: MIT
// Package: swift/builder
//
// api.go — the public entry point: the Builder orchestrator type and
// its ingress/egress methods.
//
// Design contract (strict):
//   - One orchestrator: New(resolver, lookup, sink, opts...) wires a
//     fresh env.Context, pa/source arenas, and a solver.Solver behind it.
//   - Functional options (Option) resolve into an immutable builderConfig.
//   - Determinism: the same sequence of ingress calls always finalizes
//     to a bit-identical GenericSignature.
//   - Safety: ordinary constraint violations never panic or return a Go
//     error — they report via model.ConstraintResult and the Diagnostics
//     sink. Only lifecycle misuse (double Finalize, pre-Finalize
//     GenericSignature) and a nil AddGenericSignature argument return
//     one of this package's sentinel errors.

package builder

import (
	"go.uber.org/zap"

	"github.com/vidiask/swift/canon"
	"github.com/vidiask/swift/diag"
	"github.com/vidiask/swift/env"
	"github.com/vidiask/swift/finalize"
	"github.com/vidiask/swift/model"
	"github.com/vidiask/swift/solver"
	"github.com/vidiask/swift/source"
)

// Builder is the stateful orchestrator a host type checker drives one
// generic declaration at a time: AddGenericParameter/AddRequirement/
// AddGenericSignature/InferRequirements feed facts in, Finalize runs the
// fixed-point resolution and canonicalization pass once, and
// GenericSignature hands back the result. A Builder is not safe for
// concurrent use — it mirrors the single-threaded-per-declaration model
// the core packages it wraps assume.
type Builder struct {
	cfg builderConfig
	ctx *env.Context
	s   *solver.Solver

	finalized bool
	sig       *model.GenericSignature
}

// New constructs a Builder around resolver and lookup (the two external
// collaborators the solver calls out to) and sink (where diagnostics
// land). opts customize logging, metrics, the correlation ID, and the
// default allowConcreteGenericParams finalize flag.
func New(resolver model.LazyResolver, lookup model.LookupConformanceFunc, sink diag.Sink, opts ...Option) *Builder {
	cfg := newBuilderConfig(opts...)
	ctx := env.New(resolver, lookup, countingSink{sink: sink, metrics: cfg.metrics})
	ctx.AllowConcreteGenericParams = cfg.allowConcrete

	log := cfg.logger.With(zap.String("correlation_id", cfg.correlationID))
	log.Debug("builder constructed")

	return &Builder{
		cfg: cfg,
		ctx: ctx,
		s:   solver.New(ctx),
	}
}

// Sources exposes the Builder's source arena so a host can construct the
// *source.Source values AddRequirement and AddConformance-equivalent
// calls require (ForExplicit for written constraints, ForInferred for
// inference, and so on) without this package needing its own parallel
// set of constructors.
func (b *Builder) Sources() *source.Arena {
	return b.ctx.Sources
}

// AddGenericParameter registers a new generic parameter in the arena.
// key must be unique within this Builder; re-adding the same key is a
// no-op (the arena already returns the existing PA).
func (b *Builder) AddGenericParameter(key model.GenericParamKey) model.PAID {
	return b.ctx.Arena.AddGenericParameter(key)
}

// AddRequirement dispatches req to the matching solver entry point after
// applying subst to its subject, if any. It is the single generic
// ingress point a host type checker drives for ordinary (non-inferred)
// written requirements.
func (b *Builder) AddRequirement(req solver.Requirement, src *source.Source, subst solver.SubstitutionMap) model.ConstraintResult {
	result := b.s.AddRequirement(req, src, subst)
	b.cfg.metrics.RequirementAdded(req.Kind.String(), result.String())
	return result
}

// AddGenericSignature re-adds every requirement of another (already
// finalized) GenericSignature under subst, used when a bound generic
// type's own signature needs to be folded into this Builder's own
// (e.g. extension-of-bound-generic scenarios).
func (b *Builder) AddGenericSignature(other *model.GenericSignature, subst solver.SubstitutionMap) error {
	if other == nil {
		return ErrNilGenericSignature
	}
	for _, req := range other.Requirements {
		r := solver.Requirement{
			Kind:     req.Kind,
			Subject:  archetypeSubject(req.Subject),
			Protocol: req.Protocol,
			Layout:   req.Layout,
		}
		if req.Kind == model.RequirementSameType {
			if req.HasOther {
				r.Type = archetypeSubject(req.Other)
			} else {
				r.Type = req.Type
			}
		} else if req.Kind == model.RequirementSuperclass {
			r.Type = req.Type
		}
		result := b.s.AddRequirement(r, b.ctx.Sources.ForAbstract(model.InvalidPAID), subst)
		b.cfg.metrics.RequirementAdded(req.Kind.String(), result.String())
	}
	return nil
}

// InferRequirements walks t (a bound generic type referring to decl) and
// re-adds decl's own requirements under an Inferred source and subst,
// the mechanism that keeps e.g. Array<T: Hashable> from needing its
// element constraints spelled out again at every use site.
func (b *Builder) InferRequirements(decl model.ProtocolDecl, t model.TypeRepr, subst solver.SubstitutionMap) model.ConstraintResult {
	return b.s.InferRequirements(decl, t, subst)
}

// Finalize runs the five-step finalization sequence (delayed-queue
// drain, recursion detection, per-class derived/redundancy checks,
// unresolved-generic-parameter diagnosis, typo correction) and then
// canonicalizes the result into a GenericSignature. It may be called
// exactly once per Builder; a second call returns ErrAlreadyFinalized
// and leaves the first result in place.
//
// Concrete generic parameters are allowed when either
// allowConcreteGenericParams or the Builder's WithAllowConcreteGenericParams
// default is true.
func (b *Builder) Finalize(params []model.GenericParamKey, allowConcreteGenericParams bool) (*model.GenericSignature, error) {
	if b.finalized {
		return nil, ErrAlreadyFinalized
	}
	allow := allowConcreteGenericParams || b.cfg.allowConcrete
	b.ctx.AllowConcreteGenericParams = allow

	finalize.Run(b.ctx, b.s, params, allow)
	b.cfg.metrics.FixedPointPasses(b.ctx.FixedPointPasses)
	for i := 0; i < b.ctx.FixedPointPasses; i++ {
		b.cfg.metrics.DelayedRetry()
	}

	b.sig = canon.Enumerate(b.ctx)
	b.finalized = true

	b.cfg.logger.Info("finalized generic signature",
		zap.String("correlation_id", b.cfg.correlationID),
		zap.Int("requirements", len(b.sig.Requirements)),
		zap.Int("fixed_point_passes", b.ctx.FixedPointPasses),
	)
	return b.sig, nil
}

// GenericSignature returns the signature computed by Finalize. Calling
// it before Finalize returns ErrNotFinalized.
func (b *Builder) GenericSignature() (*model.GenericSignature, error) {
	if !b.finalized {
		return nil, ErrNotFinalized
	}
	return b.sig, nil
}

// countingSink wraps the caller's diag.Sink so every emitted diagnostic
// also increments the configured Recorder, without the solver/finalize
// packages needing to know metrics exist at all.
type countingSink struct {
	sink    diag.Sink
	metrics Recorder
}

func (c countingSink) Emit(kind diag.Kind, loc model.SourceLoc, args ...any) {
	c.metrics.Diagnostic(kind.String())
	c.sink.Emit(kind, loc, args...)
}

// archetypeRoot adapts an ArchetypeRef's root generic parameter into the
// model.GenericParamRef shape the solver's subject resolution expects.
type archetypeRoot struct {
	key model.GenericParamKey
}

func (a archetypeRoot) String() string                  { return a.key.String() }
func (a archetypeRoot) ParamKey() model.GenericParamKey { return a.key }

// archetypeMember adapts one path segment of an ArchetypeRef into the
// model.DependentMember shape, so a nested archetype re-ingested from
// another GenericSignature walks the same base/member chain a host type
// checker's own dependent-member TypeRepr would.
type archetypeMember struct {
	base model.TypeRepr
	name string
}

func (a archetypeMember) String() string       { return a.base.String() + "." + a.name }
func (a archetypeMember) Base() model.TypeRepr { return a.base }
func (a archetypeMember) MemberName() string   { return a.name }

// archetypeSubject builds the TypeRepr chain AddRequirement's subject
// resolution walks for ref: a GenericParamRef root wrapped in one
// DependentMember per path segment, used by the AddGenericSignature
// re-ingestion path where requirements arrive as already-canonicalized
// archetype paths rather than fresh TypeRepr values from a host type
// checker.
func archetypeSubject(ref model.ArchetypeRef) model.TypeRepr {
	var t model.TypeRepr = archetypeRoot{ref.Root}
	for _, name := range ref.Path {
		t = archetypeMember{base: t, name: name}
	}
	return t
}
