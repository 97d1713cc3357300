package solver

import (
	"github.com/vidiask/swift/env"
	"github.com/vidiask/swift/model"
	"github.com/vidiask/swift/nested"
)

// Solver drives the fixed-point requirement resolution. It implements
// nested.Equator so nested-type discovery can equate anchors through
// the very same union/bind machinery ordinary same-type requirements
// use.
type Solver struct {
	ctx     *env.Context
	delayed []delayedRequirement
}

// New builds a Solver over ctx's arenas.
func New(ctx *env.Context) *Solver {
	return &Solver{ctx: ctx}
}

// delayedRequirement is one entry on the unresolved-requirement queue.
// attempt reports whether the requirement could be resolved this pass;
// if not, it stays queued for the next full pass — each iteration uses
// its own snapshot of the queue, with no re-queueing inside the
// iteration itself.
type delayedRequirement struct {
	attempt func() (done bool)
}

// deferRequirement queues a requirement that could not be resolved yet.
func (s *Solver) deferRequirement(attempt func() (done bool)) {
	s.delayed = append(s.delayed, delayedRequirement{attempt: attempt})
}

// Drain repeats full passes over the delayed queue until a pass makes no
// progress — the fixed-point loop: run a pass, stop as soon as one
// contributes nothing.
func (s *Solver) Drain() int {
	passes := 0
	for len(s.delayed) > 0 {
		passes++
		remaining := s.delayed[:0:0]
		progressed := false
		for _, d := range s.delayed {
			if d.attempt() {
				progressed = true
			} else {
				remaining = append(remaining, d)
			}
		}
		s.delayed = remaining
		if !progressed {
			break
		}
	}
	return passes
}

// PendingCount reports how many requirements remain unresolved after a
// Drain. Finalize does not diagnose requirements that are still pending.
func (s *Solver) PendingCount() int { return len(s.delayed) }

// resolved is the tri-state outcome of resolving a requirement subject:
// either a potential archetype, a concrete type, or nothing yet (the
// caller should have deferred).
type resolved struct {
	pa       model.PAID
	concrete model.TypeRepr
	isPA     bool
	ok       bool
}

// resolveSubject resolves t to either a concrete type (not a type
// parameter), an existing PA, or a newly materialized PA. It recognizes
// model.GenericParamRef and
// model.DependentMember; anything else is treated as an already-concrete
// type. kind controls whether a missing nested type along the way is
// created (AddIfMissing, the common case for requirement subjects).
func (s *Solver) resolveSubject(t model.TypeRepr, kind nested.UpdateKind) resolved {
	if t == nil {
		return resolved{}
	}
	if ref, ok := t.(model.GenericParamRef); ok {
		if id, found := s.ctx.Arena.LookupGenericParameter(ref.ParamKey()); found {
			return resolved{pa: id, isPA: true, ok: true}
		}
		return resolved{}
	}
	if dm, ok := t.(model.DependentMember); ok {
		base := s.resolveSubject(dm.Base(), kind)
		if !base.ok {
			return resolved{}
		}
		if !base.isPA {
			// Base resolved to a concrete type; the member is whatever the
			// concrete type's conformance witnesses, which the caller
			// resolves via LookupConformance rather than nested discovery.
			return resolved{concrete: base.concrete, ok: true}
		}
		id, found := nested.GetNestedTypeByName(s.ctx, s, base.pa, dm.MemberName(), kind)
		if !found {
			return resolved{}
		}
		return resolved{pa: id, isPA: true, ok: true}
	}
	return resolved{concrete: t, ok: true}
}

// resolveRelative resolves a Self-relative dependent type t (as stored on
// a model.ProtocolRequirement, where nil means Self itself) against a
// known base PA, used when recursing into a protocol's own requirement
// signature. Unlike resolveSubject it never
// looks for a GenericParamRef root — the root is always base.
func (s *Solver) resolveRelative(base model.PAID, t model.TypeRepr, kind nested.UpdateKind) resolved {
	if t == nil {
		return resolved{pa: base, isPA: true, ok: true}
	}
	dm, ok := t.(model.DependentMember)
	if !ok {
		return resolved{concrete: t, ok: true}
	}
	inner := s.resolveRelative(base, dm.Base(), kind)
	if !inner.ok {
		return resolved{}
	}
	if !inner.isPA {
		return resolved{concrete: inner.concrete, ok: true}
	}
	id, found := nested.GetNestedTypeByName(s.ctx, s, inner.pa, dm.MemberName(), kind)
	if !found {
		return resolved{}
	}
	return resolved{pa: id, isPA: true, ok: true}
}
