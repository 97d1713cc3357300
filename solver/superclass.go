package solver

import (
	"github.com/vidiask/swift/diag"
	"github.com/vidiask/swift/model"
	"github.com/vidiask/swift/nested"
	"github.com/vidiask/swift/source"
)

// AddSuperclass resolves subject and records a superclass bound,
// tightening the canonical bound when the new type strictly refines the
// old one and synthesizing the implied `_Class` layout constraint on
// first occurrence.
func (s *Solver) AddSuperclass(subject model.TypeRepr, t model.TypeRepr, src *source.Source) model.ConstraintResult {
	r := s.resolveSubject(subject, nested.AddIfMissing)
	if !r.ok {
		s.deferRequirement(func() bool {
			retry := s.resolveSubject(subject, nested.AddIfMissing)
			if !retry.ok {
				return false
			}
			s.dispatchResolvedSuperclass(retry, t, src)
			return true
		})
		return model.Resolved
	}
	return s.dispatchResolvedSuperclass(r, t, src)
}

func (s *Solver) dispatchResolvedSuperclass(r resolved, t model.TypeRepr, src *source.Source) model.ConstraintResult {
	if !r.isPA {
		s.diagnoseConcreteSubject(r.concrete, src)
		return model.RequirementConcrete
	}
	return s.addSuperclassPA(r.pa, t, src)
}

func (s *Solver) addSuperclassPA(subject model.PAID, t model.TypeRepr, src *source.Source) model.ConstraintResult {
	rep := s.ctx.Arena.Representative(subject)
	class := s.ctx.Arena.EquivalenceClass(rep)
	class.AddSuperclassConstraint(subject, t, src)

	existing, _, hadOne := class.Superclass()
	switch {
	case !hadOne:
		class.SetSuperclass(t, src)
		class.AddLayoutConstraint(rep, model.Layout{Kind: model.LayoutClass}, src)
		s.reresolveConformances(rep)
	case refinesExactly(t, existing):
		class.SetSuperclass(t, src)
		s.reresolveConformances(rep)
	case refinesExactly(existing, t) || existing == t:
		// the new bound is weaker than or equal to what's recorded; no
		// change to the canonical bound, nothing to re-resolve.
	default:
		if s.ctx.Diag != nil {
			s.ctx.Diag.Emit(diag.RequiresSuperclassConflict, src.Loc(), existing, t)
		}
	}
	return model.Resolved
}

func refinesExactly(t, other model.TypeRepr) bool {
	refiner, ok := t.(model.SuperclassRefiner)
	return ok && refiner.RefinesSuperclass(other)
}

// reresolveConformances re-derives protocol conformances against a newly
// tightened superclass bound.
func (s *Solver) reresolveConformances(rep model.PAID) {
	class := s.ctx.Arena.EquivalenceClass(rep)
	if s.ctx.LookupConformance == nil {
		return
	}
	super, superSrc, ok := class.Superclass()
	if !ok {
		return
	}
	for _, protocol := range class.Protocols() {
		if conf, ok := s.ctx.LookupConformance(nil, super, protocol); ok {
			class.AddConformance(rep, protocol, s.ctx.Sources.ViaSuperclass(superSrc, conf))
		}
	}
}
