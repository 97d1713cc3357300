package solver

import (
	"github.com/vidiask/swift/diag"
	"github.com/vidiask/swift/model"
	"github.com/vidiask/swift/nested"
	"github.com/vidiask/swift/source"
)

// AddLayout resolves subject and records a layout requirement, merging
// it into the class's canonical layout.
func (s *Solver) AddLayout(subject model.TypeRepr, l model.Layout, src *source.Source) model.ConstraintResult {
	r := s.resolveSubject(subject, nested.AddIfMissing)
	if !r.ok {
		s.deferRequirement(func() bool {
			retry := s.resolveSubject(subject, nested.AddIfMissing)
			if !retry.ok {
				return false
			}
			s.dispatchResolvedLayout(retry, l, src)
			return true
		})
		return model.Resolved
	}
	return s.dispatchResolvedLayout(r, l, src)
}

func (s *Solver) dispatchResolvedLayout(r resolved, l model.Layout, src *source.Source) model.ConstraintResult {
	if !r.isPA {
		s.diagnoseConcreteSubject(r.concrete, src)
		return model.RequirementConcrete
	}
	rep := s.ctx.Arena.Representative(r.pa)
	class := s.ctx.Arena.EquivalenceClass(rep)
	if !class.AddLayoutConstraint(r.pa, l, src) {
		if s.ctx.Diag != nil {
			existing, _, _ := class.Layout()
			s.ctx.Diag.Emit(diag.ConflictingLayoutConstraints, src.Loc(), existing, l)
		}
		return model.Conflicting
	}
	return model.Resolved
}
