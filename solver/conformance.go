package solver

import (
	"github.com/vidiask/swift/diag"
	"github.com/vidiask/swift/model"
	"github.com/vidiask/swift/nested"
	"github.com/vidiask/swift/source"
)

// AddConformance resolves subject and records "subject: protocol",
// fanning out into the superclass bound, existing nested children, and
// the protocol's own requirement signature on first occurrence.
func (s *Solver) AddConformance(subject model.TypeRepr, protocol model.ProtocolDecl, src *source.Source) model.ConstraintResult {
	r := s.resolveSubject(subject, nested.AddIfMissing)
	if !r.ok {
		s.deferRequirement(func() bool {
			retry := s.resolveSubject(subject, nested.AddIfMissing)
			if !retry.ok {
				return false
			}
			s.dispatchResolvedConformance(retry, protocol, src)
			return true
		})
		return model.Resolved
	}
	return s.dispatchResolvedConformance(r, protocol, src)
}

func (s *Solver) dispatchResolvedConformance(r resolved, protocol model.ProtocolDecl, src *source.Source) model.ConstraintResult {
	if !r.isPA {
		s.diagnoseConcreteSubject(r.concrete, src)
		return model.RequirementConcrete
	}
	return s.addConformancePA(r.pa, protocol, src)
}

func (s *Solver) addConformancePA(subject model.PAID, protocol model.ProtocolDecl, src *source.Source) model.ConstraintResult {
	rep := s.ctx.Arena.Representative(subject)
	class := s.ctx.Arena.EquivalenceClass(rep)
	first := class.AddConformance(subject, protocol, src)
	if !first {
		return model.Resolved
	}

	if super, _, ok := class.Superclass(); ok && s.ctx.LookupConformance != nil {
		if conf, ok := s.ctx.LookupConformance(nil, super, protocol); ok {
			class.AddConformance(rep, protocol, s.ctx.Sources.ViaSuperclass(src, conf))
		}
	}

	for _, member := range class.Members() {
		for _, name := range s.ctx.Arena.Get(member).AllChildNames() {
			nested.GetNestedTypeByName(s.ctx, s, member, name, nested.AddIfBetterAnchor)
		}
	}

	s.fanOutProtocolRequirements(rep, protocol, src)
	return model.Resolved
}

// fanOutProtocolRequirements recurses on protocol's own requirement
// signature once it is computed, substituting Self := subject; otherwise
// it walks inherited protocols and members directly via the lazy
// resolver.
func (s *Solver) fanOutProtocolRequirements(subject model.PAID, protocol model.ProtocolDecl, src *source.Source) {
	if reqs, computed := protocol.RequirementSignature(); computed {
		for _, r := range reqs {
			inner := s.ctx.Sources.ViaProtocolRequirement(src, r.Subject, protocol, src.IsInferred(), model.SourceLoc{})
			s.addProtocolRequirement(subject, r, inner)
		}
		return
	}
	if s.ctx.Resolver == nil {
		return
	}
	for _, parent := range s.ctx.Resolver.ResolveInheritedProtocols(protocol) {
		if parent == protocol {
			continue
		}
		s.addConformancePA(subject, parent, s.ctx.Sources.ViaProtocolRequirement(src, nil, parent, false, model.SourceLoc{}))
	}
}

// addProtocolRequirement resolves r.Subject relative to base (the
// Self := subject substitution) and dispatches to the matching typed
// entry point.
func (s *Solver) addProtocolRequirement(base model.PAID, r model.ProtocolRequirement, src *source.Source) {
	resolvedSubject := s.resolveRelative(base, r.Subject, nested.AddIfMissing)
	if !resolvedSubject.ok {
		s.deferRequirement(func() bool {
			retry := s.resolveRelative(base, r.Subject, nested.AddIfMissing)
			if !retry.ok {
				return false
			}
			s.dispatchResolvedProtocolRequirement(base, retry, r, src)
			return true
		})
		return
	}
	s.dispatchResolvedProtocolRequirement(base, resolvedSubject, r, src)
}

func (s *Solver) dispatchResolvedProtocolRequirement(base model.PAID, resolvedSubject resolved, r model.ProtocolRequirement, src *source.Source) {
	switch r.Kind {
	case model.RequirementConformance:
		if resolvedSubject.isPA {
			s.addConformancePA(resolvedSubject.pa, r.Protocol, src)
		}
	case model.RequirementSuperclass:
		if resolvedSubject.isPA {
			s.addSuperclassPA(resolvedSubject.pa, r.Type, src)
		}
	case model.RequirementSameType:
		rightResolved := s.resolveRelative(base, r.Type, nested.AddIfMissing)
		s.sameTypeResolved(resolvedSubject, rightResolved, src)
	case model.RequirementLayout:
		// Layout requirements in a requirement signature carry their
		// model.Layout value via r.Type only in host-specific encodings;
		// the core has no generic way to recover one here and relies on
		// the host re-adding layout facts through AddLayout directly.
	}
}

func (s *Solver) diagnoseConcreteSubject(t model.TypeRepr, src *source.Source) {
	if s.ctx.Diag == nil {
		return
	}
	s.ctx.Diag.Emit(diag.RequiresNotSuitableArchetype, src.Loc(), t)
}
