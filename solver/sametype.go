package solver

import (
	"github.com/vidiask/swift/diag"
	"github.com/vidiask/swift/model"
	"github.com/vidiask/swift/nested"
	"github.com/vidiask/swift/pa"
	"github.com/vidiask/swift/source"
)

// AddSameType resolves both sides and dispatches to the matching
// same-type sub-case. It also satisfies nested.Equator, so nested-type
// discovery shares this exact merge logic.
func (s *Solver) AddSameType(a, b model.PAID, src *source.Source) model.ConstraintResult {
	return s.sameTypeResolved(resolved{pa: a, isPA: true, ok: true}, resolved{pa: b, isPA: true, ok: true}, src)
}

// AddSameTypeRequirement is the typed entry point over unresolved
// subject types, for callers (the generic AddRequirement dispatcher,
// AddGenericSignature) that have not already resolved to PAs.
func (s *Solver) AddSameTypeRequirement(left, right model.TypeRepr, src *source.Source) model.ConstraintResult {
	l := s.resolveSubject(left, nested.AddIfMissing)
	r := s.resolveSubject(right, nested.AddIfMissing)
	if !l.ok || !r.ok {
		s.deferRequirement(func() bool {
			retryL := s.resolveSubject(left, nested.AddIfMissing)
			retryR := s.resolveSubject(right, nested.AddIfMissing)
			if !retryL.ok || !retryR.ok {
				return false
			}
			s.sameTypeResolved(retryL, retryR, src)
			return true
		})
		return model.Resolved
	}
	return s.sameTypeResolved(l, r, src)
}

// BindConcrete implements the "archetype = concrete" sub-case directly,
// used both by AddSameTypeRequirement (when one side resolves to a
// concrete type) and by nested-type discovery when an alias's underlying
// type, or a parent's concrete witness, needs binding onto a freshly
// created nested PA.
func (s *Solver) BindConcrete(subject model.PAID, t model.TypeRepr, src *source.Source) model.ConstraintResult {
	return s.sameTypeResolved(resolved{pa: subject, isPA: true, ok: true}, resolved{concrete: t, ok: true}, src)
}

func (s *Solver) sameTypeResolved(left, right resolved, src *source.Source) model.ConstraintResult {
	switch {
	case left.isPA && right.isPA:
		return s.sameTypeArchetypeArchetype(left.pa, right.pa, src)
	case left.isPA && !right.isPA:
		return s.sameTypeArchetypeConcrete(left.pa, right.concrete, src)
	case !left.isPA && right.isPA:
		return s.sameTypeArchetypeConcrete(right.pa, left.concrete, src)
	default:
		return s.sameTypeConcreteConcrete(left.concrete, right.concrete, src)
	}
}

// sameTypeArchetypeArchetype unions the classes (arena.Union already
// picks the canonical survivor and splices membership), then reconciles
// every fact the losing class carried.
func (s *Solver) sameTypeArchetypeArchetype(a, b model.PAID, src *source.Source) model.ConstraintResult {
	repA, repB := s.ctx.Arena.Representative(a), s.ctx.Arena.Representative(b)
	if repA == repB {
		return model.Resolved
	}
	// Touch both classes (lazily allocating) before Union, since Union
	// discards the loser's class map entry once the splice happens.
	classA := s.ctx.Arena.EquivalenceClass(repA)
	classB := s.ctx.Arena.EquivalenceClass(repB)

	survivor, loser, merged := s.ctx.Arena.Union(a, b)
	if !merged {
		return model.Resolved
	}
	survivorClass := s.ctx.Arena.EquivalenceClass(survivor)
	var loserClass *pa.EquivalenceClass
	if survivor == repA {
		loserClass = classB
	} else {
		loserClass = classA
	}
	_ = loser

	survivorClass.AddSameType(a, b, src)
	s.mergeClassFacts(survivor, survivorClass, loserClass, src)
	return model.Resolved
}

// mergeClassFacts reconciles every fact loserClass carried onto
// survivorClass: splice members, merge per-PA same-type maps, merge
// concrete-type and superclass bounds, dedup conformances by protocol,
// merge layout, and then recursively impose same-type on all
// same-named nesteds of the two sides.
func (s *Solver) mergeClassFacts(survivor model.PAID, survivorClass, loserClass *pa.EquivalenceClass, src *source.Source) {
	for _, edge := range loserClass.AllSameTypeEdges() {
		survivorClass.AddSameType(edge.Left, edge.Right, edge.Source)
	}

	if t, concSrc, ok := loserClass.ConcreteType(); ok {
		if existing, existingSrc, hadOne := survivorClass.ConcreteType(); hadOne {
			s.sameTypeConcreteConcrete(existing, t, chooseSource(existingSrc, concSrc, src))
		} else {
			s.bindConcreteToClass(survivor, survivorClass, t, concSrc)
		}
	}

	if t, supSrc, ok := loserClass.Superclass(); ok {
		s.addSuperclassPA(survivor, t, supSrc)
	}

	for _, protocol := range loserClass.Protocols() {
		constraints := loserClass.Conformances(protocol)
		if survivorClass.HasConformance(protocol) {
			for _, c := range constraints {
				survivorClass.AddConformance(c.Subject, protocol, c.Source)
			}
			continue
		}
		for _, c := range constraints {
			s.addConformancePA(survivor, protocol, c.Source)
		}
	}

	for _, lc := range loserClass.LayoutConstraints() {
		if !survivorClass.AddLayoutConstraint(lc.Subject, lc.Layout, lc.Source) && s.ctx.Diag != nil {
			existing, _, _ := survivorClass.Layout()
			s.ctx.Diag.Emit(diag.ConflictingLayoutConstraints, lc.Source.Loc(), existing, lc.Layout)
		}
	}

	names := make(map[string]bool)
	for _, member := range survivorClass.Members() {
		for _, name := range s.ctx.Arena.Get(member).AllChildNames() {
			names[name] = true
		}
	}
	for name := range names {
		nested.EquateSiblingNesteds(s.ctx, s, survivor, name)
	}
}

func chooseSource(a, b, fallback *source.Source) *source.Source {
	if a != nil {
		return a
	}
	if b != nil {
		return b
	}
	return fallback
}

// sameTypeArchetypeConcrete binds the class's concrete type, looks up
// the concrete conformance for every protocol the class already
// requires, and binds every nested PA in the class same-type to its
// associated-type witness under that conformance.
func (s *Solver) sameTypeArchetypeConcrete(id model.PAID, t model.TypeRepr, src *source.Source) model.ConstraintResult {
	rep := s.ctx.Arena.Representative(id)
	class := s.ctx.Arena.EquivalenceClass(rep)
	if existing, existingSrc, ok := class.ConcreteType(); ok {
		result := s.sameTypeConcreteConcrete(existing, t, src)
		_ = existingSrc
		return result
	}
	s.bindConcreteToClass(rep, class, t, src)
	return model.Resolved
}

func (s *Solver) bindConcreteToClass(rep model.PAID, class *pa.EquivalenceClass, t model.TypeRepr, src *source.Source) {
	class.AddConcrete(rep, t, src)
	if s.ctx.LookupConformance == nil {
		return
	}
	for _, protocol := range class.Protocols() {
		conf, ok := s.ctx.LookupConformance(nil, t, protocol)
		if !ok {
			continue
		}
		concreteSrc := s.ctx.Sources.ViaConcrete(src, conf)
		class.AddConformance(rep, protocol, concreteSrc)
		for _, member := range class.Members() {
			for _, name := range s.ctx.Arena.Get(member).AllChildNames() {
				for _, child := range s.ctx.Arena.Get(member).Children(name) {
					assoc := s.ctx.Arena.Get(child).ResolvedAssocType()
					if assoc == nil {
						continue
					}
					if witness, ok := conf.AssociatedTypeWitness(assoc); ok {
						s.BindConcrete(child, witness, s.ctx.Sources.ViaParent(concreteSrc, assoc))
					}
				}
			}
		}
	}
}

// sameTypeConcreteConcrete matches the two concrete types: they match
// iff they compare equal with ==. It does not descend into their
// structure and does not call AddSameType on differing sub-structure;
// any mismatch emits RequiresSameTypeConflict and returns Conflicting.
func (s *Solver) sameTypeConcreteConcrete(a, b model.TypeRepr, src *source.Source) model.ConstraintResult {
	if a == b {
		return model.Resolved
	}
	if s.ctx.Diag != nil {
		s.ctx.Diag.Emit(diag.RequiresSameTypeConflict, src.Loc(), a, b)
	}
	return model.Conflicting
}
