package derive

import (
	"sort"

	"github.com/vidiask/swift/diag"
	"github.com/vidiask/swift/model"
	"github.com/vidiask/swift/pa"
	"github.com/vidiask/swift/source"
)

// Filter applies self-derivation and derived-via-concrete thinning to
// every equivalence class the arena currently owns, diagnosing every
// dropped constraint as redundant (inferred sources are never diagnosed,
// per the solver's inference contract). subst supplies the nested-type
// lookups a source's Walk needs to replay; callers pass the richer
// nested-package substituter so the walk can actually decompose
// dependent members rather than failing closed.
func Filter(arena *pa.Arena, subst source.Substituter, sink diag.Sink) {
	for _, rep := range arena.Representatives() {
		class := arena.EquivalenceClass(rep)
		filterConformances(arena, class, subst, sink)
		filterSameType(arena, class, subst, sink)

		concrete, droppedConcrete := thinByConcreteWitness(arena, subst, class.ConcreteConstraints(), func(c pa.ConcreteConstraint) *source.Source { return c.Source })
		class.SetConcreteConstraints(concrete)
		reportDropped(sink, diag.RedundantSameTypeToConcrete, droppedConcrete, func(c pa.ConcreteConstraint) *source.Source { return c.Source })

		super, droppedSuper := thinByConcreteWitness(arena, subst, class.SuperclassConstraints(), func(c pa.SuperclassConstraint) *source.Source { return c.Source })
		class.SetSuperclassConstraints(super)
		reportDropped(sink, diag.RedundantSuperclassConstraint, droppedSuper, func(c pa.SuperclassConstraint) *source.Source { return c.Source })

		layout, droppedLayout := thinByConcreteWitness(arena, subst, class.LayoutConstraints(), func(c pa.LayoutConstraint) *source.Source { return c.Source })
		class.SetLayoutConstraints(layout)
		reportDropped(sink, diag.RedundantLayoutConstraint, droppedLayout, func(c pa.LayoutConstraint) *source.Source { return c.Source })
	}
}

func filterConformances(arena *pa.Arena, class *pa.EquivalenceClass, subst source.Substituter, sink diag.Sink) {
	for _, protocol := range class.Protocols() {
		constraints := class.Conformances(protocol)
		kept := make([]pa.ConformanceConstraint, 0, len(constraints))
		var selfDerived []pa.ConformanceConstraint
		for _, c := range constraints {
			if c.Source.IsSelfDerivedConformance(arena, subst) {
				selfDerived = append(selfDerived, c)
				continue
			}
			kept = append(kept, c)
		}
		kept, dropped := thinByConcreteWitness(arena, subst, kept, func(c pa.ConformanceConstraint) *source.Source { return c.Source })
		class.SetConformances(protocol, kept)
		reportDropped(sink, diag.RedundantConformanceConstraint, selfDerived, func(c pa.ConformanceConstraint) *source.Source { return c.Source })
		reportDropped(sink, diag.RedundantConformanceConstraint, dropped, func(c pa.ConformanceConstraint) *source.Source { return c.Source })
	}
}

func filterSameType(arena *pa.Arena, class *pa.EquivalenceClass, subst source.Substituter, sink diag.Sink) {
	// AllSameTypeEdges flattens every left-keyed bucket; re-bucket by left
	// so SetSameTypeEdges can replace each bucket independently.
	buckets := make(map[model.PAID][]pa.SameTypeConstraint)
	for _, edge := range class.AllSameTypeEdges() {
		buckets[edge.Left] = append(buckets[edge.Left], edge)
	}
	for left, edges := range buckets {
		kept := make([]pa.SameTypeConstraint, 0, len(edges))
		var selfDerived []pa.SameTypeConstraint
		for _, e := range edges {
			if e.Source.IsSelfDerivedSameType(arena, subst, e.Right) {
				selfDerived = append(selfDerived, e)
				continue
			}
			kept = append(kept, e)
		}
		kept, dropped := thinByConcreteWitness(arena, subst, kept, func(e pa.SameTypeConstraint) *source.Source { return e.Source })
		class.SetSameTypeEdges(left, kept)
		reportDropped(sink, diag.RedundantSameTypeConstraint, selfDerived, func(e pa.SameTypeConstraint) *source.Source { return e.Source })
		reportDropped(sink, diag.RedundantSameTypeConstraint, dropped, func(e pa.SameTypeConstraint) *source.Source { return e.Source })
	}
}

// thinByConcreteWitness keeps every constraint whose source is not
// derived-via-concrete; if none remain, it keeps exactly one
// derived-via-concrete survivor (the one whose source compares least)
// rather than discarding the fact entirely. Concrete/superclass/layout
// fact lists have no dedicated self-derivation check of their own (that
// notion is defined in source/queries.go only in terms of protocol-pair
// revisits and nested-ancestor chains, neither of which applies to a flat
// single-key fact list), so this thinning is the only filter applied to
// them. Returns the surviving list and everything dropped, for callers
// that diagnose redundancy.
func thinByConcreteWitness[T any](arena *pa.Arena, subst source.Substituter, items []T, srcOf func(T) *source.Source) (kept, dropped []T) {
	if len(items) == 0 {
		return items, nil
	}
	var direct, viaConcrete []T
	for _, it := range items {
		if srcOf(it).DerivedViaConcrete(arena, subst) {
			viaConcrete = append(viaConcrete, it)
		} else {
			direct = append(direct, it)
		}
	}
	if len(direct) > 0 {
		return direct, viaConcrete
	}
	if len(viaConcrete) == 0 {
		return nil, nil
	}
	sort.SliceStable(viaConcrete, func(i, j int) bool {
		return srcOf(viaConcrete[i]).Less(srcOf(viaConcrete[j]))
	})
	return viaConcrete[:1], viaConcrete[1:]
}

// reportDropped emits kind for every dropped constraint whose source is
// not inferred (inferred facts are never diagnosed as redundant).
func reportDropped[T any](sink diag.Sink, kind diag.Kind, dropped []T, srcOf func(T) *source.Source) {
	if sink == nil {
		return
	}
	for _, d := range dropped {
		src := srcOf(d)
		if src.IsInferred() {
			continue
		}
		sink.Emit(kind, src.Loc(), src)
	}
}
