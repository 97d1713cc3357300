package canon

import (
	"sort"

	"github.com/vidiask/swift/env"
	"github.com/vidiask/swift/model"
	"github.com/vidiask/swift/pa"
	"github.com/vidiask/swift/source"
)

// Enumerate walks every equivalence class in canonical representative
// order and emits the minimal requirement list, per the canonicalization
// rules: a concrete-type same-type requirement when the class is bound,
// a same-type edge chaining each pair of consecutive derived-component
// anchors, at most one superclass bound, the merged layout, and one
// conformance per protocol (protocols sorted by name). The superclass and
// layout are skipped when their canonical source is derived, and a
// protocol is skipped when every recorded conformance source is derived;
// the concrete-type same-type fact is emitted regardless of how it was
// learned, since canonicalization needs it.
func Enumerate(ctx *env.Context) *model.GenericSignature {
	reps := ctx.Arena.Representatives()
	sort.SliceStable(reps, func(i, j int) bool { return ctx.Arena.Less(reps[i], reps[j]) })

	sig := &model.GenericSignature{}
	for _, rep := range reps {
		class := ctx.Arena.EquivalenceClass(rep)
		anchors := componentAnchors(class, rep)
		anchor := anchors[0]

		if t, src, ok := class.ConcreteType(); ok {
			sig.Requirements = append(sig.Requirements, model.ResolvedRequirement{
				Kind:    model.RequirementSameType,
				Subject: ctx.Arena.ArchetypeRef(anchor),
				Type:    t,
				Loc:     locOf(src),
			})
		}

		for i := 0; i+1 < len(anchors); i++ {
			sig.Requirements = append(sig.Requirements, model.ResolvedRequirement{
				Kind:     model.RequirementSameType,
				Subject:  ctx.Arena.ArchetypeRef(anchors[i]),
				Other:    ctx.Arena.ArchetypeRef(anchors[i+1]),
				HasOther: true,
			})
		}

		if t, src, ok := class.Superclass(); ok && !isDerived(src) {
			sig.Requirements = append(sig.Requirements, model.ResolvedRequirement{
				Kind:    model.RequirementSuperclass,
				Subject: ctx.Arena.ArchetypeRef(anchor),
				Type:    t,
				Loc:     locOf(src),
			})
		}

		if l, src, ok := class.Layout(); ok && !isDerived(src) {
			sig.Requirements = append(sig.Requirements, model.ResolvedRequirement{
				Kind:    model.RequirementLayout,
				Subject: ctx.Arena.ArchetypeRef(anchor),
				Layout:  l,
				Loc:     locOf(src),
			})
		}

		protocols := class.Protocols()
		sort.Slice(protocols, func(i, j int) bool { return protocols[i].Name() < protocols[j].Name() })
		for _, proto := range protocols {
			witness := firstNonDerivedConformance(class.Conformances(proto))
			if witness == nil {
				continue
			}
			sig.Requirements = append(sig.Requirements, model.ResolvedRequirement{
				Kind:     model.RequirementConformance,
				Subject:  ctx.Arena.ArchetypeRef(anchor),
				Protocol: proto,
				Loc:      locOf(witness.Source),
			})
		}
	}
	return sig
}

// componentAnchors returns the class's derived-component anchors in
// canonical order, falling back to the bare representative when
// finalize never computed components for it (the common case of a
// singleton class with no same-type edges at all).
func componentAnchors(class *pa.EquivalenceClass, rep model.PAID) []model.PAID {
	comps := class.Components()
	if len(comps) == 0 {
		return []model.PAID{rep}
	}
	out := make([]model.PAID, len(comps))
	for i, c := range comps {
		out[i] = c.Anchor
	}
	return out
}

// firstNonDerivedConformance returns the first recorded constraint whose
// source is not derived, the representative witness emitted for that
// protocol; nil if every recorded source is derived (the protocol is
// implied rather than directly required, and is suppressed per the
// derived-suppression rule).
func firstNonDerivedConformance(constraints []pa.ConformanceConstraint) *pa.ConformanceConstraint {
	for i := range constraints {
		if !isDerived(constraints[i].Source) {
			return &constraints[i]
		}
	}
	return nil
}

func isDerived(src *source.Source) bool {
	return src != nil && src.IsDerived()
}

func locOf(src *source.Source) model.SourceLoc {
	if src == nil {
		return model.SourceLoc{}
	}
	return src.Loc()
}
