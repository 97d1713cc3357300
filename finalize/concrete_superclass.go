package finalize

import (
	"github.com/vidiask/swift/diag"
	"github.com/vidiask/swift/env"
	"github.com/vidiask/swift/model"
)

func refinesExactly(t, other model.TypeRepr) bool {
	refiner, ok := t.(model.SuperclassRefiner)
	return ok && refiner.RefinesSuperclass(other)
}

// checkConcreteAndSuperclass re-scans each class's surviving
// concrete/superclass constraint lists (after derive.Filter has already
// thinned self-derived and derived-via-concrete entries) for the
// bookkeeping that thinning alone does not cover: an outright conflicting
// pair (two distinct concrete types, or a superclass constraint neither
// refining nor refined by the canonical bound — both should already have
// produced a solve-time diagnostic, this is a confirming sweep) and exact
// duplicates of the canonical fact, which are redundant rather than
// conflicting.
func checkConcreteAndSuperclass(ctx *env.Context) {
	for _, rep := range ctx.Arena.Representatives() {
		class := ctx.Arena.EquivalenceClass(rep)

		if canonical, canonicalSrc, ok := class.ConcreteType(); ok {
			for _, c := range class.ConcreteConstraints() {
				switch {
				case c.Type == canonical && c.Source != canonicalSrc:
					// A duplicate of the canonical fact under a different
					// source: derive.Filter keeps every constraint that is
					// not derived via a concrete type, so such duplicates
					// reach this sweep.
					emit(ctx, diag.RedundantSameTypeToConcrete, c.Source, c.Type)
				case c.Type != canonical:
					emit(ctx, diag.RequiresSameConcreteType, c.Source, canonical, c.Type)
				}
			}
		}

		if canonical, _, ok := class.Superclass(); ok {
			for _, c := range class.SuperclassConstraints() {
				if c.Type == canonical {
					continue
				}
				if refinesExactly(c.Type, canonical) {
					// c strictly refines the canonical bound; like the
					// looser case below, it is reported as a superclass
					// redundancy.
					emit(ctx, diag.SuperclassRedundancyHere, c.Source, c.Type)
					continue
				}
				if refinesExactly(canonical, c.Type) {
					emit(ctx, diag.SuperclassRedundancyHere, c.Source, c.Type)
					continue
				}
				// Neither refines the other: a genuine conflict, already
				// diagnosed once at solve time (addSuperclassPA's default
				// case); nothing further to report here.
			}
		}
	}
}
