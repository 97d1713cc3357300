package finalize

import (
	"github.com/vidiask/swift/diag"
	"github.com/vidiask/swift/env"
	"github.com/vidiask/swift/model"
)

// detectRecursion flags a class whose concrete type or superclass bound
// refers back to the class's own generic-parameter root. Since TypeRepr
// is opaque to the core beyond the model.GenericParamRef/DependentMember
// escape hatches, only the literal "bound equals its own generic
// parameter" case is detectable here; deeper structural self-reference
// (e.g. a concrete type that merely contains the parameter as a
// sub-component) is left to the host, which has full access to its own
// type representation.
func detectRecursion(ctx *env.Context) {
	for _, rep := range ctx.Arena.Representatives() {
		class := ctx.Arena.EquivalenceClass(rep)

		if t, src, ok := class.ConcreteType(); ok {
			if refersToOwnParam(ctx, t, rep) {
				ctx.Arena.MarkRecursiveConcrete(rep)
				ctx.Arena.MarkInvalid(rep)
				emit(ctx, diag.RecursiveSameTypeConstraint, src, t)
			}
		}

		if t, src, ok := class.Superclass(); ok {
			if refersToOwnParam(ctx, t, rep) {
				ctx.Arena.MarkRecursiveSuperclass(rep)
				emit(ctx, diag.RecursiveSuperclassConstraint, src, t)
			}
		}
	}
}

func refersToOwnParam(ctx *env.Context, t model.TypeRepr, rep model.PAID) bool {
	ref, ok := t.(model.GenericParamRef)
	if !ok {
		return false
	}
	paramID, ok := ctx.Arena.LookupGenericParameter(ref.ParamKey())
	if !ok {
		return false
	}
	return ctx.Arena.Representative(paramID) == rep
}
