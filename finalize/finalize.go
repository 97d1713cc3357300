package finalize

import (
	"github.com/vidiask/swift/derive"
	"github.com/vidiask/swift/env"
	"github.com/vidiask/swift/model"
	"github.com/vidiask/swift/nested"
	"github.com/vidiask/swift/solver"
)

// Run executes the five-step finalization sequence over ctx, using s to
// drain the delayed-requirement queue and to re-equate any PA typo
// correction renames. params and allowConcreteGenericParams gate the
// unresolved-generic-parameter check (step 4).
func Run(ctx *env.Context, s *solver.Solver, params []model.GenericParamKey, allowConcreteGenericParams bool) {
	// 1. Drain delayed queue to fixed point.
	ctx.FixedPointPasses = s.Drain()

	// 2. Recursion detection over concrete/superclass bounds.
	detectRecursion(ctx)

	// 3. Per-class checks: self-derivation/derived-via-concrete filter,
	// concrete/superclass conflict-and-redundancy checks, derived
	// same-type components.
	subst := nested.NewSubstituter(ctx, s)
	derive.Filter(ctx.Arena, subst, ctx.Diag)
	checkConcreteAndSuperclass(ctx)
	computeDerivedComponents(ctx)

	// 4. Unresolved generic parameters.
	checkUnresolvedGenericParams(ctx, params, allowConcreteGenericParams)

	// 5. Typo correction for anything still unresolved.
	correctTypos(ctx, s)
}

func correctTypos(ctx *env.Context, s *solver.Solver) {
	var unresolved []model.PAID
	for _, id := range ctx.Arena.AllPAIDs() {
		if ctx.Arena.Get(id).IsUnresolvedNested() {
			unresolved = append(unresolved, id)
		}
	}
	for _, id := range unresolved {
		nested.CorrectTypo(ctx, s, id)
	}
}
