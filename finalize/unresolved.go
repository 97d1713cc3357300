package finalize

import (
	"github.com/vidiask/swift/diag"
	"github.com/vidiask/swift/env"
	"github.com/vidiask/swift/model"
)

// checkUnresolvedGenericParams diagnoses every generic parameter in
// params whose representative class has become concrete, or has been
// equated to a different generic parameter, when the caller disallows
// that outcome.
func checkUnresolvedGenericParams(ctx *env.Context, params []model.GenericParamKey, allowConcrete bool) {
	if allowConcrete {
		return
	}
	for _, key := range params {
		id, ok := ctx.Arena.LookupGenericParameter(key)
		if !ok {
			continue
		}
		rep := ctx.Arena.Representative(id)
		class := ctx.Arena.EquivalenceClass(rep)

		if t, src, ok := class.ConcreteType(); ok {
			emit(ctx, diag.RequiresGenericParamMadeEqualToConcrete, src, key, t)
			continue
		}
		if repNode := ctx.Arena.Get(rep); repNode.IsRoot() && repNode.ParamKey() != key {
			emit(ctx, diag.RequiresGenericParamsMadeEqual, nil, key, repNode.ParamKey())
		}
	}
}
