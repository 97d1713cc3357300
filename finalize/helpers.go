package finalize

import (
	"github.com/vidiask/swift/diag"
	"github.com/vidiask/swift/env"
	"github.com/vidiask/swift/model"
	"github.com/vidiask/swift/source"
)

// emit forwards kind to ctx's diagnostics sink at src's location, a
// one-line convenience so every check below reads the same way; it is a
// no-op when the sink is absent, and uses the zero location when src is
// nil.
func emit(ctx *env.Context, kind diag.Kind, src *source.Source, args ...any) {
	if ctx.Diag == nil {
		return
	}
	loc := model.SourceLoc{}
	if src != nil {
		loc = src.Loc()
	}
	ctx.Diag.Emit(kind, loc, args...)
}
