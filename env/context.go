package env

import (
	"github.com/vidiask/swift/diag"
	"github.com/vidiask/swift/model"
	"github.com/vidiask/swift/pa"
	"github.com/vidiask/swift/source"
)

// Context is the shared state of one builder instance, passed by
// pointer to every package that mutates or reads it. It owns nothing
// itself beyond the pointers; Arena and Sources remain the actual
// owners of PAs and provenance nodes.
type Context struct {
	Arena   *pa.Arena
	Sources *source.Arena

	Resolver          model.LazyResolver
	LookupConformance model.LookupConformanceFunc
	Diag              diag.Sink

	// AllowConcreteGenericParams mirrors the finalize-time flag, set by
	// builder. finalize.Run receives the flag as its own parameter and
	// does not read this field.
	AllowConcreteGenericParams bool

	// UnresolvedNested tracks how many nested PAs are still unresolved;
	// nested discovery and finalize's typo correction decrement it as PAs
	// resolve. Names that stay unresolved are not reported.
	UnresolvedNested int

	// FixedPointPasses records how many full passes the delayed-queue
	// drain took during the most recent Finalize, for callers that want
	// to observe convergence cost (e.g. builder's metrics Recorder).
	FixedPointPasses int
}

// New wires a fresh Context around a matched pair of arenas.
func New(resolver model.LazyResolver, lookup model.LookupConformanceFunc, sink diag.Sink) *Context {
	srcArena := source.NewArena()
	return &Context{
		Arena:             pa.NewArena(srcArena),
		Sources:           srcArena,
		Resolver:          resolver,
		LookupConformance: lookup,
		Diag:              sink,
	}
}
