// Package builder is the public entry point to the generic signature
// builder: it wires together a potential-archetype arena, a source
// arena, and a solver behind the small ingress/egress surface a host
// type checker drives (AddGenericParameter, AddRequirement,
// AddGenericSignature, InferRequirements, Finalize, GenericSignature).
//
// Design contract:
//   - One orchestrator type (Builder); functional options (Option)
//     resolve into an immutable builderConfig before the first call.
//   - Determinism: the same sequence of ingress calls always finalizes
//     to a bit-identical GenericSignature.
//   - Safety: a Builder never panics on ordinary input; malformed
//     options panic at construction time, a programmer error.
package builder
