// Package swift is a generic signature builder: the constraint-collection
// and canonicalization engine that sits behind a type checker's generic
// parameter lists, turning a stream of written and inferred requirements
// ("T: Hashable", "T.Element == U", ...) into a minimal, conflict-free
// GenericSignature.
//
// The packages are organized as:
//
//	model/    — the wire types (TypeRepr, ProtocolDecl, requirement kinds)
//	           and the external collaborator interfaces (LazyResolver,
//	           LookupConformanceFunc) a host type checker implements.
//	pa/       — the potential-archetype arena: union-find equivalence
//	           classes, nested-type children, and per-class conformance/
//	           superclass/layout/concrete bookkeeping.
//	source/   — provenance tracking for every recorded fact, used to
//	           detect self-derivation and pick a canonical representative
//	           source for diagnostics.
//	nested/   — nested-type discovery, anchor selection, and typo
//	           correction for misspelled dependent member names.
//	solver/   — the entry points that resolve a requirement's subject and
//	           dispatch into the arena (AddConformance, AddSameType, ...).
//	derive/   — derived-constraint computation once a class is complete.
//	finalize/ — the fixed-point drain, recursion detection, and
//	           unresolved-generic-parameter diagnosis run once per
//	           declaration before canonicalization.
//	canon/    — canonical enumeration: walks the arena in a stable order
//	           and emits the minimal GenericSignature.
//	diag/     — the diagnostic vocabulary and Sink interface; the core
//	           never renders text, only emits typed Kind+location+args.
//	env/      — the Context every other package threads through: the
//	           arena, the external collaborators, and per-run counters.
//	builder/  — the public orchestrator: Builder wraps env/solver/finalize/
//	           canon behind AddGenericParameter/AddRequirement/Finalize.
//
// A host type checker drives one Builder per generic declaration, adding
// requirements as it parses or infers them, then finalizes once to get a
// stable, minimal signature back.
package swift
