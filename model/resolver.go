package model

// LookupConformanceFunc is the external conformance-lookup collaborator:
// given a dependent type and a concrete type that is being required to
// satisfy a protocol, it returns the witness conformance if one exists.
// The core never constructs a Conformance itself.
type LookupConformanceFunc func(dependentType, concreteType TypeRepr, protocol ProtocolDecl) (Conformance, bool)

// LazyResolver is the external declaration-resolution collaborator. The
// core calls it instead of eagerly resolving every declaration it is
// handed, so callers can defer expensive type-checker work until the
// builder actually needs it.
type LazyResolver interface {
	// ResolveDeclSignature returns the generic signature already computed
	// for a generic declaration, used by inference to re-add a bound
	// generic type's own requirements under the caller's substitution.
	// ok is false if the signature is not available yet.
	ResolveDeclSignature(decl ProtocolDecl) (reqs []ProtocolRequirement, ok bool)
	// ResolveInheritedProtocols resolves the full (transitive) set of
	// protocols a protocol refines, used when a protocol's own
	// requirement signature has not been computed yet and conformance
	// fan-out must walk inheritance directly.
	ResolveInheritedProtocols(protocol ProtocolDecl) []ProtocolDecl
	// ResolveInheritanceClause resolves the written superclass/protocol
	// list of a declaration on demand.
	ResolveInheritanceClause(decl ProtocolDecl) []TypeRepr
}
