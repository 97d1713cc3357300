package model

// DependentMember is an optional refinement of TypeRepr: a type that
// denotes a member access relative to some base (e.g. "Self.Element" or
// "T.Iterator.Element"). The core stays blind to TypeRepr's structure in
// general, but nested-type substitution (the walk step and anchor
// discovery) has to decompose a Self-relative dependent type one member
// at a time without the host doing it up front. A TypeRepr that wants to
// participate in that substitution implements this interface; one that
// doesn't (a concrete, non-dependent type) is simply never asked.
type DependentMember interface {
	TypeRepr
	// Base returns the left-hand side of the member access, or nil if
	// this type denotes Self itself (the root of the dependent chain).
	Base() TypeRepr
	// MemberName is the associated-type name resolved relative to Base().
	MemberName() string
}
