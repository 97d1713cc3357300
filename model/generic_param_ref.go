package model

// GenericParamRef is implemented by a TypeRepr that denotes a generic
// parameter directly — the root of every dependent-member chain a
// requirement's subject can be built from. Together with
// DependentMember it lets the solver resolve an arbitrary subject type
// down to a potential archetype without ever inspecting TypeRepr's
// internal representation.
type GenericParamRef interface {
	TypeRepr
	ParamKey() GenericParamKey
}
