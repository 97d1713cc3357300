package diag

import "github.com/vidiask/swift/model"

// Kind is one member of the fixed diagnostic vocabulary the core emits.
// The core never decides whether a Kind is suppressed or how it is
// rendered; that policy belongs entirely to the Diagnostics sink.
type Kind int

const (
	RequiresSameTypeConflict Kind = iota
	RequiresSameConcreteType
	RecursiveSameTypeConstraint
	RecursiveSuperclassConstraint
	RedundantConformanceConstraint
	RedundantSameTypeConstraint
	PreviousSameTypeConstraint
	ConflictingLayoutConstraints
	RedundantLayoutConstraint
	RequiresNotSuitableArchetype
	RequiresGenericParamSameTypeDoesNotConform
	InvalidMemberTypeSuggest
	InheritedAssociatedTypeRedecl
	TypealiasOverrideAssociatedType
	TypeDoesNotInherit
	RequiresGenericParamsMadeEqual
	RequiresGenericParamMadeEqualToConcrete
	RequiresConformanceNonprotocol
	RequiresNoSameTypeArchetype
	ProtocolTypealiasConflict
	RequiresSuperclassConflict
	RedundantSuperclassConstraint
	SameTypeRedundancyHere
	SuperclassRedundancyHere
	RedundantSameTypeToConcrete
	RedundantConformanceHere
	PreviousLayoutConstraint
	RecursiveRequirementReference
)

var names = [...]string{
	"requires_same_type_conflict",
	"requires_same_concrete_type",
	"recursive_same_type_constraint",
	"recursive_superclass_constraint",
	"redundant_conformance_constraint",
	"redundant_same_type_constraint",
	"previous_same_type_constraint",
	"conflicting_layout_constraints",
	"redundant_layout_constraint",
	"requires_not_suitable_archetype",
	"requires_generic_param_same_type_does_not_conform",
	"invalid_member_type_suggest",
	"inherited_associated_type_redecl",
	"typealias_override_associated_type",
	"type_does_not_inherit",
	"requires_generic_params_made_equal",
	"requires_generic_param_made_equal_to_concrete",
	"requires_conformance_nonprotocol",
	"requires_no_same_type_archetype",
	"protocol_typealias_conflict",
	"requires_superclass_conflict",
	"redundant_superclass_constraint",
	"same_type_redundancy_here",
	"superclass_redundancy_here",
	"redundant_same_type_to_concrete",
	"redundant_conformance_here",
	"previous_layout_constraint",
	"recursive_requirement_reference",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(names) {
		return "unknown"
	}
	return names[k]
}

// Sink is the external diagnostics collaborator. The core
// calls Emit for every diagnosable fact; it never renders text itself.
// Args are diagnostic-specific positional payload (PA display names,
// protocols, conflicting sources, ...) left opaque to the core.
type Sink interface {
	Emit(kind Kind, loc model.SourceLoc, args ...any)
}

// Nop is a Sink that discards everything, useful as a default or in
// tests that only care about the resulting signature.
type Nop struct{}

func (Nop) Emit(Kind, model.SourceLoc, ...any) {}

// Collector is an in-memory Sink that records every call, in order.
// The demo command and the test suite use it to assert on emitted
// diagnostics without depending on a host compiler's renderer.
type Collector struct {
	Entries []Entry
}

// Entry is one recorded diagnostic call.
type Entry struct {
	Kind Kind
	Loc  model.SourceLoc
	Args []any
}

func (c *Collector) Emit(kind Kind, loc model.SourceLoc, args ...any) {
	c.Entries = append(c.Entries, Entry{Kind: kind, Loc: loc, Args: args})
}

// Has reports whether any recorded entry has the given kind.
func (c *Collector) Has(kind Kind) bool {
	for _, e := range c.Entries {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Count returns how many entries were recorded for the given kind.
func (c *Collector) Count(kind Kind) int {
	n := 0
	for _, e := range c.Entries {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
