package pa

import (
	"sort"

	"github.com/vidiask/swift/model"
	"github.com/vidiask/swift/source"
)

// ConformanceConstraint records one recorded "subject: protocol" fact.
type ConformanceConstraint struct {
	Subject  model.PAID
	Protocol model.ProtocolDecl
	Source   *source.Source
}

// SameTypeConstraint records one recorded "left == right" fact, keyed in
// the class by its left-hand PA.
type SameTypeConstraint struct {
	Left, Right model.PAID
	Source      *source.Source
}

// ConcreteConstraint records one recorded "subject == <concrete type>" fact.
type ConcreteConstraint struct {
	Subject model.PAID
	Type    model.TypeRepr
	Source  *source.Source
}

// SuperclassConstraint records one recorded "subject : <class type>" bound.
type SuperclassConstraint struct {
	Subject model.PAID
	Type    model.TypeRepr
	Source  *source.Source
}

// LayoutConstraint records one recorded layout requirement.
type LayoutConstraint struct {
	Subject model.PAID
	Layout  model.Layout
	Source  *source.Source
}

// DerivedComponent names one connected component of a class's same-type
// graph restricted to derived edges, computed during finalization.
type DerivedComponent struct {
	Anchor       model.PAID
	ConcreteFrom *source.Source // best concrete-type source witnessing this component, if any
}

// EquivalenceClass holds every fact recorded about a set of PAs known to
// denote the same type. It is owned by the arena, keyed by the
// representative PA's ID; membership migrates to the surviving class on
// every union.
type EquivalenceClass struct {
	representative model.PAID
	members        []model.PAID

	conformances map[model.ProtocolDecl][]ConformanceConstraint
	sameType     map[model.PAID][]SameTypeConstraint

	concreteConstraints []ConcreteConstraint
	concreteType        model.TypeRepr
	concreteSource      *source.Source

	superclassConstraints []SuperclassConstraint
	superclass            model.TypeRepr
	superclassSource      *source.Source

	layoutConstraints []LayoutConstraint
	layout            model.Layout
	layoutSource      *source.Source

	components []DerivedComponent
}

func newEquivalenceClass(rep model.PAID) *EquivalenceClass {
	return &EquivalenceClass{
		representative: rep,
		members:        []model.PAID{rep},
		conformances:   make(map[model.ProtocolDecl][]ConformanceConstraint),
		sameType:       make(map[model.PAID][]SameTypeConstraint),
	}
}

// Representative returns the class's current representative PA.
func (c *EquivalenceClass) Representative() model.PAID { return c.representative }

// Members returns every PA belonging to the class, in the order they
// joined it.
func (c *EquivalenceClass) Members() []model.PAID {
	return append([]model.PAID(nil), c.members...)
}

// Protocols returns every protocol the class has a recorded conformance
// constraint for, in map order (canon sorts these canonically on emission).
func (c *EquivalenceClass) Protocols() []model.ProtocolDecl {
	out := make([]model.ProtocolDecl, 0, len(c.conformances))
	for p := range c.conformances {
		out = append(out, p)
	}
	return out
}

// Conformances returns the recorded constraints for protocol, or nil.
func (c *EquivalenceClass) Conformances(protocol model.ProtocolDecl) []ConformanceConstraint {
	return c.conformances[protocol]
}

// HasConformance reports whether protocol has at least one recorded
// constraint in this class.
func (c *EquivalenceClass) HasConformance(protocol model.ProtocolDecl) bool {
	return len(c.conformances[protocol]) > 0
}

// AddConformance appends a constraint and reports whether protocol is
// being recorded in this class for the first time: it returns true on
// first occurrence, but records the constraint either way.
func (c *EquivalenceClass) AddConformance(subject model.PAID, protocol model.ProtocolDecl, src *source.Source) (firstOccurrence bool) {
	existing := c.conformances[protocol]
	firstOccurrence = len(existing) == 0
	c.conformances[protocol] = append(existing, ConformanceConstraint{Subject: subject, Protocol: protocol, Source: src})
	return firstOccurrence
}

// SetConformances replaces the constraint list for protocol; used by the
// self-derivation filter (derive package) to drop redundant entries.
func (c *EquivalenceClass) SetConformances(protocol model.ProtocolDecl, constraints []ConformanceConstraint) {
	if len(constraints) == 0 {
		delete(c.conformances, protocol)
		return
	}
	c.conformances[protocol] = constraints
}

// SameTypeEdges returns the constraints keyed by left, or nil.
func (c *EquivalenceClass) SameTypeEdges(left model.PAID) []SameTypeConstraint {
	return c.sameType[left]
}

// AllSameTypeEdges returns every recorded same-type edge in the class, in
// a deterministic left-PA-then-insertion order.
func (c *EquivalenceClass) AllSameTypeEdges() []SameTypeConstraint {
	lefts := make([]model.PAID, 0, len(c.sameType))
	for left := range c.sameType {
		lefts = append(lefts, left)
	}
	sort.Slice(lefts, func(i, j int) bool { return lefts[i] < lefts[j] })
	var out []SameTypeConstraint
	for _, left := range lefts {
		out = append(out, c.sameType[left]...)
	}
	return out
}

// AddSameType records a same-type edge keyed by its left PA.
func (c *EquivalenceClass) AddSameType(left, right model.PAID, src *source.Source) {
	c.sameType[left] = append(c.sameType[left], SameTypeConstraint{Left: left, Right: right, Source: src})
}

// SetSameTypeEdges replaces the edge list keyed by left; used by derive's
// self-derivation filter.
func (c *EquivalenceClass) SetSameTypeEdges(left model.PAID, edges []SameTypeConstraint) {
	if len(edges) == 0 {
		delete(c.sameType, left)
		return
	}
	c.sameType[left] = edges
}

// ConcreteType returns the class's canonical concrete-type binding (the
// first one bound) and whether one has been recorded.
func (c *EquivalenceClass) ConcreteType() (model.TypeRepr, *source.Source, bool) {
	return c.concreteType, c.concreteSource, c.concreteType != nil
}

// ConcreteConstraints returns every recorded concrete-type constraint.
func (c *EquivalenceClass) ConcreteConstraints() []ConcreteConstraint {
	return append([]ConcreteConstraint(nil), c.concreteConstraints...)
}

// AddConcrete records a concrete-type constraint, adopting it as the
// canonical binding if none is set yet.
func (c *EquivalenceClass) AddConcrete(subject model.PAID, t model.TypeRepr, src *source.Source) {
	c.concreteConstraints = append(c.concreteConstraints, ConcreteConstraint{Subject: subject, Type: t, Source: src})
	if c.concreteType == nil {
		c.concreteType = t
		c.concreteSource = src
	}
}

// SetConcreteConstraints replaces the recorded list; used by derive.
func (c *EquivalenceClass) SetConcreteConstraints(cs []ConcreteConstraint) { c.concreteConstraints = cs }

// Superclass returns the class's canonical (tightest) superclass bound.
func (c *EquivalenceClass) Superclass() (model.TypeRepr, *source.Source, bool) {
	return c.superclass, c.superclassSource, c.superclass != nil
}

// SuperclassConstraints returns every recorded superclass constraint.
func (c *EquivalenceClass) SuperclassConstraints() []SuperclassConstraint {
	return append([]SuperclassConstraint(nil), c.superclassConstraints...)
}

// SetSuperclass overwrites the canonical superclass bound (tightening).
func (c *EquivalenceClass) SetSuperclass(t model.TypeRepr, src *source.Source) {
	c.superclass, c.superclassSource = t, src
}

// AddSuperclassConstraint appends a recorded constraint without changing
// the canonical bound (callers tighten separately via SetSuperclass).
func (c *EquivalenceClass) AddSuperclassConstraint(subject model.PAID, t model.TypeRepr, src *source.Source) {
	c.superclassConstraints = append(c.superclassConstraints, SuperclassConstraint{Subject: subject, Type: t, Source: src})
}

func (c *EquivalenceClass) SetSuperclassConstraints(cs []SuperclassConstraint) { c.superclassConstraints = cs }

// Layout returns the class's canonical merged layout.
func (c *EquivalenceClass) Layout() (model.Layout, *source.Source, bool) {
	return c.layout, c.layoutSource, c.layout.IsValid()
}

// LayoutConstraints returns every recorded layout constraint.
func (c *EquivalenceClass) LayoutConstraints() []LayoutConstraint {
	return append([]LayoutConstraint(nil), c.layoutConstraints...)
}

// AddLayoutConstraint appends a recorded constraint and attempts to merge
// it into the canonical layout, returning whether the merge succeeded.
func (c *EquivalenceClass) AddLayoutConstraint(subject model.PAID, l model.Layout, src *source.Source) bool {
	c.layoutConstraints = append(c.layoutConstraints, LayoutConstraint{Subject: subject, Layout: l, Source: src})
	merged, ok := model.Merge(c.layout, l)
	if !ok {
		return false
	}
	c.layout, c.layoutSource = merged, src
	return true
}

func (c *EquivalenceClass) SetLayoutConstraints(cs []LayoutConstraint) { c.layoutConstraints = cs }

// Components returns the derived same-type components computed by
// finalization.
func (c *EquivalenceClass) Components() []DerivedComponent {
	return append([]DerivedComponent(nil), c.components...)
}

// SetComponents stores the finalized component list.
func (c *EquivalenceClass) SetComponents(comps []DerivedComponent) { c.components = comps }
