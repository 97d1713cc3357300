package pa

import (
	"github.com/vidiask/swift/model"
	"github.com/vidiask/swift/source"
)

// Arena owns every PA and EquivalenceClass created for one builder.
// It is not safe for concurrent use (single-threaded, non-reentrant);
// the builder guarantees exclusive, sequential access.
type Arena struct {
	nodes    []*PA
	ufRank   []int
	classes  map[model.PAID]*EquivalenceClass
	byParam  map[model.GenericParamKey]model.PAID
	srcArena *source.Arena
}

// NewArena allocates an empty potential-archetype arena, wired to the
// given requirement-source arena for the facts PAs will carry.
func NewArena(srcArena *source.Arena) *Arena {
	return &Arena{
		classes:  make(map[model.PAID]*EquivalenceClass),
		byParam:  make(map[model.GenericParamKey]model.PAID),
		srcArena: srcArena,
	}
}

func (a *Arena) alloc(p *PA) model.PAID {
	id := model.PAID(len(a.nodes))
	p.id = id
	p.ufParent = id
	a.nodes = append(a.nodes, p)
	a.ufRank = append(a.ufRank, 0)
	return id
}

// Get returns the PA stored at id. Callers must only pass IDs this arena
// minted; out-of-range access is a programmer error, not user error, and
// panics.
func (a *Arena) Get(id model.PAID) *PA {
	return a.nodes[id]
}

// Len reports how many PAs have been created.
func (a *Arena) Len() int { return len(a.nodes) }

// AllPAIDs returns every PA ID the arena has minted, in creation order.
// Used by finalize/canon to walk the whole forest rather than just the
// representatives that already own a class.
func (a *Arena) AllPAIDs() []model.PAID {
	out := make([]model.PAID, len(a.nodes))
	for i := range a.nodes {
		out[i] = model.PAID(i)
	}
	return out
}

// Representatives returns the representative PA of every equivalence
// class currently allocated, in an arbitrary but stable-for-this-call
// order (callers that need canonical order sort the result themselves).
func (a *Arena) Representatives() []model.PAID {
	out := make([]model.PAID, 0, len(a.classes))
	for rep := range a.classes {
		out = append(out, rep)
	}
	return out
}

// AddGenericParameter creates (or returns the existing) root PA bound to
// key. Neither the arena nor builder.Builder enforces monotonically
// increasing keys; the arena does guarantee idempotence for a repeated
// key.
func (a *Arena) AddGenericParameter(key model.GenericParamKey) model.PAID {
	if id, ok := a.byParam[key]; ok {
		return id
	}
	id := a.alloc(&PA{isRoot: true, paramKey: key, parent: model.InvalidPAID})
	a.byParam[key] = id
	return id
}

// LookupGenericParameter returns the PA for an already-added generic
// parameter key.
func (a *Arena) LookupGenericParameter(key model.GenericParamKey) (model.PAID, bool) {
	id, ok := a.byParam[key]
	return id, ok
}

// NewNestedChild allocates a fresh, unresolved nested PA named name under
// parent, without consulting or deduplicating against existing children
// — the AddIfMissing/AddIfBetterAnchor callers decide when to call this;
// a plain ResolveExisting lookup should use Children(name) instead.
func (a *Arena) NewNestedChild(parent model.PAID, name string) model.PAID {
	id := a.alloc(&PA{parent: parent, nestedName: name})
	p := a.nodes[parent]
	if p.children == nil {
		p.children = make(map[string][]model.PAID)
	}
	p.children[name] = append(p.children[name], id)
	return id
}

// Representative returns id's union-find representative, performing full
// path compression on the way.
func (a *Arena) Representative(id model.PAID) model.PAID {
	root := id
	for a.nodes[root].ufParent != root {
		root = a.nodes[root].ufParent
	}
	// Path compression: repoint every node on the walked chain directly
	// at root.
	for a.nodes[id].ufParent != root {
		next := a.nodes[id].ufParent
		a.nodes[id].ufParent = root
		id = next
	}
	return root
}

// EquivalenceClass returns id's class, lazily allocating one on its
// representative if this is the first non-trivial fact recorded about it.
func (a *Arena) EquivalenceClass(id model.PAID) *EquivalenceClass {
	rep := a.Representative(id)
	if c, ok := a.classes[rep]; ok {
		return c
	}
	c := newEquivalenceClass(rep)
	a.classes[rep] = c
	return c
}

// HasEquivalenceClass reports whether id's representative already owns a
// class, without allocating one.
func (a *Arena) HasEquivalenceClass(id model.PAID) bool {
	_, ok := a.classes[a.Representative(id)]
	return ok
}

// Union merges the classes of a and b, choosing the representative by
// CanonicalOrder (lower wins), and returns the surviving representative.
// If a and b are already in the same class, Union is a no-op and returns
// the shared representative.
//
// Union only performs the union-find splice and member-list merge; all
// of the per-fact merging (conformances, same-type, concrete, superclass,
// layout, recursive same-type-on-nesteds) is orchestrated by the solver
// package, which calls Union first and then reconciles the two
// EquivalenceClass values it gets back.
func (a *Arena) Union(x, y model.PAID) (survivor model.PAID, loser model.PAID, merged bool) {
	rx, ry := a.Representative(x), a.Representative(y)
	if rx == ry {
		return rx, model.InvalidPAID, false
	}
	if a.less(ry, rx) {
		rx, ry = ry, rx
	}
	// rx is now the canonically-least representative and survives.
	a.nodes[ry].ufParent = rx
	survivorClass := a.EquivalenceClass(rx)
	loserClass, hadLoserClass := a.classes[ry]
	if hadLoserClass {
		survivorClass.members = append(survivorClass.members, loserClass.members...)
		delete(a.classes, ry)
	} else {
		survivorClass.members = append(survivorClass.members, ry)
	}
	return rx, ry, true
}

func (a *Arena) less(x, y model.PAID) bool {
	return CanonicalOrder(a, x, y)
}

// --- source.Host / source.Substituter adapter -----------------------------
//
// Arena satisfies source.Host and source.Substituter directly so that
// derive/finalize can replay a Source's Walk without importing pa (which
// would cycle back through pa's own dependency on source.Source values).

// IsNestedAncestor reports whether ancestor appears on descendant's
// nested-parent chain (descendant itself included). It does not compare
// equivalence classes; the same-type self-derivation check does that
// separately.
func (a *Arena) IsNestedAncestor(ancestor, descendant model.PAID) bool {
	for cur := descendant; ; {
		if cur == ancestor {
			return true
		}
		node := a.nodes[cur]
		if node.isRoot {
			return false
		}
		cur = node.parent
	}
}

// IsConcrete reports whether id's class already carries a concrete-type
// binding.
func (a *Arena) IsConcrete(id model.PAID) bool {
	if !a.HasEquivalenceClass(id) {
		return false
	}
	_, _, ok := a.EquivalenceClass(id).ConcreteType()
	return ok
}

// NestedChild implements source.Substituter by looking up (never
// creating) the child of parent already resolved to assoc.
func (a *Arena) NestedChild(parent model.PAID, assoc model.AssocTypeDecl) (model.PAID, bool) {
	p := a.nodes[parent]
	for _, child := range p.children[assoc.Name()] {
		if a.nodes[child].resolvedAssoc == assoc {
			return child, true
		}
	}
	// Fall back to any same-named child (unresolved or alias-resolved);
	// Walk is a best-effort replay over already-discovered structure.
	if children := p.children[assoc.Name()]; len(children) > 0 {
		return children[0], true
	}
	return model.InvalidPAID, false
}

// ResolveMember implements source.Substituter for the common case of a
// single-level dependent member (the overwhelming majority of requirement
// subjects): it asks the caller-held resolver nothing and instead expects
// member to already have been mapped to a nested PA name by the solver
// when it built the Source chain; decomposition is provided via the
// nested package's richer substituter (solver wires that one in instead
// when actually solving). As a pure post-hoc replay fallback it returns
// base unchanged when member is nil (Self), and otherwise fails closed
// (ok=false) so callers (IsSelfDerived*, Walk in diagnostics) treat it
// conservatively rather than guessing.
func (a *Arena) ResolveMember(base model.PAID, member model.TypeRepr) (model.PAID, bool) {
	if member == nil {
		return base, true
	}
	return model.InvalidPAID, false
}

// ArchetypeRef builds the canonical-path name of id: its root generic
// parameter key and the chain of nested member names from the root down
// to id, using the current nested name so a typo-corrected PA reports its
// corrected name. Used by canon to emit a self-contained GenericSignature that
// outlives the arena that produced it.
func (a *Arena) ArchetypeRef(id model.PAID) model.ArchetypeRef {
	var path []string
	cur := id
	for !a.nodes[cur].isRoot {
		path = append([]string{a.nodes[cur].nestedName}, path...)
		cur = a.nodes[cur].parent
	}
	return model.ArchetypeRef{Root: a.nodes[cur].paramKey, Path: path}
}
