package pa

import "github.com/vidiask/swift/model"

const (
	resolutionUnresolved = iota
	resolutionAssocType
	resolutionAlias
)

func resolutionRank(p *PA) int {
	switch {
	case p.resolvedAlias != nil:
		return resolutionAlias
	case p.resolvedAssoc != nil:
		return resolutionAssocType
	default:
		return resolutionUnresolved
	}
}

// CanonicalOrder implements the total order used to pick a class's
// representative and archetype anchor: generic parameters sort before
// nested PAs and among themselves by key; among nested PAs, concrete-bound
// PAs sort after non-concrete, then lexicographically by (parent-order,
// nested-name, resolution kind with type-aliases after associated types,
// resolved-assoc-type-order or type-alias-order, renamed-status,
// original-name, id). Equal only on identity. It reports whether x sorts
// strictly before y.
//
// The final tiebreak (renamed-status, original name, then id) is an admittedly
// arbitrary stabilizer rather than a semantically meaningful rule; it
// only needs to make the order total and deterministic for a given
// construction sequence.
func CanonicalOrder(a *Arena, x, y model.PAID) bool {
	if x == y {
		return false
	}
	px, py := a.nodes[x], a.nodes[y]

	if px.isRoot != py.isRoot {
		return px.isRoot
	}
	if px.isRoot {
		return px.paramKey.Less(py.paramKey)
	}

	if cx, cy := a.IsConcrete(x), a.IsConcrete(y); cx != cy {
		return !cx
	}

	if px.parent != py.parent {
		return CanonicalOrder(a, px.parent, py.parent)
	}
	if px.nestedName != py.nestedName {
		return px.nestedName < py.nestedName
	}

	if rx, ry := resolutionRank(px), resolutionRank(py); rx != ry {
		return rx < ry
	}
	switch resolutionRank(px) {
	case resolutionAssocType:
		if ox, oy := px.resolvedAssoc.Ordinal(), py.resolvedAssoc.Ordinal(); ox != oy {
			return ox < oy
		}
	case resolutionAlias:
		if ox, oy := px.resolvedAlias.Ordinal(), py.resolvedAlias.Ordinal(); ox != oy {
			return ox < oy
		}
	}

	if px.renamed != py.renamed {
		return !px.renamed
	}
	if px.originalName != py.originalName {
		return px.originalName < py.originalName
	}
	return px.id < py.id
}

// Less reports CanonicalOrder(a, x, y); a thin receiver-style wrapper for
// callers (sort.Slice) that prefer method syntax.
func (a *Arena) Less(x, y model.PAID) bool { return CanonicalOrder(a, x, y) }
