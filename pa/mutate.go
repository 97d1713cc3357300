package pa

import "github.com/vidiask/swift/model"

// ResolveToAssocType upgrades a nested PA's resolution to a specific
// associated-type declaration.
func (a *Arena) ResolveToAssocType(id model.PAID, assoc model.AssocTypeDecl) {
	a.nodes[id].resolvedAssoc = assoc
}

// ResolveToAlias marks a nested PA as the resolution target of a
// type-alias declaration.
func (a *Arena) ResolveToAlias(id model.PAID, alias model.TypeAliasDecl) {
	a.nodes[id].resolvedAlias = alias
}

// Rename records that id's nested name was corrected by typo matching,
// remembering the original name for diagnostics.
func (a *Arena) Rename(id model.PAID, newName string) {
	n := a.nodes[id]
	if !n.renamed {
		n.originalName = n.nestedName
		n.renamed = true
	}
	n.nestedName = newName
}

// MarkInvalid flags id as unusable after a diagnosed recursion, so
// downstream uses can be replaced with an error type.
func (a *Arena) MarkInvalid(id model.PAID) { a.nodes[id].invalid = true }

// MarkRecursiveConcrete flags id's class as having a self-referential
// concrete-type binding.
func (a *Arena) MarkRecursiveConcrete(id model.PAID) { a.nodes[id].recursiveConcrete = true }

// MarkRecursiveSuperclass flags id's class as having a self-referential
// superclass bound.
func (a *Arena) MarkRecursiveSuperclass(id model.PAID) { a.nodes[id].recursiveSuperclass = true }
