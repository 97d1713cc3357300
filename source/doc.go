// SPDX-License-Identifier: MIT

// Package source implements the requirement-source DAG: the hash-consed
// provenance record attached to every fact the generic signature builder
// learns.
//
// A Source is a node in a directed acyclic graph: root sources name where
// a fact came from with no further explanation (an explicit `where`
// clause, type inference, a protocol's own requirement signature, a
// nested-type name match); derived sources explain a fact in terms of an
// earlier one (a protocol requirement substituted into a conformance, a
// superclass or concrete-type witness, an associated-type parent link).
//
// Two constructions with the same (kind, parent, payload) profile return
// the identical pointer — callers may compare Sources with ==.
package source
