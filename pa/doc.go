// SPDX-License-Identifier: MIT

// Package pa implements the potential-archetype graph: a rooted forest of
// nodes under a union-find equivalence relation.
//
// A PA is either a root bound to a generic parameter key, or a nested PA
// hanging off a parent PA by name, optionally resolved to a specific
// associated-type or type-alias declaration. All PAs and equivalence
// classes for one builder live in a single Arena, addressed by stable
// model.PAID indices rather than Go pointers — this sidesteps the cyclic
// ownership a PA's equivalence class would otherwise need (it holds
// every member PA, so pointer ownership would be circular) by letting
// the arena be the sole owner and every cross-reference an index into
// it.
package pa
