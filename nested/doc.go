// SPDX-License-Identifier: MIT

// Package nested implements nested-type discovery: resolving
// a name, an associated-type declaration, or a type-alias declaration to
// a child potential archetype under some parent, including the anchor
// discovery that scans a representative's conformances for candidate
// associated types and type aliases the first time a name is asked for.
package nested
