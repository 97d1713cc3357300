// SPDX-License-Identifier: MIT

// Package solver implements the requirement solver:
// conformance, superclass, layout, and same-type entry points, the
// generic AddRequirement dispatcher, delayed (unresolved) requirements,
// and inference from bound generic types. It is the one package that
// depends on both pa and nested, since resolving a requirement's subject
// may discover new nested types along the way.
package solver
