// SPDX-License-Identifier: MIT

// Package model declares the external collaborator types the generic
// signature builder reads but never owns: generic parameter keys,
// protocol/associated-type/type-alias declarations, type representations,
// conformances and modules, plus the small value types (source locations,
// layout constraints) the core needs a concrete ADT for.
//
// Everything here is either a plain value type or a narrow interface a
// host compiler implements. The builder never mutates an implementation
// of these interfaces; it only calls accessor methods on them and must
// outlive none of them (callers own their lifetime, per the module's
// concurrency model).
package model
