// SPDX-License-Identifier: MIT

// Package diag declares the Diagnostics sink interface and the fixed
// vocabulary of diagnostic kinds the builder emits. The core
// never renders diagnostic text itself — rendering, suppression policy,
// and presentation belong entirely to the host compiler's sink
// implementation; the core only calls Emit with a kind and enough
// context to describe the fact.
package diag
