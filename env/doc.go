// SPDX-License-Identifier: MIT

// Package env bundles the arenas and external collaborators every
// higher-level component (nested, solver, derive, finalize, canon)
// needs threaded through it, so none of them has to grow its own
// constructor surface for what is really one builder's shared state.
package env
