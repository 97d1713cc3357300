// Package canon performs the generic signature builder's final pass:
// walking every equivalence class in canonical order and emitting the
// minimal requirement list a GenericSignature is made of. It assumes
// finalize has already run (derived-vs-explicit filtering, recursion
// detection, and per-class derived-component computation all need to
// have happened first) and does no further mutation of the arena.
package canon
