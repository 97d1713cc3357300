// Package derive thins every per-class constraint list down to the facts
// that still carry independent evidence once the whole requirement graph
// is known: a constraint whose source walk only rediscovers something the
// class already proved about itself is dropped, and a constraint whose
// source passes through a concrete-type witness is thinned to one
// surviving copy only when no other, non-concrete-derived fact proves the
// same thing.
package derive
