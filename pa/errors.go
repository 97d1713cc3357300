package pa

import "fmt"

// InvariantError is panicked when a caller violates an invariant the
// arena assumes holds by construction (e.g. asking a nested PA for its
// ParamKey). Fatal invariant violations like this halt execution — they
// indicate a bug, not user error. Ordinary constraint conflicts never
// produce one of these; they go through model.ConstraintResult instead.
type InvariantError struct {
	Invariant string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("pa: invariant violated: %s", e.Invariant)
}

// invariant panics with an InvariantError if cond is false.
func invariant(cond bool, what string) {
	if !cond {
		panic(&InvariantError{Invariant: what})
	}
}
