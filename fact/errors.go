// File: errors.go
// Role: sentinel errors for the fact lattice.
//
// Error policy (mirrors lvlath/core): only package-level sentinels are
// exposed; callers branch on them via errors.Is. Unification failures wrap a
// sentinel with the two offending operands via fmt.Errorf("%w: ...").
package fact

import "errors"

var (
	// ErrTypeMismatch indicates two Only(t) datum-type facts named different types.
	ErrTypeMismatch = errors.New("fact: datum types cannot be unified")

	// ErrRankMismatch indicates two closed shapes of different rank were unified.
	ErrRankMismatch = errors.New("fact: closed shapes of different rank cannot be unified")

	// ErrDimMismatch indicates two Only(n) dimension facts disagreed at some index.
	ErrDimMismatch = errors.New("fact: dimensions cannot be unified")

	// ErrValueMismatch indicates two Only(v) value facts were not byte-equal.
	ErrValueMismatch = errors.New("fact: values cannot be unified")

	// ErrValueInconsistent indicates a value fact's own datum type or shape
	// (read back from the concrete value) could not be unified with the
	// datum-type/shape fact already carried on the same edge.
	ErrValueInconsistent = errors.New("fact: value is inconsistent with datum type or shape")
)
