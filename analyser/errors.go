package analyser

import "errors"

var (
	// ErrContradiction wraps an operator error returned from InferForward,
	// InferBackward or Eval: the inputs can never produce a consistent
	// result for that operator (spec §7, "operator contradiction").
	ErrContradiction = errors.New("analyser: operator contradiction")

	// ErrConflict wraps a fact.Unify failure encountered while hinting an
	// operator's proposed fact into the graph (spec §7, "unification
	// conflict").
	ErrConflict = errors.New("analyser: unification conflict")

	// ErrNoFixedPoint is returned by Run if propagation is still changing
	// facts after its pass budget is exhausted, which can only happen if an
	// operator's transfer functions are not actually monotone.
	ErrNoFixedPoint = errors.New("analyser: propagation did not settle within its pass budget")
)
