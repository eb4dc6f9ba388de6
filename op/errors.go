package op

import "errors"

var (
	// ErrContradiction is returned by InferForward, InferBackward or Eval
	// when an operator determines its inputs can never produce a consistent
	// output, independent of any unification conflict (spec §7, "operator
	// contradiction").
	ErrContradiction = errors.New("op: inputs are contradictory for this operator")

	// ErrWrongArity is returned when an operator is invoked with a number of
	// input or output tensors it does not accept.
	ErrWrongArity = errors.New("op: wrong number of operands")

	// ErrNotEvaluable is returned by Eval on an operator that does not
	// implement stateless evaluation (IsStatelessEvaluator reports false).
	ErrNotEvaluable = errors.New("op: operator is not a stateless evaluator")
)
