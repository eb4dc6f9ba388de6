package op

import "github.com/nnir/tensorplan/fact"

// Placeholder marks a graph input: it has no inputs of its own and
// contributes no inference in either direction. DetectInputs (package
// graph) recognizes nodes whose OpName equals the placeholder name it is
// given, which is this Name in config.Default.
type Placeholder struct{}

func (Placeholder) Name() string { return "Placeholder" }
func (Placeholder) IsStatelessEvaluator() bool { return false }
func (Placeholder) Eval([]fact.Value) (fact.Value, error) { return nil, ErrNotEvaluable }

func (Placeholder) InferForward(inputs []fact.Tensor) (fact.Tensor, bool, error) {
	if len(inputs) != 0 {
		return fact.Tensor{}, false, ErrWrongArity
	}
	return fact.Unknown(), false, nil
}

func (Placeholder) InferBackward(_ fact.Tensor, inputs []fact.Tensor) ([]fact.Tensor, bool, error) {
	if len(inputs) != 0 {
		return nil, false, ErrWrongArity
	}
	return nil, false, nil
}

// Identity passes its single input through to its single output unchanged,
// in both directions: the strongest possible transfer function, useful as a
// baseline and in tests of the propagation engine.
type Identity struct{}

func (Identity) Name() string { return "Identity" }
func (Identity) IsStatelessEvaluator() bool { return true }

func (Identity) Eval(inputs []fact.Value) (fact.Value, error) {
	if len(inputs) != 1 {
		return nil, ErrWrongArity
	}
	return inputs[0], nil
}

func (Identity) InferForward(inputs []fact.Tensor) (fact.Tensor, bool, error) {
	if len(inputs) != 1 {
		return fact.Tensor{}, false, ErrWrongArity
	}
	return inputs[0], true, nil
}

func (Identity) InferBackward(output fact.Tensor, inputs []fact.Tensor) ([]fact.Tensor, bool, error) {
	if len(inputs) != 1 {
		return nil, false, ErrWrongArity
	}
	return []fact.Tensor{output}, true, nil
}
