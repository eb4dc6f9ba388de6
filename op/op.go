package op

import "github.com/nnir/tensorplan/fact"

// Op is the transfer-function contract every graph node's operator
// satisfies (spec §4.3). The propagation engine never inspects an
// operator's internals; it only calls these five methods.
type Op interface {
	// Name identifies the operator kind, e.g. "Add" or "Placeholder". Used
	// in diagnostics and in Model/Node wire representations.
	Name() string

	// IsStatelessEvaluator reports whether Eval can compute a concrete
	// output purely from concrete inputs, with no side state. Operators
	// that cannot (e.g. Placeholder) return false.
	IsStatelessEvaluator() bool

	// InferForward proposes an output fact from the current input facts.
	// ok is false when the operator has nothing more specific to say than
	// the engine already has (not an error: just "no progress"). An error
	// return means the inputs are contradictory for this operator.
	InferForward(inputs []fact.Tensor) (out fact.Tensor, ok bool, err error)

	// InferBackward proposes input facts from the current output fact. The
	// returned slice, when ok, has exactly len(inputs) entries; entries the
	// operator has nothing to say about are fact.Unknown().
	InferBackward(output fact.Tensor, inputs []fact.Tensor) (proposed []fact.Tensor, ok bool, err error)

	// Eval computes a concrete output from concrete inputs. Only called
	// when every input is concrete and IsStatelessEvaluator is true.
	Eval(inputs []fact.Value) (fact.Value, error)
}
