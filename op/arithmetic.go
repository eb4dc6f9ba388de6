package op

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/nnir/tensorplan/fact"
)

// Add is an elementwise binary sum. It infers forward by unifying the two
// input facts with each other (same type, same shape), and infers backward
// by handing that same unified fact to each input — the broadcast-free
// simplification spec §4.3/§9 documents for single-output operators.
type Add struct{}

func (Add) Name() string { return "Add" }
func (Add) IsStatelessEvaluator() bool { return true }

func (Add) InferForward(inputs []fact.Tensor) (fact.Tensor, bool, error) {
	if len(inputs) != 2 {
		return fact.Tensor{}, false, ErrWrongArity
	}
	out, err := fact.Unify(inputs[0], inputs[1])
	if err != nil {
		return fact.Tensor{}, false, fmt.Errorf("%w: %s", ErrContradiction, err)
	}
	return out, true, nil
}

func (Add) InferBackward(output fact.Tensor, inputs []fact.Tensor) ([]fact.Tensor, bool, error) {
	if len(inputs) != 2 {
		return nil, false, ErrWrongArity
	}
	a, err := fact.Unify(output, inputs[0])
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s", ErrContradiction, err)
	}
	b, err := fact.Unify(output, inputs[1])
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s", ErrContradiction, err)
	}
	return []fact.Tensor{a, b}, true, nil
}

func (Add) Eval(inputs []fact.Value) (fact.Value, error) {
	if len(inputs) != 2 {
		return nil, ErrWrongArity
	}
	a, ok := inputs[0].(fact.BytesValue)
	b, ok2 := inputs[1].(fact.BytesValue)
	if !ok || !ok2 {
		return nil, fmt.Errorf("%w: Add only evaluates fact.BytesValue operands", ErrContradiction)
	}
	if a.Type != b.Type || len(a.Dims) != len(b.Dims) {
		return nil, fmt.Errorf("%w: mismatched operand type or rank", ErrContradiction)
	}
	for i := range a.Dims {
		if a.Dims[i] != b.Dims[i] {
			return nil, fmt.Errorf("%w: mismatched operand shape", ErrContradiction)
		}
	}

	out, err := addBytes(a.Type, a.Bytes, b.Bytes)
	if err != nil {
		return nil, err
	}
	return fact.BytesValue{Bytes: out, Type: a.Type, Dims: a.Dims}, nil
}

// addBytes adds two little-endian element buffers of the given datum type.
func addBytes(t fact.DType, a, b []byte) ([]byte, error) {
	switch t {
	case fact.F32:
		return mapElems(a, b, 4, func(x, y uint32) uint32 {
			return math.Float32bits(math.Float32frombits(x) + math.Float32frombits(y))
		}, binary.LittleEndian.Uint32, func(buf []byte, v uint32) { binary.LittleEndian.PutUint32(buf, v) })
	case fact.F64:
		return mapElems64(a, b, func(x, y uint64) uint64 {
			return math.Float64bits(math.Float64frombits(x) + math.Float64frombits(y))
		})
	case fact.I32, fact.U32:
		return mapElems(a, b, 4, func(x, y uint32) uint32 { return x + y },
			binary.LittleEndian.Uint32, func(buf []byte, v uint32) { binary.LittleEndian.PutUint32(buf, v) })
	case fact.I64, fact.U64:
		return mapElems64(a, b, func(x, y uint64) uint64 { return x + y })
	default:
		return nil, fmt.Errorf("%w: Add does not support datum type %s", ErrContradiction, t)
	}
}

func mapElems(a, b []byte, width int, f func(x, y uint32) uint32, get func([]byte) uint32, put func([]byte, uint32)) ([]byte, error) {
	if len(a) != len(b) || len(a)%width != 0 {
		return nil, fmt.Errorf("%w: element buffer length mismatch", ErrContradiction)
	}
	out := make([]byte, len(a))
	for i := 0; i < len(a); i += width {
		put(out[i:i+width], f(get(a[i:i+width]), get(b[i:i+width])))
	}
	return out, nil
}

func mapElems64(a, b []byte, f func(x, y uint64) uint64) ([]byte, error) {
	const width = 8
	if len(a) != len(b) || len(a)%width != 0 {
		return nil, fmt.Errorf("%w: element buffer length mismatch", ErrContradiction)
	}
	out := make([]byte, len(a))
	for i := 0; i < len(a); i += width {
		v := f(binary.LittleEndian.Uint64(a[i:i+width]), binary.LittleEndian.Uint64(b[i:i+width]))
		binary.LittleEndian.PutUint64(out[i:i+width], v)
	}
	return out, nil
}
