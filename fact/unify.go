// File: unify.go
// Role: the meet operation on tensor facts (spec §4.1).
//
// Determinism:
//   - Unify never mutates its arguments; the result is a fresh Tensor.
//   - Errors always name the offending component and both operands.
package fact

import "fmt"

// Unify computes the meet of two tensor facts: the most specific fact
// consistent with both. It fails if any component disagrees.
//
// Laws (spec §8): commutative, idempotent, associative (when both sides
// succeed), absorbs Any, and is monotone — a successful result is always ≤
// both operands in the lattice order.
func Unify(a, b Tensor) (Tensor, error) {
	typ, err := UnifyType(a.Type, b.Type)
	if err != nil {
		return Tensor{}, fmt.Errorf("unify datum type %s and %s: %w", a.Type, b.Type, err)
	}

	shape, err := UnifyShape(a.Shape, b.Shape)
	if err != nil {
		return Tensor{}, fmt.Errorf("unify shape %s and %s: %w", a.Shape, b.Shape, err)
	}

	value, err := UnifyValue(a.Value, b.Value)
	if err != nil {
		return Tensor{}, fmt.Errorf("unify value %s and %s: %w", a.Value, b.Value, err)
	}

	out := Tensor{Type: typ, Shape: shape, Value: value}
	if v, ok := value.Get(); ok {
		out, err = constrainByValue(out, v)
		if err != nil {
			return Tensor{}, err
		}
	}

	return out, nil
}

// UnifyType unifies two datum-type facts. Any absorbs into the other
// operand; two concrete types unify only when structurally equal.
func UnifyType(a, b TypeFact) (TypeFact, error) {
	if a.IsAny() {
		return b, nil
	}
	if b.IsAny() {
		return a, nil
	}
	if a.typ == b.typ {
		return a, nil
	}
	return TypeFact{}, ErrTypeMismatch
}

// UnifyDim unifies two dimension facts under the same Any-absorption rule.
func UnifyDim(a, b DimFact) (DimFact, error) {
	if a.IsAny() {
		return b, nil
	}
	if b.IsAny() {
		return a, nil
	}
	if a.size == b.size {
		return a, nil
	}
	return DimFact{}, ErrDimMismatch
}

// UnifyShape unifies two shape facts.
//
// If both are closed, ranks must match exactly. If one is open of length k,
// it constrains nothing past index k-1, so the longer (or either, if both
// open) shape's tail dimensions pass through unify unconstrained. The result
// is open only if both inputs are open (spec §4.1, "Shape").
func UnifyShape(a, b ShapeFact) (ShapeFact, error) {
	n := len(a.Dims)
	if len(b.Dims) > n {
		n = len(b.Dims)
	}

	if len(a.Dims) != len(b.Dims) {
		// Ranks differ: only admissible when the shorter one is open (a
		// prefix that the longer shape's extra dimensions may extend).
		if len(a.Dims) < len(b.Dims) && !a.Open {
			return ShapeFact{}, fmt.Errorf("%w (found %s and %s)", ErrRankMismatch, a, b)
		}
		if len(b.Dims) < len(a.Dims) && !b.Open {
			return ShapeFact{}, fmt.Errorf("%w (found %s and %s)", ErrRankMismatch, a, b)
		}
	} else if !a.Open && !b.Open {
		// Equal rank, both closed: fine, fall through to pointwise unify.
	}

	dims := make([]DimFact, n)
	for i := 0; i < n; i++ {
		da, hasA := dimAt(a, i)
		db, hasB := dimAt(b, i)
		switch {
		case hasA && hasB:
			d, err := UnifyDim(da, db)
			if err != nil {
				return ShapeFact{}, fmt.Errorf("%w at axis %d (found %s and %s)", ErrDimMismatch, i, da, db)
			}
			dims[i] = d
		case hasA:
			dims[i] = da
		default:
			dims[i] = db
		}
	}

	return ShapeFact{Dims: dims, Open: a.Open && b.Open}, nil
}

// dimAt returns the dimension fact at index i of a shape and whether that
// index is within the shape's fixed prefix.
func dimAt(s ShapeFact, i int) (DimFact, bool) {
	if i < len(s.Dims) {
		return s.Dims[i], true
	}
	return AnyDim, false
}

// UnifyValue unifies two value facts: Any absorbs, and two concrete values
// unify only when byte-for-byte equal (spec §4.1, "Value").
func UnifyValue(a, b ValueFact) (ValueFact, error) {
	if a.IsAny() {
		return b, nil
	}
	if b.IsAny() {
		return a, nil
	}
	if a.value.Equal(b.value) {
		return a, nil
	}
	return ValueFact{}, ErrValueMismatch
}

// constrainByValue tightens out's type and shape facts against the concrete
// value v's own datum type and shape, and fails if they disagree (spec §3:
// "the shape and datum-type facts on the same edge are forced to be
// consistent with v").
func constrainByValue(out Tensor, v Value) (Tensor, error) {
	typ, err := UnifyType(out.Type, OnlyType(v.DatumType()))
	if err != nil {
		return Tensor{}, fmt.Errorf("%w: value datum type %s disagrees with %s", ErrValueInconsistent, v.DatumType(), out.Type)
	}

	dims := make([]DimFact, len(v.Shape()))
	for i, n := range v.Shape() {
		dims[i] = OnlyDim(n)
	}
	shape, err := UnifyShape(out.Shape, ClosedShape(dims...))
	if err != nil {
		return Tensor{}, fmt.Errorf("%w: value shape %v disagrees with %s", ErrValueInconsistent, v.Shape(), out.Shape)
	}

	out.Type = typ
	out.Shape = shape
	return out, nil
}
