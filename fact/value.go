package fact

// Value is an opaque constant tensor value. The analyser never inspects a
// Value's contents directly: it only compares values for byte-exact equality
// and reads back the datum type and shape the value was produced with (spec
// §1, "tensor-value storage and arithmetic" is an external collaborator;
// spec §3, "If a value fact is Only(v), the shape and datum-type facts on the
// same edge are forced to be consistent with v").
//
// A concrete Value implementation (array storage, arithmetic, formatting)
// lives outside this package; BytesValue below is a minimal implementation
// sufficient for tests, examples, and the built-in operators in package op.
type Value interface {
	// Equal reports whether this value is byte-for-byte identical to other.
	// Implementations should return false (not panic) when other is a
	// different concrete type.
	Equal(other Value) bool

	// DatumType reports the element type this value was produced with.
	DatumType() DType

	// Shape reports the concrete shape this value was produced with.
	Shape() []int64
}

// BytesValue is a minimal Value backed by a flat byte buffer plus the datum
// type and shape it was produced with. It never interprets the bytes.
type BytesValue struct {
	Bytes []byte
	Type  DType
	Dims  []int64
}

// Equal implements Value.
func (b BytesValue) Equal(other Value) bool {
	o, ok := other.(BytesValue)
	if !ok {
		return false
	}
	if b.Type != o.Type || len(b.Bytes) != len(o.Bytes) || len(b.Dims) != len(o.Dims) {
		return false
	}
	for i := range b.Dims {
		if b.Dims[i] != o.Dims[i] {
			return false
		}
	}
	for i := range b.Bytes {
		if b.Bytes[i] != o.Bytes[i] {
			return false
		}
	}
	return true
}

// DatumType implements Value.
func (b BytesValue) DatumType() DType { return b.Type }

// Shape implements Value.
func (b BytesValue) Shape() []int64 { return b.Dims }

// TensorOf builds the Tensor fact implied by a concrete Value: Only(v) for
// all three components, so that hinting or folding a value automatically
// tightens the type and shape facts it is consistent with.
func TensorOf(v Value) Tensor {
	dims := make([]DimFact, len(v.Shape()))
	for i, n := range v.Shape() {
		dims[i] = OnlyDim(n)
	}
	return Tensor{
		Type:  OnlyType(v.DatumType()),
		Shape: ClosedShape(dims...),
		Value: OnlyValue(v),
	}
}
