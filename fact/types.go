package fact

import "fmt"

// DType enumerates the closed set of primitive tensor element types a
// datum-type fact may name. Zero value DTypeUnspecified is never stored in an
// Only(t) fact — it exists so a DType can be a map/slice zero value without
// aliasing a real type.
type DType uint8

// Primitive tensor element types, per spec §3 ("Datum type fact").
const (
	DTypeUnspecified DType = iota
	F16
	F32
	F64
	I8
	I16
	I32
	I64
	U8
	U16
	U32
	U64
	Bool
	String
)

func (d DType) String() string {
	switch d {
	case F16:
		return "f16"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case I8:
		return "i8"
	case I16:
		return "i16"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case U8:
		return "u8"
	case U16:
		return "u16"
	case U32:
		return "u32"
	case U64:
		return "u64"
	case Bool:
		return "bool"
	case String:
		return "string"
	default:
		return "unspecified"
	}
}

// TypeFact is the datum-type component of a Tensor fact: either AnyType (⊤)
// or a concrete Only(t).
type TypeFact struct {
	known bool
	typ   DType
}

// AnyType is the top element of the datum-type lattice: complete ignorance.
var AnyType = TypeFact{}

// OnlyType returns the datum-type fact naming exactly t.
func OnlyType(t DType) TypeFact { return TypeFact{known: true, typ: t} }

// IsAny reports whether this fact carries no information.
func (t TypeFact) IsAny() bool { return !t.known }

// Type returns the concrete type and true, or (DTypeUnspecified, false) if t is AnyType.
func (t TypeFact) Type() (DType, bool) { return t.typ, t.known }

func (t TypeFact) String() string {
	if !t.known {
		return "Any"
	}
	return t.typ.String()
}

// DimFact is a single dimension of a shape: AnyDim (⊤) or a concrete Only(n).
//
// A non-negative integer is the only concrete dimension this package
// represents; symbolic/algebraic dimension expressions (spec §3, parenthetical)
// are left to a future extension and are out of scope here.
type DimFact struct {
	known bool
	size  int64
}

// AnyDim is the top element of the dimension lattice.
var AnyDim = DimFact{}

// OnlyDim returns the dimension fact naming exactly n. n must be non-negative;
// callers constructing facts from untrusted input should validate separately.
func OnlyDim(n int64) DimFact { return DimFact{known: true, size: n} }

// IsAny reports whether this dimension carries no information.
func (d DimFact) IsAny() bool { return !d.known }

// Size returns the concrete size and true, or (0, false) if d is AnyDim.
func (d DimFact) Size() (int64, bool) { return d.size, d.known }

func (d DimFact) String() string {
	if !d.known {
		return "?"
	}
	return fmt.Sprintf("%d", d.size)
}

// ShapeFact is an ordered sequence of DimFact values together with an Open
// flag. A closed shape fixes the rank; an open shape is a prefix that any
// extension may satisfy (spec §3, "Shape fact").
type ShapeFact struct {
	Dims []DimFact
	Open bool
}

// AnyShape is the open, zero-length shape: it constrains nothing.
func AnyShape() ShapeFact { return ShapeFact{Open: true} }

// ClosedShape builds a closed (rank-fixing) shape from the given dimensions.
func ClosedShape(dims ...DimFact) ShapeFact { return ShapeFact{Dims: append([]DimFact(nil), dims...)} }

// OpenShape builds an open (prefix) shape from the given dimensions.
func OpenShape(dims ...DimFact) ShapeFact {
	return ShapeFact{Dims: append([]DimFact(nil), dims...), Open: true}
}

// Rank returns the number of known-position dimensions. For an open shape
// this is a lower bound on the true rank, not the rank itself.
func (s ShapeFact) Rank() int { return len(s.Dims) }

func (s ShapeFact) String() string {
	out := "["
	for i, d := range s.Dims {
		if i > 0 {
			out += ","
		}
		out += d.String()
	}
	out += "]"
	if s.Open {
		out += "+"
	}
	return out
}

// ValueFact is the value component of a Tensor fact: AnyValue (⊤) or a
// concrete Only(v). v is treated opaquely by this package except for
// byte-exact equality (spec §3, "Value fact").
type ValueFact struct {
	known bool
	value Value
}

// AnyValue is the top element of the value lattice.
var AnyValue = ValueFact{}

// OnlyValue returns the value fact naming exactly v. v must not be nil.
func OnlyValue(v Value) ValueFact { return ValueFact{known: true, value: v} }

// IsAny reports whether this fact carries no information.
func (v ValueFact) IsAny() bool { return !v.known }

// Get returns the concrete value and true, or (nil, false) if v is AnyValue.
func (v ValueFact) Get() (Value, bool) { return v.value, v.known }

func (v ValueFact) String() string {
	if !v.known {
		return "Any"
	}
	return fmt.Sprintf("%v", v.value)
}

// Tensor is the triple (datum type, shape, value) attached to a graph edge.
type Tensor struct {
	Type  TypeFact
	Shape ShapeFact
	Value ValueFact
}

// Unknown is the top element of the tensor lattice: Any in every component.
func Unknown() Tensor { return Tensor{Type: AnyType, Shape: AnyShape(), Value: AnyValue} }

func (t Tensor) String() string {
	return fmt.Sprintf("Tensor{type:%s shape:%s value:%s}", t.Type, t.Shape, t.Value)
}

// Equal reports whether two tensor facts carry identical information. It is
// a structural comparison, not a unification — two facts can be Equal only
// when unifying them would leave both unchanged.
func (t Tensor) Equal(o Tensor) bool {
	if t.Type != o.Type {
		return false
	}
	if t.Shape.Open != o.Shape.Open || len(t.Shape.Dims) != len(o.Shape.Dims) {
		return false
	}
	for i := range t.Shape.Dims {
		if t.Shape.Dims[i] != o.Shape.Dims[i] {
			return false
		}
	}
	if t.Value.known != o.Value.known {
		return false
	}
	if t.Value.known && !t.Value.value.Equal(o.Value.value) {
		return false
	}
	return true
}
