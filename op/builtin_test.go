package op_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nnir/tensorplan/fact"
	"github.com/nnir/tensorplan/op"
)

func TestIdentityPassesFactsThrough(t *testing.T) {
	t.Parallel()

	in := fact.Tensor{Type: fact.OnlyType(fact.F32), Shape: fact.ClosedShape(fact.OnlyDim(2)), Value: fact.AnyValue}

	out, ok, err := op.Identity{}.InferForward([]fact.Tensor{in})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, out.Equal(in))

	back, ok, err := op.Identity{}.InferBackward(in, []fact.Tensor{fact.Unknown()})
	require.NoError(t, err)
	assert.True(t, ok)
	require.Len(t, back, 1)
	assert.True(t, back[0].Equal(in))
}

func TestPlaceholderNeverInfers(t *testing.T) {
	t.Parallel()

	_, ok, err := op.Placeholder{}.InferForward(nil)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = op.Placeholder{}.Eval(nil)
	assert.ErrorIs(t, err, op.ErrNotEvaluable)
}

func TestAddUnifiesOperandsForward(t *testing.T) {
	t.Parallel()

	a := fact.Tensor{Type: fact.OnlyType(fact.F32), Shape: fact.AnyShape(), Value: fact.AnyValue}
	b := fact.Tensor{Type: fact.AnyType, Shape: fact.ClosedShape(fact.OnlyDim(4)), Value: fact.AnyValue}

	out, ok, err := op.Add{}.InferForward([]fact.Tensor{a, b})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, fact.OnlyType(fact.F32), out.Type)
	assert.Equal(t, fact.ClosedShape(fact.OnlyDim(4)), out.Shape)
}

func TestAddEvaluatesConcreteInt32Operands(t *testing.T) {
	t.Parallel()

	a := fact.BytesValue{Bytes: []byte{1, 0, 0, 0, 2, 0, 0, 0}, Type: fact.I32, Dims: []int64{2}}
	b := fact.BytesValue{Bytes: []byte{10, 0, 0, 0, 20, 0, 0, 0}, Type: fact.I32, Dims: []int64{2}}

	got, err := op.Add{}.Eval([]fact.Value{a, b})
	require.NoError(t, err)

	want := fact.BytesValue{Bytes: []byte{11, 0, 0, 0, 22, 0, 0, 0}, Type: fact.I32, Dims: []int64{2}}
	assert.True(t, got.Equal(want))
}
