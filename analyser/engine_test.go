package analyser_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nnir/tensorplan/analyser"
	"github.com/nnir/tensorplan/analyser/config"
	"github.com/nnir/tensorplan/fact"
	"github.com/nnir/tensorplan/graph"
	"github.com/nnir/tensorplan/model"
	"github.com/nnir/tensorplan/op"
)

func addModel() *model.Model {
	return model.New([]model.NodeSpec{
		{Name: "x0", OpName: "Placeholder", Op: op.Placeholder{}},
		{Name: "x1", OpName: "Placeholder", Op: op.Placeholder{}},
		{Name: "sum", OpName: "Add", Op: op.Add{}, Inputs: []graph.Input{{Producer: 0}, {Producer: 1}}},
	})
}

func TestRunPropagatesForwardThroughIdentityChain(t *testing.T) {
	t.Parallel()

	a, err := analyser.New(identityChain(), 2, config.Default(), nil, nil)
	require.NoError(t, err)

	hinted := fact.Tensor{Type: fact.OnlyType(fact.F32), Shape: fact.ClosedShape(fact.OnlyDim(3)), Value: fact.AnyValue}
	require.NoError(t, a.Hint(0, hinted))

	_, err = a.Run(context.Background())
	require.NoError(t, err)

	g := a.Graph()
	outEdges := g.NextEdges(2)
	require.Len(t, outEdges, 1)
	assert.True(t, g.Edge(outEdges[0]).Fact.Equal(hinted))
}

func TestRunPropagatesBackwardFromOutputHint(t *testing.T) {
	t.Parallel()

	a, err := analyser.New(identityChain(), 2, config.Default(), nil, nil)
	require.NoError(t, err)

	hinted := fact.Tensor{Type: fact.OnlyType(fact.I64), Shape: fact.ClosedShape(fact.OnlyDim(1)), Value: fact.AnyValue}
	require.NoError(t, a.Hint(2, hinted))

	_, err = a.Run(context.Background())
	require.NoError(t, err)

	g := a.Graph()
	// node 0 (the placeholder) has no inputs, so its own facts live only on
	// its outgoing edges; node 1's incoming edge should carry the hint
	// propagated backward from the output.
	prevEdges := g.PrevEdges(1)
	require.Len(t, prevEdges, 1)
	assert.True(t, g.Edge(prevEdges[0]).Fact.Equal(hinted))
}

func TestRunSurfacesOperatorContradictionAsAnalyserError(t *testing.T) {
	t.Parallel()

	a, err := analyser.New(addModel(), 2, config.Default(), nil, nil)
	require.NoError(t, err)

	require.NoError(t, a.Hint(0, fact.Tensor{Type: fact.OnlyType(fact.F32), Shape: fact.AnyShape(), Value: fact.AnyValue}))
	require.NoError(t, a.Hint(1, fact.Tensor{Type: fact.OnlyType(fact.F64), Shape: fact.AnyShape(), Value: fact.AnyValue}))

	_, err = a.Run(context.Background())
	assert.ErrorIs(t, err, analyser.ErrContradiction)
}
