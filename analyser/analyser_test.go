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

func identityChain() *model.Model {
	return model.New([]model.NodeSpec{
		{Name: "x", OpName: "Placeholder", Op: op.Placeholder{}},
		{Name: "a", OpName: "Identity", Op: op.Identity{}, Inputs: []graph.Input{{Producer: 0}}},
		{Name: "y", OpName: "Identity", Op: op.Identity{}, Inputs: []graph.Input{{Producer: 1}}},
	})
}

func TestNewConstructsOverModelOutput(t *testing.T) {
	t.Parallel()

	a, err := analyser.New(identityChain(), 2, config.Default(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, graph.NodeID(2), a.Graph().Output())
}

func TestHintSurfacesConflictAsErrConflict(t *testing.T) {
	t.Parallel()

	a, err := analyser.New(identityChain(), 2, config.Default(), nil, nil)
	require.NoError(t, err)

	require.NoError(t, a.Hint(0, fact.Tensor{Type: fact.OnlyType(fact.F32), Shape: fact.AnyShape(), Value: fact.AnyValue}))

	err = a.Hint(0, fact.Tensor{Type: fact.OnlyType(fact.F64), Shape: fact.AnyShape(), Value: fact.AnyValue})
	assert.ErrorIs(t, err, analyser.ErrConflict)
}

func TestResetPlanRecomputesOrder(t *testing.T) {
	t.Parallel()

	a, err := analyser.New(identityChain(), 2, config.Default(), nil, nil)
	require.NoError(t, err)

	require.NoError(t, a.ResetPlan())
	assert.Equal(t, []graph.NodeID{0, 1, 2}, a.Graph().Plan())
}

func TestIntoModelRebuildsNameIndexAfterPrune(t *testing.T) {
	t.Parallel()

	m := model.New([]model.NodeSpec{
		{Name: "x0", OpName: "Placeholder", Op: op.Placeholder{}},
		{Name: "dead", OpName: "Identity", Op: op.Identity{}, Inputs: []graph.Input{{Producer: 0}}},
		{Name: "x1", OpName: "Placeholder", Op: op.Placeholder{}},
		{Name: "y", OpName: "Identity", Op: op.Identity{}, Inputs: []graph.Input{{Producer: 2}}},
	})

	a, err := analyser.New(m, 3, config.Default(), nil, nil)
	require.NoError(t, err)

	a.PruneUnused(context.Background())

	out := a.IntoModel()
	assert.Equal(t, 2, len(out.Nodes))
	assert.Contains(t, out.NodesByName, "y")
	assert.NotContains(t, out.NodesByName, "dead")
}
