package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nnir/tensorplan/graph"
	"github.com/nnir/tensorplan/op"
)

// chain builds Placeholder -> Identity -> Identity, returning its nodes.
func chain(t *testing.T) []graph.Node {
	t.Helper()
	return []graph.Node{
		{ID: 0, Name: "x", OpName: "Placeholder", Op: op.Placeholder{}},
		{ID: 1, Name: "a", OpName: "Identity", Op: op.Identity{}, Inputs: []graph.Input{{Producer: 0, Slot: 0}}},
		{ID: 2, Name: "y", OpName: "Identity", Op: op.Identity{}, Inputs: []graph.Input{{Producer: 1, Slot: 0}}},
	}
}

func TestNewBuildsEdgesAndPlan(t *testing.T) {
	t.Parallel()

	g, err := graph.New(chain(t), 2)
	require.NoError(t, err)

	assert.Equal(t, []graph.NodeID{0, 1, 2}, g.Plan())
	assert.Len(t, g.NextEdges(2), 1) // synthetic output edge
	assert.Equal(t, graph.NodeID(2), g.Output())
}

func TestNewRejectsMismatchedIDs(t *testing.T) {
	t.Parallel()

	nodes := chain(t)
	nodes[1].ID = 5

	_, err := graph.New(nodes, 2)
	assert.ErrorIs(t, err, graph.ErrDuplicateID)
}

func TestNewRejectsUnknownProducer(t *testing.T) {
	t.Parallel()

	nodes := chain(t)
	nodes[1].Inputs = []graph.Input{{Producer: 9}}

	_, err := graph.New(nodes, 2)
	assert.ErrorIs(t, err, graph.ErrUnknownNode)
}

func TestNewDetectsCycle(t *testing.T) {
	t.Parallel()

	nodes := []graph.Node{
		{ID: 0, Name: "a", OpName: "Identity", Op: op.Identity{}, Inputs: []graph.Input{{Producer: 1}}},
		{ID: 1, Name: "b", OpName: "Identity", Op: op.Identity{}, Inputs: []graph.Input{{Producer: 0}}},
	}

	_, err := graph.New(nodes, 1)
	assert.ErrorIs(t, err, graph.ErrCycle)
}

func TestDetectInputsAndOutput(t *testing.T) {
	t.Parallel()

	nodes := chain(t)

	assert.Equal(t, []graph.NodeID{0}, graph.DetectInputs(nodes, "Placeholder"))

	out, err := graph.DetectOutput(nodes)
	require.NoError(t, err)
	assert.Equal(t, graph.NodeID(2), out)
}

func TestDetectOutputAmbiguous(t *testing.T) {
	t.Parallel()

	nodes := []graph.Node{
		{ID: 0, Name: "x", OpName: "Placeholder", Op: op.Placeholder{}},
		{ID: 1, Name: "a", OpName: "Identity", Op: op.Identity{}, Inputs: []graph.Input{{Producer: 0}}},
		{ID: 2, Name: "b", OpName: "Identity", Op: op.Identity{}, Inputs: []graph.Input{{Producer: 0}}},
	}

	_, err := graph.DetectOutput(nodes)
	assert.ErrorIs(t, err, graph.ErrAmbiguousOutput)
}
