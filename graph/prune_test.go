package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nnir/tensorplan/graph"
	"github.com/nnir/tensorplan/op"
)

func TestPruneUnusedRemovesDeadNodesAndRemapsIDs(t *testing.T) {
	t.Parallel()

	// 0: Placeholder (dead, only feeds 1), 1: Identity consuming 0 (dead end,
	// unused), 2: Placeholder (live, feeds output), 3: Identity consuming 2
	// (output).
	nodes := []graph.Node{
		{ID: 0, Name: "x0", OpName: "Placeholder", Op: op.Placeholder{}},
		{ID: 1, Name: "dead", OpName: "Identity", Op: op.Identity{}, Inputs: []graph.Input{{Producer: 0}}},
		{ID: 2, Name: "x1", OpName: "Placeholder", Op: op.Placeholder{}},
		{ID: 3, Name: "y", OpName: "Identity", Op: op.Identity{}, Inputs: []graph.Input{{Producer: 2}}},
	}

	g, err := graph.New(nodes, 3)
	require.NoError(t, err)

	nodeMapping, edgeMapping := g.PruneUnused()

	require.Len(t, nodeMapping, 4)
	assert.Nil(t, nodeMapping[1], "dead node should have no mapping")
	require.Nil(t, nodeMapping[0])
	require.NotNil(t, nodeMapping[2])
	require.NotNil(t, nodeMapping[3])

	assert.Equal(t, 2, len(g.Nodes()))
	assert.Equal(t, g.Output(), *nodeMapping[3])

	survivor := g.Node(*nodeMapping[3])
	require.Len(t, survivor.Inputs, 1)
	assert.Equal(t, *nodeMapping[2], survivor.Inputs[0].Producer)

	require.NotEmpty(t, edgeMapping)
}
