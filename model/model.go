package model

import (
	"github.com/nnir/tensorplan/graph"
	"github.com/nnir/tensorplan/op"
)

// NodeSpec describes one node for Model construction, before ids have been
// assigned. Its position in the slice passed to New becomes its id.
type NodeSpec struct {
	Name   string
	OpName string
	Op     op.Op
	Inputs []graph.Input
}

// Model is a graph's node list together with a name-to-id index.
type Model struct {
	Nodes       []NodeSpec
	NodesByName map[string]int
}

// New builds a Model, assigning ids in slice order and indexing names.
func New(nodes []NodeSpec) *Model {
	byName := make(map[string]int, len(nodes))
	for i, n := range nodes {
		byName[n.Name] = i
	}
	return &Model{Nodes: nodes, NodesByName: byName}
}

// GraphNodes converts the model's node specs into graph.Node values with
// sequential ids, ready to pass to graph.New.
func (m *Model) GraphNodes() []graph.Node {
	nodes := make([]graph.Node, len(m.Nodes))
	for i, spec := range m.Nodes {
		nodes[i] = graph.Node{
			ID:     graph.NodeID(i),
			Name:   spec.Name,
			OpName: spec.OpName,
			Op:     spec.Op,
			Inputs: spec.Inputs,
		}
	}
	return nodes
}

// FromGraph rebuilds a Model from a graph's current node list, re-deriving
// the name index from scratch so it always matches post-prune ids.
func FromGraph(g *graph.Graph) *Model {
	nodes := g.Nodes()
	specs := make([]NodeSpec, len(nodes))
	byName := make(map[string]int, len(nodes))
	for i, n := range nodes {
		specs[i] = NodeSpec{Name: n.Name, OpName: n.OpName, Op: n.Op, Inputs: n.Inputs}
		byName[n.Name] = i
	}
	return &Model{Nodes: specs, NodesByName: byName}
}
