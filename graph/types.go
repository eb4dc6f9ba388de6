package graph

import (
	"github.com/nnir/tensorplan/fact"
	"github.com/nnir/tensorplan/op"
)

// NodeID addresses a Node by its position in a Graph's node slice.
type NodeID int

// EdgeID addresses an Edge by its position in a Graph's edge slice.
type EdgeID int

// Input names one producer of a node's operands: the Slot-th output of
// node Producer.
type Input struct {
	Producer NodeID
	Slot     int
}

// Node is one operator application in the graph (spec §3, "Node"). Its ID
// must equal its index in the slice a Graph is built from.
type Node struct {
	ID     NodeID
	Name   string
	OpName string
	Op     op.Op
	Inputs []Input
}

// Edge connects one node's output slot to another node's input (spec §3,
// "Edge"). FromNode is nil for a graph-input edge (none are produced by
// New, which only ever wires node-to-node and node-to-output edges, but the
// field exists so future construction paths can represent one). ToNode is
// nil for the single synthetic edge representing the graph's output.
type Edge struct {
	ID       EdgeID
	FromNode *NodeID
	FromOut  int
	ToNode   *NodeID
	Fact     fact.Tensor
}
