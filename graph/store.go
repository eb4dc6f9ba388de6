// File: store.go
// Role: the Graph Store's construction and adjacency bookkeeping (spec §4.2).
package graph

import (
	"fmt"

	"github.com/nnir/tensorplan/fact"
)

// Graph is the analyser's node/edge store: an index-addressable node list,
// an edge list with forward and backward adjacency, and a topological
// execution plan over the transitive predecessors of output.
//
// A Graph is not safe for concurrent use; per spec §5 the analyser that
// owns one runs single-threaded and cooperative.
type Graph struct {
	nodes     []Node
	edges     []Edge
	prevEdges [][]EdgeID
	nextEdges [][]EdgeID
	output    NodeID
	plan      []NodeID
}

// New builds a Graph from a node list and a designated output node. Every
// node's Inputs are turned into an edge linking producer to consumer, a
// synthetic edge with ToNode == nil is appended to carry the graph's output
// fact, and the execution plan is computed immediately (spec §4.2,
// "Construction").
//
// node.ID must equal its index in nodes; New returns ErrDuplicateID
// otherwise. An input whose Producer is out of range, or an output id out
// of range, returns ErrUnknownNode. A cycle among output's transitive
// predecessors returns ErrCycle.
func New(nodes []Node, output NodeID) (*Graph, error) {
	for i, n := range nodes {
		if int(n.ID) != i {
			return nil, fmt.Errorf("%w: node %q has id %d at index %d", ErrDuplicateID, n.Name, n.ID, i)
		}
	}
	if int(output) < 0 || int(output) >= len(nodes) {
		return nil, fmt.Errorf("%w: output %d", ErrUnknownNode, output)
	}

	prevEdges := make([][]EdgeID, len(nodes))
	nextEdges := make([][]EdgeID, len(nodes))
	var edges []Edge

	for _, n := range nodes {
		for _, in := range n.Inputs {
			if int(in.Producer) < 0 || int(in.Producer) >= len(nodes) {
				return nil, fmt.Errorf("%w: node %q input producer %d", ErrUnknownNode, n.Name, in.Producer)
			}
			from := in.Producer
			to := n.ID
			id := EdgeID(len(edges))
			edges = append(edges, Edge{ID: id, FromNode: &from, FromOut: in.Slot, ToNode: &to, Fact: fact.Unknown()})
			prevEdges[n.ID] = append(prevEdges[n.ID], id)
			nextEdges[from] = append(nextEdges[from], id)
		}
	}

	outID := EdgeID(len(edges))
	from := output
	edges = append(edges, Edge{ID: outID, FromNode: &from, FromOut: 0, ToNode: nil, Fact: fact.Unknown()})
	nextEdges[output] = append(nextEdges[output], outID)

	g := &Graph{nodes: nodes, edges: edges, prevEdges: prevEdges, nextEdges: nextEdges, output: output}
	if err := g.ResetPlan(); err != nil {
		return nil, err
	}
	return g, nil
}

// Nodes returns the graph's nodes, indexed by NodeID.
func (g *Graph) Nodes() []Node { return g.nodes }

// Node returns the node with the given id.
func (g *Graph) Node(id NodeID) Node { return g.nodes[id] }

// Edges returns the graph's edges, indexed by EdgeID.
func (g *Graph) Edges() []Edge { return g.edges }

// Edge returns the edge with the given id.
func (g *Graph) Edge(id EdgeID) Edge { return g.edges[id] }

// Output returns the id of the graph's designated output node.
func (g *Graph) Output() NodeID { return g.output }

// Plan returns the current topological execution plan: the transitive
// predecessors of Output, leaves first, output last.
func (g *Graph) Plan() []NodeID { return g.plan }

// PrevEdges returns the ids of edges consumed by node id, in input order.
func (g *Graph) PrevEdges(id NodeID) []EdgeID { return g.prevEdges[id] }

// NextEdges returns the ids of edges produced by node id.
func (g *Graph) NextEdges(id NodeID) []EdgeID { return g.nextEdges[id] }

// SetEdgeFact overwrites edge id's fact directly. Callers that need to
// unify rather than overwrite should compute the merge themselves (via
// fact.Unify) and pass the result here, or use Hint for a node's outputs.
func (g *Graph) SetEdgeFact(id EdgeID, f fact.Tensor) {
	g.edges[id].Fact = f
}

// Hint unifies fact into every edge produced by node id, returning the
// first unification error encountered, if any (spec §4.2, "Hint").
func (g *Graph) Hint(id NodeID, f fact.Tensor) error {
	for _, eid := range g.nextEdges[id] {
		merged, err := fact.Unify(g.edges[eid].Fact, f)
		if err != nil {
			return fmt.Errorf("hint node %d: %w", id, err)
		}
		g.edges[eid].Fact = merged
	}
	return nil
}
