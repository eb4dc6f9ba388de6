// File: topological.go
// Role: computes the execution plan as a DFS postorder over the transitive
// predecessors of the output node, adapted from dfs/topological.go's
// White/Gray/Black visitation discipline but walking backward-adjacency
// (prevEdges) rather than core.Graph's forward neighbor lists, since the
// plan only needs to cover output's ancestors rather than the whole graph.
package graph

import "fmt"

type visitState uint8

const (
	white visitState = iota // not yet visited
	gray                    // on the current DFS stack
	black                   // fully visited
)

// ResetPlan recomputes the execution plan from the current edge set. Call
// it after any structural change to the graph (PruneUnused instead remaps
// the existing plan itself).
func (g *Graph) ResetPlan() error {
	state := make([]visitState, len(g.nodes))
	order := make([]NodeID, 0, len(g.nodes))

	var visit func(id NodeID) error
	visit = func(id NodeID) error {
		switch state[id] {
		case gray:
			return fmt.Errorf("%w: node %d", ErrCycle, id)
		case black:
			return nil
		}
		state[id] = gray
		for _, eid := range g.prevEdges[id] {
			from := g.edges[eid].FromNode
			if from == nil {
				continue
			}
			if err := visit(*from); err != nil {
				return err
			}
		}
		state[id] = black
		order = append(order, id)
		return nil
	}

	if err := visit(g.output); err != nil {
		return err
	}
	g.plan = order
	return nil
}
