// File: prune.go
// Role: dead-subgraph pruning, one of the two Graph Transforms (spec §4.5).
// Nodes that are not transitive predecessors of the output — as determined
// by the current execution plan — are removed, and every remaining id is
// shifted down to close the gap, preserving the "node id equals index"
// invariant store.go relies on.
package graph

// PruneUnused removes every node not reachable backward from Output and
// remaps the existing plan through the new ids. It returns, for every original node and edge id, the
// new id it was remapped to, or nil if that node or edge was removed.
//
// A node surviving pruning only ever references producers that also
// survive, since survival means "transitive predecessor of output" and a
// live node's own inputs are themselves transitive predecessors of output.
// Output itself is always a transitive predecessor of itself, so it always
// survives. PruneUnused cannot fail: New already established the graph is
// acyclic, and nothing between construction and a prune can reintroduce a
// cycle, since only Hint and SetEdgeFact mutate a Graph in place and they
// touch edge facts, never edges or inputs.
func (g *Graph) PruneUnused() (nodeMapping []*NodeID, edgeMapping []*EdgeID) {
	// Plan is already current: New and any prior PruneUnused both leave it
	// freshly computed, and nothing else mutates the edge set in between.
	live := make([]bool, len(g.nodes))
	for _, id := range g.plan {
		live[id] = true
	}

	nodeMapping = make([]*NodeID, len(g.nodes))
	newNodes := make([]Node, 0, len(g.plan))
	for i, n := range g.nodes {
		if !live[i] {
			continue
		}
		newID := NodeID(len(newNodes))
		nodeMapping[i] = &newID

		n.ID = newID
		for j := range n.Inputs {
			n.Inputs[j].Producer = *nodeMapping[n.Inputs[j].Producer]
		}
		newNodes = append(newNodes, n)
	}

	edgeMapping = make([]*EdgeID, len(g.edges))
	newEdges := make([]Edge, 0, len(g.edges))
	newPrev := make([][]EdgeID, len(newNodes))
	newNext := make([][]EdgeID, len(newNodes))

	for i, e := range g.edges {
		var from, to *NodeID
		if e.FromNode != nil {
			from = nodeMapping[*e.FromNode]
			if from == nil {
				continue
			}
		}
		if e.ToNode != nil {
			to = nodeMapping[*e.ToNode]
			if to == nil {
				continue
			}
		}

		newID := EdgeID(len(newEdges))
		edgeMapping[i] = &newID
		newEdges = append(newEdges, Edge{ID: newID, FromNode: from, FromOut: e.FromOut, ToNode: to, Fact: e.Fact})
		if to != nil {
			newPrev[*to] = append(newPrev[*to], newID)
		}
		if from != nil {
			newNext[*from] = append(newNext[*from], newID)
		}
	}

	newPlan := make([]NodeID, len(g.plan))
	for i, id := range g.plan {
		newPlan[i] = *nodeMapping[id]
	}

	g.nodes = newNodes
	g.edges = newEdges
	g.prevEdges = newPrev
	g.nextEdges = newNext
	g.output = *nodeMapping[g.output]
	g.plan = newPlan

	return nodeMapping, edgeMapping
}
