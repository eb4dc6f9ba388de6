// File: transforms.go
// Role: the graph transforms (spec §4.5): constant folding and
// dead-subgraph pruning, layered on the propagation primitives in
// engine.go and the structural surgery in package graph.
package analyser

import (
	"context"
	"fmt"

	"github.com/nnir/tensorplan/fact"
	"github.com/nnir/tensorplan/graph"
)

// PropagateConstants evaluates every stateless-evaluator node whose inputs
// are all concrete values, and hints the resulting value back into the
// graph as a fully-known Tensor fact. It does not rewrite the graph's
// structure — a folded node's Op is left in place, and a later run can
// still invoke it — it only tightens facts the way any other hint does, so
// it composes with Run the same way an operator's own InferForward would.
func (a *Analyser) PropagateConstants(ctx context.Context) (bool, error) {
	changedAny := false
	for _, id := range a.g.Plan() {
		n := a.g.Node(id)
		if n.Op == nil || !n.Op.IsStatelessEvaluator() {
			continue
		}

		prevEdges := a.g.PrevEdges(id)
		values := make([]fact.Value, len(prevEdges))
		concrete := true
		for i, eid := range prevEdges {
			v, ok := a.g.Edge(eid).Fact.Value.Get()
			if !ok {
				concrete = false
				break
			}
			values[i] = v
		}
		if !concrete {
			continue
		}

		result, err := n.Op.Eval(values)
		if err != nil {
			return changedAny, fmt.Errorf("%w: node %q: %s", ErrContradiction, n.Name, err)
		}

		before, err := a.outputFact(id)
		if err != nil {
			return changedAny, fmt.Errorf("%w: node %q: %s", ErrConflict, n.Name, err)
		}
		if err := a.g.Hint(id, fact.TensorOf(result)); err != nil {
			return changedAny, fmt.Errorf("%w: node %q: %s", ErrConflict, n.Name, err)
		}
		after, err := a.outputFact(id)
		if err != nil {
			return changedAny, fmt.Errorf("%w: node %q: %s", ErrConflict, n.Name, err)
		}
		if !before.Equal(after) {
			changedAny = true
			if a.log != nil {
				a.log.Debugf("folded node %q to a constant", n.Name)
			}
		}
	}
	return changedAny, nil
}

// PruneUnused removes every node that is not a transitive predecessor of
// the graph's output (spec §4.5, "dead-subgraph pruning"), returning the
// id remapping graph.Graph.PruneUnused produced. Infallible, matching
// spec §6's "Prune unused" contract: see graph.Graph.PruneUnused for why.
func (a *Analyser) PruneUnused(ctx context.Context) (nodeMapping []*graph.NodeID, edgeMapping []*graph.EdgeID) {
	nodeMapping, edgeMapping = a.g.PruneUnused()

	if a.tel != nil || a.log != nil {
		removed := 0
		for _, m := range nodeMapping {
			if m == nil {
				removed++
			}
		}
		if a.tel != nil {
			a.tel.RecordPrune(ctx, removed)
		}
		if a.log != nil {
			a.log.Infof("pruned %d unused nodes", removed)
		}
	}

	return nodeMapping, edgeMapping
}
