// File: engine.go
// Role: the bidirectional fixed-point propagation engine (spec §4.4).
package analyser

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/trace"

	"github.com/nnir/tensorplan/fact"
	"github.com/nnir/tensorplan/graph"
)

// Direction names which way one propagation pass walks the plan.
type Direction uint8

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// tryStep attempts one inference step for a single node in direction dir.
// It reports whether any edge fact strictly tightened, and returns
// ErrContradiction or ErrConflict on failure.
func (a *Analyser) tryStep(dir Direction, id graph.NodeID) (bool, error) {
	n := a.g.Node(id)
	prevEdges := a.g.PrevEdges(id)
	inputs := make([]fact.Tensor, len(prevEdges))
	for i, eid := range prevEdges {
		inputs[i] = a.g.Edge(eid).Fact
	}

	switch dir {
	case Forward:
		out, ok, err := n.Op.InferForward(inputs)
		if err != nil {
			return false, fmt.Errorf("%w: node %q (%s): %s", ErrContradiction, n.Name, n.OpName, err)
		}
		if !ok {
			return false, nil
		}
		before, err := a.outputFact(id)
		if err != nil {
			return false, fmt.Errorf("%w: node %q: %s", ErrConflict, n.Name, err)
		}
		if err := a.g.Hint(id, out); err != nil {
			return false, fmt.Errorf("%w: node %q: %s", ErrConflict, n.Name, err)
		}
		after, err := a.outputFact(id)
		if err != nil {
			return false, fmt.Errorf("%w: node %q: %s", ErrConflict, n.Name, err)
		}
		return !before.Equal(after), nil

	case Backward:
		output, err := a.outputFact(id)
		if err != nil {
			return false, fmt.Errorf("%w: node %q: %s", ErrConflict, n.Name, err)
		}
		proposed, ok, err := n.Op.InferBackward(output, inputs)
		if err != nil {
			return false, fmt.Errorf("%w: node %q (%s): %s", ErrContradiction, n.Name, n.OpName, err)
		}
		if !ok {
			return false, nil
		}
		if len(proposed) != len(prevEdges) {
			return false, fmt.Errorf("%w: node %q returned %d input facts for %d inputs",
				ErrContradiction, n.Name, len(proposed), len(prevEdges))
		}

		changed := false
		for i, eid := range prevEdges {
			before := a.g.Edge(eid).Fact
			merged, err := fact.Unify(before, proposed[i])
			if err != nil {
				return changed, fmt.Errorf("%w: node %q input %d: %s", ErrConflict, n.Name, i, err)
			}
			if !merged.Equal(before) {
				changed = true
			}
			a.g.SetEdgeFact(eid, merged)
		}
		return changed, nil

	default:
		return false, fmt.Errorf("analyser: unknown direction %v", dir)
	}
}

// runStep runs one pass in direction dir over the plan (forward) or the
// reversed plan (backward), reporting whether any step changed a fact.
func (a *Analyser) runStep(ctx context.Context, dir Direction) (bool, error) {
	plan := a.g.Plan()
	order := make([]graph.NodeID, len(plan))
	if dir == Backward {
		for i, id := range plan {
			order[len(plan)-1-i] = id
		}
	} else {
		copy(order, plan)
	}

	changedAny := false
	for _, id := range order {
		changed, err := a.tryStep(dir, id)
		if a.tel != nil {
			a.tel.RecordStep(ctx, dir.String())
		}
		if err != nil {
			return changedAny, err
		}
		if changed {
			changedAny = true
		}
	}
	return changedAny, nil
}

// runTwoPasses runs one forward pass followed by one backward pass,
// reporting whether either changed a fact (spec §4.4, "two passes").
func (a *Analyser) runTwoPasses(ctx context.Context) (bool, error) {
	fwd, err := a.runStep(ctx, Forward)
	if err != nil {
		return fwd, err
	}
	if a.tel != nil {
		a.tel.RecordPass(ctx, Forward.String())
	}

	bwd, err := a.runStep(ctx, Backward)
	if err != nil {
		return fwd || bwd, err
	}
	if a.tel != nil {
		a.tel.RecordPass(ctx, Backward.String())
	}

	return fwd || bwd, nil
}

// maxPassRounds bounds Run's fixed-point search. Each edge's fact can only
// tighten a bounded number of times before it bottoms out (Any to Only for
// type and value, and for shape, open-to-closed plus one settle per
// dimension) — a small constant per edge, independent of graph size — so a
// monotone operator set reaches its fixed point within a number of rounds
// linear in the node count. This bound is a generous multiple of that, not
// a tuning knob: if it's ever hit, the cause is a non-monotone operator,
// not a slow-converging one.
func (a *Analyser) maxPassRounds() int {
	return 2*len(a.g.Nodes()) + 16
}

// Run alternates forward and backward passes until neither changes a fact,
// wrapping the run in a span tagged with a fresh correlation id if a
// telemetry Provider is attached (spec §4.4, fixed-point propagation).
func (a *Analyser) Run(ctx context.Context) (rounds int, err error) {
	if a.tel != nil {
		var span trace.Span
		ctx, _, span = a.tel.StartRun(ctx)
		defer span.End()
	}

	budget := a.maxPassRounds()
	for rounds = 0; rounds < budget; rounds++ {
		changed, err := a.runTwoPasses(ctx)
		if err != nil {
			return rounds, err
		}
		if a.log != nil {
			a.log.Debugf("round %d: changed=%v", rounds, changed)
		}
		if !changed {
			return rounds, nil
		}
	}
	return rounds, ErrNoFixedPoint
}
