// File: analyser.go
// Role: construction and the external extraction surface (spec §6).
package analyser

import (
	"fmt"

	"github.com/nnir/tensorplan/analyser/config"
	"github.com/nnir/tensorplan/analyser/telemetry"
	"github.com/nnir/tensorplan/fact"
	"github.com/nnir/tensorplan/graph"
	"github.com/nnir/tensorplan/model"
)

// Analyser drives a graph.Graph to a fixed point and applies the graph
// transforms (constant folding, dead-subgraph pruning) to it.
type Analyser struct {
	g   *graph.Graph
	cfg config.Config
	log *telemetry.Logger
	tel *telemetry.Provider
}

// New constructs an Analyser over the model, designating output as the
// graph's single output node (spec §6, "Construct"). logger and tel may be
// nil; a nil logger discards everything and a nil tel disables metrics and
// tracing.
func New(m *model.Model, output graph.NodeID, cfg config.Config, logger *telemetry.Logger, tel *telemetry.Provider) (*Analyser, error) {
	g, err := graph.New(m.GraphNodes(), output)
	if err != nil {
		return nil, fmt.Errorf("analyser: construct: %w", err)
	}
	return &Analyser{g: g, cfg: cfg, log: logger, tel: tel}, nil
}

// Graph exposes the underlying graph store, mainly for tests and
// diagnostics; transforms and propagation should go through Analyser's own
// methods so telemetry stays accurate.
func (a *Analyser) Graph() *graph.Graph { return a.g }

// Hint unifies f into every edge produced by node id (spec §4.2, "Hint"),
// wrapping a conflict as ErrConflict.
func (a *Analyser) Hint(id graph.NodeID, f fact.Tensor) error {
	if err := a.g.Hint(id, f); err != nil {
		return fmt.Errorf("%w: %s", ErrConflict, err)
	}
	return nil
}

// ResetPlan recomputes the execution plan from the graph's current edges
// (spec §6, "Reset plan"). Most callers never need it directly — New,
// PruneUnused, and Hint all leave the plan up to date themselves — but it
// is exposed for a host that mutates the graph through other means.
func (a *Analyser) ResetPlan() error {
	return a.g.ResetPlan()
}

// IntoModel rebuilds a Model from the analyser's current graph state (spec
// §6, "IntoModel"): the name index is always derived fresh, so it reflects
// whatever pruning has done to node ids.
func (a *Analyser) IntoModel() *model.Model {
	return model.FromGraph(a.g)
}

// outputFact is the meet of every edge a node currently produces: the
// tightest composite knowledge about that node's single output, used as
// the "output fact" argument to InferBackward (spec §4.3 and §9 document
// single-output operators as the supported case).
func (a *Analyser) outputFact(id graph.NodeID) (fact.Tensor, error) {
	out := fact.Unknown()
	for _, eid := range a.g.NextEdges(id) {
		merged, err := fact.Unify(out, a.g.Edge(eid).Fact)
		if err != nil {
			return fact.Tensor{}, err
		}
		out = merged
	}
	return out, nil
}
