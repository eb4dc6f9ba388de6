package graph

import "errors"

var (
	// ErrUnknownNode is returned when a node id referenced as an input
	// producer or as the designated output falls outside the node slice.
	ErrUnknownNode = errors.New("graph: unknown node id")

	// ErrDuplicateID is returned when constructing a Graph from nodes whose
	// ids do not match their position in the node slice — the "node id
	// equals index" invariant the rest of the package relies on.
	ErrDuplicateID = errors.New("graph: node id does not match its index")

	// ErrCycle is returned when the transitive predecessors of the output
	// node contain a cycle, so no topological execution plan exists.
	ErrCycle = errors.New("graph: cycle among transitive predecessors of output")

	// ErrNoOutput is returned by DetectOutput when no node qualifies as the
	// unique terminal node of the graph.
	ErrNoOutput = errors.New("graph: no node has an empty set of consumers")

	// ErrAmbiguousOutput is returned by DetectOutput when more than one node
	// qualifies as terminal and the caller did not disambiguate.
	ErrAmbiguousOutput = errors.New("graph: more than one node has an empty set of consumers")
)
