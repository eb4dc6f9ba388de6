// File: detect.go
// Role: free functions that infer the graph-input and graph-output nodes
// from a node list alone, mirroring detect_inputs/detect_output in the
// original analyser (no Graph construction required, since callers need
// these before they know which node to pass as New's output).
package graph

// DetectInputs returns, in node order, the ids of every node whose operator
// name equals placeholderOpName: by convention a graph's entry points are
// marked with a sentinel placeholder operator rather than located
// structurally (a node with no Inputs is just as easily an internal
// constant-producing op).
func DetectInputs(nodes []Node, placeholderOpName string) []NodeID {
	var ids []NodeID
	for _, n := range nodes {
		if n.OpName == placeholderOpName {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

// DetectOutput returns the id of the unique node that is nobody's input
// producer. It returns ErrNoOutput if no such node exists and
// ErrAmbiguousOutput if more than one does.
func DetectOutput(nodes []Node) (NodeID, error) {
	isProducer := make([]bool, len(nodes))
	for _, n := range nodes {
		for _, in := range n.Inputs {
			if int(in.Producer) < len(isProducer) {
				isProducer[in.Producer] = true
			}
		}
	}

	var out NodeID
	found := false
	for _, n := range nodes {
		if isProducer[n.ID] {
			continue
		}
		if found {
			return 0, ErrAmbiguousOutput
		}
		out = n.ID
		found = true
	}
	if !found {
		return 0, ErrNoOutput
	}
	return out, nil
}
