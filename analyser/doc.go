// Package analyser is the bidirectional fixed-point propagation engine
// (spec §4.4) and the graph transforms (spec §4.5) built on top of package
// graph and package op, plus the external construction/extraction surface
// (spec §6).
//
// An Analyser owns a single *graph.Graph and drives it to a fixed point by
// alternating forward passes (plan order) and backward passes (reverse plan
// order), each pass calling every node's operator and unifying whatever
// fact it proposes into the graph. Per spec §5 an Analyser is not safe for
// concurrent use; callers coordinate access the way they coordinate access
// to any other single-owner value.
package analyser
