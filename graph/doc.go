// Package graph is the analyser's Graph Store (spec §4.2): the node list,
// the edge list with forward/backward adjacency, and a computed topological
// execution plan.
//
// Nodes and edges live in contiguous, index-addressable storage — a Node's
// ID is always its index in the node slice, and that invariant is preserved
// across PruneUnused. References between nodes are plain integer ids rather
// than pointers, which keeps the structure free of cyclic ownership and
// makes the id-remapping performed by PruneUnused sound (mirrors the
// arena-and-indices discipline lvlath/core uses for its own Vertex/Edge
// catalogs, adapted here to a single-owner, mutate-in-place graph rather
// than a concurrent one: the analyser is single-threaded per spec §5).
package graph
