// Package model is the graph's wire/storage representation: a flat node
// list plus a name index, independent of any particular analyser run. An
// analyser is constructed from a Model and, once inference and transforms
// have settled, rebuilds one via IntoModel (spec §6, "Construct" and
// "IntoModel") — the name table is always derived fresh from the current
// node list rather than patched in place, since pruning changes ids but
// never names.
package model
