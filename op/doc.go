// Package op defines the operator transfer-function contract (spec §4.3):
// the interface every graph node's operator implements so the propagation
// engine can narrow facts across it in both directions, plus a small set of
// built-in operators exercised by the analyser's own tests and examples.
//
// An operator's forward and backward inference must be pure, monotone (a
// more specific input never yields a less specific output) and sound (the
// output it proposes must actually hold for every concrete tensor consistent
// with the inputs). The engine trusts but does not verify these properties;
// Eval is the only place an operator touches concrete values.
package op
