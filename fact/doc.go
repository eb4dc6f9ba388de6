// Package fact defines the three-valued tensor fact lattice used by the
// shape-and-type inference analyser: a datum-type fact, a shape fact (with
// per-dimension partial knowledge and an open/closed rank), and a value fact,
// bundled into a single Tensor fact.
//
// Every fact component is a two-arm tagged union: Any (⊤, complete ignorance)
// or Only(x) (a concrete, fully-known value). Any is never represented as a
// sentinel hiding inside Only — AnyType, AnyDim and AnyValue are distinct
// exported values with their own IsAny() predicate.
//
// Unify is the lattice's only operation: the meet of two facts, forming a
// meet-semilattice. It is pure (never mutates its arguments), commutative,
// associative, idempotent, and monotone — a successful unification is always
// ≤ both of its operands in the lattice order. Unification never downgrades a
// fact: edges in the analyser's graph only ever get more specific over time.
package fact
