// Package policy defines the pluggable algebra every dynforest backend
// is generic over: a Key carried by each vertex, a monoid aggregate Agg
// summarizing ordered Key sequences, and a composable lazy action Act.
//
// Overview:
//
//   - A backend never inspects keys or aggregates itself; it only calls
//     the eight pure operations of the Policy interface. Correctness of
//     every cached aggregate therefore reduces to the policy laws below.
//   - Actions are deferred: a backend may record an Act on an internal
//     node and apply it to the node's subtree much later. The ApplyAgg
//     operation must make that deferral unobservable.
//
// Policy laws (required, unchecked):
//
//   - Merge is associative in the usual three-way sense:
//     Merge(Merge(a,k,b), k2, c) == Merge(a, k, Merge(b, k2, c)).
//   - AggUnit is neutral: Merge(AggUnit, k, AggUnit) == AggOf(k).
//   - KeyUnit is neutral as a sequence element:
//     Merge(l, KeyUnit, r) equals the merge of l and r alone. Backends
//     splice unit keys into sequences (Euler-tour arc tokens, unweighted
//     Top Tree edges) and rely on them vanishing from folds.
//   - Compose(newer, older) means "apply older first, then newer", and
//     ActUnit is its identity.
//   - ApplyAgg(a, g, n) == the fold of ApplyKey(a, ·) applied pointwise
//     to each of the n keys g summarizes.
//   - RevInvariant reports a property, not a preference: it must be true
//     only if folding any key sequence backwards yields the same Agg as
//     folding it forwards. Backends use it to skip the reverse-direction
//     aggregate cache entirely.
//
// Stock policies:
//
//   - SumAdd    — int64 sums with additive actions; the workhorse.
//   - MinAdd    — int64 minima with additive actions.
//   - MaxAdd    — int64 maxima with additive actions.
//   - ConcatNop — string concatenation with no-op actions; the one stock
//     policy that is direction-sensitive (RevInvariant == false), useful
//     for verifying path orientation.
//
// Complexity: every operation is O(1) (O(len) for ConcatNop.Merge).
package policy
