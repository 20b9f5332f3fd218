// Package policy: the Policy interface.
//
// This file declares the single interface backends depend on. Stock
// implementations live in policies.go.

package policy

// Policy is the algebra a dynamic-forest backend folds with.
//
// K is the per-vertex key, G the monoid aggregate of an ordered key
// sequence, A the lazily-deferred action. Implementations must be
// stateless: backends copy policy values freely and call them from
// every internal node.
//
// See the package documentation for the laws implementations must obey.
type Policy[K, G, A any] interface {
	// KeyUnit returns the neutral key: merged into any sequence it
	// leaves the fold unchanged.
	KeyUnit() K

	// AggUnit returns the monoid identity for Merge.
	AggUnit() G

	// ActUnit returns the identity action.
	ActUnit() A

	// AggOf lifts a single key into an aggregate.
	AggOf(k K) G

	// Merge folds a left aggregate, a middle key, and a right aggregate,
	// in that order. It is not assumed commutative.
	Merge(left G, k K, right G) G

	// Compose returns the action equivalent to applying older first,
	// then newer.
	Compose(newer, older A) A

	// ApplyKey applies an action to one key.
	ApplyKey(a A, k K) K

	// ApplyAgg applies an action to an aggregate summarizing n keys.
	// It must agree with applying ApplyKey pointwise to all n of them.
	ApplyAgg(a A, g G, n int) G

	// RevInvariant reports whether folds are invariant under sequence
	// reversal. Backends holding it true cache one aggregate per node
	// instead of a forward/reverse pair.
	RevInvariant() bool
}
