// Package policy: stock policies.
//
// Each policy is an empty struct so that instantiating a backend with
// one costs nothing; all state lives in the keys and aggregates the
// backend stores.

package policy

import "math"

// Sentinel keys of MinAdd and MaxAdd: the neutral element of min
// (+inf side) and max (-inf side). They are what KeyUnit returns; do
// not use them as real vertex keys.
const (
	unboundedMin int64 = math.MaxInt64
	unboundedMax int64 = math.MinInt64
)

// SumAdd sums int64 keys; actions add a constant to every key.
// Wrapping two's-complement arithmetic throughout, so composition and
// pointwise application agree even on overflow.
type SumAdd struct{}

func (SumAdd) KeyUnit() int64                   { return 0 }
func (SumAdd) AggUnit() int64                   { return 0 }
func (SumAdd) ActUnit() int64                   { return 0 }
func (SumAdd) AggOf(k int64) int64              { return k }
func (SumAdd) Merge(l, k, r int64) int64        { return l + k + r }
func (SumAdd) Compose(newer, older int64) int64 { return newer + older }
func (SumAdd) ApplyKey(a, k int64) int64        { return k + a }
func (SumAdd) ApplyAgg(a, g int64, n int) int64 { return g + a*int64(n) }
func (SumAdd) RevInvariant() bool               { return true }

// MinAdd keeps int64 minima; actions add a constant to every key.
// KeyUnit is math.MaxInt64, which vanishes from any min containing a
// real key.
type MinAdd struct{}

func (MinAdd) KeyUnit() int64      { return unboundedMin }
func (MinAdd) AggUnit() int64      { return unboundedMin }
func (MinAdd) ActUnit() int64      { return 0 }
func (MinAdd) AggOf(k int64) int64 { return k }

func (MinAdd) Merge(l, k, r int64) int64 {
	m := l
	if k < m {
		m = k
	}
	if r < m {
		m = r
	}

	return m
}

func (MinAdd) Compose(newer, older int64) int64 { return newer + older }

func (MinAdd) ApplyKey(a, k int64) int64 {
	if k == unboundedMin {
		return k // the sentinel stays neutral
	}

	return k + a
}

func (MinAdd) ApplyAgg(a, g int64, n int) int64 {
	if n == 0 || g == unboundedMin {
		return g // nothing summarized: shifting would corrupt the unit
	}

	return g + a
}

func (MinAdd) RevInvariant() bool { return true }

// MaxAdd keeps int64 maxima; actions add a constant to every key.
// The mirror image of MinAdd.
type MaxAdd struct{}

func (MaxAdd) KeyUnit() int64      { return unboundedMax }
func (MaxAdd) AggUnit() int64      { return unboundedMax }
func (MaxAdd) ActUnit() int64      { return 0 }
func (MaxAdd) AggOf(k int64) int64 { return k }

func (MaxAdd) Merge(l, k, r int64) int64 {
	m := l
	if k > m {
		m = k
	}
	if r > m {
		m = r
	}

	return m
}

func (MaxAdd) Compose(newer, older int64) int64 { return newer + older }

func (MaxAdd) ApplyKey(a, k int64) int64 {
	if k == unboundedMax {
		return k
	}

	return k + a
}

func (MaxAdd) ApplyAgg(a, g int64, n int) int64 {
	if n == 0 || g == unboundedMax {
		return g
	}

	return g + a
}

func (MaxAdd) RevInvariant() bool { return true }

// NopAct is the action type of policies whose keys never change under
// actions. Its zero value is the only value.
type NopAct struct{}

// ConcatNop concatenates string keys in sequence order; actions do
// nothing. The only stock policy with RevInvariant == false, so it
// exercises the forward/reverse aggregate pairs of every backend.
type ConcatNop struct{}

func (ConcatNop) KeyUnit() string                           { return "" }
func (ConcatNop) AggUnit() string                           { return "" }
func (ConcatNop) ActUnit() NopAct                           { return NopAct{} }
func (ConcatNop) AggOf(k string) string                     { return k }
func (ConcatNop) Merge(l, k, r string) string               { return l + k + r }
func (ConcatNop) Compose(_, _ NopAct) NopAct                { return NopAct{} }
func (ConcatNop) ApplyKey(_ NopAct, k string) string        { return k }
func (ConcatNop) ApplyAgg(_ NopAct, g string, _ int) string { return g }
func (ConcatNop) RevInvariant() bool                        { return false }
