package colidx

import (
	"cmp"

	"github.com/steveyegge/colidx/internal/index/agg"
	"github.com/steveyegge/colidx/internal/index/combinator"
	"github.com/steveyegge/colidx/internal/index/leaf"
)

// Numeric constrains the aggregates that fold over numbers: Sum and
// Mean.
type Numeric = agg.Numeric

// Bound is one endpoint of a Range query against an OrderedIndex.
// Included matches its value; Excluded does not.
type Bound[K cmp.Ordered] = leaf.Bound[K]

// Included returns an inclusive Range bound at v.
func Included[K cmp.Ordered](v K) Bound[K] { return leaf.Included(v) }

// Excluded returns an exclusive Range bound at v.
func Excluded[K cmp.Ordered](v K) Bound[K] { return leaf.Excluded(v) }

// --- leaf indexes ---

// OrderedIndex is the query handle for a BTree index: a total-order map
// from key to the ids currently mapped to it, supporting point lookup,
// range scan, min, max, and count.
type OrderedIndex[K cmp.Ordered, T any] = leaf.Ordered[K, T]

// BTree builds a B-tree-backed ordered index over key type K.
func BTree[K cmp.Ordered, T any]() Template[T, *OrderedIndex[K, T]] {
	return leaf.BTree[K, T]()
}

// UniqueIndex is the query handle for a HashUnique index: a bijection
// between key and id. A duplicate key on Add is a contract violation.
type UniqueIndex[K comparable, T any] = leaf.Unique[K, T]

// HashUnique builds a unique hash index over key type K.
func HashUnique[K comparable, T any]() Template[T, *UniqueIndex[K, T]] {
	return leaf.HashUnique[K, T]()
}

// MultiIndex is the query handle for a HashMulti index: a map from key
// to the set of ids currently hashed to it.
type MultiIndex[K comparable, T any] = leaf.Multi[K, T]

// HashMulti builds a multi-valued hash index over key type K.
func HashMulti[K comparable, T any]() Template[T, *MultiIndex[K, T]] {
	return leaf.HashMulti[K, T]()
}

// KeysIndex is the query handle for a Keys index: the set of ids
// currently in scope, with no further structure.
type KeysIndex[V any] = leaf.KeySet[V]

// Keys builds an index that tracks only which ids are currently in
// scope — typically used as the innermost index inside Grouped or
// Filtered when the caller only wants membership.
func Keys[V any, T any]() Template[T, *KeysIndex[V]] {
	return leaf.Keys[V, T]()
}

// --- aggregates ---

// CountIndex is the query handle for a Count aggregate.
type CountIndex[V any] = agg.Count[V]

// Count builds an aggregate that tracks the number of items in scope.
func Count[V any, T any]() Template[T, *CountIndex[V]] {
	return agg.NewCount[V, T]()
}

// SumIndex is the query handle for a Sum aggregate.
type SumIndex[V Numeric] = agg.Sum[V]

// Sum builds an aggregate that tracks the running sum of values in
// scope.
func Sum[V Numeric, T any]() Template[T, *SumIndex[V]] {
	return agg.NewSum[V, T]()
}

// MeanIndex is the query handle for a Mean aggregate.
type MeanIndex[V Numeric] = agg.Mean[V]

// Mean builds an aggregate that tracks the running mean of values in
// scope; Value reports (0, false) when nothing is in scope.
func Mean[V Numeric, T any]() Template[T, *MeanIndex[V]] {
	return agg.NewMean[V, T]()
}

// MinMaxIndex is the query handle shared by Min and Max: an ordered
// multiset of the values in scope.
type MinMaxIndex[V cmp.Ordered] = agg.MinMax[V]

// Min builds an aggregate queried via MinMaxIndex.Min.
func Min[V cmp.Ordered, T any]() Template[T, *MinMaxIndex[V]] {
	return agg.NewMin[V, T]()
}

// Max builds an aggregate queried via MinMaxIndex.Max.
func Max[V cmp.Ordered, T any]() Template[T, *MinMaxIndex[V]] {
	return agg.NewMax[V, T]()
}

// FoldIndex is the query handle for a Fold aggregate.
type FoldIndex[V any, S any] = agg.Fold[V, S]

// Fold builds a user-defined aggregate from an initial state and two
// inverse combinators: add folds a value in, remove must exactly undo
// it.
func Fold[V any, S any, T any](initial S, add, remove func(S, V) S) Template[T, *FoldIndex[V, S]] {
	return agg.NewFold[V, S, T](initial, add, remove)
}

// --- combinators ---

// PremapIndex is the query handle for a Premap combinator: it projects
// each observed value through a function before handing it to Inner.
type PremapIndex[K any, V any, Inner Index[V]] = combinator.Premap[K, V, Inner]

// Premap builds a combinator that transforms each value through f
// before forwarding it to the index built by inner. T is the
// collection's item type and is inferred from inner (it may also be
// given explicitly); K and V are inferred from f.
func Premap[T any, K any, V any, Inner Index[V]](f func(K) V, inner Template[T, Inner]) Template[T, *PremapIndex[K, V, Inner]] {
	return combinator.NewPremap[T](f, inner)
}

// FilteredIndex is the query handle for a Filtered combinator: it only
// forwards events for values matching a predicate.
type FilteredIndex[V any, Inner Index[V]] = combinator.Filtered[V, Inner]

// Filtered builds a combinator that only forwards values matching pred
// to the index built by inner. T is the collection's item type and is
// inferred from inner (it may also be given explicitly); V is inferred
// from pred.
func Filtered[T any, V any, Inner Index[V]](pred func(V) bool, inner Template[T, Inner]) Template[T, *FilteredIndex[V, Inner]] {
	return combinator.NewFiltered[T](pred, inner)
}

// GroupedIndex is the query handle for a Grouped combinator: one
// instance of Inner per distinct group key, created lazily and pruned
// once empty.
type GroupedIndex[T any, V any, G comparable, Inner Index[V]] = combinator.Grouped[T, V, G, Inner]

// Grouped builds a combinator that partitions values by keyFn and
// maintains one instance of the index built by makeInner per group. T
// is the collection's item type and is inferred from makeInner (it may
// also be given explicitly); V, G, and Inner are inferred from keyFn
// and makeInner.
func Grouped[T any, V any, G comparable, Inner Index[V]](keyFn func(V) G, makeInner Template[T, Inner]) Template[T, *GroupedIndex[T, V, G, Inner]] {
	return combinator.NewGrouped[T](keyFn, makeInner)
}

// Zip2Index is the query handle for a Zip2 combinator: two independent
// indexes that both observe the same events.
type Zip2Index[V any, A Index[V], B Index[V]] = combinator.Zip2[V, A, B]

// Zip2 builds a combinator that broadcasts every event to both a and b.
// T and V must be given explicitly; A and B are inferred.
func Zip2[T any, V any, A Index[V], B Index[V]](a Template[T, A], b Template[T, B]) Template[T, *Zip2Index[V, A, B]] {
	return combinator.NewZip2[T, V](a, b)
}

// Zip3Index is the query handle for a Zip3 combinator.
type Zip3Index[V any, A Index[V], B Index[V], C Index[V]] = combinator.Zip3[V, A, B, C]

// Zip3 builds a combinator that broadcasts every event to a, b, and c.
// T and V must be given explicitly; A, B, and C are inferred.
func Zip3[T any, V any, A Index[V], B Index[V], C Index[V]](a Template[T, A], b Template[T, B], c Template[T, C]) Template[T, *Zip3Index[V, A, B, C]] {
	return combinator.NewZip3[T, V](a, b, c)
}

// Zip4Index is the query handle for a Zip4 combinator.
type Zip4Index[V any, A Index[V], B Index[V], C Index[V], D Index[V]] = combinator.Zip4[V, A, B, C, D]

// Zip4 builds a combinator that broadcasts every event to a, b, c, and
// d. T and V must be given explicitly; A, B, C, and D are inferred.
func Zip4[T any, V any, A Index[V], B Index[V], C Index[V], D Index[V]](a Template[T, A], b Template[T, B], c Template[T, C], d Template[T, D]) Template[T, *Zip4Index[V, A, B, C, D]] {
	return combinator.NewZip4[T, V](a, b, c, d)
}
