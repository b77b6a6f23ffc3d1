// Package leaf implements the primary lookup structures of spec.md
// §4.3: an ordered (B-tree-backed) map, a unique hash index, a multi
// hash index, and a keys-only set index.
package leaf

import (
	"cmp"
	"math"
	"slices"

	"github.com/google/btree"

	"github.com/steveyegge/colidx/internal/id"
	"github.com/steveyegge/colidx/internal/index"
	"github.com/steveyegge/colidx/internal/store"
)

// btreeDegree is the branching factor used for every B-tree-backed
// index in this package. 32 is google/btree's own suggested default
// for in-memory workloads, trading node size against tree depth.
const btreeDegree = 32

// entry orders first by key then by id, so ties at the same key are
// broken by ascending id, per spec.md §4.3.
type entry[K cmp.Ordered] struct {
	key K
	id  id.Id
}

func lessEntry[K cmp.Ordered](a, b entry[K]) bool {
	if a.key != b.key {
		return a.key < b.key
	}
	return a.id < b.id
}

// Bound is one endpoint of a Range query: Included(v) matches v itself,
// Excluded(v) does not.
type Bound[K cmp.Ordered] struct {
	Value     K
	Inclusive bool
}

// Included returns an inclusive bound at v.
func Included[K cmp.Ordered](v K) Bound[K] { return Bound[K]{Value: v, Inclusive: true} }

// Excluded returns an exclusive bound at v.
func Excluded[K cmp.Ordered](v K) Bound[K] { return Bound[K]{Value: v, Inclusive: false} }

// Ordered is the B-tree-backed ordered map index: a total-order map
// from key to the set of ids currently mapped to that key. Query
// methods expose point lookup, range scan, min/max, and count.
type Ordered[K cmp.Ordered, T any] struct {
	store *store.Store[T]
	tree  *btree.BTreeG[entry[K]]
	byKey map[K]map[id.Id]struct{}
}

// BTree builds the template for an Ordered index over key type K,
// inside a collection whose store holds items of type T.
func BTree[K cmp.Ordered, T any]() index.Template[T, *Ordered[K, T]] {
	return func(s *store.Store[T]) *Ordered[K, T] {
		return &Ordered[K, T]{
			store: s,
			tree:  btree.NewG(btreeDegree, lessEntry[K]),
			byKey: make(map[K]map[id.Id]struct{}),
		}
	}
}

// Observe applies ev per spec.md §4.3/§4.5: Add inserts, Remove
// deletes, and Update moves the entry only if the key actually changed.
func (o *Ordered[K, T]) Observe(ev id.Event[K]) {
	switch ev.Kind {
	case id.Add:
		o.insert(ev.ID, ev.New)
	case id.Remove:
		o.delete(ev.ID, ev.Old)
	case id.Update:
		if ev.Old == ev.New {
			return
		}
		o.delete(ev.ID, ev.Old)
		o.insert(ev.ID, ev.New)
	}
}

func (o *Ordered[K, T]) insert(i id.Id, key K) {
	o.tree.ReplaceOrInsert(entry[K]{key: key, id: i})
	ids, ok := o.byKey[key]
	if !ok {
		ids = make(map[id.Id]struct{})
		o.byKey[key] = ids
	}
	ids[i] = struct{}{}
}

func (o *Ordered[K, T]) delete(i id.Id, key K) {
	o.tree.Delete(entry[K]{key: key, id: i})
	ids := o.byKey[key]
	delete(ids, i)
	if len(ids) == 0 {
		delete(o.byKey, key)
	}
}

// Count returns the number of ids currently indexed.
func (o *Ordered[K, T]) Count() int { return o.tree.Len() }

// Get returns the ids mapped to key, in ascending-id order.
func (o *Ordered[K, T]) Get(key K) []id.Id {
	ids := o.byKey[key]
	if len(ids) == 0 {
		return nil
	}
	out := make([]id.Id, 0, len(ids))
	for i := range ids {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}

// Min returns the item envelope with the smallest (key, id), or false
// if the index is empty.
func (o *Ordered[K, T]) Min() (id.Item[T], bool) {
	e, ok := o.tree.Min()
	if !ok {
		return id.Item[T]{}, false
	}
	return o.envelope(e.id)
}

// Max returns the item envelope with the largest (key, id), or false
// if the index is empty.
func (o *Ordered[K, T]) Max() (id.Item[T], bool) {
	e, ok := o.tree.Max()
	if !ok {
		return id.Item[T]{}, false
	}
	return o.envelope(e.id)
}

func (o *Ordered[K, T]) envelope(i id.Id) (id.Item[T], bool) {
	v, ok := o.store.Get(i)
	if !ok {
		return id.Item[T]{}, false
	}
	return id.Item[T]{ID: i, Value: v}, true
}

// Range returns the ids whose key falls within [lo, hi) (or whichever
// combination of inclusive/exclusive bounds the caller passed),
// ascending by (key, id).
func (o *Ordered[K, T]) Range(lo, hi Bound[K]) []id.Id {
	var out []id.Id
	o.tree.AscendRange(lowerPivot(lo), upperPivot(hi), func(e entry[K]) bool {
		out = append(out, e.id)
		return true
	})
	return out
}

func lowerPivot[K cmp.Ordered](b Bound[K]) entry[K] {
	if b.Inclusive {
		return entry[K]{key: b.Value, id: 0}
	}
	return entry[K]{key: b.Value, id: id.Id(math.MaxUint64)}
}

func upperPivot[K cmp.Ordered](b Bound[K]) entry[K] {
	if b.Inclusive {
		return entry[K]{key: b.Value, id: id.Id(math.MaxUint64)}
	}
	return entry[K]{key: b.Value, id: 0}
}
