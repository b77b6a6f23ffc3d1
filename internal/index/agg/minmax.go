package agg

import (
	"cmp"

	"github.com/google/btree"

	"github.com/steveyegge/colidx/internal/id"
	"github.com/steveyegge/colidx/internal/index"
	"github.com/steveyegge/colidx/internal/store"
)

const btreeDegree = 32

type ordVal[V cmp.Ordered] struct {
	v  V
	id id.Id
}

func lessOrdVal[V cmp.Ordered](a, b ordVal[V]) bool {
	if a.v != b.v {
		return a.v < b.v
	}
	return a.id < b.id
}

// MinMax keeps an ordered multiset of (value, id) so a removal can
// restore the next extremum in O(log n), never by rescanning every
// item in scope. The same structure backs both the Min and Max
// aggregate constructors — they differ only in which query method the
// caller calls.
type MinMax[V cmp.Ordered] struct {
	tree *btree.BTreeG[ordVal[V]]
}

func newMinMax[V cmp.Ordered]() *MinMax[V] {
	return &MinMax[V]{tree: btree.NewG(btreeDegree, lessOrdVal[V])}
}

// NewMin builds the template for a MinMax aggregate over value type V,
// queried via Min().
func NewMin[V cmp.Ordered, T any]() index.Template[T, *MinMax[V]] {
	return func(_ *store.Store[T]) *MinMax[V] { return newMinMax[V]() }
}

// NewMax builds the template for a MinMax aggregate over value type V,
// queried via Max().
func NewMax[V cmp.Ordered, T any]() index.Template[T, *MinMax[V]] {
	return func(_ *store.Store[T]) *MinMax[V] { return newMinMax[V]() }
}

func (m *MinMax[V]) Observe(ev id.Event[V]) {
	switch ev.Kind {
	case id.Add:
		m.tree.ReplaceOrInsert(ordVal[V]{v: ev.New, id: ev.ID})
	case id.Remove:
		m.tree.Delete(ordVal[V]{v: ev.Old, id: ev.ID})
	case id.Update:
		m.tree.Delete(ordVal[V]{v: ev.Old, id: ev.ID})
		m.tree.ReplaceOrInsert(ordVal[V]{v: ev.New, id: ev.ID})
	}
}

// Min returns the smallest value in scope, or false if empty.
func (m *MinMax[V]) Min() (V, bool) {
	e, ok := m.tree.Min()
	if !ok {
		var zero V
		return zero, false
	}
	return e.v, true
}

// Max returns the largest value in scope, or false if empty.
func (m *MinMax[V]) Max() (V, bool) {
	e, ok := m.tree.Max()
	if !ok {
		var zero V
		return zero, false
	}
	return e.v, true
}

// Len returns the number of items in scope.
func (m *MinMax[V]) Len() int { return m.tree.Len() }
