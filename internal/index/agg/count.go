// Package agg implements the derived scalars of spec.md §4.4: count,
// sum, mean, min, max, and a generic invertible fold. Count, Sum, Mean,
// and Fold keep constant-size state; Min and Max keep an ordered
// multiset of every value in scope.
package agg

import (
	"github.com/steveyegge/colidx/internal/id"
	"github.com/steveyegge/colidx/internal/index"
	"github.com/steveyegge/colidx/internal/store"
)

// Count is a running count of items in scope.
type Count[V any] struct {
	n int
}

// NewCount builds the template for a Count aggregate observing values
// of type V, inside a collection whose store holds items of type T.
func NewCount[V any, T any]() index.Template[T, *Count[V]] {
	return func(_ *store.Store[T]) *Count[V] { return &Count[V]{} }
}

func (c *Count[V]) Observe(ev id.Event[V]) {
	switch ev.Kind {
	case id.Add:
		c.n++
	case id.Remove:
		c.n--
	}
}

// Value returns the current count.
func (c *Count[V]) Value() int { return c.n }
