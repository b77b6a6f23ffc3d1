package agg

import (
	"github.com/steveyegge/colidx/internal/id"
	"github.com/steveyegge/colidx/internal/index"
	"github.com/steveyegge/colidx/internal/store"
)

// Numeric constrains the aggregates that fold over numbers.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum is a running sum over a numeric value type. Floating-point
// values are accumulated with plain summation, not Kahan summation.
type Sum[V Numeric] struct {
	total V
}

// NewSum builds the template for a Sum aggregate over value type V.
func NewSum[V Numeric, T any]() index.Template[T, *Sum[V]] {
	return func(_ *store.Store[T]) *Sum[V] { return &Sum[V]{} }
}

// Observe updates the running sum in O(1): Add adds the new value,
// Remove subtracts the old, and Update adds the delta.
func (s *Sum[V]) Observe(ev id.Event[V]) {
	switch ev.Kind {
	case id.Add:
		s.total += ev.New
	case id.Remove:
		s.total -= ev.Old
	case id.Update:
		s.total += ev.New - ev.Old
	}
}

// Value returns the current sum.
func (s *Sum[V]) Value() V { return s.total }
