package agg

import (
	"github.com/steveyegge/colidx/internal/id"
	"github.com/steveyegge/colidx/internal/index"
	"github.com/steveyegge/colidx/internal/store"
)

// Mean tracks (sum, count) so the average can be recomputed in O(1) on
// every mutation.
type Mean[V Numeric] struct {
	sum   float64
	count int
}

// NewMean builds the template for a Mean aggregate over value type V.
func NewMean[V Numeric, T any]() index.Template[T, *Mean[V]] {
	return func(_ *store.Store[T]) *Mean[V] { return &Mean[V]{} }
}

func (m *Mean[V]) Observe(ev id.Event[V]) {
	switch ev.Kind {
	case id.Add:
		m.sum += float64(ev.New)
		m.count++
	case id.Remove:
		m.sum -= float64(ev.Old)
		m.count--
	case id.Update:
		m.sum += float64(ev.New) - float64(ev.Old)
	}
}

// Value returns the mean and true, or (0, false) if no items are in
// scope. Accumulation uses plain floating-point summation; see
// SPEC_FULL.md §7 (Open Question 3) for why Kahan summation is not
// used here.
func (m *Mean[V]) Value() (float64, bool) {
	if m.count == 0 {
		return 0, false
	}
	return m.sum / float64(m.count), true
}
