package combinator

import (
	"github.com/steveyegge/colidx/internal/id"
	"github.com/steveyegge/colidx/internal/index"
	"github.com/steveyegge/colidx/internal/store"
)

// Filtered gates forwarding with a predicate so inner only ever
// observes in-scope items. An update that crosses the predicate
// boundary is translated into an Add or Remove so inner's bookkeeping
// stays honest at every instant; an update that stays on one side
// forwards unchanged, and one that stays out of scope on both sides is
// a no-op.
type Filtered[V any, Inner index.Index[V]] struct {
	pred  func(V) bool
	inner Inner
}

// NewFiltered builds the template for a Filtered combinator. T is
// inferred from innerTmpl (it may also be given explicitly); V and
// Inner are inferred from pred and innerTmpl.
func NewFiltered[T any, V any, Inner index.Index[V]](pred func(V) bool, innerTmpl index.Template[T, Inner]) index.Template[T, *Filtered[V, Inner]] {
	return func(s *store.Store[T]) *Filtered[V, Inner] {
		return &Filtered[V, Inner]{pred: pred, inner: innerTmpl(s)}
	}
}

func (f *Filtered[V, Inner]) Observe(ev id.Event[V]) {
	switch ev.Kind {
	case id.Add:
		if f.pred(ev.New) {
			f.inner.Observe(id.AddEvent(ev.ID, ev.New))
		}
	case id.Remove:
		if f.pred(ev.Old) {
			f.inner.Observe(id.RemoveEvent(ev.ID, ev.Old))
		}
	case id.Update:
		oldIn, newIn := f.pred(ev.Old), f.pred(ev.New)
		switch {
		case !oldIn && !newIn:
			// neither side in scope: no-op
		case !oldIn && newIn:
			f.inner.Observe(id.AddEvent(ev.ID, ev.New))
		case oldIn && !newIn:
			f.inner.Observe(id.RemoveEvent(ev.ID, ev.Old))
		default:
			f.inner.Observe(id.UpdateEvent(ev.ID, ev.Old, ev.New))
		}
	}
}

// Inner returns the wrapped index's query handle.
func (f *Filtered[V, Inner]) Inner() Inner { return f.inner }
