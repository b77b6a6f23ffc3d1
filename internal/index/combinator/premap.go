// Package combinator implements the transform and compose combinators
// of spec.md §4.5: premap, filtered, grouped, and zip-N.
package combinator

import (
	"github.com/steveyegge/colidx/internal/id"
	"github.com/steveyegge/colidx/internal/index"
	"github.com/steveyegge/colidx/internal/store"
)

// Premap transforms each event's value through f before handing it to
// inner. f is invoked exactly once per side per event: Add carries
// f(new), Remove carries f(old), Update carries (f(old), f(new)). f
// must be deterministic and side-effect-free — its results are not
// memoized, so it should be cheap (typically a field projection).
type Premap[K any, V any, Inner index.Index[V]] struct {
	f     func(K) V
	inner Inner
}

// NewPremap builds the template for a Premap combinator. T is the
// store's item type and is inferred from innerTmpl (it may also be
// given explicitly); K and V are inferred from f, and Inner is inferred
// from innerTmpl.
func NewPremap[T any, K any, V any, Inner index.Index[V]](f func(K) V, innerTmpl index.Template[T, Inner]) index.Template[T, *Premap[K, V, Inner]] {
	return func(s *store.Store[T]) *Premap[K, V, Inner] {
		return &Premap[K, V, Inner]{f: f, inner: innerTmpl(s)}
	}
}

func (p *Premap[K, V, Inner]) Observe(ev id.Event[K]) {
	switch ev.Kind {
	case id.Add:
		p.inner.Observe(id.AddEvent(ev.ID, p.f(ev.New)))
	case id.Remove:
		p.inner.Observe(id.RemoveEvent(ev.ID, p.f(ev.Old)))
	case id.Update:
		p.inner.Observe(id.UpdateEvent(ev.ID, p.f(ev.Old), p.f(ev.New)))
	}
}

// Inner returns the wrapped index's query handle.
func (p *Premap[K, V, Inner]) Inner() Inner { return p.inner }
