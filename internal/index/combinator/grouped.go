package combinator

import (
	"github.com/steveyegge/colidx/internal/id"
	"github.com/steveyegge/colidx/internal/index"
	"github.com/steveyegge/colidx/internal/store"
)

// Grouped maintains a map from group key to an inner index instance,
// created lazily on first touch. A group-changing Update removes from
// the old group before adding to the new one — that order is part of
// the contract (spec.md §4.5.3) so an aggregate introspecting mid-
// dispatch sees the correct transient state.
//
// An inner index whose tracked cardinality returns to zero is pruned
// from the map; iteration never exposes an empty group (spec.md
// invariant 4 / Open Question 1). Pruning is otherwise unobservable:
// Group(key) on a pruned key returns the same (zero, false) it would
// for a key that was never touched.
type Grouped[T any, V any, G comparable, Inner index.Index[V]] struct {
	store     *store.Store[T]
	keyFn     func(V) G
	makeInner index.Template[T, Inner]
	groups    map[G]Inner
	sizes     map[G]int
}

// NewGrouped builds the template for a Grouped combinator. T is
// inferred from makeInner (it may also be given explicitly); V is
// inferred from keyFn, G from keyFn's result, and Inner from makeInner.
func NewGrouped[T any, V any, G comparable, Inner index.Index[V]](keyFn func(V) G, makeInner index.Template[T, Inner]) index.Template[T, *Grouped[T, V, G, Inner]] {
	return func(s *store.Store[T]) *Grouped[T, V, G, Inner] {
		return &Grouped[T, V, G, Inner]{
			store:     s,
			keyFn:     keyFn,
			makeInner: makeInner,
			groups:    make(map[G]Inner),
			sizes:     make(map[G]int),
		}
	}
}

func (g *Grouped[T, V, G, Inner]) getOrCreate(key G) Inner {
	inner, ok := g.groups[key]
	if !ok {
		inner = g.makeInner(g.store)
		g.groups[key] = inner
	}
	return inner
}

func (g *Grouped[T, V, G, Inner]) prune(key G) {
	if g.sizes[key] <= 0 {
		delete(g.groups, key)
		delete(g.sizes, key)
	}
}

func (g *Grouped[T, V, G, Inner]) Observe(ev id.Event[V]) {
	switch ev.Kind {
	case id.Add:
		key := g.keyFn(ev.New)
		inner := g.getOrCreate(key)
		inner.Observe(id.AddEvent(ev.ID, ev.New))
		g.sizes[key]++

	case id.Remove:
		key := g.keyFn(ev.Old)
		if inner, ok := g.groups[key]; ok {
			inner.Observe(id.RemoveEvent(ev.ID, ev.Old))
			g.sizes[key]--
			g.prune(key)
		}

	case id.Update:
		oldKey, newKey := g.keyFn(ev.Old), g.keyFn(ev.New)
		if oldKey == newKey {
			if inner, ok := g.groups[oldKey]; ok {
				inner.Observe(id.UpdateEvent(ev.ID, ev.Old, ev.New))
			}
			return
		}

		if inner, ok := g.groups[oldKey]; ok {
			inner.Observe(id.RemoveEvent(ev.ID, ev.Old))
			g.sizes[oldKey]--
			g.prune(oldKey)
		}
		newInner := g.getOrCreate(newKey)
		newInner.Observe(id.AddEvent(ev.ID, ev.New))
		g.sizes[newKey]++
	}
}

// Group returns the inner query handle for key, or false if no items
// are currently in that group.
func (g *Grouped[T, V, G, Inner]) Group(key G) (Inner, bool) {
	inner, ok := g.groups[key]
	return inner, ok
}

// Keys returns the set of non-empty group keys; iteration order is
// unspecified.
func (g *Grouped[T, V, G, Inner]) Keys() []G {
	out := make([]G, 0, len(g.groups))
	for k := range g.groups {
		out = append(out, k)
	}
	return out
}
