package agg

import (
	"github.com/steveyegge/colidx/internal/id"
	"github.com/steveyegge/colidx/internal/index"
	"github.com/steveyegge/colidx/internal/store"
)

// Fold accepts two inverse combinators, add and remove, over a
// user-defined state S. Honest aggregates require invertibility: remove
// must exactly undo what the matching add did, since Observe never
// rescans the items in scope.
type Fold[V any, S any] struct {
	state  S
	add    func(S, V) S
	remove func(S, V) S
}

// NewFold builds the template for a Fold aggregate with the given
// initial state and inverse combinators.
func NewFold[V any, S any, T any](initial S, add, remove func(S, V) S) index.Template[T, *Fold[V, S]] {
	return func(_ *store.Store[T]) *Fold[V, S] {
		return &Fold[V, S]{state: initial, add: add, remove: remove}
	}
}

func (f *Fold[V, S]) Observe(ev id.Event[V]) {
	switch ev.Kind {
	case id.Add:
		f.state = f.add(f.state, ev.New)
	case id.Remove:
		f.state = f.remove(f.state, ev.Old)
	case id.Update:
		f.state = f.remove(f.state, ev.Old)
		f.state = f.add(f.state, ev.New)
	}
}

// Value returns the current folded state.
func (f *Fold[V, S]) Value() S { return f.state }
