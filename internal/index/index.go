// Package index defines the uniform observer contract (spec.md §4.2)
// every leaf index, aggregate, and combinator implements, plus the
// Template type that separates "how to build an index, given a store"
// from a live, store-bound index instance.
package index

import (
	"github.com/steveyegge/colidx/internal/id"
	"github.com/steveyegge/colidx/internal/store"
)

// Index is the single observer operation every index node in the tree
// implements: given an Event, apply it to local state. It must accept
// every Kind (totality). Leaves have no notion of an out-of-scope
// value; moving items in and out of scope is done by the Filtered
// combinator, which turns boundary-crossing Updates into Add or Remove.
//
// If Observe panics, the index's state is undefined and the owning
// collection is considered poisoned: no partial-success recovery is
// attempted. Indexes do no I/O; Observe is a pure in-memory update.
type Index[V any] interface {
	Observe(ev id.Event[V])
}

// Template describes how to build a live Index of type Ix for a
// collection whose store holds items of type T. A template is not yet
// bound to a store; invoking it with the collection's *store.Store[T]
// produces the live instance that holds that store reference (when it
// needs one, e.g. to resolve item envelopes) for the life of the
// collection.
type Template[T any, Ix any] func(s *store.Store[T]) Ix
