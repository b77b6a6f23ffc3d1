// Package store implements the Store of spec.md §4.1: the sole owner
// of item values, keyed by the identifier the Collection issues on
// insert. Every index holds ids only; only the Store ever holds a
// value of type T.
package store

import (
	"iter"

	"github.com/steveyegge/colidx/internal/id"
	"github.com/steveyegge/colidx/internal/xerrors"
)

// Store maps an Id to its current item value. Iteration order is
// unspecified.
type Store[T any] struct {
	items  map[id.Id]T
	nextID id.Id
}

// New returns an empty store. Ids are issued starting at 0.
func New[T any]() *Store[T] {
	return &Store[T]{items: make(map[id.Id]T)}
}

// Insert allocates a fresh id, places value under it, and returns the
// id. Ids are issued from a strictly monotonic counter: this id is
// never reused, even after the item is later removed.
func (s *Store[T]) Insert(value T) id.Id {
	i := s.nextID
	s.nextID++
	s.items[i] = value
	return i
}

// Get is the read-only, absence-tolerant lookup: a missing id is not an
// error, just a (zero, false) result.
func (s *Store[T]) Get(i id.Id) (T, bool) {
	v, ok := s.items[i]
	return v, ok
}

// Replace overwrites the value at i and returns the value it replaced,
// so the caller can build an Update event carrying both sides.
// Replacing an unknown id is a contract violation (spec.md §7): it
// panics rather than silently inserting.
func (s *Store[T]) Replace(i id.Id, value T) T {
	old, ok := s.items[i]
	if !ok {
		xerrors.Violate("store.Replace", "unknown id %v", i)
	}
	s.items[i] = value
	return old
}

// Remove deletes the value at i and returns it. Removing an unknown id
// is a contract violation (spec.md §7): callers that want a safe,
// idempotent remove should check Get first, which is exactly what the
// Collection façade does.
func (s *Store[T]) Remove(i id.Id) T {
	old, ok := s.items[i]
	if !ok {
		xerrors.Violate("store.Remove", "unknown id %v", i)
	}
	delete(s.items, i)
	return old
}

// Len returns the number of items currently stored.
func (s *Store[T]) Len() int {
	return len(s.items)
}

// Iter enumerates (id, value) pairs in unspecified order. Intended for
// diagnostics and tests — normal reads go through the maintained
// indexes, not the store.
func (s *Store[T]) Iter() iter.Seq2[id.Id, T] {
	return func(yield func(id.Id, T) bool) {
		for k, v := range s.items {
			if !yield(k, v) {
				return
			}
		}
	}
}
