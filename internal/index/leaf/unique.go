package leaf

import (
	"github.com/steveyegge/colidx/internal/id"
	"github.com/steveyegge/colidx/internal/index"
	"github.com/steveyegge/colidx/internal/store"
	"github.com/steveyegge/colidx/internal/xerrors"
)

// Unique maintains a bijection between key and id, backed by a hash
// map. Violating uniqueness on Add is a contract violation (spec.md
// §7): it panics rather than silently overwriting the prior owner.
type Unique[K comparable, T any] struct {
	store *store.Store[T]
	byKey map[K]id.Id
}

// HashUnique builds the template for a Unique index over key type K.
func HashUnique[K comparable, T any]() index.Template[T, *Unique[K, T]] {
	return func(s *store.Store[T]) *Unique[K, T] {
		return &Unique[K, T]{store: s, byKey: make(map[K]id.Id)}
	}
}

func (u *Unique[K, T]) Observe(ev id.Event[K]) {
	switch ev.Kind {
	case id.Add:
		u.insert(ev.ID, ev.New)
	case id.Remove:
		delete(u.byKey, ev.Old)
	case id.Update:
		if ev.Old == ev.New {
			return
		}
		delete(u.byKey, ev.Old)
		u.insert(ev.ID, ev.New)
	}
}

func (u *Unique[K, T]) insert(i id.Id, key K) {
	if existing, ok := u.byKey[key]; ok && existing != i {
		xerrors.Violate("Unique.Observe", "duplicate key %v: already held by id %v", key, existing)
	}
	u.byKey[key] = i
}

// Get returns the item envelope for key, or false if key is absent.
func (u *Unique[K, T]) Get(key K) (id.Item[T], bool) {
	i, ok := u.byKey[key]
	if !ok {
		return id.Item[T]{}, false
	}
	v, ok := u.store.Get(i)
	if !ok {
		return id.Item[T]{}, false
	}
	return id.Item[T]{ID: i, Value: v}, true
}

// Len returns the number of keys currently indexed.
func (u *Unique[K, T]) Len() int { return len(u.byKey) }
