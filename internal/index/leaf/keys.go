package leaf

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/steveyegge/colidx/internal/id"
	"github.com/steveyegge/colidx/internal/index"
	"github.com/steveyegge/colidx/internal/store"
)

// KeySet tracks only the set of ids currently in scope. It is the
// terminal spec.md §4.3 describes for use inside grouped(...) when the
// caller wants "which ids belong to group G" and nothing more.
type KeySet[V any] struct {
	ids *roaring.Bitmap
}

// Keys builds the template for a KeySet observing values of type V,
// inside a collection whose store holds items of type T. T only
// parameterizes the template signature — KeySet tracks membership, not
// value content, so it never reads the store.
func Keys[V any, T any]() index.Template[T, *KeySet[V]] {
	return func(_ *store.Store[T]) *KeySet[V] {
		return &KeySet[V]{ids: roaring.New()}
	}
}

func (k *KeySet[V]) Observe(ev id.Event[V]) {
	switch ev.Kind {
	case id.Add:
		k.ids.Add(ev.ID.Uint32())
	case id.Remove:
		k.ids.Remove(ev.ID.Uint32())
	case id.Update:
		// Membership is unaffected by a value change in place.
	}
}

// Len returns the number of ids currently in scope.
func (k *KeySet[V]) Len() int { return int(k.ids.GetCardinality()) }

// Contains reports whether i is currently in scope.
func (k *KeySet[V]) Contains(i id.Id) bool { return k.ids.Contains(i.Uint32()) }

// Ids returns the ids currently in scope; iteration order is
// unspecified.
func (k *KeySet[V]) Ids() []id.Id {
	arr := k.ids.ToArray()
	out := make([]id.Id, len(arr))
	for i, v := range arr {
		out[i] = id.Id(v)
	}
	return out
}
