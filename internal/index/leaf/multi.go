package leaf

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/steveyegge/colidx/internal/id"
	"github.com/steveyegge/colidx/internal/index"
	"github.com/steveyegge/colidx/internal/store"
)

// Multi maps each key to the set of ids currently hashed to it,
// backed by a roaring bitmap per key — a natural fit since ids are
// dense, monotonically-issued integers. See SPEC_FULL.md §6 for why
// roaring over a plain map[Id]struct{} per key.
type Multi[K comparable, T any] struct {
	store *store.Store[T]
	byKey map[K]*roaring.Bitmap
}

// HashMulti builds the template for a Multi index over key type K.
func HashMulti[K comparable, T any]() index.Template[T, *Multi[K, T]] {
	return func(s *store.Store[T]) *Multi[K, T] {
		return &Multi[K, T]{store: s, byKey: make(map[K]*roaring.Bitmap)}
	}
}

func (m *Multi[K, T]) Observe(ev id.Event[K]) {
	switch ev.Kind {
	case id.Add:
		m.insert(ev.ID, ev.New)
	case id.Remove:
		m.delete(ev.ID, ev.Old)
	case id.Update:
		if ev.Old == ev.New {
			return
		}
		m.delete(ev.ID, ev.Old)
		m.insert(ev.ID, ev.New)
	}
}

func (m *Multi[K, T]) insert(i id.Id, key K) {
	bm, ok := m.byKey[key]
	if !ok {
		bm = roaring.New()
		m.byKey[key] = bm
	}
	bm.Add(i.Uint32())
}

func (m *Multi[K, T]) delete(i id.Id, key K) {
	bm, ok := m.byKey[key]
	if !ok {
		return
	}
	bm.Remove(i.Uint32())
	if bm.IsEmpty() {
		delete(m.byKey, key)
	}
}

// Get returns the ids mapped to key; iteration order is unspecified.
func (m *Multi[K, T]) Get(key K) []id.Id {
	bm, ok := m.byKey[key]
	if !ok {
		return nil
	}
	arr := bm.ToArray()
	out := make([]id.Id, len(arr))
	for i, v := range arr {
		out[i] = id.Id(v)
	}
	return out
}

// Count returns the number of ids mapped to key.
func (m *Multi[K, T]) Count(key K) int {
	bm, ok := m.byKey[key]
	if !ok {
		return 0
	}
	return int(bm.GetCardinality())
}
