package combinator

import (
	"github.com/steveyegge/colidx/internal/id"
	"github.com/steveyegge/colidx/internal/index"
	"github.com/steveyegge/colidx/internal/store"
)

// Zip2 broadcasts every event to both children, in declaration order.
// Children are independent: neither's state ever depends on the
// other's. The query handle is the pair itself, exposed as First and
// Second.
type Zip2[V any, A index.Index[V], B index.Index[V]] struct {
	First  A
	Second B
}

// NewZip2 builds the template for a Zip2 combinator. T and V must be
// given explicitly; A and B are inferred from the template arguments.
func NewZip2[T any, V any, A index.Index[V], B index.Index[V]](a index.Template[T, A], b index.Template[T, B]) index.Template[T, *Zip2[V, A, B]] {
	return func(s *store.Store[T]) *Zip2[V, A, B] {
		return &Zip2[V, A, B]{First: a(s), Second: b(s)}
	}
}

func (z *Zip2[V, A, B]) Observe(ev id.Event[V]) {
	z.First.Observe(ev)
	z.Second.Observe(ev)
}

// Zip3 broadcasts every event to three children, in declaration order.
type Zip3[V any, A index.Index[V], B index.Index[V], C index.Index[V]] struct {
	First  A
	Second B
	Third  C
}

// NewZip3 builds the template for a Zip3 combinator. T and V must be
// given explicitly; A, B, and C are inferred from the template
// arguments.
func NewZip3[T any, V any, A index.Index[V], B index.Index[V], C index.Index[V]](a index.Template[T, A], b index.Template[T, B], c index.Template[T, C]) index.Template[T, *Zip3[V, A, B, C]] {
	return func(s *store.Store[T]) *Zip3[V, A, B, C] {
		return &Zip3[V, A, B, C]{First: a(s), Second: b(s), Third: c(s)}
	}
}

func (z *Zip3[V, A, B, C]) Observe(ev id.Event[V]) {
	z.First.Observe(ev)
	z.Second.Observe(ev)
	z.Third.Observe(ev)
}

// Zip4 broadcasts every event to four children, in declaration order.
type Zip4[V any, A index.Index[V], B index.Index[V], C index.Index[V], D index.Index[V]] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// NewZip4 builds the template for a Zip4 combinator. T and V must be
// given explicitly; A, B, C, and D are inferred from the template
// arguments.
func NewZip4[T any, V any, A index.Index[V], B index.Index[V], C index.Index[V], D index.Index[V]](a index.Template[T, A], b index.Template[T, B], c index.Template[T, C], d index.Template[T, D]) index.Template[T, *Zip4[V, A, B, C, D]] {
	return func(s *store.Store[T]) *Zip4[V, A, B, C, D] {
		return &Zip4[V, A, B, C, D]{First: a(s), Second: b(s), Third: c(s), Fourth: d(s)}
	}
}

func (z *Zip4[V, A, B, C, D]) Observe(ev id.Event[V]) {
	z.First.Observe(ev)
	z.Second.Observe(ev)
	z.Third.Observe(ev)
	z.Fourth.Observe(ev)
}
