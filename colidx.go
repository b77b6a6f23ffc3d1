// Package colidx is an embedded, in-memory document collection with
// composable secondary indexes. A Collection owns a set of items of a
// single type T, each assigned an Id on insert, and a tree of indexes
// built once at construction time from leaf indexes (ordered, unique,
// multi, keys), aggregates (count, sum, mean, min, max, fold), and
// combinators (premap, filtered, grouped, zip) that transform and
// compose them. Every mutation — Insert, Update, Adjust, Remove — is
// applied to the backing store first, then dispatched as an Event to
// the index tree, so every index stays exactly consistent with the
// store after each call returns.
//
// Collections are not safe for concurrent use; callers that need
// concurrent access should hold their own lock around a Collection, the
// same way they would around a plain map.
package colidx

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/steveyegge/colidx/internal/collection"
	"github.com/steveyegge/colidx/internal/id"
	"github.com/steveyegge/colidx/internal/index"
)

// Id identifies an item within a single Collection. Ids are issued from
// a strictly monotonic counter: they are never reused, even after the
// item they named is removed.
type Id = id.Id

// Index is the observer contract every leaf index, aggregate, and
// combinator implements. User code does not normally implement this
// itself; it is exposed so custom index types can participate in a
// combinator tree built with Zip, Grouped, or Premap.
type Index[V any] = index.Index[V]

// Template describes how to build a live index for a Collection whose
// items have type T, before any store exists to bind it to. Every
// constructor in this package (BTree, Count, Grouped, and so on)
// returns a Template; New binds the whole tree to a fresh store.
type Template[T any, Ix any] = index.Template[T, Ix]

// Collection owns a set of items of type T and the root index Ix built
// over them. Construct one with New.
type Collection[T any, Ix Index[T]] = collection.Collection[T, Ix]

// Option configures a Collection at construction time.
type Option[T any, Ix Index[T]] = collection.Option[T, Ix]

// WithLogger attaches a structured logger to a Collection, used to log
// each dispatched mutation at Debug level. Off by default.
func WithLogger[T any, Ix Index[T]](logger *slog.Logger) Option[T, Ix] {
	return collection.WithLogger[T, Ix](logger)
}

// WithMeter attaches an OpenTelemetry meter to a Collection, used to
// record a dispatches counter tagged by event kind. Off by default.
func WithMeter[T any, Ix Index[T]](meter metric.Meter) Option[T, Ix] {
	return collection.WithMeter[T, Ix](meter)
}

// WithTracer attaches an OpenTelemetry tracer to a Collection, used to
// record one span per dispatched mutation. Off by default.
func WithTracer[T any, Ix Index[T]](tracer trace.Tracer) Option[T, Ix] {
	return collection.WithTracer[T, Ix](tracer)
}

// New builds an empty Collection whose root index is produced by tmpl.
// T is the item type and must be given explicitly; Ix is inferred from
// tmpl.
func New[T any, Ix Index[T]](tmpl Template[T, Ix], opts ...Option[T, Ix]) *Collection[T, Ix] {
	return collection.New[T, Ix](tmpl, opts...)
}

// Query applies a read-only function to a Collection's root index. Use
// it to navigate from the root down to whatever leaf or aggregate a
// caller wants without the Collection itself exposing mutation access
// along the way.
func Query[T any, Ix Index[T], R any](c *Collection[T, Ix], f func(Ix) R) R {
	return collection.Query(c, f)
}
