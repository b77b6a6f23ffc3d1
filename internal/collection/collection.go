// Package collection implements the Collection façade of spec.md §4.6:
// the single entry point that owns a Store and a root Index, and is the
// only thing allowed to mutate either. Every public mutation method
// applies the change to the store first, then dispatches the resulting
// Event to the root index — the ordering spec.md §4.2 and §8 require,
// so an index observing an event can trust the store already reflects
// it.
package collection

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/steveyegge/colidx/internal/diag"
	"github.com/steveyegge/colidx/internal/id"
	"github.com/steveyegge/colidx/internal/index"
	"github.com/steveyegge/colidx/internal/store"
	"github.com/steveyegge/colidx/internal/xerrors"
)

// Collection owns the store of type T and the root index Ix built from
// it. Ix is typically a combinator tree's root query handle — Query
// handles and the Collection itself are the only exported surface;
// nothing outside this package ever touches the store directly.
type Collection[T any, Ix index.Index[T]] struct {
	store *store.Store[T]
	root  Ix

	logger     *slog.Logger
	meter      metric.Meter
	dispatches metric.Int64Counter
	tracer     trace.Tracer
}

// Option configures a Collection at construction time. Options are
// additive and off by default: a Collection built with no options does
// no logging and emits no metrics.
type Option[T any, Ix index.Index[T]] func(*Collection[T, Ix])

// WithLogger attaches a structured logger. Every mutation is logged at
// Debug level with its kind and id; nothing is logged by default.
func WithLogger[T any, Ix index.Index[T]](logger *slog.Logger) Option[T, Ix] {
	return func(c *Collection[T, Ix]) {
		c.logger = logger
	}
}

// WithMeter attaches an OpenTelemetry meter. A Collection built with a
// meter records a colidx.dispatches counter, incremented once per
// mutation and tagged with the event kind.
func WithMeter[T any, Ix index.Index[T]](meter metric.Meter) Option[T, Ix] {
	return func(c *Collection[T, Ix]) {
		c.meter = meter
	}
}

// WithTracer attaches an OpenTelemetry tracer. A Collection built with a
// tracer starts and ends one span per dispatched mutation, named
// "colidx.dispatch" and tagged with the event kind and id.
func WithTracer[T any, Ix index.Index[T]](tracer trace.Tracer) Option[T, Ix] {
	return func(c *Collection[T, Ix]) {
		c.tracer = tracer
	}
}

// New builds an empty Collection whose root index is constructed from
// tmpl bound to a fresh store. T is the item type and must be given
// explicitly; Ix is inferred from tmpl.
func New[T any, Ix index.Index[T]](tmpl index.Template[T, Ix], opts ...Option[T, Ix]) *Collection[T, Ix] {
	s := store.New[T]()
	c := &Collection[T, Ix]{
		store: s,
		root:  tmpl(s),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.meter != nil {
		counter, err := c.meter.Int64Counter(
			"colidx.dispatches",
			metric.WithDescription("number of update events dispatched to the root index"),
		)
		if err == nil {
			c.dispatches = counter
		}
	}
	return c
}

func (c *Collection[T, Ix]) dispatch(ev id.Event[T]) {
	if c.logger != nil {
		c.logger.Debug("colidx: dispatch", "kind", ev.Kind.String(), "id", ev.ID.String())
	}
	diag.Logf("colidx: dispatch kind=%s id=%s\n", ev.Kind, ev.ID)

	ctx := context.Background()
	if c.tracer != nil {
		var span trace.Span
		ctx, span = c.tracer.Start(ctx, "colidx.dispatch")
		span.SetAttributes(
			attribute.String("colidx.kind", ev.Kind.String()),
			attribute.String("colidx.id", ev.ID.String()),
		)
		defer span.End()
	}
	if c.dispatches != nil {
		c.dispatches.Add(ctx, 1, metric.WithAttributes(attribute.String("colidx.kind", ev.Kind.String())))
	}
	c.root.Observe(ev)
}

// Insert allocates a fresh id for value, stores it, dispatches an Add
// event to the root index, and returns the new id.
func (c *Collection[T, Ix]) Insert(value T) id.Id {
	i := c.store.Insert(value)
	c.dispatch(id.AddEvent(i, value))
	return i
}

// Get is the absence-tolerant read: a missing id is a (zero, false)
// result, not an error.
func (c *Collection[T, Ix]) Get(i id.Id) (T, bool) {
	return c.store.Get(i)
}

// Update replaces the value held at i with value, dispatching an Update
// event carrying both the old and new values. Updating an unknown id is
// a contract violation (spec.md §7): it panics.
func (c *Collection[T, Ix]) Update(i id.Id, value T) {
	old, ok := c.store.Get(i)
	if !ok {
		xerrors.Violate("Collection.Update", "unknown id %v", i)
	}
	c.store.Replace(i, value)
	c.dispatch(id.UpdateEvent(i, old, value))
}

// Adjust reads the current value at i, applies f to it, and writes the
// result back, dispatching the resulting Update event. Adjusting an
// unknown id is a contract violation: it panics.
func (c *Collection[T, Ix]) Adjust(i id.Id, f func(T) T) {
	old, ok := c.store.Get(i)
	if !ok {
		xerrors.Violate("Collection.Adjust", "unknown id %v", i)
	}
	newValue := f(old)
	c.store.Replace(i, newValue)
	c.dispatch(id.UpdateEvent(i, old, newValue))
}

// Remove deletes the item at i, if present, dispatching a Remove event.
// Unlike the store's own Remove, this is safe and idempotent: removing
// an id that is absent (never issued, or already removed) is not a
// contract violation — it simply reports false.
func (c *Collection[T, Ix]) Remove(i id.Id) (T, bool) {
	old, ok := c.store.Get(i)
	if !ok {
		var zero T
		return zero, false
	}
	c.store.Remove(i)
	c.dispatch(id.RemoveEvent(i, old))
	return old, true
}

// Len returns the number of items currently in the collection.
func (c *Collection[T, Ix]) Len() int {
	return c.store.Len()
}

// Root returns the collection's root query handle, through which every
// index in the tree is reached.
func (c *Collection[T, Ix]) Root() Ix {
	return c.root
}

// Query applies a read-only function to a Collection's root index,
// mirroring the free-function query style spec.md §4.6 describes: the
// caller navigates from root to whatever leaf or aggregate it wants,
// then reads it, without the Collection exposing mutation access to
// that index along the way.
func Query[T any, Ix index.Index[T], R any](c *Collection[T, Ix], f func(Ix) R) R {
	return f(c.root)
}
