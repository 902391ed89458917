package bind

import (
	"github.com/go-drift/bindings/pkg/data"
	"github.com/go-drift/bindings/pkg/tree"
)

// Binding is a two-way link between one field of the data T and one
// attribute of a controlled node C.
type Binding[T, C any] interface {
	// ApplyDataToControlled takes the bound value from data and writes it
	// into the node. Runs during the update phase, when data has changed.
	ApplyDataToControlled(data *T, node *C, ctx *tree.UpdateContext)

	// CollectChange compares the node against data and, on divergence,
	// stores a Change into slot. May run from any phase; it queues changes
	// for the next event phase.
	CollectChange(node *C, data *T, slot *Change)

	// ConsumeChange folds an accrued change into data. Runs only during
	// the event phase.
	ConsumeChange(node *C, data *T, change Change, ctx *tree.EventContext)
}

// Bind pairs a lens on the data with a property on the controlled node.
func Bind[T, C, V any](lens data.Lens[T, V], property Property[C, V]) Binding[T, C] {
	return lensPropBinding[T, C, V]{lens: lens, property: property}
}

type lensPropBinding[T, C, V any] struct {
	lens     data.Lens[T, V]
	property Property[C, V]
}

func (b lensPropBinding[T, C, V]) ApplyDataToControlled(d *T, node *C, ctx *tree.UpdateContext) {
	b.lens.With(d, func(value V) {
		b.property.Write(node, ctx, value)
	})
	b.property.Requests().Notify(ctx)
}

func (b lensPropBinding[T, C, V]) CollectChange(node *C, d *T, slot *Change) {
	b.lens.With(d, func(value V) {
		if change := b.property.Detect(node, value); change != nil {
			*slot = change
		}
	})
}

func (b lensPropBinding[T, C, V]) ConsumeChange(node *C, d *T, change Change, ctx *tree.EventContext) {
	b.lens.WithMut(d, func(field *V) {
		b.property.Fold(node, field, change)
	})
}

// Join composes bindings into one. Legs are evaluated in order: leg 0 is
// always applied and collected before leg 1, and so on. The joined change
// is a per-leg slice; it collapses to "no change" only when every leg is
// empty.
func Join[T, C any](bindings ...Binding[T, C]) Binding[T, C] {
	if len(bindings) == 1 {
		return bindings[0]
	}
	return joinedBinding[T, C]{legs: bindings}
}

type joinedBinding[T, C any] struct {
	legs []Binding[T, C]
}

func (b joinedBinding[T, C]) ApplyDataToControlled(d *T, node *C, ctx *tree.UpdateContext) {
	for _, leg := range b.legs {
		leg.ApplyDataToControlled(d, node, ctx)
	}
}

func (b joinedBinding[T, C]) CollectChange(node *C, d *T, slot *Change) {
	slots, ok := (*slot).([]Change)
	if !ok || len(slots) != len(b.legs) {
		slots = make([]Change, len(b.legs))
	}
	for i, leg := range b.legs {
		leg.CollectChange(node, d, &slots[i])
	}
	for _, change := range slots {
		if change != nil {
			*slot = slots
			return
		}
	}
	*slot = nil
}

func (b joinedBinding[T, C]) ConsumeChange(node *C, d *T, change Change, ctx *tree.EventContext) {
	slots, ok := change.([]Change)
	if !ok || len(slots) != len(b.legs) {
		return
	}
	for i, leg := range b.legs {
		if slots[i] != nil {
			leg.ConsumeChange(node, d, slots[i], ctx)
		}
	}
}

// Forward restricts a binding to the data-to-node direction: node-side
// changes are never collected or applied back.
func Forward[T, C any](binding Binding[T, C]) Binding[T, C] {
	return forwardBinding[T, C]{inner: binding}
}

type forwardBinding[T, C any] struct {
	inner Binding[T, C]
}

func (b forwardBinding[T, C]) ApplyDataToControlled(d *T, node *C, ctx *tree.UpdateContext) {
	b.inner.ApplyDataToControlled(d, node, ctx)
}

func (b forwardBinding[T, C]) CollectChange(node *C, d *T, slot *Change) {}

func (b forwardBinding[T, C]) ConsumeChange(node *C, d *T, change Change, ctx *tree.EventContext) {
}

// Backward restricts a binding to the node-to-data direction: data changes
// never reach the node.
func Backward[T, C any](binding Binding[T, C]) Binding[T, C] {
	return backwardBinding[T, C]{inner: binding}
}

type backwardBinding[T, C any] struct {
	inner Binding[T, C]
}

func (b backwardBinding[T, C]) ApplyDataToControlled(d *T, node *C, ctx *tree.UpdateContext) {}

func (b backwardBinding[T, C]) CollectChange(node *C, d *T, slot *Change) {
	b.inner.CollectChange(node, d, slot)
}

func (b backwardBinding[T, C]) ConsumeChange(node *C, d *T, change Change, ctx *tree.EventContext) {
	b.inner.ConsumeChange(node, d, change, ctx)
}
