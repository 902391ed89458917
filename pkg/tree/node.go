package tree

import "github.com/go-drift/bindings/pkg/graphics"

// NodeID identifies a node registered with the tree.
// The zero value means "not yet registered".
type NodeID int64

// Node is the capability set every tree node implements.
//
// The data value T flows down from the Owner on every phase call. Only
// HandleEvent receives mutable access; every other phase treats data as
// read-only by contract.
type Node[T any] interface {
	// HandleEvent processes one input event or command. This is the only
	// phase in which data may be mutated.
	HandleEvent(ctx *EventContext, event Event, data *T)

	// Lifecycle delivers structural notifications (attach, detach).
	Lifecycle(ctx *LifecycleContext, event LifecycleEvent, data *T)

	// Update runs after data changed, with the previous and current values.
	Update(ctx *UpdateContext, old, new *T)

	// Layout measures the node within the given constraints.
	Layout(ctx *LayoutContext, constraints Constraints, data *T) graphics.Size

	// Paint records drawing operations for the node.
	Paint(ctx *PaintContext, data *T)
}
