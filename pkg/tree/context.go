package tree

import "github.com/go-drift/bindings/pkg/graphics"

// scheduler is the owner-side surface contexts delegate to.
type scheduler interface {
	submit(cmd CommandEvent)
	registerNode() NodeID
	requestUpdate()
	requestLayout()
	requestPaint()
	requestAnimFrame()
}

type contextBase struct {
	owner scheduler
}

// Submit enqueues a command for delivery on a future event-phase walk.
func (c *contextBase) Submit(cmd CommandEvent) {
	c.owner.submit(cmd)
}

// EventContext is passed to HandleEvent.
type EventContext struct {
	contextBase
	handled bool
}

// SetHandled marks the current event as consumed. Containers stop
// forwarding a handled event to further children.
func (c *EventContext) SetHandled() {
	c.handled = true
}

// IsHandled reports whether a node consumed the current event.
func (c *EventContext) IsHandled() bool {
	return c.handled
}

// RequestUpdate asks the owner to run an update pass after this event walk
// even if data did not change.
func (c *EventContext) RequestUpdate() {
	c.owner.requestUpdate()
}

// RequestLayout marks the tree as needing layout.
func (c *EventContext) RequestLayout() {
	c.owner.requestLayout()
}

// RequestPaint marks the tree as needing paint.
func (c *EventContext) RequestPaint() {
	c.owner.requestPaint()
}

// LifecycleContext is passed to Lifecycle.
type LifecycleContext struct {
	contextBase
}

// RegisterNode allocates a tree-assigned identifier for the calling node.
// Nodes that want to receive self-addressed commands call this on attach.
func (c *LifecycleContext) RegisterNode() NodeID {
	return c.owner.registerNode()
}

// UpdateContext is passed to Update.
type UpdateContext struct {
	contextBase
}

// RequestLayout marks the tree as needing layout.
func (c *UpdateContext) RequestLayout() {
	c.owner.requestLayout()
}

// RequestPaint marks the tree as needing paint.
func (c *UpdateContext) RequestPaint() {
	c.owner.requestPaint()
}

// RequestAnimFrame asks the owner to keep pumping frames.
func (c *UpdateContext) RequestAnimFrame() {
	c.owner.requestAnimFrame()
}

// LayoutContext is passed to Layout.
type LayoutContext struct {
	contextBase
}

// PaintContext is passed to Paint. Commands cannot be submitted from paint;
// anything detected here is picked up by a later phase.
type PaintContext struct {
	Canvas graphics.Canvas
}
