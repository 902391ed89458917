package tree

import (
	"github.com/go-drift/bindings/pkg/data"
	"github.com/go-drift/bindings/pkg/errors"
	"github.com/go-drift/bindings/pkg/graphics"
)

// DefaultSurfaceWidth is the logical width used when none is set.
const DefaultSurfaceWidth = 800.0

// DefaultSurfaceHeight is the logical height used when none is set.
const DefaultSurfaceHeight = 600.0

// Owner drives a node tree through its phases and owns the application data.
//
// The owner is the sole owner of the data value; nodes see it only for the
// duration of a phase call. After every event walk the owner compares data
// against the snapshot taken at the previous update pass and, if it
// diverged (or an update was requested), runs an update walk with old and
// new values.
type Owner[T any] struct {
	root Node[T]
	data T
	// last is the shallow snapshot of data as of the previous update pass.
	last T

	size       graphics.Size
	queue      []CommandEvent
	nextNodeID NodeID
	attached   bool

	updateRequested bool
	layoutRequested bool
	paintRequested  bool
	animRequested   bool

	recorder graphics.Recorder
	rootSize graphics.Size
}

// NewOwner creates an owner for the given root node and initial data.
func NewOwner[T any](root Node[T], initial T) *Owner[T] {
	return &Owner[T]{
		root: root,
		data: initial,
		last: initial,
		size: graphics.Size{Width: DefaultSurfaceWidth, Height: DefaultSurfaceHeight},
	}
}

// SetSize sets the logical surface size used for layout.
func (o *Owner[T]) SetSize(size graphics.Size) {
	o.size = size
	o.layoutRequested = true
}

// Data returns a copy of the current application data.
func (o *Owner[T]) Data() T {
	return o.data
}

// ModifyData mutates the application data from outside the tree, as an
// embedder would in response to an external input. The change is picked up
// by the update pass on the next pump.
func (o *Owner[T]) ModifyData(mutate func(*T)) {
	mutate(&o.data)
}

// Attach delivers the NodeAttached lifecycle notification to the tree.
// It runs at most once; Pump attaches implicitly if needed.
func (o *Owner[T]) Attach() {
	if o.attached {
		return
	}
	o.attached = true
	ctx := &LifecycleContext{contextBase{owner: o}}
	o.root.Lifecycle(ctx, LifecycleEvent{Kind: NodeAttached}, &o.data)
}

// Detach tears the tree down. Pending commands are discarded.
func (o *Owner[T]) Detach() {
	if !o.attached {
		return
	}
	o.attached = false
	o.queue = nil
	ctx := &LifecycleContext{contextBase{owner: o}}
	o.root.Lifecycle(ctx, LifecycleEvent{Kind: NodeDetached}, &o.data)
}

// DispatchEvent runs one event-phase walk with the given event, followed by
// an update pass if data changed or an update was requested.
func (o *Owner[T]) DispatchEvent(event Event) {
	defer errors.Recover("tree.Owner.DispatchEvent")
	ctx := &EventContext{contextBase: contextBase{owner: o}}
	o.root.HandleEvent(ctx, event, &o.data)
	o.runUpdateIfNeeded()
}

// Pump runs one frame: queued commands (each as its own event walk), a
// trailing update pass if needed, then layout and paint.
func (o *Owner[T]) Pump() {
	if !o.attached {
		o.Attach()
	}

	// Commands submitted while draining are delivered on the next pump;
	// scheduling defers across walks, never within one.
	pending := o.queue
	o.queue = nil
	for _, cmd := range pending {
		o.DispatchEvent(cmd)
	}

	o.runUpdateIfNeeded()
	o.runLayout()
	o.runPaint()
}

// PumpUntilSettled pumps until no commands or update requests remain,
// up to maxFrames. It reports whether the tree settled.
func (o *Owner[T]) PumpUntilSettled(maxFrames int) bool {
	for i := 0; i < maxFrames; i++ {
		o.Pump()
		if len(o.queue) == 0 && !o.updateRequested && !o.dataDiverged() {
			return true
		}
	}
	return false
}

// HasPendingCommands reports whether commands await the next pump.
func (o *Owner[T]) HasPendingCommands() bool {
	return len(o.queue) > 0
}

// LastFrame returns the drawing operations recorded by the latest paint.
func (o *Owner[T]) LastFrame() []graphics.DisplayOp {
	return o.recorder.Ops()
}

// RootSize returns the size the root resolved to during the latest layout.
func (o *Owner[T]) RootSize() graphics.Size {
	return o.rootSize
}

// AnimFrameRequested reports and clears the animation-frame request flag.
func (o *Owner[T]) AnimFrameRequested() bool {
	requested := o.animRequested
	o.animRequested = false
	return requested
}

func (o *Owner[T]) dataDiverged() bool {
	return !data.Same(o.last, o.data)
}

func (o *Owner[T]) runUpdateIfNeeded() {
	if !o.updateRequested && !o.dataDiverged() {
		return
	}
	o.updateRequested = false
	old := o.last
	ctx := &UpdateContext{contextBase{owner: o}}
	o.root.Update(ctx, &old, &o.data)
	o.last = o.data
}

func (o *Owner[T]) runLayout() {
	o.layoutRequested = false
	ctx := &LayoutContext{contextBase{owner: o}}
	o.rootSize = o.root.Layout(ctx, Tight(o.size), &o.data)
}

func (o *Owner[T]) runPaint() {
	o.paintRequested = false
	o.recorder.Reset()
	ctx := &PaintContext{Canvas: &o.recorder}
	o.root.Paint(ctx, &o.data)
}

// scheduler implementation.

func (o *Owner[T]) submit(cmd CommandEvent) {
	if !o.attached {
		return
	}
	o.queue = append(o.queue, cmd)
}

func (o *Owner[T]) registerNode() NodeID {
	o.nextNodeID++
	return o.nextNodeID
}

func (o *Owner[T]) requestUpdate() {
	o.updateRequested = true
}

func (o *Owner[T]) requestLayout() {
	o.layoutRequested = true
}

func (o *Owner[T]) requestPaint() {
	o.paintRequested = true
}

func (o *Owner[T]) requestAnimFrame() {
	o.animRequested = true
}
