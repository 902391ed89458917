package bind

import (
	"github.com/go-drift/bindings/pkg/data"
	"github.com/go-drift/bindings/pkg/graphics"
	"github.com/go-drift/bindings/pkg/tree"
)

// Selectors for the self-addressed wake-up commands.
const (
	// SelectorInit asks a freshly attached host to run its first data
	// synchronization.
	SelectorInit tree.Selector = "bindings.init"
	// SelectorApply wakes a host so a queued change reaches the event
	// phase promptly.
	SelectorApply tree.Selector = "bindings.apply"
)

type hostState uint8

const (
	hostNew hostState = iota
	hostInit
	hostTwoWay
)

func (s hostState) String() string {
	switch s {
	case hostInit:
		return "init"
	case hostTwoWay:
		return "twoWay"
	default:
		return "new"
	}
}

// HostNode is the constraint a wrapped node must satisfy: it is a tree node
// for the data type T and it reaches a bindable target of type C.
type HostNode[T, C any] interface {
	tree.Node[T]
	Bindable[C]
}

// Host wraps a controlled node plus one Binding and runs the
// synchronization state machine across the tree's phases. It is itself a
// conforming tree node and nests arbitrarily.
type Host[T, C any] struct {
	contained tree.Node[T]
	reach     Bindable[C]
	binding   Binding[T, C]
	pending   Change
	state     hostState
	id        tree.NodeID
}

// NewHost creates a binding host from a node and a binding. The node may be
// a chain of trivial wrappers; the binding targets the nearest node in the
// chain that owns bindable state.
func NewHost[T, C any](contained HostNode[T, C], binding Binding[T, C]) *Host[T, C] {
	return &Host[T, C]{
		contained: contained,
		reach:     contained,
		binding:   binding,
	}
}

// And composes an additional binding onto the host. Useful for method
// chaining of multiple bindings over the same controlled node. Must be
// called before the host is attached.
func (h *Host[T, C]) And(binding Binding[T, C]) *Host[T, C] {
	h.binding = Join(h.binding, binding)
	return h
}

// HandleEvent runs the event-phase leg of the synchronization protocol.
// This is the only phase in which queued changes are applied to data.
func (h *Host[T, C]) HandleEvent(ctx *tree.EventContext, event tree.Event, d *T) {
	switch h.state {
	case hostNew:
		// Not attached yet: the node's reported values are meaningless
		// defaults, so no binding logic runs.
		h.contained.HandleEvent(ctx, event, d)

	case hostInit:
		if cmd, ok := event.(tree.CommandEvent); ok && cmd.Selector == SelectorInit && cmd.Target == h.id {
			// The wake-up itself cannot carry data mutation; escalate to
			// an update pass, where the first synchronization runs.
			ctx.SetHandled()
			ctx.RequestUpdate()
			return
		}
		h.contained.HandleEvent(ctx, event, d)

	case hostTwoWay:
		// Changes that accrued in earlier phases, before the wrapped node
		// (or any sibling) sees this pass's data.
		h.applyPendingChange(ctx, d)

		if cmd, ok := event.(tree.CommandEvent); ok && cmd.Selector == SelectorApply && cmd.Target == h.id {
			ctx.SetHandled() // handled by the drain above
		} else {
			h.contained.HandleEvent(ctx, event, d)
		}

		// Changes that occurred just now.
		h.checkForChanges(d, ctx.Submit)
	}
}

// Lifecycle intercepts the attach notification to enter Init and schedule
// the first synchronization.
func (h *Host[T, C]) Lifecycle(ctx *tree.LifecycleContext, event tree.LifecycleEvent, d *T) {
	switch event.Kind {
	case tree.NodeAttached:
		h.state = hostInit
		h.id = ctx.RegisterNode()
		ctx.Submit(tree.CommandEvent{Selector: SelectorInit, Target: h.id})
		registerHost(h)
	case tree.NodeDetached:
		// A stale pending change is dropped with its host, which goes back
		// to inert until a reattach re-initializes it.
		h.state = hostNew
		h.pending = nil
		unregisterHost(h)
	}

	h.contained.Lifecycle(ctx, event, d)

	h.checkForChanges(d, ctx.Submit)
}

// Update applies data to the controlled node. The first update pass after
// Init seeds the node unconditionally and enters TwoWay; thereafter the
// node is re-seeded only when data actually changed.
func (h *Host[T, C]) Update(ctx *tree.UpdateContext, old, new *T) {
	apply := false
	switch h.state {
	case hostInit:
		h.state = hostTwoWay
		apply = true
		observeSeed()
	case hostTwoWay:
		// A queued change means the node is ahead of data; writing data
		// over it now would lose the newer node state. The change reaches
		// data in the next event phase, and the update pass that follows
		// reconciles any remaining difference.
		apply = !data.Same(*old, *new) && h.pending == nil
	}

	if apply {
		h.binding.ApplyDataToControlled(new, h.reach.Bindable(), ctx)
	}

	h.contained.Update(ctx, old, new)

	h.checkForChanges(new, ctx.Submit)
}

func (h *Host[T, C]) Layout(ctx *tree.LayoutContext, constraints tree.Constraints, d *T) graphics.Size {
	size := h.contained.Layout(ctx, constraints, d)
	h.checkForChanges(d, ctx.Submit)
	return size
}

func (h *Host[T, C]) Paint(ctx *tree.PaintContext, d *T) {
	h.contained.Paint(ctx, d)
	// Commands cannot be submitted from paint; any divergence here is
	// picked up by a later phase.
}

// applyPendingChange drains the pending slot into data. The slot is cleared
// before the binding runs, so exactly one application happens per detected
// divergence.
func (h *Host[T, C]) applyPendingChange(ctx *tree.EventContext, d *T) {
	if h.pending == nil {
		return
	}
	change := h.pending
	h.pending = nil
	h.binding.ConsumeChange(h.reach.Bindable(), d, change, ctx)
	observeApply()
}

// checkForChanges collects node-side divergence into the pending slot and,
// if anything is queued, schedules a self-addressed wake-up so the event
// phase runs promptly. No-op before TwoWay.
func (h *Host[T, C]) checkForChanges(d *T, submit func(tree.CommandEvent)) {
	if h.state != hostTwoWay || h.id == 0 {
		return
	}
	had := h.pending != nil
	h.binding.CollectChange(h.reach.Bindable(), d, &h.pending)
	if h.pending != nil && !had {
		// One wake-up per queued change; re-collections while a command is
		// already in flight must not pile further commands onto the queue.
		observeDivergence()
		submit(tree.CommandEvent{Selector: SelectorApply, Target: h.id})
	}
}

// Status reports a point-in-time snapshot for inspection.
func (h *Host[T, C]) Status() HostStatus {
	return HostStatus{
		ID:      int64(h.id),
		State:   h.state.String(),
		Pending: h.pending != nil,
	}
}
