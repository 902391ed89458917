// Package bind synchronizes application data with the mutable runtime state
// of tree nodes, in both directions, without feedback loops.
//
// A Property describes one bindable attribute of a controlled node: how to
// write a value into it, how to detect that the live value diverged from a
// last-known value, and how to fold that divergence back into a data field.
// A Binding pairs a data-side lens with a node-side Property. A Host wraps a
// controlled node together with one Binding and runs the synchronization
// protocol across the tree's phases.
//
// # Synchronization protocol
//
// A Host moves through three states:
//
//	New -----(attach)----> Init -----(first update pass)----> TwoWay
//
// While New or Init, no node-to-data flow happens: the node's initial state
// is not yet trustworthy relative to data, which prevents a first-frame
// feedback write. On attach the host registers for a tree identifier and
// submits a self-addressed init command; when that command arrives during
// the event phase it requests an update pass, and the first update pass
// seeds the node from data unconditionally and enters TwoWay.
//
// In TwoWay every phase call drains the pending change into data (event
// phase only), forwards the phase to the wrapped node, re-applies data to
// the node if data changed, and finally re-checks the node for divergence.
// A detected divergence queues a self-addressed apply command so the event
// phase runs again promptly; the change itself is consumed there, the only
// phase in which data may be mutated.
//
// # Composition
//
// Join combines bindings; legs evaluate in order, and their changes are
// tracked per leg. Forward and Backward restrict a binding to one
// direction. ReadOnly and WriteOnly do the same at the property level.
package bind
