// Package tree provides the retained-mode node tree the binding layer runs
// inside: the node capability set, the phase contexts, and the frame driver.
//
// A tree walks through distinct phases each frame. The event phase is the
// only phase in which application data may be mutated; lifecycle, update,
// layout, and paint are read-only with respect to data. Data is owned by the
// Owner and threaded down to every node on every phase call.
//
// # Phases
//
// HandleEvent receives input events and self-addressed commands; it is the
// mutation-legal phase. Lifecycle delivers structural notifications such as
// attach and detach. Update delivers old/new data snapshots after data has
// changed. Layout and Paint measure and draw.
//
// # Scheduling
//
// Contexts expose Submit, which enqueues a CommandEvent addressed to a node.
// The queue is drained by the Owner at the start of the next pump, each
// command delivered as its own event-phase walk. This is how work detected
// during a read-only phase gets escalated into a future mutation-legal phase.
package tree
