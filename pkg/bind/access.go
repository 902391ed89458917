package bind

// Bindable exposes the nearest inner node that owns bindable state.
//
// Node types that expect to be bound implement this and return themselves.
// Trivial single-child wrappers (lens wrappers, identity wrappers) delegate
// to their child, so a Host can reach the actual controlled node through an
// arbitrary wrapper chain by following Bindable once.
//
// The reach stops at the first node that declares itself the target, even
// if a wrapper further down also wants to be reachable. That is acceptable
// because a Host targets exactly one node by construction; an unreachable
// target is a compile-time error, never a runtime probe.
type Bindable[C any] interface {
	Bindable() *C
}
