package bind

import (
	"github.com/go-drift/bindings/pkg/data"
	"github.com/go-drift/bindings/pkg/tree"
)

// Change represents accrued node-side divergence awaiting application to
// data. nil means "no change". When a property can re-read its live value
// wholesale, presence alone is enough and UnitChange is used.
type Change any

type unitChange struct{}

// UnitChange is the presence-only change value.
var UnitChange Change = unitChange{}

// Property describes one bindable attribute of a controlled node C with
// value type V.
type Property[C, V any] interface {
	// Write pushes value into the node's live state. Invalidation is left
	// to the Requests marker, not performed here.
	Write(node *C, ctx *tree.UpdateContext, value V)

	// Detect compares the node's current live value against last and
	// returns a Change iff they diverge.
	Detect(node *C, last V) Change

	// Fold updates the data-side field to reflect an accrued change,
	// either incrementally or by re-reading the live value wholesale.
	Fold(node *C, field *V, change Change)

	// Requests reports which invalidations must follow a Write.
	Requests() Requests
}

// ValueAccess reads and writes one attribute of a node. It is the minimal
// surface a node type exposes to become bindable.
type ValueAccess[C, V any] interface {
	Read(node *C) V
	Write(node *C, value V)
}

// Value builds a Property from a read/write pair. Divergence is detected
// with the data.Same equivalence, and changes are presence-only: Fold
// re-reads the live value.
func Value[C, V any](access ValueAccess[C, V], requests Requests) Property[C, V] {
	return valueProperty[C, V]{access: access, requests: requests}
}

type valueProperty[C, V any] struct {
	access   ValueAccess[C, V]
	requests Requests
}

func (p valueProperty[C, V]) Write(node *C, ctx *tree.UpdateContext, value V) {
	p.access.Write(node, value)
}

func (p valueProperty[C, V]) Detect(node *C, last V) Change {
	if data.Same(p.access.Read(node), last) {
		return nil
	}
	return UnitChange
}

func (p valueProperty[C, V]) Fold(node *C, field *V, change Change) {
	value := p.access.Read(node)
	if !data.Same(value, *field) {
		*field = value
	}
}

func (p valueProperty[C, V]) Requests() Requests {
	return p.requests
}

// ReadOnly suppresses the write leg of a property: the node is never
// touched from data, while node-side changes still propagate back.
func ReadOnly[C, V any](property Property[C, V]) Property[C, V] {
	return readOnlyProperty[C, V]{inner: property}
}

type readOnlyProperty[C, V any] struct {
	inner Property[C, V]
}

func (p readOnlyProperty[C, V]) Write(node *C, ctx *tree.UpdateContext, value V) {}

func (p readOnlyProperty[C, V]) Detect(node *C, last V) Change {
	return p.inner.Detect(node, last)
}

func (p readOnlyProperty[C, V]) Fold(node *C, field *V, change Change) {
	p.inner.Fold(node, field, change)
}

func (p readOnlyProperty[C, V]) Requests() Requests {
	return RequestNone
}

// WriteOnly suppresses the detect and fold legs of a property: data drives
// the node, and node-side changes never feed back.
func WriteOnly[C, V any](property Property[C, V]) Property[C, V] {
	return writeOnlyProperty[C, V]{inner: property}
}

type writeOnlyProperty[C, V any] struct {
	inner Property[C, V]
}

func (p writeOnlyProperty[C, V]) Write(node *C, ctx *tree.UpdateContext, value V) {
	p.inner.Write(node, ctx, value)
}

func (p writeOnlyProperty[C, V]) Detect(node *C, last V) Change {
	return nil
}

func (p writeOnlyProperty[C, V]) Fold(node *C, field *V, change Change) {}

func (p writeOnlyProperty[C, V]) Requests() Requests {
	return p.inner.Requests()
}
