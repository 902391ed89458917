package tree

import "github.com/go-drift/bindings/pkg/graphics"

// Event is delivered to nodes during the event phase.
type Event interface {
	isEvent()
}

// Selector names a command kind.
type Selector string

// CommandEvent is a self-addressed message delivered on a future event-phase
// walk. Nodes other than the target forward it like any other event.
type CommandEvent struct {
	Selector Selector
	Target   NodeID
}

func (CommandEvent) isEvent() {}

// PointerPhase identifies the stage of a pointer interaction.
type PointerPhase int

const (
	PointerDown PointerPhase = iota
	PointerMove
	PointerUp
	PointerScroll
)

// PointerEvent is a pointer interaction at a position.
type PointerEvent struct {
	Phase    PointerPhase
	Position graphics.Offset
	// ScrollDelta carries wheel movement for PointerScroll events.
	ScrollDelta graphics.Offset
}

func (PointerEvent) isEvent() {}

// KeyEvent is a key press. Rune is zero for non-printing keys.
type KeyEvent struct {
	Rune      rune
	Backspace bool
}

func (KeyEvent) isEvent() {}

// LifecycleKind identifies a structural notification.
type LifecycleKind int

const (
	// NodeAttached fires once when the tree is registered with its owner.
	NodeAttached LifecycleKind = iota
	// NodeDetached fires when the tree is being torn down.
	NodeDetached
)

// LifecycleEvent is delivered during the lifecycle phase.
type LifecycleEvent struct {
	Kind LifecycleKind
}
