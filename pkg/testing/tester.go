package testing

import (
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/go-drift/bindings/pkg/graphics"
	"github.com/go-drift/bindings/pkg/tree"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 600
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its frame limit.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: tree did not settle")

// TreeTester drives a node tree through frames without a real surface.
// It wraps a tree.Owner and adds gesture and frame-inspection helpers.
type TreeTester[T any] struct {
	owner *tree.Owner[T]
	size  graphics.Size
}

// NewTreeTester creates a tester with the default test surface size.
// Call Cleanup when done, or use NewTreeTesterWithT instead.
func NewTreeTester[T any]() *TreeTester[T] {
	return &TreeTester[T]{
		size: graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
	}
}

// NewTreeTesterWithT creates a tester that auto-cleans up via t.Cleanup.
// This is the recommended constructor for tests.
func NewTreeTesterWithT[T any](t *testing.T) *TreeTester[T] {
	tester := NewTreeTester[T]()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup detaches the current tree. Must be called if not using
// NewTreeTesterWithT.
func (tt *TreeTester[T]) Cleanup() {
	if tt.owner != nil {
		tt.owner.Detach()
		tt.owner = nil
	}
}

// SetSize sets the logical surface size. Takes effect on the next pump.
func (tt *TreeTester[T]) SetSize(size graphics.Size) {
	tt.size = size
	if tt.owner != nil {
		tt.owner.SetSize(size)
	}
}

// PumpNode mounts (or remounts) a tree over initial data and runs one full
// frame, which attaches the tree and seeds any binding hosts.
func (tt *TreeTester[T]) PumpNode(root tree.Node[T], initial T) {
	tt.Cleanup()
	tt.owner = tree.NewOwner[T](root, initial)
	tt.owner.SetSize(tt.size)
	tt.owner.Pump()
}

// Owner returns the underlying tree owner.
func (tt *TreeTester[T]) Owner() *tree.Owner[T] {
	return tt.owner
}

// Pump runs one frame.
func (tt *TreeTester[T]) Pump() {
	tt.owner.Pump()
}

// PumpAndSettle pumps until no commands or update requests remain, up to
// maxFrames. Returns ErrSettleTimeout when the tree keeps producing work.
func (tt *TreeTester[T]) PumpAndSettle(maxFrames int) error {
	if !tt.owner.PumpUntilSettled(maxFrames) {
		return ErrSettleTimeout
	}
	return nil
}

// Data returns a copy of the current application data.
func (tt *TreeTester[T]) Data() T {
	return tt.owner.Data()
}

// ModifyData mutates the application data; the change is picked up on the
// next pump.
func (tt *TreeTester[T]) ModifyData(mutate func(*T)) {
	tt.owner.ModifyData(mutate)
}

// Tap delivers a pointer down and up at the given position.
func (tt *TreeTester[T]) Tap(at graphics.Offset) {
	tt.owner.DispatchEvent(tree.PointerEvent{Phase: tree.PointerDown, Position: at})
	tt.owner.DispatchEvent(tree.PointerEvent{Phase: tree.PointerUp, Position: at})
}

// Scroll delivers a wheel event at the given position.
func (tt *TreeTester[T]) Scroll(at, delta graphics.Offset) {
	tt.owner.DispatchEvent(tree.PointerEvent{
		Phase:       tree.PointerScroll,
		Position:    at,
		ScrollDelta: delta,
	})
}

// TypeText delivers one key event per rune.
func (tt *TreeTester[T]) TypeText(text string) {
	for _, r := range text {
		tt.owner.DispatchEvent(tree.KeyEvent{Rune: r})
	}
}

// Backspace delivers a backspace key event.
func (tt *TreeTester[T]) Backspace() {
	tt.owner.DispatchEvent(tree.KeyEvent{Backspace: true})
}

// Frame returns the display list recorded by the latest paint.
func (tt *TreeTester[T]) Frame() []graphics.DisplayOp {
	return tt.owner.LastFrame()
}

// FindText reports whether any text drawn in the latest frame contains the
// given substring.
func (tt *TreeTester[T]) FindText(text string) bool {
	for _, op := range tt.Frame() {
		if op.Op == "drawText" && strings.Contains(op.Text, text) {
			return true
		}
	}
	return false
}

// Rasterize renders the latest frame into an image.
func (tt *TreeTester[T]) Rasterize() *image.RGBA {
	return graphics.Rasterize(tt.Frame(), tt.owner.RootSize())
}
