package widgets

import (
	"math"

	"github.com/go-drift/bindings/pkg/bind"
	"github.com/go-drift/bindings/pkg/graphics"
	"github.com/go-drift/bindings/pkg/tree"
)

// Axis selects the main direction of a scroll view or flex container.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

// ScrollView scrolls a single child along one axis. The child is laid out
// unbounded along that axis; the view clips painting to its own viewport
// and translates by the current offset.
type ScrollView[T any] struct {
	child    tree.Node[T]
	axis     Axis
	offset   float64
	viewport graphics.Size
	content  graphics.Size
}

// NewScrollView creates a vertically scrolling view over child.
func NewScrollView[T any](child tree.Node[T]) *ScrollView[T] {
	return &ScrollView[T]{child: child, axis: Vertical}
}

// NewHorizontalScrollView creates a horizontally scrolling view over child.
func NewHorizontalScrollView[T any](child tree.Node[T]) *ScrollView[T] {
	return &ScrollView[T]{child: child, axis: Horizontal}
}

func (s *ScrollView[T]) Bindable() *ScrollView[T] { return s }

// Offset returns the current scroll offset in logical pixels.
func (s *ScrollView[T]) Offset() float64 { return s.offset }

// Limit returns the maximum scroll offset: content extent minus viewport
// extent along the axis, never negative.
func (s *ScrollView[T]) Limit() float64 {
	if s.axis == Horizontal {
		return math.Max(s.content.Width-s.viewport.Width, 0)
	}
	return math.Max(s.content.Height-s.viewport.Height, 0)
}

// ScrollTo sets the offset, clamped to [0, Limit].
func (s *ScrollView[T]) ScrollTo(offset float64) {
	s.offset = graphics.Clamp(offset, 0, s.Limit())
}

// AxisFraction returns the scroll position as a fraction of the limit,
// quantized to thousandths. Zero when the content fits the viewport.
func (s *ScrollView[T]) AxisFraction() float64 {
	limit := s.Limit()
	if limit <= 0 {
		return 0
	}
	return math.Floor(s.offset/limit*1000) / 1000
}

// SetAxisFraction scrolls to the given fraction of the limit. When the
// content fits the viewport the fraction is meaningless and the offset is
// forced to zero.
func (s *ScrollView[T]) SetAxisFraction(fraction float64) {
	limit := s.Limit()
	if limit <= 0 {
		s.offset = 0
		return
	}
	s.ScrollTo(graphics.Clamp(fraction, 0, 1) * limit)
}

func (s *ScrollView[T]) HandleEvent(ctx *tree.EventContext, event tree.Event, d *T) {
	if p, ok := event.(tree.PointerEvent); ok {
		if p.Phase == tree.PointerScroll {
			delta := p.ScrollDelta.Y
			if s.axis == Horizontal {
				delta = p.ScrollDelta.X
			}
			if delta != 0 {
				s.ScrollTo(s.offset + delta)
				ctx.SetHandled()
				ctx.RequestPaint()
				return
			}
		}
		// Pointer positions are in viewport coordinates; the child lives in
		// content coordinates.
		shifted := p
		if s.axis == Horizontal {
			shifted.Position.X += s.offset
		} else {
			shifted.Position.Y += s.offset
		}
		s.child.HandleEvent(ctx, shifted, d)
		return
	}
	s.child.HandleEvent(ctx, event, d)
}

func (s *ScrollView[T]) Lifecycle(ctx *tree.LifecycleContext, event tree.LifecycleEvent, d *T) {
	s.child.Lifecycle(ctx, event, d)
}

func (s *ScrollView[T]) Update(ctx *tree.UpdateContext, old, new *T) {
	s.child.Update(ctx, old, new)
}

func (s *ScrollView[T]) Layout(ctx *tree.LayoutContext, c tree.Constraints, d *T) graphics.Size {
	inner := c.WithUnboundedHeight()
	if s.axis == Horizontal {
		inner = c.WithUnboundedWidth()
	}
	s.content = s.child.Layout(ctx, inner, d)
	s.viewport = c.Constrain(s.content)
	// A shrunk content must not leave the offset past the new limit.
	s.offset = graphics.Clamp(s.offset, 0, s.Limit())
	return s.viewport
}

func (s *ScrollView[T]) Paint(ctx *tree.PaintContext, d *T) {
	canvas := ctx.Canvas
	canvas.Save()
	canvas.ClipRect(graphics.RectFromLTWH(0, 0, s.viewport.Width, s.viewport.Height))
	if s.axis == Horizontal {
		canvas.Translate(-s.offset, 0)
	} else {
		canvas.Translate(0, -s.offset)
	}
	s.child.Paint(ctx, d)
	canvas.Restore()
}

type scrollOffsetAccess[T any] struct{}

func (scrollOffsetAccess[T]) Read(s *ScrollView[T]) float64     { return s.offset }
func (scrollOffsetAccess[T]) Write(s *ScrollView[T], v float64) { s.ScrollTo(v) }

// ScrollOffsetProperty binds the absolute scroll offset in logical pixels.
func ScrollOffsetProperty[T any]() bind.Property[ScrollView[T], float64] {
	return bind.Value[ScrollView[T], float64](scrollOffsetAccess[T]{}, bind.RequestPaint)
}

type axisFractionAccess[T any] struct{}

func (axisFractionAccess[T]) Read(s *ScrollView[T]) float64     { return s.AxisFraction() }
func (axisFractionAccess[T]) Write(s *ScrollView[T], v float64) { s.SetAxisFraction(v) }

// AxisFractionProperty binds the scroll position as a fraction of the
// limit. The quantization to thousandths keeps float noise from ping-
// ponging between node and data.
func AxisFractionProperty[T any]() bind.Property[ScrollView[T], float64] {
	return bind.Value[ScrollView[T], float64](axisFractionAccess[T]{}, bind.RequestPaint)
}
