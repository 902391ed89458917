package widgets

import (
	"github.com/go-drift/bindings/pkg/graphics"
	"github.com/go-drift/bindings/pkg/tree"
)

// Flex stacks children along one axis, each child taking its natural size.
type Flex[T any] struct {
	axis     Axis
	children []tree.Node[T]
	offsets  []graphics.Offset
	sizes    []graphics.Size
}

// NewColumn stacks children top to bottom.
func NewColumn[T any](children ...tree.Node[T]) *Flex[T] {
	return &Flex[T]{axis: Vertical, children: children}
}

// NewRow stacks children left to right.
func NewRow[T any](children ...tree.Node[T]) *Flex[T] {
	return &Flex[T]{axis: Horizontal, children: children}
}

func (f *Flex[T]) HandleEvent(ctx *tree.EventContext, event tree.Event, d *T) {
	if p, ok := event.(tree.PointerEvent); ok {
		for i, child := range f.children {
			if i >= len(f.offsets) {
				break
			}
			bounds := graphics.RectFromLTWH(f.offsets[i].X, f.offsets[i].Y, f.sizes[i].Width, f.sizes[i].Height)
			if !bounds.Contains(p.Position) {
				continue
			}
			shifted := p
			shifted.Position.X -= f.offsets[i].X
			shifted.Position.Y -= f.offsets[i].Y
			child.HandleEvent(ctx, shifted, d)
			if ctx.IsHandled() {
				return
			}
		}
		return
	}
	for _, child := range f.children {
		child.HandleEvent(ctx, event, d)
		if ctx.IsHandled() {
			return
		}
	}
}

func (f *Flex[T]) Lifecycle(ctx *tree.LifecycleContext, event tree.LifecycleEvent, d *T) {
	for _, child := range f.children {
		child.Lifecycle(ctx, event, d)
	}
}

func (f *Flex[T]) Update(ctx *tree.UpdateContext, old, new *T) {
	for _, child := range f.children {
		child.Update(ctx, old, new)
	}
}

func (f *Flex[T]) Layout(ctx *tree.LayoutContext, c tree.Constraints, d *T) graphics.Size {
	f.offsets = f.offsets[:0]
	f.sizes = f.sizes[:0]
	loose := tree.Loose(graphics.Size{Width: c.MaxWidth, Height: c.MaxHeight})
	main := 0.0
	cross := 0.0
	for _, child := range f.children {
		size := child.Layout(ctx, loose, d)
		if f.axis == Horizontal {
			f.offsets = append(f.offsets, graphics.Offset{X: main})
			main += size.Width
			if size.Height > cross {
				cross = size.Height
			}
		} else {
			f.offsets = append(f.offsets, graphics.Offset{Y: main})
			main += size.Height
			if size.Width > cross {
				cross = size.Width
			}
		}
		f.sizes = append(f.sizes, size)
	}
	if f.axis == Horizontal {
		return c.Constrain(graphics.Size{Width: main, Height: cross})
	}
	return c.Constrain(graphics.Size{Width: cross, Height: main})
}

func (f *Flex[T]) Paint(ctx *tree.PaintContext, d *T) {
	for i, child := range f.children {
		if i >= len(f.offsets) {
			break
		}
		ctx.Canvas.Save()
		ctx.Canvas.Translate(f.offsets[i].X, f.offsets[i].Y)
		child.Paint(ctx, d)
		ctx.Canvas.Restore()
	}
}
