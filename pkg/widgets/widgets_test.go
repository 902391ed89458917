package widgets_test

import (
	"github.com/go-drift/bindings/pkg/bind"
	"github.com/go-drift/bindings/pkg/data"
	"github.com/go-drift/bindings/pkg/graphics"
	"github.com/go-drift/bindings/pkg/tree"
	"github.com/go-drift/bindings/pkg/widgets"
)

type appState struct {
	ScrollY  float64
	Fraction float64
	Title    string
	Tab      int
}

// fixedBox is a leaf of a fixed natural size.
type fixedBox[T any] struct {
	size graphics.Size
}

func (b *fixedBox[T]) HandleEvent(*tree.EventContext, tree.Event, *T) {}

func (b *fixedBox[T]) Lifecycle(*tree.LifecycleContext, tree.LifecycleEvent, *T) {}

func (b *fixedBox[T]) Update(*tree.UpdateContext, *T, *T) {}

func (b *fixedBox[T]) Layout(_ *tree.LayoutContext, c tree.Constraints, _ *T) graphics.Size {
	return c.Constrain(b.size)
}

func (b *fixedBox[T]) Paint(ctx *tree.PaintContext, _ *T) {
	ctx.Canvas.DrawRect(graphics.RectFromLTWH(0, 0, b.size.Width, b.size.Height), graphics.ColorGrey)
}

func scrollYBinding() bind.Binding[appState, widgets.ScrollView[appState]] {
	return bind.Bind(
		data.Field(func(d *appState) *float64 { return &d.ScrollY }),
		widgets.ScrollOffsetProperty[appState](),
	)
}

func tallScroll() *widgets.ScrollView[appState] {
	return widgets.NewScrollView[appState](&fixedBox[appState]{size: graphics.Size{Width: 100, Height: 900}})
}
