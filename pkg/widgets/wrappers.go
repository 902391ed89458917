package widgets

import (
	"github.com/go-drift/bindings/pkg/bind"
	"github.com/go-drift/bindings/pkg/data"
	"github.com/go-drift/bindings/pkg/graphics"
	"github.com/go-drift/bindings/pkg/tree"
)

// LensWrap adapts a subtree operating on data type U into a node operating
// on data type T, scoping every phase call through a lens.
type LensWrap[T, U any] struct {
	lens  data.Lens[T, U]
	child tree.Node[U]
}

// WrapLens scopes child behind lens.
func WrapLens[T, U any](lens data.Lens[T, U], child tree.Node[U]) *LensWrap[T, U] {
	return &LensWrap[T, U]{lens: lens, child: child}
}

func (w *LensWrap[T, U]) HandleEvent(ctx *tree.EventContext, event tree.Event, d *T) {
	w.lens.WithMut(d, func(u *U) {
		w.child.HandleEvent(ctx, event, u)
	})
}

func (w *LensWrap[T, U]) Lifecycle(ctx *tree.LifecycleContext, event tree.LifecycleEvent, d *T) {
	w.lens.WithMut(d, func(u *U) {
		w.child.Lifecycle(ctx, event, u)
	})
}

func (w *LensWrap[T, U]) Update(ctx *tree.UpdateContext, old, new *T) {
	w.lens.With(old, func(oldU U) {
		w.lens.WithMut(new, func(newU *U) {
			w.child.Update(ctx, &oldU, newU)
		})
	})
}

func (w *LensWrap[T, U]) Layout(ctx *tree.LayoutContext, c tree.Constraints, d *T) graphics.Size {
	var size graphics.Size
	w.lens.WithMut(d, func(u *U) {
		size = w.child.Layout(ctx, c, u)
	})
	return size
}

func (w *LensWrap[T, U]) Paint(ctx *tree.PaintContext, d *T) {
	w.lens.WithMut(d, func(u *U) {
		w.child.Paint(ctx, u)
	})
}

// BindableLensWrap is a LensWrap that keeps the inner bindable target
// reachable, so a host over the outer data type can still address the
// wrapped widget.
type BindableLensWrap[T, U, C any] struct {
	LensWrap[T, U]
	target bind.Bindable[C]
}

// WrapBindableLens scopes a bindable child behind lens without losing
// bindable reach.
func WrapBindableLens[T, U, C any](lens data.Lens[T, U], child bind.HostNode[U, C]) *BindableLensWrap[T, U, C] {
	return &BindableLensWrap[T, U, C]{
		LensWrap: LensWrap[T, U]{lens: lens, child: child},
		target:   child,
	}
}

func (w *BindableLensWrap[T, U, C]) Bindable() *C {
	return w.target.Bindable()
}

// Identity wraps a node without altering behavior, preserving bindable
// reach. It is the neutral element of wrapper chains.
type Identity[T, C any] struct {
	child bind.HostNode[T, C]
}

// Identify wraps child in an identity wrapper.
func Identify[T, C any](child bind.HostNode[T, C]) *Identity[T, C] {
	return &Identity[T, C]{child: child}
}

func (w *Identity[T, C]) Bindable() *C { return w.child.Bindable() }

func (w *Identity[T, C]) HandleEvent(ctx *tree.EventContext, event tree.Event, d *T) {
	w.child.HandleEvent(ctx, event, d)
}

func (w *Identity[T, C]) Lifecycle(ctx *tree.LifecycleContext, event tree.LifecycleEvent, d *T) {
	w.child.Lifecycle(ctx, event, d)
}

func (w *Identity[T, C]) Update(ctx *tree.UpdateContext, old, new *T) {
	w.child.Update(ctx, old, new)
}

func (w *Identity[T, C]) Layout(ctx *tree.LayoutContext, c tree.Constraints, d *T) graphics.Size {
	return w.child.Layout(ctx, c, d)
}

func (w *Identity[T, C]) Paint(ctx *tree.PaintContext, d *T) {
	w.child.Paint(ctx, d)
}
