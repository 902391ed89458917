package widgets

import (
	"github.com/go-drift/bindings/pkg/bind"
	"github.com/go-drift/bindings/pkg/graphics"
	"github.com/go-drift/bindings/pkg/tree"
)

const tabBarHeight = 24.0

// Tabs shows one of several children, selected by a clickable bar of
// equal-width tab headers. The selected index is bindable.
type Tabs[T any] struct {
	labels   []string
	children []tree.Node[T]
	selected int
	size     graphics.Size
}

// NewTabs creates an empty tab container.
func NewTabs[T any]() *Tabs[T] {
	return &Tabs[T]{}
}

// Add appends a tab and returns the container for chaining.
func (t *Tabs[T]) Add(label string, child tree.Node[T]) *Tabs[T] {
	t.labels = append(t.labels, label)
	t.children = append(t.children, child)
	return t
}

func (t *Tabs[T]) Bindable() *Tabs[T] { return t }

// SelectedIndex returns the index of the visible tab.
func (t *Tabs[T]) SelectedIndex() int { return t.selected }

// SelectTab switches to the tab at index, clamped to the valid range.
func (t *Tabs[T]) SelectTab(index int) {
	if len(t.children) == 0 {
		t.selected = 0
		return
	}
	t.selected = int(graphics.Clamp(float64(index), 0, float64(len(t.children)-1)))
}

func (t *Tabs[T]) tabWidth() float64 {
	if len(t.labels) == 0 {
		return 0
	}
	return t.size.Width / float64(len(t.labels))
}

func (t *Tabs[T]) HandleEvent(ctx *tree.EventContext, event tree.Event, d *T) {
	if p, ok := event.(tree.PointerEvent); ok {
		if p.Phase == tree.PointerDown && p.Position.Y < tabBarHeight {
			if w := t.tabWidth(); w > 0 {
				t.SelectTab(int(p.Position.X / w))
				ctx.SetHandled()
				ctx.RequestLayout()
				ctx.RequestPaint()
			}
			return
		}
		if t.selected < len(t.children) {
			shifted := p
			shifted.Position.Y -= tabBarHeight
			t.children[t.selected].HandleEvent(ctx, shifted, d)
		}
		return
	}
	// Commands and keys may target nodes inside hidden tabs.
	for _, child := range t.children {
		child.HandleEvent(ctx, event, d)
		if ctx.IsHandled() {
			return
		}
	}
}

func (t *Tabs[T]) Lifecycle(ctx *tree.LifecycleContext, event tree.LifecycleEvent, d *T) {
	for _, child := range t.children {
		child.Lifecycle(ctx, event, d)
	}
}

func (t *Tabs[T]) Update(ctx *tree.UpdateContext, old, new *T) {
	for _, child := range t.children {
		child.Update(ctx, old, new)
	}
}

func (t *Tabs[T]) Layout(ctx *tree.LayoutContext, c tree.Constraints, d *T) graphics.Size {
	t.size = graphics.Size{Width: c.MaxWidth, Height: c.MaxHeight}
	if t.selected < len(t.children) {
		body := tree.Loose(graphics.Size{Width: t.size.Width, Height: t.size.Height - tabBarHeight})
		t.children[t.selected].Layout(ctx, body, d)
	}
	return c.Constrain(t.size)
}

func (t *Tabs[T]) Paint(ctx *tree.PaintContext, d *T) {
	canvas := ctx.Canvas
	w := t.tabWidth()
	for i, label := range t.labels {
		color := graphics.ColorGrey
		if i == t.selected {
			color = graphics.ColorWhite
		}
		canvas.DrawRect(graphics.RectFromLTWH(float64(i)*w, 0, w, tabBarHeight), color)
		canvas.DrawText(label, graphics.Offset{X: float64(i) * w, Y: 0}, graphics.ColorBlack)
	}
	if t.selected < len(t.children) {
		canvas.Save()
		canvas.Translate(0, tabBarHeight)
		t.children[t.selected].Paint(ctx, d)
		canvas.Restore()
	}
}

type tabIndexAccess[T any] struct{}

func (tabIndexAccess[T]) Read(t *Tabs[T]) int     { return t.selected }
func (tabIndexAccess[T]) Write(t *Tabs[T], v int) { t.SelectTab(v) }

// TabIndexProperty binds the selected tab index. Out-of-range data values
// are clamped on write.
func TabIndexProperty[T any]() bind.Property[Tabs[T], int] {
	return bind.Value[Tabs[T], int](tabIndexAccess[T]{}, bind.RequestLayout|bind.RequestPaint)
}
