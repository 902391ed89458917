package widgets

import (
	"github.com/go-drift/bindings/pkg/bind"
	"github.com/go-drift/bindings/pkg/graphics"
	"github.com/go-drift/bindings/pkg/tree"
)

// Label paints a run of text. Text, color, alignment and line breaking are
// all bindable.
type Label[T any] struct {
	text      string
	color     graphics.Color
	alignment graphics.TextAlignment
	lineBreak graphics.LineBreaking
	size      graphics.Size
}

// NewLabel creates a black, start-aligned, clipping label.
func NewLabel[T any](text string) *Label[T] {
	return &Label[T]{text: text, color: graphics.ColorBlack}
}

func (l *Label[T]) Bindable() *Label[T] { return l }

// Text returns the current text.
func (l *Label[T]) Text() string { return l.text }

func (l *Label[T]) HandleEvent(*tree.EventContext, tree.Event, *T) {}

func (l *Label[T]) Lifecycle(*tree.LifecycleContext, tree.LifecycleEvent, *T) {}

func (l *Label[T]) Update(*tree.UpdateContext, *T, *T) {}

func (l *Label[T]) Layout(_ *tree.LayoutContext, c tree.Constraints, _ *T) graphics.Size {
	l.size = c.Constrain(graphics.MeasureParagraph(l.text, c.MaxWidth, l.lineBreak))
	return l.size
}

func (l *Label[T]) Paint(ctx *tree.PaintContext, _ *T) {
	x := 0.0
	switch l.alignment {
	case graphics.TextAlignCenter:
		x = (l.size.Width - graphics.MeasureText(l.text).Width) / 2
	case graphics.TextAlignEnd:
		x = l.size.Width - graphics.MeasureText(l.text).Width
	}
	ctx.Canvas.DrawText(l.text, graphics.Offset{X: x}, l.color)
}

type labelTextAccess[T any] struct{}

func (labelTextAccess[T]) Read(l *Label[T]) string     { return l.text }
func (labelTextAccess[T]) Write(l *Label[T], v string) { l.text = v }

// LabelTextProperty binds the label's text.
func LabelTextProperty[T any]() bind.Property[Label[T], string] {
	return bind.Value[Label[T], string](labelTextAccess[T]{}, bind.RequestLayout|bind.RequestPaint)
}

type textColorAccess[T any] struct{}

func (textColorAccess[T]) Read(l *Label[T]) graphics.Color     { return l.color }
func (textColorAccess[T]) Write(l *Label[T], v graphics.Color) { l.color = v }

// TextColorProperty binds the label's text color.
func TextColorProperty[T any]() bind.Property[Label[T], graphics.Color] {
	return bind.Value[Label[T], graphics.Color](textColorAccess[T]{}, bind.RequestPaint)
}

type textAlignmentAccess[T any] struct{}

func (textAlignmentAccess[T]) Read(l *Label[T]) graphics.TextAlignment     { return l.alignment }
func (textAlignmentAccess[T]) Write(l *Label[T], v graphics.TextAlignment) { l.alignment = v }

// TextAlignmentProperty binds the label's horizontal alignment.
func TextAlignmentProperty[T any]() bind.Property[Label[T], graphics.TextAlignment] {
	return bind.Value[Label[T], graphics.TextAlignment](textAlignmentAccess[T]{}, bind.RequestPaint)
}

type lineBreakAccess[T any] struct{}

func (lineBreakAccess[T]) Read(l *Label[T]) graphics.LineBreaking     { return l.lineBreak }
func (lineBreakAccess[T]) Write(l *Label[T], v graphics.LineBreaking) { l.lineBreak = v }

// LineBreakProperty binds the label's line breaking mode.
func LineBreakProperty[T any]() bind.Property[Label[T], graphics.LineBreaking] {
	return bind.Value[Label[T], graphics.LineBreaking](lineBreakAccess[T]{}, bind.RequestLayout|bind.RequestPaint)
}
