package widgets

import (
	"github.com/go-drift/bindings/pkg/bind"
	"github.com/go-drift/bindings/pkg/graphics"
	"github.com/go-drift/bindings/pkg/tree"
)

const inputPadding = 4.0

// TextInput is a single-line editable text field. The text is bindable in
// both directions, so edits flow into data and data writes replace the
// field contents.
type TextInput[T any] struct {
	text string
	size graphics.Size
}

// NewTextInput creates an empty text input.
func NewTextInput[T any]() *TextInput[T] {
	return &TextInput[T]{}
}

func (t *TextInput[T]) Bindable() *TextInput[T] { return t }

// Text returns the current contents.
func (t *TextInput[T]) Text() string { return t.text }

func (t *TextInput[T]) HandleEvent(ctx *tree.EventContext, event tree.Event, _ *T) {
	key, ok := event.(tree.KeyEvent)
	if !ok {
		return
	}
	switch {
	case key.Backspace:
		if t.text == "" {
			return
		}
		runes := []rune(t.text)
		t.text = string(runes[:len(runes)-1])
	case key.Rune != 0:
		t.text += string(key.Rune)
	default:
		return
	}
	ctx.SetHandled()
	ctx.RequestLayout()
	ctx.RequestPaint()
}

func (t *TextInput[T]) Lifecycle(*tree.LifecycleContext, tree.LifecycleEvent, *T) {}

func (t *TextInput[T]) Update(*tree.UpdateContext, *T, *T) {}

func (t *TextInput[T]) Layout(_ *tree.LayoutContext, c tree.Constraints, _ *T) graphics.Size {
	measured := graphics.MeasureText(t.text)
	t.size = c.Constrain(graphics.Size{
		Width:  measured.Width + 2*inputPadding,
		Height: measured.Height + 2*inputPadding,
	})
	return t.size
}

func (t *TextInput[T]) Paint(ctx *tree.PaintContext, _ *T) {
	ctx.Canvas.DrawRect(graphics.RectFromLTWH(0, 0, t.size.Width, t.size.Height), graphics.ColorWhite)
	ctx.Canvas.DrawText(t.text, graphics.Offset{X: inputPadding, Y: inputPadding}, graphics.ColorBlack)
}

type inputTextAccess[T any] struct{}

func (inputTextAccess[T]) Read(t *TextInput[T]) string     { return t.text }
func (inputTextAccess[T]) Write(t *TextInput[T], v string) { t.text = v }

// InputTextProperty binds the input's contents.
func InputTextProperty[T any]() bind.Property[TextInput[T], string] {
	return bind.Value[TextInput[T], string](inputTextAccess[T]{}, bind.RequestLayout|bind.RequestPaint)
}
