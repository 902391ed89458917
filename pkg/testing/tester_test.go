package testing

import (
	"testing"

	"github.com/go-drift/bindings/pkg/bind"
	"github.com/go-drift/bindings/pkg/data"
	"github.com/go-drift/bindings/pkg/graphics"
	"github.com/go-drift/bindings/pkg/widgets"
)

type noteState struct {
	Note string
}

func noteInput() (*widgets.TextInput[noteState], *bind.Host[noteState, widgets.TextInput[noteState]]) {
	input := widgets.NewTextInput[noteState]()
	host := bind.NewHost[noteState, widgets.TextInput[noteState]](input, bind.Bind(
		data.Field(func(d *noteState) *string { return &d.Note }),
		widgets.InputTextProperty[noteState](),
	))
	return input, host
}

func TestTreeTesterDefaults(t *testing.T) {
	tester := NewTreeTesterWithT[noteState](t)

	if tester.size.Width != DefaultTestWidth || tester.size.Height != DefaultTestHeight {
		t.Errorf("default size = %vx%v, want %dx%d", tester.size.Width, tester.size.Height, DefaultTestWidth, DefaultTestHeight)
	}
}

func TestPumpNodeSeedsBindings(t *testing.T) {
	tester := NewTreeTesterWithT[noteState](t)
	input, host := noteInput()

	tester.PumpNode(host, noteState{Note: "hello"})

	if got := input.Text(); got != "hello" {
		t.Fatalf("input text = %q after PumpNode, want \"hello\"", got)
	}
	if !tester.FindText("hello") {
		t.Fatalf("frame is missing the seeded text: %+v", tester.Frame())
	}
}

func TestTypeTextFlowsIntoData(t *testing.T) {
	tester := NewTreeTesterWithT[noteState](t)
	_, host := noteInput()
	tester.PumpNode(host, noteState{})

	tester.TypeText("ok")
	if err := tester.PumpAndSettle(4); err != nil {
		t.Fatal(err)
	}
	if got := tester.Data().Note; got != "ok" {
		t.Fatalf("data.Note = %q, want \"ok\"", got)
	}

	tester.Backspace()
	if err := tester.PumpAndSettle(4); err != nil {
		t.Fatal(err)
	}
	if got := tester.Data().Note; got != "o" {
		t.Fatalf("data.Note = %q after backspace, want \"o\"", got)
	}
}

func TestScrollGesture(t *testing.T) {
	tester := NewTreeTesterWithT[noteState](t)
	sv := widgets.NewScrollView[noteState](widgets.NewLabel[noteState]("tall"))
	tester.SetSize(graphics.Size{Width: 100, Height: 8})
	tester.PumpNode(sv, noteState{})

	tester.Scroll(graphics.Offset{X: 10, Y: 4}, graphics.Offset{Y: 3})
	tester.Pump()
	if got := sv.Offset(); got != 3 {
		t.Fatalf("scroll offset = %v, want 3", got)
	}
}

func TestRasterizeProducesImage(t *testing.T) {
	tester := NewTreeTesterWithT[noteState](t)
	_, host := noteInput()
	tester.PumpNode(host, noteState{Note: "px"})

	img := tester.Rasterize()
	if img == nil || img.Bounds().Dx() == 0 {
		t.Fatal("Rasterize returned an empty image")
	}
}
