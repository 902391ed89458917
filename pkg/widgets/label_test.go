package widgets_test

import (
	"testing"

	"github.com/go-drift/bindings/pkg/bind"
	"github.com/go-drift/bindings/pkg/data"
	"github.com/go-drift/bindings/pkg/graphics"
	"github.com/go-drift/bindings/pkg/tree"
	"github.com/go-drift/bindings/pkg/widgets"
)

func TestLabelLayoutMeasuresText(t *testing.T) {
	l := widgets.NewLabel[appState]("hi")
	var d appState
	size := l.Layout(&tree.LayoutContext{}, tree.Loose(graphics.Size{Width: 400, Height: 100}), &d)

	want := graphics.MeasureText("hi")
	if size != want {
		t.Fatalf("Layout() = %+v, want %+v", size, want)
	}
}

func TestLabelAlignmentCentersText(t *testing.T) {
	l := widgets.NewLabel[appState]("hi")
	var d appState
	l.Layout(&tree.LayoutContext{}, tree.Tight(graphics.Size{Width: 100, Height: 13}), &d)

	prop := widgets.TextAlignmentProperty[appState]()
	prop.Write(l, nil, graphics.TextAlignCenter)

	var rec graphics.Recorder
	l.Paint(&tree.PaintContext{Canvas: &rec}, &d)

	ops := rec.Ops()
	if len(ops) != 1 || ops[0].Op != "drawText" {
		t.Fatalf("ops = %+v, want one drawText", ops)
	}
	wantX := (100 - graphics.MeasureText("hi").Width) / 2
	if ops[0].Origin.X != wantX {
		t.Fatalf("text origin X = %v, want %v", ops[0].Origin.X, wantX)
	}
}

func TestLabelTextBinding(t *testing.T) {
	l := widgets.NewLabel[appState]("")
	owner := tree.NewOwner[appState](
		bind.NewHost[appState, widgets.Label[appState]](l, bind.Bind(
			data.Field(func(d *appState) *string { return &d.Title }),
			widgets.LabelTextProperty[appState](),
		)),
		appState{Title: "hello"},
	)
	defer owner.Detach()
	owner.Pump()

	if got := l.Text(); got != "hello" {
		t.Fatalf("label text = %q after seeding, want \"hello\"", got)
	}

	owner.ModifyData(func(d *appState) { d.Title = "world" })
	owner.Pump()
	if got := l.Text(); got != "world" {
		t.Fatalf("label text = %q, want \"world\"", got)
	}

	var painted bool
	for _, op := range owner.LastFrame() {
		if op.Op == "drawText" && op.Text == "world" {
			painted = true
		}
	}
	if !painted {
		t.Fatalf("frame does not draw the updated text: %+v", owner.LastFrame())
	}
}
