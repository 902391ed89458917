package widgets_test

import (
	"testing"

	"github.com/go-drift/bindings/pkg/graphics"
	"github.com/go-drift/bindings/pkg/tree"
	"github.com/go-drift/bindings/pkg/widgets"
)

func paintTranslates(ops []graphics.DisplayOp) []graphics.Offset {
	var offsets []graphics.Offset
	for _, op := range ops {
		if op.Op == "translate" {
			offsets = append(offsets, graphics.Offset{X: op.DX, Y: op.DY})
		}
	}
	return offsets
}

func TestColumnStacksChildren(t *testing.T) {
	col := widgets.NewColumn[appState](
		&fixedBox[appState]{size: graphics.Size{Width: 100, Height: 50}},
		&fixedBox[appState]{size: graphics.Size{Width: 80, Height: 30}},
	)
	var d appState
	size := col.Layout(&tree.LayoutContext{}, tree.Loose(graphics.Size{Width: 400, Height: 400}), &d)
	if size != (graphics.Size{Width: 100, Height: 80}) {
		t.Fatalf("Layout() = %+v, want 100x80", size)
	}

	var rec graphics.Recorder
	col.Paint(&tree.PaintContext{Canvas: &rec}, &d)
	got := paintTranslates(rec.Ops())
	want := []graphics.Offset{{Y: 0}, {Y: 50}}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("translates = %+v, want %+v", got, want)
	}
}

func TestRowStacksChildren(t *testing.T) {
	row := widgets.NewRow[appState](
		&fixedBox[appState]{size: graphics.Size{Width: 100, Height: 50}},
		&fixedBox[appState]{size: graphics.Size{Width: 80, Height: 30}},
	)
	var d appState
	size := row.Layout(&tree.LayoutContext{}, tree.Loose(graphics.Size{Width: 400, Height: 400}), &d)
	if size != (graphics.Size{Width: 180, Height: 50}) {
		t.Fatalf("Layout() = %+v, want 180x50", size)
	}

	var rec graphics.Recorder
	row.Paint(&tree.PaintContext{Canvas: &rec}, &d)
	got := paintTranslates(rec.Ops())
	want := []graphics.Offset{{X: 0}, {X: 100}}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("translates = %+v, want %+v", got, want)
	}
}
