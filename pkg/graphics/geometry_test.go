package graphics

import "testing"

func TestRectFromLTWH(t *testing.T) {
	r := RectFromLTWH(10, 20, 100, 50)
	if r.Right != 110 || r.Bottom != 70 {
		t.Errorf("unexpected rect: %+v", r)
	}
	if r.Width() != 100 || r.Height() != 50 {
		t.Errorf("unexpected dimensions: %v x %v", r.Width(), r.Height())
	}
}

func TestRectContains(t *testing.T) {
	r := RectFromLTWH(0, 0, 10, 10)
	if !r.Contains(Offset{X: 5, Y: 5}) {
		t.Error("center point should be inside")
	}
	if r.Contains(Offset{X: 10, Y: 10}) {
		t.Error("bottom-right corner is exclusive")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("in-range value should pass through")
	}
	if Clamp(-1, 0, 10) != 0 {
		t.Error("below range should clamp to min")
	}
	if Clamp(11, 0, 10) != 10 {
		t.Error("above range should clamp to max")
	}
}

func TestColorRoundTrip(t *testing.T) {
	c := RGBA(0x12, 0x34, 0x56, 0x78)
	r, g, b, a := c.RGBAF()
	if !floatEqual(r, 0x12/255.0) || !floatEqual(g, 0x34/255.0) ||
		!floatEqual(b, 0x56/255.0) || !floatEqual(a, 0x78/255.0) {
		t.Errorf("round trip failed: %v %v %v %v", r, g, b, a)
	}
}

func TestRecorderClipStack(t *testing.T) {
	var rec Recorder
	rec.Save()
	rec.ClipRect(RectFromLTWH(0, 0, 100, 100))
	rec.Translate(0, -20)
	rec.DrawRect(RectFromLTWH(0, 0, 10, 10), ColorRed)
	rec.Restore()

	ops := rec.Ops()
	want := []string{"save", "clipRect", "translate", "drawRect", "restore"}
	if len(ops) != len(want) {
		t.Fatalf("got %d ops, want %d", len(ops), len(want))
	}
	for i, op := range ops {
		if op.Op != want[i] {
			t.Errorf("op %d: got %q, want %q", i, op.Op, want[i])
		}
	}
}

func TestMeasureParagraphWraps(t *testing.T) {
	single := MeasureText("hello world")
	wrapped := MeasureParagraph("hello world", single.Width-1, LineBreakWordWrap)
	if wrapped.Height <= single.Height {
		t.Errorf("expected wrap to two lines, got height %v", wrapped.Height)
	}
}

func TestRasterizeDrawsRect(t *testing.T) {
	var rec Recorder
	rec.DrawRect(RectFromLTWH(1, 1, 2, 2), ColorRed)
	img := Rasterize(rec.Ops(), Size{Width: 4, Height: 4})
	r, _, _, _ := img.At(1, 1).RGBA()
	if r>>8 != 0xFF {
		t.Errorf("expected red pixel at (1,1), got r=%d", r>>8)
	}
}
