package graphics

// Canvas receives drawing operations during the paint phase.
// The binding layer never rasterizes directly; nodes record operations and
// the embedder decides what to do with them.
type Canvas interface {
	Save()
	Restore()
	Translate(dx, dy float64)
	ClipRect(rect Rect)
	DrawRect(rect Rect, color Color)
	DrawText(text string, origin Offset, color Color)
}

// DisplayOp is one recorded drawing operation.
type DisplayOp struct {
	Op     string
	Rect   Rect
	Origin Offset
	Color  Color
	Text   string
	DX, DY float64
}

// Recorder is a Canvas that records operations for inspection and replay.
type Recorder struct {
	ops   []DisplayOp
	stack []int
}

// Ops returns the recorded operations in order.
func (r *Recorder) Ops() []DisplayOp {
	return r.ops
}

// Reset discards all recorded operations.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
	r.stack = r.stack[:0]
}

func (r *Recorder) Save() {
	r.stack = append(r.stack, len(r.ops))
	r.ops = append(r.ops, DisplayOp{Op: "save"})
}

func (r *Recorder) Restore() {
	if len(r.stack) > 0 {
		r.stack = r.stack[:len(r.stack)-1]
	}
	r.ops = append(r.ops, DisplayOp{Op: "restore"})
}

func (r *Recorder) Translate(dx, dy float64) {
	r.ops = append(r.ops, DisplayOp{Op: "translate", DX: dx, DY: dy})
}

func (r *Recorder) ClipRect(rect Rect) {
	r.ops = append(r.ops, DisplayOp{Op: "clipRect", Rect: rect})
}

func (r *Recorder) DrawRect(rect Rect, color Color) {
	r.ops = append(r.ops, DisplayOp{Op: "drawRect", Rect: rect, Color: color})
}

func (r *Recorder) DrawText(text string, origin Offset, color Color) {
	r.ops = append(r.ops, DisplayOp{Op: "drawText", Text: text, Origin: origin, Color: color})
}
