package bind

import "github.com/go-drift/bindings/pkg/tree"

// Requests marks which tree invalidations must follow a property write.
// Values combine with the | operator and compose associatively.
type Requests uint8

const (
	// RequestLayout asks for a layout pass after the write.
	RequestLayout Requests = 1 << iota
	// RequestPaint asks for a repaint after the write.
	RequestPaint
	// RequestAnimFrame asks the owner to keep pumping frames.
	RequestAnimFrame
)

// RequestNone requests no invalidation.
const RequestNone Requests = 0

// Notify issues the marked invalidation requests.
func (r Requests) Notify(ctx *tree.UpdateContext) {
	if r&RequestLayout != 0 {
		ctx.RequestLayout()
	}
	if r&RequestPaint != 0 {
		ctx.RequestPaint()
	}
	if r&RequestAnimFrame != 0 {
		ctx.RequestAnimFrame()
	}
}
