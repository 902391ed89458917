package graphics

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// rasterState is the transform and clip state of the software rasterizer.
type rasterState struct {
	dx, dy float64
	clip   image.Rectangle
}

// Rasterize replays recorded operations into an RGBA image of the given size.
// Intended for headless demos and golden-style assertions, not production
// rendering.
func Rasterize(ops []DisplayOp, size Size) *image.RGBA {
	bounds := image.Rect(0, 0, int(size.Width), int(size.Height))
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, image.NewUniform(color.White), image.Point{}, draw.Src)

	state := rasterState{clip: bounds}
	var stack []rasterState

	for _, op := range ops {
		switch op.Op {
		case "save":
			stack = append(stack, state)
		case "restore":
			if n := len(stack); n > 0 {
				state = stack[n-1]
				stack = stack[:n-1]
			}
		case "translate":
			state.dx += op.DX
			state.dy += op.DY
		case "clipRect":
			state.clip = state.clip.Intersect(deviceRect(op.Rect, state))
		case "drawRect":
			target := deviceRect(op.Rect, state).Intersect(state.clip)
			draw.Draw(img, target, image.NewUniform(toNRGBA(op.Color)), image.Point{}, draw.Over)
		case "drawText":
			drawer := font.Drawer{
				Dst:  clippedImage{img, state.clip},
				Src:  image.NewUniform(toNRGBA(op.Color)),
				Face: textFace,
				Dot: fixed.P(
					int(op.Origin.X+state.dx),
					int(op.Origin.Y+state.dy)+textFace.Metrics().Ascent.Ceil(),
				),
			}
			drawer.DrawString(op.Text)
		}
	}
	return img
}

func deviceRect(r Rect, state rasterState) image.Rectangle {
	return image.Rect(
		int(r.Left+state.dx),
		int(r.Top+state.dy),
		int(r.Right+state.dx),
		int(r.Bottom+state.dy),
	)
}

func toNRGBA(c Color) color.NRGBA {
	r, g, b, a := c.RGBAF()
	return color.NRGBA{
		R: uint8(r * maxByte),
		G: uint8(g * maxByte),
		B: uint8(b * maxByte),
		A: uint8(a * maxByte),
	}
}

// clippedImage restricts writes to a clip rectangle.
type clippedImage struct {
	*image.RGBA
	clip image.Rectangle
}

func (c clippedImage) Set(x, y int, col color.Color) {
	if image.Pt(x, y).In(c.clip) {
		c.RGBA.Set(x, y, col)
	}
}
