package tree

import (
	"math"

	"github.com/go-drift/bindings/pkg/graphics"
)

// Constraints bound the size a node may take during layout.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that admit exactly the given size.
func Tight(size graphics.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints from zero up to the given size.
func Loose(size graphics.Size) Constraints {
	return Constraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// Unbounded returns constraints with no upper limit.
func Unbounded() Constraints {
	return Constraints{MaxWidth: math.MaxFloat64, MaxHeight: math.MaxFloat64}
}

// Constrain clamps a size into the constraint bounds.
func (c Constraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  graphics.Clamp(size.Width, c.MinWidth, c.MaxWidth),
		Height: graphics.Clamp(size.Height, c.MinHeight, c.MaxHeight),
	}
}

// WithUnboundedHeight relaxes the height limit, keeping width as-is.
func (c Constraints) WithUnboundedHeight() Constraints {
	c.MinHeight = 0
	c.MaxHeight = math.MaxFloat64
	return c
}

// WithUnboundedWidth relaxes the width limit, keeping height as-is.
func (c Constraints) WithUnboundedWidth() Constraints {
	c.MinWidth = 0
	c.MaxWidth = math.MaxFloat64
	return c
}
