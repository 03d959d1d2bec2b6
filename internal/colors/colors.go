// Package colors holds the float RGB type shared by faces, mixers and overlay text.
package colors

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// RGB is a color with each channel in [0,1].
type RGB struct {
	R, G, B float32
}

var (
	White = RGB{1, 1, 1}
	Black = RGB{0, 0, 0}
	Red   = RGB{1, 0, 0}
	Green = RGB{0, 1, 0}
	Blue  = RGB{0, 0, 1}
)

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Float | constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamped returns c with every channel limited to [0,1].
func (c RGB) Clamped() RGB {
	return RGB{Clamp(c.R, 0, 1), Clamp(c.G, 0, 1), Clamp(c.B, 0, 1)}
}

// IsWhite reports whether every channel is at or above 0.99.
func (c RGB) IsWhite() bool {
	return c.R >= 0.99 && c.G >= 0.99 && c.B >= 0.99
}

// Bytes converts to 8-bit channels, rounding to nearest.
func (c RGB) Bytes() (r, g, b uint8) {
	cc := c.Clamped()
	return uint8(cc.R*255 + 0.5), uint8(cc.G*255 + 0.5), uint8(cc.B*255 + 0.5)
}

// Scale multiplies every channel by k and clamps.
func (c RGB) Scale(k float32) RGB {
	return RGB{c.R * k, c.G * k, c.B * k}.Clamped()
}

func (c RGB) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", c.R, c.G, c.B)
}
