// Package face holds the cube's per-face paint state.
//
// A face is in one of three states. Plain draws the base color. Patterned
// tiles a procedural pattern tinted by the base color. Textured draws an owned
// image over the base color. The texture path always wins over the pattern.
package face

import (
	"fmt"

	"github.com/chewxy/math32"

	"paintcube/internal/colors"
)

// Pattern is a procedural tile used when no image is loaded.
type Pattern int

const (
	PatternNone Pattern = iota
	PatternStripes
	PatternDots

	patternCount = 3
)

var patternNames = [patternCount]string{"none", "stripes", "dots"}

func (p Pattern) String() string {
	if p < 0 || int(p) >= patternCount {
		return fmt.Sprintf("Pattern(%d)", int(p))
	}
	return patternNames[p]
}

// ClampPattern maps any integer to the nearest valid pattern.
func ClampPattern(p int) Pattern {
	return Pattern(colors.Clamp(p, int(PatternNone), int(PatternDots)))
}

// ParsePattern resolves a pattern name.
func ParsePattern(name string) (Pattern, bool) {
	for i, n := range patternNames {
		if n == name {
			return Pattern(i), true
		}
	}
	return PatternNone, false
}

// State is the render path a face takes.
type State int

const (
	Plain State = iota
	Patterned
	Textured
)

func (s State) String() string {
	switch s {
	case Plain:
		return "plain"
	case Patterned:
		return "patterned"
	case Textured:
		return "textured"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

const (
	MinScale     float32 = 0.1
	MaxScale     float32 = 4.0
	DefaultScale float32 = 1.0
	// ZoomStep is the scale change per zoom key press.
	ZoomStep float32 = 0.1
)

// ClampScale limits s to [MinScale, MaxScale]. NaN maps to DefaultScale.
func ClampScale(s float32) float32 {
	if math32.IsNaN(s) {
		return DefaultScale
	}
	return colors.Clamp(s, MinScale, MaxScale)
}

// WrapRotation returns ((r + d) mod 4 + 4) mod 4.
func WrapRotation(r, d int) int {
	return ((r+d)%4 + 4) % 4
}

// Face is one side of the cube. The zero value is not ready; use newFace.
type Face struct {
	color    colors.RGB
	pattern  Pattern
	texture  ownedTexture
	hasAlpha bool
	scale    float32
	rotation int
	size     int
	source   string
}

func newFace() Face {
	return Face{color: colors.White, scale: DefaultScale}
}

// State returns the current render path.
func (f *Face) State() State {
	switch {
	case f.texture.valid():
		return Textured
	case f.pattern != PatternNone:
		return Patterned
	}
	return Plain
}

// Color returns the base color.
func (f *Face) Color() colors.RGB { return f.color }

// SetColor replaces the base color; channels are clamped to [0,1].
func (f *Face) SetColor(c colors.RGB) { f.color = c.Clamped() }

// Pattern returns the pattern selection. It is ignored while a texture is loaded.
func (f *Face) Pattern() Pattern { return f.pattern }

// SetPattern selects a pattern, clamping p into range. It reports false and
// changes nothing when the face has a texture.
func (f *Face) SetPattern(p int) bool {
	if f.texture.valid() {
		return false
	}
	f.pattern = ClampPattern(p)
	return true
}

// HasTexture reports whether an image is loaded.
func (f *Face) HasTexture() bool { return f.texture.valid() }

// Texture returns the owned texture or nil.
func (f *Face) Texture() Texture { return f.texture.get() }

// HasAlpha reports whether the loaded image has translucent pixels.
func (f *Face) HasAlpha() bool { return f.texture.valid() && f.hasAlpha }

// Scale returns the texture zoom.
func (f *Face) Scale() float32 { return f.scale }

// Rotation returns the texture rotation in 90° clockwise steps (0..3).
func (f *Face) Rotation() int { return f.rotation }

// ImageSize returns the side of the loaded square image in pixels.
func (f *Face) ImageSize() int { return f.size }

// Source returns the path the texture was loaded from.
func (f *Face) Source() string { return f.source }

// SetScale clamps and stores s. No-op without a texture.
func (f *Face) SetScale(s float32) bool {
	if !f.texture.valid() {
		return false
	}
	f.scale = ClampScale(s)
	return true
}

// ZoomBy adds delta to the scale, rounds to two decimals and clamps.
func (f *Face) ZoomBy(delta float32) bool {
	if !f.texture.valid() {
		return false
	}
	return f.SetScale(math32.Round((f.scale+delta)*100) / 100)
}

// RotateTexture turns the image by delta quarter turns. No-op without a texture.
func (f *Face) RotateTexture(delta int) bool {
	if !f.texture.valid() {
		return false
	}
	f.rotation = WrapRotation(f.rotation, delta)
	return true
}

// Clear returns the face to plain white and releases any texture.
func (f *Face) Clear() {
	f.dropTexture()
	f.color = colors.White
	f.pattern = PatternNone
}

// ClearColor resets the base color to white and keeps the image.
func (f *Face) ClearColor() {
	f.color = colors.White
}

// attach takes ownership of tex. The previous texture must already be released.
func (f *Face) attach(tex Texture, hasAlpha bool, size int, source string) {
	f.texture.set(tex)
	f.hasAlpha = hasAlpha
	f.size = size
	f.source = source
	f.scale = DefaultScale
	f.rotation = 0
	f.pattern = PatternNone
}

func (f *Face) dropTexture() {
	f.texture.release()
	f.hasAlpha = false
	f.size = 0
	f.source = ""
	f.scale = DefaultScale
	f.rotation = 0
}
