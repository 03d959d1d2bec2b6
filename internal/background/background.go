// Package background describes what is drawn behind the cube for a given
// time. It produces plain data; the scene package draws it.
package background

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"paintcube/internal/colors"
	"paintcube/internal/starfield"
)

// Mode selects the background style.
type Mode int

const (
	Solid Mode = iota
	Gradient
	MathPattern
	Starfield
	modeCount
)

var modeNames = [modeCount]string{"solid", "gradient", "math", "starfield"}

func (m Mode) String() string {
	if m >= 0 && m < modeCount {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts the names printed by Mode.String.
func ParseMode(s string) (Mode, bool) {
	for i, n := range modeNames {
		if n == s {
			return Mode(i), true
		}
	}
	return Starfield, false
}

// Space is the dark fill behind the stars.
var Space = colors.RGB{R: 0.01, G: 0.01, B: 0.03}

// Palette holds the selectable background colors.
var Palette = mustPalette(
	"#14213d", // navy
	"#1b4332", // forest
	"#3c096c", // violet
	"#5f0f40", // plum
	"#003049", // deep sea
	"#2b2d42", // slate
	"#000000",
)

func mustPalette(hex ...string) []colors.RGB {
	out := make([]colors.RGB, len(hex))
	for i, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(err)
		}
		out[i] = fromColorful(c)
	}
	return out
}

func fromColorful(c colorful.Color) colors.RGB {
	c = c.Clamped()
	return colors.RGB{R: float32(c.R), G: float32(c.G), B: float32(c.B)}
}

func toColorful(c colors.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

// StarSource yields star positions and colors for time t. The scripting
// bridge and FieldSource both satisfy it.
type StarSource interface {
	StarPositions(t float64, dst []starfield.Star) []starfield.Star
}

// FieldSource adapts a native field to StarSource.
type FieldSource struct{ Field *starfield.Field }

func (f FieldSource) StarPositions(t float64, dst []starfield.Star) []starfield.Star {
	if f.Field == nil {
		return dst[:0]
	}
	return f.Field.At(t, dst)
}

// CurveKind is the math pattern family.
type CurveKind int

const (
	Lissajous CurveKind = iota + 1
	Spiral
	Waves
)

// CurveSamples is how many points describe a math pattern curve.
const CurveSamples = 256

// curvePeriod is how long each curve family is shown, in seconds.
const curvePeriod = 10.0

// Curve is a polyline in the unit square.
type Curve struct {
	Kind   CurveKind
	P1, P2 float64
	Points []mgl32.Vec2
	Color  colors.RGB
}

// Frame is everything needed to draw the background once.
type Frame struct {
	Mode   Mode
	Top    colors.RGB
	Bottom colors.RGB
	Curve  Curve
	Stars  []starfield.Star
}

// Background holds the mode and palette selection.
type Background struct {
	mode  Mode
	color int
	stars StarSource
	frame Frame
}

// New returns a starfield background fed by stars.
func New(stars StarSource) *Background {
	return &Background{mode: Starfield, stars: stars}
}

// Reset restores the starfield mode and first palette color.
func (b *Background) Reset() {
	b.mode = Starfield
	b.color = 0
}

func (b *Background) Mode() Mode { return b.mode }

// SetMode selects m; out-of-range values are ignored.
func (b *Background) SetMode(m Mode) bool {
	if m < 0 || m >= modeCount {
		return false
	}
	b.mode = m
	return true
}

// NextMode cycles through the modes.
func (b *Background) NextMode() Mode {
	b.mode = (b.mode + 1) % modeCount
	return b.mode
}

// ColorIndex returns the palette selection.
func (b *Background) ColorIndex() int { return b.color }

// SetColorIndex selects a palette entry, wrapping out-of-range indices.
func (b *Background) SetColorIndex(i int) {
	n := len(Palette)
	b.color = (i%n + n) % n
}

// NextColor steps to the next palette entry.
func (b *Background) NextColor() int {
	b.SetColorIndex(b.color + 1)
	return b.color
}

// PreviousColor steps to the previous palette entry.
func (b *Background) PreviousColor() int {
	b.SetColorIndex(b.color - 1)
	return b.color
}

// Color returns the selected palette color.
func (b *Background) Color() colors.RGB { return Palette[b.color] }

// Frame describes the background at time t seconds. The returned value
// shares its slices with the next call.
func (b *Background) Frame(t float64) *Frame {
	f := &b.frame
	f.Mode = b.mode
	f.Curve.Points = f.Curve.Points[:0]
	f.Stars = f.Stars[:0]
	base := b.Color()
	switch b.mode {
	case Solid:
		f.Top, f.Bottom = base, base
	case Gradient:
		f.Top = base
		f.Bottom = fromColorful(toColorful(base).BlendLab(colorful.Color{}, 0.7))
	case MathPattern:
		f.Top, f.Bottom = Space, Space
		f.Curve = curveAt(t, f.Curve.Points)
		f.Curve.Color = fromColorful(toColorful(base).BlendLab(colorful.Color{R: 1, G: 1, B: 1}, 0.55))
	default:
		f.Top, f.Bottom = Space, Space
		if b.stars != nil {
			f.Stars = b.stars.StarPositions(t, f.Stars)
		}
	}
	return f
}

// PatternAt returns the curve family and its two parameters at time t.
func PatternAt(t float64) (CurveKind, float64, float64) {
	if t < 0 {
		t = 0
	}
	kind := CurveKind(int(t/curvePeriod)%3) + Lissajous
	switch kind {
	case Lissajous:
		return kind, 3 + math.Sin(t*0.2), 2 + math.Cos(t*0.13)
	case Spiral:
		return kind, 4 + 2*math.Sin(t*0.1), t * 0.5
	}
	return kind, 2 + math.Sin(t*0.3), t * 1.5
}

func curveAt(t float64, dst []mgl32.Vec2) Curve {
	kind, p1, p2 := PatternAt(t)
	c := Curve{Kind: kind, P1: p1, P2: p2, Points: dst[:0]}
	for i := 0; i < CurveSamples; i++ {
		s := float64(i) / float64(CurveSamples-1)
		var x, y float64
		switch kind {
		case Lissajous:
			a := s * 2 * math.Pi
			x = 0.5 + 0.4*math.Sin(p1*a+t*0.3)
			y = 0.5 + 0.4*math.Sin(p2*a)
		case Spiral:
			a := s * p1 * 2 * math.Pi
			r := 0.45 * s
			x = 0.5 + r*math.Cos(a+p2)
			y = 0.5 + r*math.Sin(a+p2)
		case Waves:
			x = s
			y = 0.5 + 0.25*math.Sin(s*p1*2*math.Pi+p2)*math.Cos(s*math.Pi)
		}
		c.Points = append(c.Points, mgl32.Vec2{float32(x), float32(y)})
	}
	return c
}
