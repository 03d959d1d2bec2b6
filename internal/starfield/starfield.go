// Package starfield generates the deterministic background star field.
//
// Particles are produced once from a seed by a linear-congruential generator
// and never mutated. Positions for a frame are a pure function of elapsed time.
package starfield

import "math"

const (
	// DefaultCount is the number of stars generated at startup.
	DefaultCount = 420
	// DefaultSeed is the generator seed used when none is configured.
	DefaultSeed uint32 = 1337

	lcgMul = 1664525
	lcgInc = 1013904223
)

// LCG is the 32-bit linear-congruential generator state.
type LCG struct {
	state uint32
}

// NewLCG seeds a generator.
func NewLCG(seed uint32) *LCG {
	return &LCG{state: seed}
}

// Next advances the state and returns a uniform value from the top 24 bits.
func (g *LCG) Next() float64 {
	g.state = g.state*lcgMul + lcgInc
	return float64(g.state>>8) / 16777215
}

// Particle is one star. Fields are fixed after generation.
type Particle struct {
	X, Y         float64
	Speed        float64
	Brightness   float64
	TwinklePhase float64
}

// Star is a particle resolved for one frame.
type Star struct {
	X, Y    float64
	R, G, B float64
}

// Field is an immutable particle set.
type Field struct {
	particles []Particle
}

// Generate builds n particles from seed. Draw order per particle is x, y, depth, phase.
func Generate(seed uint32, n int) *Field {
	if n < 0 {
		n = 0
	}
	g := NewLCG(seed)
	ps := make([]Particle, n)
	for i := range ps {
		x := g.Next()
		y := g.Next()
		depth := g.Next()
		phase := g.Next() * 2 * math.Pi
		ps[i] = Particle{
			X:            x,
			Y:            y,
			Speed:        0.02 + depth*0.10,
			Brightness:   0.45 + (1-depth)*0.55,
			TwinklePhase: phase,
		}
	}
	return &Field{particles: ps}
}

// Len returns the particle count.
func (f *Field) Len() int { return len(f.particles) }

// Particles returns a copy of the particle set.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Wrap01 folds v back into [0,1).
func Wrap01(v float64) float64 {
	for v < 0 {
		v += 1
	}
	for v >= 1 {
		v -= 1
	}
	return v
}

// Position returns where p is drawn at time t (seconds).
func (p Particle) Position(t float64) (x, y float64) {
	y = Wrap01(p.Y - math.Mod(t*p.Speed, 1))
	x = Wrap01(p.X + math.Sin(t*0.15+p.TwinklePhase)*0.01)
	return x, y
}

// Luminance returns the twinkling brightness at time t.
func (p Particle) Luminance(t float64) float64 {
	return p.Brightness * (0.35 + 0.65*(0.5+0.5*math.Sin(t*2+p.TwinklePhase)))
}

// Tint turns a luminance into the cool white used for stars.
func Tint(b float64) (r, g, bl float64) {
	return b * 0.92, b * 0.96, b
}

// At appends every star for time t to dst and returns it.
func (f *Field) At(t float64, dst []Star) []Star {
	dst = dst[:0]
	for _, p := range f.particles {
		x, y := p.Position(t)
		r, g, b := Tint(p.Luminance(t))
		dst = append(dst, Star{X: x, Y: y, R: r, G: g, B: b})
	}
	return dst
}
