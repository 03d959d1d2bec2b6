// Package mixer combines a face color with a user-chosen increment.
//
// A Strategy may fail. Safe wraps any strategy and substitutes the additive
// rule whenever it does, so callers always get a color back.
package mixer

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"paintcube/internal/colors"
)

// ErrUnknownStrategy is returned by New for names it does not recognise.
var ErrUnknownStrategy = errors.New("mixer: unknown strategy")

// Strategy computes a new color from the current color and an increment.
type Strategy interface {
	Mix(c, inc colors.RGB) (colors.RGB, error)
}

// Func adapts a plain function to Strategy.
type Func func(c, inc colors.RGB) (colors.RGB, error)

// Mix calls f.
func (f Func) Mix(c, inc colors.RGB) (colors.RGB, error) { return f(c, inc) }

// AdditiveMix is the saturating additive rule: min(1, c + inc) per channel.
func AdditiveMix(c, inc colors.RGB) colors.RGB {
	return colors.RGB{
		R: min(1, c.R+inc.R),
		G: min(1, c.G+inc.G),
		B: min(1, c.B+inc.B),
	}
}

// Additive is the fallback strategy. It never fails.
type Additive struct{}

// Mix implements Strategy.
func (Additive) Mix(c, inc colors.RGB) (colors.RGB, error) { return AdditiveMix(c, inc), nil }

// Pigment lets a white face take the increment as its new color; anything
// else mixes additively.
type Pigment struct{}

// Mix implements Strategy.
func (Pigment) Mix(c, inc colors.RGB) (colors.RGB, error) {
	if c.IsWhite() {
		return inc.Clamped(), nil
	}
	return AdditiveMix(c, inc), nil
}

// Lab blends toward the increment in CIE L*a*b* space. Weight is the blend
// factor (0 keeps c, 1 takes inc); zero means 0.5. A white face takes the
// increment outright, like Pigment.
type Lab struct {
	Weight float64
}

// Mix implements Strategy.
func (l Lab) Mix(c, inc colors.RGB) (colors.RGB, error) {
	if inc == colors.Black {
		return c, nil
	}
	if c.IsWhite() {
		return inc.Clamped(), nil
	}
	w := l.Weight
	if w <= 0 || w > 1 {
		w = 0.5
	}
	a := colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
	b := colorful.Color{R: float64(inc.R), G: float64(inc.G), B: float64(inc.B)}
	out := a.BlendLab(b, w).Clamped()
	return colors.RGB{R: float32(out.R), G: float32(out.G), B: float32(out.B)}, nil
}

// New returns the named native strategy: "additive", "pigment" or "lab".
func New(name string) (Strategy, error) {
	switch name {
	case "", "additive":
		return Additive{}, nil
	case "pigment":
		return Pigment{}, nil
	case "lab":
		return Lab{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Safe wraps a strategy so that failures and out-of-range results never reach
// the caller.
type Safe struct {
	Strategy Strategy
	Log      *slog.Logger
}

// Mix returns the strategy's result clamped to [0,1], or AdditiveMix when the
// strategy is nil, errors, or produces a non-finite channel.
func (s Safe) Mix(c, inc colors.RGB) colors.RGB {
	if s.Strategy == nil {
		return AdditiveMix(c, inc)
	}
	out, err := s.Strategy.Mix(c, inc)
	if err == nil && !finite(out) {
		err = fmt.Errorf("mixer: non-finite result %v", out)
	}
	if err != nil {
		if s.Log != nil {
			s.Log.Warn("color mix failed, using additive", "err", err)
		}
		return AdditiveMix(c, inc)
	}
	return out.Clamped()
}

func finite(c colors.RGB) bool {
	for _, v := range [3]float32{c.R, c.G, c.B} {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
