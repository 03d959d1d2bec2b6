// Package script is the boundary between the renderer and the code that
// decides colors, key bindings, stars, picks and overlay text.
//
// Two implementations exist. Native answers everything in Go. Lua runs the
// scripts in lua/ inside one gopher-lua state and falls back to the native
// answer whenever a call fails, so callers never see a scripting error.
package script

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"paintcube/internal/colors"
	"paintcube/internal/input"
	"paintcube/internal/starfield"
	"paintcube/internal/uitext"
)

// Bridge is the capability set the rest of the program calls.
type Bridge interface {
	MixColor(c, inc colors.RGB) colors.RGB
	MapInput(k input.Key) input.Delta
	InitStars(seed uint32, n int) int
	StarPositions(t float64, dst []starfield.Star) []starfield.Star
	ResolvePick(pixelR int) (int, bool)
	SplashLines() []uitext.Line
	ControlLines() []uitext.Line
	Close() error
}

// Timed is implemented by bridges that meter time spent in calls.
type Timed interface {
	// TakeElapsed returns the time spent in calls since the last call to
	// TakeElapsed and resets the counter.
	TakeElapsed() time.Duration
}

var (
	ErrMissingFunction = errors.New("function not defined")
	ErrBadResult       = errors.New("unexpected result")
	ErrClosed          = errors.New("state closed")
)

// CallError reports a failed script call. It is logged, never returned to
// Bridge callers.
type CallError struct {
	Func string
	Err  error
}

func (e *CallError) Error() string { return fmt.Sprintf("script %s: %v", e.Func, e.Err) }

func (e *CallError) Unwrap() error { return e.Err }

// DefaultTimeout bounds a single script call.
const DefaultTimeout = 50 * time.Millisecond

// Options configure both bridge implementations.
type Options struct {
	// Mixer names the native mix strategy ("additive", "pigment", "lab").
	Mixer string
	// Step is the rotation step in degrees for the default key table.
	Step float32
	// Text overrides the native overlay lines.
	Text uitext.Provider
	// Dir is searched for script files before the embedded copies.
	Dir string
	// Timeout bounds each Lua call; zero means DefaultTimeout.
	Timeout time.Duration
	Log     *slog.Logger
}

// meter accumulates call durations.
type meter struct {
	elapsed time.Duration
}

func (m *meter) since(start time.Time) { m.elapsed += time.Since(start) }

func (m *meter) TakeElapsed() time.Duration {
	d := m.elapsed
	m.elapsed = 0
	return d
}
