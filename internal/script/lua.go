package script

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	lua "github.com/yuin/gopher-lua"

	"paintcube/internal/colors"
	"paintcube/internal/input"
	"paintcube/internal/logger"
	"paintcube/internal/starfield"
	"paintcube/internal/uitext"
)

// Lua runs the bridge functions inside one gopher-lua state. Every failed
// call is logged and answered by the embedded Native bridge.
type Lua struct {
	L        *lua.LState
	native   *Native
	timeout  time.Duration
	log      *slog.Logger
	luaStars bool
	splash   []uitext.Line
	controls []uitext.Line
	meter
}

// NewLua creates the state, registers the host table and runs every file in
// Files. Any load failure closes the state and is returned.
func NewLua(opts Options) (*Lua, error) {
	native, err := NewNative(opts)
	if err != nil {
		return nil, err
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	l := &Lua{
		L:       lua.NewState(lua.Options{SkipOpenLibs: true}),
		native:  native,
		timeout: timeout,
		log:     logger.Or(opts.Log),
	}
	if err := l.openLibs(); err != nil {
		l.L.Close()
		return nil, fmt.Errorf("script: open libs: %w", err)
	}
	l.registerHost(opts)
	for _, name := range Files {
		if err := l.load(opts.Dir, name); err != nil {
			l.L.Close()
			return nil, err
		}
	}
	return l, nil
}

// openLibs loads the libraries scripts may use. io and os stay closed.
func (l *Lua) openLibs() error {
	libs := []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.LoadLibName, lua.OpenPackage},
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	}
	for _, lib := range libs {
		err := l.L.CallByParam(lua.P{Fn: l.L.NewFunction(lib.fn), NRet: 0, Protect: true}, lua.LString(lib.name))
		if err != nil {
			return fmt.Errorf("%s: %w", lib.name, err)
		}
	}
	return nil
}

// registerHost exposes configuration globals and the paintcube table.
func (l *Lua) registerHost(opts Options) {
	name := opts.Mixer
	if name == "" {
		name = "additive"
	}
	step := opts.Step
	if step <= 0 {
		step = input.DefaultStep
	}
	l.L.SetGlobal("MIX_STRATEGY", lua.LString(name))
	l.L.SetGlobal("INPUT_STEP", lua.LNumber(step))

	host := l.L.NewTable()
	l.L.SetField(host, "mix", l.L.NewFunction(l.hostMix))
	l.L.SetField(host, "log", l.L.NewFunction(l.hostLog))
	l.L.SetGlobal("paintcube", host)
}

// hostMix lets scripts defer to the native mix strategy.
func (l *Lua) hostMix(L *lua.LState) int {
	c := colors.RGB{R: float32(L.CheckNumber(1)), G: float32(L.CheckNumber(2)), B: float32(L.CheckNumber(3))}
	inc := colors.RGB{R: float32(L.CheckNumber(4)), G: float32(L.CheckNumber(5)), B: float32(L.CheckNumber(6))}
	out := l.native.mix.Mix(c, inc)
	L.Push(lua.LNumber(out.R))
	L.Push(lua.LNumber(out.G))
	L.Push(lua.LNumber(out.B))
	return 3
}

func (l *Lua) hostLog(L *lua.LState) int {
	l.log.Info("lua: " + L.CheckString(1))
	return 0
}

func (l *Lua) load(dir, name string) error {
	src, origin, err := source(dir, name)
	if err != nil {
		return fmt.Errorf("script: read %s: %w", name, err)
	}
	fn, err := l.L.Load(bytes.NewReader(src), origin)
	if err != nil {
		return fmt.Errorf("script: compile %s: %w", origin, err)
	}
	l.L.Push(fn)
	if err := l.L.PCall(0, lua.MultRet, nil); err != nil {
		return fmt.Errorf("script: run %s: %w", origin, err)
	}
	l.L.SetTop(0)
	l.log.Info("loaded script", "file", origin)
	return nil
}

// call runs the global function name under the call timeout and returns
// exactly nret results.
func (l *Lua) call(name string, nret int, args ...lua.LValue) ([]lua.LValue, error) {
	defer l.since(time.Now())
	if l.L == nil {
		return nil, &CallError{Func: name, Err: ErrClosed}
	}
	fn, ok := l.L.GetGlobal(name).(*lua.LFunction)
	if !ok {
		return nil, &CallError{Func: name, Err: ErrMissingFunction}
	}
	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()
	l.L.SetContext(ctx)
	defer l.L.RemoveContext()

	top := l.L.GetTop()
	defer l.L.SetTop(top)
	if err := l.L.CallByParam(lua.P{Fn: fn, NRet: nret, Protect: true}, args...); err != nil {
		return nil, &CallError{Func: name, Err: err}
	}
	out := make([]lua.LValue, nret)
	for i := range out {
		out[i] = l.L.Get(top + 1 + i)
	}
	return out, nil
}

func (l *Lua) fail(err error) {
	l.log.Warn("script call failed, using native result", "err", err)
}

func (l *Lua) MixColor(c, inc colors.RGB) colors.RGB {
	out, err := l.call("mixColors", 3,
		lua.LNumber(c.R), lua.LNumber(c.G), lua.LNumber(c.B),
		lua.LNumber(inc.R), lua.LNumber(inc.G), lua.LNumber(inc.B))
	if err == nil {
		var v [3]float64
		if v, err = numbers3("mixColors", out); err == nil {
			rgb := colors.RGB{R: float32(v[0]), G: float32(v[1]), B: float32(v[2])}
			return rgb.Clamped()
		}
	}
	l.fail(err)
	return l.native.mix.Mix(c, inc)
}

func (l *Lua) MapInput(k input.Key) input.Delta {
	out, err := l.call("processInput", 3, lua.LNumber(k))
	if err == nil {
		var v [3]float64
		if v, err = numbers3("processInput", out); err == nil {
			return input.Delta{DX: float32(v[0]), DY: float32(v[1]), DZ: float32(v[2])}
		}
	}
	l.fail(err)
	return input.Delta{}
}

// InitStars builds the native field as the per-frame fallback, then asks
// stars.lua for its own. A failure here makes StarPositions native for the
// rest of the run.
func (l *Lua) InitStars(seed uint32, n int) int {
	l.native.InitStars(seed, n)
	out, err := l.call("initStars", 1, lua.LNumber(seed), lua.LNumber(n))
	if err == nil {
		var count int
		if count, err = integer("initStars", out[0]); err == nil && count != n {
			err = &CallError{Func: "initStars", Err: fmt.Errorf("%w: %d stars, want %d", ErrBadResult, count, n)}
		}
	}
	l.luaStars = err == nil
	if err != nil {
		l.fail(err)
	}
	return l.native.field.Len()
}

func (l *Lua) StarPositions(t float64, dst []starfield.Star) []starfield.Star {
	if !l.luaStars {
		return l.native.field.At(t, dst)
	}
	out, err := l.call("getStarPositions", 1, lua.LNumber(t))
	if err == nil {
		var stars []starfield.Star
		if stars, err = starList(out[0], dst); err == nil {
			return stars
		}
	}
	l.fail(err)
	return l.native.field.At(t, dst)
}

func (l *Lua) ResolvePick(pixelR int) (int, bool) {
	out, err := l.call("resolvePick", 1, lua.LNumber(pixelR))
	if err == nil {
		var face int
		if face, err = integer("resolvePick", out[0]); err == nil {
			if face < 0 || face >= 6 {
				return 0, false
			}
			return face, true
		}
	}
	l.fail(err)
	return l.native.ResolvePick(pixelR)
}

// SplashLines asks ui.lua once and keeps the answer.
func (l *Lua) SplashLines() []uitext.Line {
	if l.splash == nil {
		l.splash = l.lines("splashLines", l.native.SplashLines)
	}
	return l.splash
}

// ControlLines asks ui.lua once and keeps the answer.
func (l *Lua) ControlLines() []uitext.Line {
	if l.controls == nil {
		l.controls = l.lines("controlLines", l.native.ControlLines)
	}
	return l.controls
}

func (l *Lua) lines(name string, fallback func() []uitext.Line) []uitext.Line {
	out, err := l.call(name, 1)
	if err == nil {
		var lines []uitext.Line
		if lines, err = lineList(name, out[0]); err == nil {
			return lines
		}
	}
	l.fail(err)
	return fallback()
}

// Close shuts the state down. Calls made after Close get the native result.
func (l *Lua) Close() error {
	if l.L != nil {
		l.L.Close()
		l.L = nil
	}
	return nil
}
