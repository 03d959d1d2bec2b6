package script

import (
	"fmt"
	"math"

	lua "github.com/yuin/gopher-lua"

	"paintcube/internal/colors"
	"paintcube/internal/starfield"
	"paintcube/internal/uitext"
)

func badResult(fn string, format string, args ...any) error {
	return &CallError{Func: fn, Err: fmt.Errorf("%w: "+format, append([]any{ErrBadResult}, args...)...)}
}

func number(v lua.LValue) (float64, bool) {
	n, ok := v.(lua.LNumber)
	if !ok {
		return 0, false
	}
	f := float64(n)
	return f, !math.IsNaN(f) && !math.IsInf(f, 0)
}

func numbers3(fn string, vs []lua.LValue) ([3]float64, error) {
	var out [3]float64
	for i := range out {
		f, ok := number(vs[i])
		if !ok {
			return out, badResult(fn, "result %d is %s", i+1, vs[i].Type())
		}
		out[i] = f
	}
	return out, nil
}

func integer(fn string, v lua.LValue) (int, error) {
	f, ok := number(v)
	if !ok || f != math.Trunc(f) {
		return 0, badResult(fn, "want an integer, got %s %v", v.Type(), v)
	}
	return int(f), nil
}

// starList reads a flat { x, y, r, g, b, ... } table into dst.
func starList(v lua.LValue, dst []starfield.Star) ([]starfield.Star, error) {
	const fn = "getStarPositions"
	tbl, ok := v.(*lua.LTable)
	if !ok {
		return nil, badResult(fn, "want a table, got %s", v.Type())
	}
	n := tbl.Len()
	if n%5 != 0 {
		return nil, badResult(fn, "%d values is not a multiple of 5", n)
	}
	dst = dst[:0]
	var f [5]float64
	for i := 1; i <= n; i += 5 {
		for k := range f {
			x, ok := number(tbl.RawGetInt(i + k))
			if !ok {
				return nil, badResult(fn, "value %d is not a number", i+k)
			}
			f[k] = x
		}
		dst = append(dst, starfield.Star{X: f[0], Y: f[1], R: f[2], G: f[3], B: f[4]})
	}
	return dst, nil
}

// lineList reads an array of { text, color = {r,g,b}, step, centered } tables.
func lineList(fn string, v lua.LValue) ([]uitext.Line, error) {
	tbl, ok := v.(*lua.LTable)
	if !ok {
		return nil, badResult(fn, "want a table, got %s", v.Type())
	}
	n := tbl.Len()
	out := make([]uitext.Line, 0, n)
	for i := 1; i <= n; i++ {
		row, ok := tbl.RawGetInt(i).(*lua.LTable)
		if !ok {
			return nil, badResult(fn, "line %d is not a table", i)
		}
		text, ok := row.RawGetString("text").(lua.LString)
		if !ok {
			return nil, badResult(fn, "line %d has no text", i)
		}
		line := uitext.Line{Text: string(text), Color: colors.White, Step: uitext.DefaultStep}
		if c, ok := row.RawGetString("color").(*lua.LTable); ok {
			rgb, err := numbers3(fn, []lua.LValue{c.RawGetInt(1), c.RawGetInt(2), c.RawGetInt(3)})
			if err != nil {
				return nil, err
			}
			line.Color = colors.RGB{R: float32(rgb[0]), G: float32(rgb[1]), B: float32(rgb[2])}.Clamped()
		}
		if s, ok := number(row.RawGetString("step")); ok && s > 0 {
			line.Step = float32(s)
		}
		line.Centered = lua.LVAsBool(row.RawGetString("centered"))
		out = append(out, line)
	}
	return out, nil
}
