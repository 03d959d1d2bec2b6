package app

import (
	"fmt"
	"strconv"

	"paintcube/internal/background"
	"paintcube/internal/colors"
	"paintcube/internal/commands"
	"paintcube/internal/face"
)

// registerCommands binds the console commands. Every face operation has a
// console form so the program is usable without a file chooser.
func (a *App) registerCommands() {
	a.reg.Register("load", "<path>", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: load <path>")
		}
		return a.LoadImage(args[0])
	})
	a.reg.Register("face", "<0-5>", nil, func(args []string) error {
		i, err := oneInt(args)
		if err != nil {
			return err
		}
		if !a.cube.Select(i) {
			return fmt.Errorf("face %d out of range", i)
		}
		return nil
	})
	a.reg.Register("color", "<r> <g> <b>", nil, func(args []string) error {
		c, err := rgbArgs(args)
		if err != nil {
			return err
		}
		a.cube.Current().SetColor(c)
		return nil
	})
	a.reg.Register("mix", "<r> <g> <b>", nil, func(args []string) error {
		c, err := rgbArgs(args)
		if err != nil {
			return err
		}
		a.MixSelected(c)
		return nil
	})
	a.reg.Register("pattern", "<none|stripes|dots>", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: pattern <none|stripes|dots>")
		}
		p, ok := face.ParsePattern(args[0])
		if !ok {
			return fmt.Errorf("unknown pattern %q", args[0])
		}
		if !a.cube.Current().SetPattern(int(p)) {
			return fmt.Errorf("face has an image; clear it first")
		}
		return nil
	})
	a.reg.Register("zoom", "<scale>", nil, func(args []string) error {
		s, err := oneFloat(args)
		if err != nil {
			return err
		}
		if !a.cube.Current().SetScale(s) {
			return fmt.Errorf("face has no image")
		}
		return nil
	})
	a.reg.Register("rotate", "<quarter turns>", nil, func(args []string) error {
		d, err := oneInt(args)
		if err != nil {
			return err
		}
		if !a.cube.Current().RotateTexture(d) {
			return fmt.Errorf("face has no image")
		}
		return nil
	})

	clearFlags := commands.NewFlagSet("clear")
	colorOnly := clearFlags.Bool("color-only", false, "keep the image")
	a.reg.Register("clear", "[--color-only]", clearFlags, func([]string) error {
		if *colorOnly {
			a.cube.Current().ClearColor()
		} else {
			a.cube.Current().Clear()
		}
		return nil
	})

	hudFlags := commands.NewFlagSet("hud")
	show := hudFlags.Bool("show", false, "show the benchmark HUD")
	hide := hudFlags.Bool("hide", false, "hide the benchmark HUD")
	a.reg.Register("hud", "--show|--hide", hudFlags, func([]string) error {
		switch {
		case *show && *hide:
			return fmt.Errorf("--show and --hide are exclusive")
		case *show:
			a.hud = true
		case *hide:
			a.hud = false
		default:
			a.hud = !a.hud
		}
		return nil
	})

	bgFlags := commands.NewFlagSet("background")
	mode := bgFlags.String("mode", "", "solid, gradient, math or starfield")
	color := bgFlags.Int("color", -1, "palette index")
	a.reg.Register("background", "--mode <m> --color <i>", bgFlags, func([]string) error {
		if *mode != "" {
			m, ok := background.ParseMode(*mode)
			if !ok {
				return fmt.Errorf("unknown background mode %q", *mode)
			}
			a.bg.SetMode(m)
		}
		if *color >= 0 {
			a.bg.SetColorIndex(*color)
		}
		return nil
	})
}

func oneInt(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("want one integer argument")
	}
	return strconv.Atoi(args[0])
}

func oneFloat(args []string) (float32, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("want one number argument")
	}
	f, err := strconv.ParseFloat(args[0], 32)
	return float32(f), err
}

func rgbArgs(args []string) (colors.RGB, error) {
	if len(args) != 3 {
		return colors.RGB{}, fmt.Errorf("want three channels in [0,1]")
	}
	var v [3]float32
	for i, s := range args {
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return colors.RGB{}, err
		}
		v[i] = float32(f)
	}
	return colors.RGB{R: v[0], G: v[1], B: v[2]}, nil
}
