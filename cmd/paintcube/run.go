package main

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"paintcube/internal/app"
	"paintcube/internal/background"
	"paintcube/internal/bench"
	"paintcube/internal/colors"
	"paintcube/internal/config"
	"paintcube/internal/dialog"
	"paintcube/internal/face"
	"paintcube/internal/graphics"
	"paintcube/internal/hud"
	"paintcube/internal/imageio"
	"paintcube/internal/logger"
	"paintcube/internal/overlay"
	"paintcube/internal/picking"
	"paintcube/internal/render"
	"paintcube/internal/scene"
	"paintcube/internal/script"
	"paintcube/internal/theme"
)

// newBridge returns the Lua bridge, or the native one when scripting is off.
func newBridge(cfg config.Config, log *slog.Logger) (script.Bridge, error) {
	opts := script.Options{
		Mixer:   cfg.Mixer,
		Step:    cfg.InputStep,
		Dir:     cfg.Script.Dir,
		Timeout: cfg.Script.Timeout,
		Log:     log,
	}
	if !cfg.Script.Enabled {
		n, err := script.NewNative(opts)
		if err != nil {
			return nil, err
		}
		return n, nil
	}
	b, err := script.NewLua(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errScriptInit, err)
	}
	return b, nil
}

func loadTheme(path string, log *slog.Logger) *theme.Theme {
	if path == "" {
		return theme.New(nil)
	}
	sheet, err := theme.Load(path)
	if err != nil {
		log.Warn("theme not loaded, using the embedded one", "path", path, "err", err)
		return theme.New(nil)
	}
	return theme.New(sheet)
}

// run wires the program and blocks until the window closes. cfgErr is a
// config problem that was recovered from by resetting the bad settings.
func run(cfg config.Config, cfgErr error) error {
	lines := logger.New(cfg.Log.Path)
	log := lines.Slog(logger.ParseLevel(cfg.Log.Level))
	if cfgErr != nil {
		log.Warn("config problem, invalid settings use their defaults", "err", cfgErr)
	}
	log.Info("starting", "scripts", cfg.Script.Enabled, "mixer", cfg.Mixer, "stars", cfg.Stars.Count)

	bridge, err := newBridge(cfg, log)
	if err != nil {
		log.Error("bridge", "err", err)
		return err
	}
	defer func() {
		if err := bridge.Close(); err != nil {
			log.Warn("bridge close", "err", err)
		}
	}()
	n := bridge.InitStars(cfg.Stars.Seed, cfg.Stars.Count)
	log.Info("star field ready", "stars", n, "seed", cfg.Stars.Seed)

	cube := face.NewCube(imageio.NewLoader(render.RaylibDecoder{}), &render.Uploader{Log: log})
	cube.SetRotation(cfg.CubeRotation[0], cfg.CubeRotation[1], cfg.CubeRotation[2])
	defer cube.Close()

	bg := background.New(bridge)
	renderer := render.NewRenderer()
	defer renderer.Close()
	scn := scene.New(bg, cube, renderer)
	pass := render.NewIndexPass(cube, &scn.Camera)
	defer pass.Close()

	th := loadTheme(cfg.Overlay.Theme, log)
	a := app.New(app.Options{
		Cube:       cube,
		Bridge:     bridge,
		Background: bg,
		Picker:     &picking.Picker{Pass: pass, Log: log},
		Files:      dialog.New(),
		Theme:      th,
		Lines:      lines,
		Log:        log,
		HUD:        cfg.HUD,
	})

	painter := &render.Painter{}
	defer painter.Close()
	ov := overlay.New(th, bridge, a.Console(), nil)
	mon := bench.New()
	panel := hud.New(mon, th)
	timed, _ := bridge.(script.Timed)

	initGL := func() {
		graphics.RouteLogs(log)
		if cfg.Overlay.Font != "" {
			if err := painter.LoadFont(cfg.Overlay.Font); err != nil {
				log.Warn("font not loaded, using the default", "err", err)
			}
		}
		ov.SetMeasurer(painter)
	}

	update := func() bool {
		mon.FrameBegin()
		a.SetScreen(rl.GetScreenWidth(), rl.GetScreenHeight())
		pollInput(a)
		return !a.ShouldQuit()
	}

	draw := func() {
		w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())

		mon.RenderBegin()
		scn.Draw(rl.GetTime())
		mon.RenderEnd()

		st, err := overlay.StateFrom(a.Status())
		if err != nil {
			log.Warn("overlay", "err", err)
		}
		painter.Paint(ov.Build(st, w, h))
		panel.Visible = a.HUDVisible()
		painter.Paint(panel.Build(w, h))

		mon.SetTextures(cube.TextureCount(), cube.TextureBytes())
		if timed != nil {
			mon.AddScript(timed.TakeElapsed())
		}
		mon.FrameEnd()
	}

	graphics.Run(graphics.Window{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
		FPS:    cfg.Window.FPS,
		Clear:  colors.Black,
	}, initGL, update, draw)

	log.Info("shutting down", "textures", cube.TextureCount())
	return nil
}
