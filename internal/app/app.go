// Package app holds the interactive state of the program and turns input
// events into operations on the cube, background and console.
//
// It has no rendering code; the scene and overlay packages read its state
// through Status once per frame.
package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"

	"paintcube/internal/background"
	"paintcube/internal/colors"
	"paintcube/internal/commands"
	"paintcube/internal/dialog"
	"paintcube/internal/face"
	"paintcube/internal/input"
	"paintcube/internal/logger"
	"paintcube/internal/picking"
	"paintcube/internal/script"
	"paintcube/internal/terminal"
	"paintcube/internal/theme"
)

// KeyConsole toggles the console.
const KeyConsole input.Key = '`'

// FilePicker asks the user for an image path. *dialog.Picker implements it.
type FilePicker interface {
	PickImage(ctx context.Context) (string, error)
}

// Options wire an App. Cube and Bridge are required.
type Options struct {
	Cube       *face.Cube
	Bridge     script.Bridge
	Background *background.Background
	Picker     *picking.Picker
	Files      FilePicker
	Theme      *theme.Theme
	Lines      *logger.Logger
	Log        *slog.Logger
	HUD        bool
}

// App is the explicit program state.
type App struct {
	cube     *face.Cube
	bridge   script.Bridge
	bg       *background.Background
	picker   *picking.Picker
	files    FilePicker
	theme    *theme.Theme
	log      *slog.Logger
	reg      *commands.Registry
	console  *terminal.Terminal
	splash   bool
	controls bool
	hud      bool
	quit     bool
	screenW  int
	screenH  int
	message  string
}

// New returns an App showing the splash screen.
func New(opts Options) *App {
	lines := opts.Lines
	if lines == nil {
		lines = logger.New("")
	}
	th := opts.Theme
	if th == nil {
		th = theme.New(nil)
	}
	bg := opts.Background
	if bg == nil {
		bg = background.New(opts.Bridge)
	}
	picker := opts.Picker
	if picker == nil {
		picker = &picking.Picker{}
	}
	if picker.Resolver == nil {
		picker.Resolver = opts.Bridge
	}
	a := &App{
		cube:    opts.Cube,
		bridge:  opts.Bridge,
		bg:      bg,
		picker:  picker,
		files:   opts.Files,
		theme:   th,
		log:     logger.Or(opts.Log),
		reg:     commands.NewRegistry(),
		splash:  true,
		hud:     opts.HUD,
		screenW: 800,
		screenH: 600,
	}
	a.console = terminal.New(lines, a.reg)
	a.registerCommands()
	return a
}

func (a *App) Cube() *face.Cube                   { return a.cube }
func (a *App) Background() *background.Background { return a.bg }
func (a *App) Picker() *picking.Picker            { return a.picker }
func (a *App) Console() *terminal.Terminal        { return a.console }
func (a *App) Commands() *commands.Registry       { return a.reg }

// ShouldQuit reports whether Escape was pressed outside the console.
func (a *App) ShouldQuit() bool { return a.quit }

// SetScreen records the window size used for overlay hit tests.
func (a *App) SetScreen(w, h int) {
	if w > 0 && h > 0 {
		a.screenW, a.screenH = w, h
	}
}

// HUDVisible reports whether the benchmark HUD is on.
func (a *App) HUDVisible() bool { return a.hud }

// SetHUD shows or hides the benchmark HUD.
func (a *App) SetHUD(on bool) { a.hud = on }

// HandleKey dispatches a typed character or special key.
func (a *App) HandleKey(k input.Key) {
	if a.dismissSplash() {
		return
	}
	if a.console.IsOpen() {
		a.consoleKey(k)
		return
	}
	switch k {
	case KeyConsole:
		a.console.Toggle()
	case input.KeyEscape:
		a.quit = true
	case '1':
		a.MixSelected(colors.Red)
	case '2':
		a.MixSelected(colors.Blue)
	case '3':
		a.MixSelected(colors.Green)
	case '4':
		a.cube.Current().SetColor(colors.Black)
	case 'r', 'R':
		a.cube.Current().Clear()
	case 'p', 'P':
		a.CyclePattern()
	case 'h', 'H':
		a.controls = !a.controls
	case 'b', 'B':
		a.bg.NextMode()
	case 'n', 'N':
		a.bg.NextColor()
	case input.KeyBackspace, input.KeyDelete:
		a.OpenImageDialog(context.Background())
	case input.KeyUp:
		a.cube.Current().ZoomBy(face.ZoomStep)
	case input.KeyDown:
		a.cube.Current().ZoomBy(-face.ZoomStep)
	case input.KeyLeft:
		a.cube.Current().RotateTexture(-1)
	case input.KeyRight:
		a.cube.Current().RotateTexture(1)
	default:
		if d := a.bridge.MapInput(k); !d.IsZero() {
			a.cube.Rotate(d.DX, d.DY, d.DZ)
		}
	}
}

func (a *App) consoleKey(k input.Key) {
	switch k {
	case KeyConsole, input.KeyEscape:
		a.console.Close()
	case input.KeyEnter:
		_ = a.console.Submit()
	case input.KeyBackspace:
		a.console.Backspace()
	default:
		if !k.IsSpecial() {
			a.console.Type(rune(k))
		}
	}
}

// HandleClick handles a left click at window coordinates.
func (a *App) HandleClick(x, y int) {
	if a.dismissSplash() {
		return
	}
	if image.Pt(x, y).In(a.ControlsButton()) {
		a.controls = !a.controls
		return
	}
	a.picker.Pick(a.cube, x, y)
}

// HandleRightClick removes the selected face's color and keeps its image.
func (a *App) HandleRightClick(x, y int) {
	if a.dismissSplash() {
		return
	}
	a.cube.Current().ClearColor()
}

func (a *App) dismissSplash() bool {
	if !a.splash {
		return false
	}
	a.splash = false
	return true
}

// ControlsButton returns the button's screen rectangle.
func (a *App) ControlsButton() image.Rectangle {
	x, y, w, h := a.theme.Style("controls-button").Rect(int32(a.screenW), int32(a.screenH))
	return image.Rect(int(x), int(y), int(x+w), int(y+h))
}

// MixSelected mixes inc into the selected face through the bridge.
func (a *App) MixSelected(inc colors.RGB) {
	f := a.cube.Current()
	f.SetColor(a.bridge.MixColor(f.Color(), inc))
}

// CyclePattern steps the selected face through none, stripes and dots.
func (a *App) CyclePattern() {
	f := a.cube.Current()
	next := (int(f.Pattern()) + 1) % (int(face.PatternDots) + 1)
	if !f.SetPattern(next) {
		a.say("patterns are hidden while the face has an image")
	}
}

// LoadImage puts the file at path on the selected face.
func (a *App) LoadImage(path string) error {
	i := a.cube.Selected()
	if err := a.cube.LoadImage(i, path); err != nil {
		a.log.Warn("could not load image", "face", i, "path", path, "err", err)
		a.message = "could not load image"
		return err
	}
	v := a.cube.View(i)
	a.log.Info("image loaded", "face", i, "path", path, "size", v.ImageSize, "alpha", v.HasAlpha)
	a.message = fmt.Sprintf("loaded %s on %s", path, v.Name)
	return nil
}

// OpenImageDialog asks for a file and loads it. Cancelling is not an error.
func (a *App) OpenImageDialog(ctx context.Context) {
	if a.files == nil {
		a.say("no file chooser; use the console: cmd load <path>")
		return
	}
	path, err := a.files.PickImage(ctx)
	switch {
	case errors.Is(err, dialog.ErrCancelled):
		return
	case err != nil:
		a.log.Warn("file chooser failed", "err", err)
		a.say("file chooser unavailable; use the console: cmd load <path>")
		return
	}
	_ = a.LoadImage(path)
}

func (a *App) say(msg string) {
	a.message = msg
	a.log.Info(msg)
}

// Message returns the last user-facing notice.
func (a *App) Message() string { return a.message }
