package app

import "paintcube/internal/face"

// Status is a per-frame snapshot for the overlays.
type Status struct {
	Splash       bool
	Controls     bool
	HUD          bool
	ConsoleOpen  bool
	ConsoleInput string
	Selected     int
	FaceName     string
	HasTexture   bool
	HasAlpha     bool
	Scale        float32
	Degrees      int
	ImageSize    int
	Pattern      string
	Background   string
	Message      string
}

// Status snapshots the state the overlays draw.
func (a *App) Status() Status {
	v := a.cube.View(a.cube.Selected())
	return Status{
		Splash:       a.splash,
		Controls:     a.controls,
		HUD:          a.hud,
		ConsoleOpen:  a.console.IsOpen(),
		ConsoleInput: a.console.Input(),
		Selected:     v.Face,
		FaceName:     v.Name,
		HasTexture:   v.HasTexture,
		HasAlpha:     v.HasAlpha,
		Scale:        v.Scale,
		Degrees:      v.Degrees,
		ImageSize:    v.ImageSize,
		Pattern:      v.Pattern.String(),
		Background:   a.bg.Mode().String(),
		Message:      a.message,
	}
}

// SelectedView returns the selected face snapshot.
func (a *App) SelectedView() face.View { return a.cube.View(a.cube.Selected()) }
