// Package scene draws one frame of the world: the background behind
// everything, then the cube through a perspective camera.
package scene

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"paintcube/internal/background"
	"paintcube/internal/face"
	"paintcube/internal/render"
)

const (
	cameraDistance = 5
	cameraFovy     = 45
	curveThickness = 2
	starMinSize    = 1
	starMaxSize    = 3
)

// Scene holds the camera and what it looks at.
type Scene struct {
	Camera     rl.Camera3D
	background *background.Background
	cube       *face.Cube
	renderer   *render.Renderer
	points     []rl.Vector2
}

// New returns a scene looking down -Z at the origin from (0,0,5) with a 45
// degree field of view.
func New(bg *background.Background, cube *face.Cube, r *render.Renderer) *Scene {
	s := &Scene{background: bg, cube: cube, renderer: r}
	s.Camera.Position = rl.NewVector3(0, 0, cameraDistance)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = cameraFovy
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// Draw renders the background at time t seconds and then the cube. Call
// after ClearBackground and before the 2D overlay.
func (s *Scene) Draw(t float64) {
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	if s.background != nil {
		s.drawBackground(s.background.Frame(t), w, h)
	}
	if s.cube == nil || s.renderer == nil {
		return
	}
	rl.BeginMode3D(s.Camera)
	s.renderer.Draw(s.cube)
	rl.EndMode3D()
}

// drawBackground maps the frame's unit square onto the screen with y up.
func (s *Scene) drawBackground(f *background.Frame, w, h int32) {
	top, bottom := render.Color(f.Top, 255), render.Color(f.Bottom, 255)
	if f.Top == f.Bottom {
		rl.DrawRectangle(0, 0, w, h, top)
	} else {
		rl.DrawRectangleGradientV(0, 0, w, h, top, bottom)
	}

	fw, fh := float32(w), float32(h)
	switch f.Mode {
	case background.MathPattern:
		s.points = s.points[:0]
		for _, p := range f.Curve.Points {
			s.points = append(s.points, rl.NewVector2(p.X()*fw, (1-p.Y())*fh))
		}
		c := render.Color(f.Curve.Color, 230)
		for i := 1; i < len(s.points); i++ {
			rl.DrawLineEx(s.points[i-1], s.points[i], curveThickness, c)
		}
	case background.Starfield:
		for _, st := range f.Stars {
			lum := math.Max(st.R, math.Max(st.G, st.B))
			size := float32(starMinSize + (starMaxSize-starMinSize)*lum)
			c := rl.NewColor(channel(st.R), channel(st.G), channel(st.B), 255)
			pos := rl.NewVector2(float32(st.X)*fw-size/2, float32(1-st.Y)*fh-size/2)
			rl.DrawRectangleV(pos, rl.NewVector2(size, size), c)
		}
	}
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
