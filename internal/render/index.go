package render

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"paintcube/internal/face"
	"paintcube/internal/picking"
)

var errOutside = errors.New("pixel outside the index target")

// IndexPass draws each face in its flat index color into an offscreen
// target and reads one pixel back. It implements picking.IndexPass.
type IndexPass struct {
	cube   *face.Cube
	camera *rl.Camera3D
	target rl.RenderTexture2D
	w, h   int32
}

// NewIndexPass returns a pass over cube seen from camera. The target is
// created on first read and follows the screen size.
func NewIndexPass(cube *face.Cube, camera *rl.Camera3D) *IndexPass {
	return &IndexPass{cube: cube, camera: camera}
}

// Height implements picking.IndexPass.
func (p *IndexPass) Height() int { return rl.GetScreenHeight() }

func (p *IndexPass) ensureTarget() {
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	if p.target.ID != 0 && w == p.w && h == p.h {
		return
	}
	if p.target.ID != 0 {
		rl.UnloadRenderTexture(p.target)
	}
	p.target = rl.LoadRenderTexture(w, h)
	p.w, p.h = w, h
}

// ReadIndex implements picking.IndexPass. row counts from the bottom, the
// way GL stores the target.
func (p *IndexPass) ReadIndex(x, row int) (int, error) {
	p.ensureTarget()
	if x < 0 || row < 0 || x >= int(p.w) || row >= int(p.h) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", errOutside, x, row, p.w, p.h)
	}

	rl.BeginTextureMode(p.target)
	rl.ClearBackground(rl.Black)
	rl.BeginMode3D(*p.camera)
	rl.PushMatrix()
	rotate(p.cube.Rotation())
	for i := 0; i < face.Count; i++ {
		r, g, b := picking.IndexColor(i)
		quad(face.Corners[i], face.UVTable[0], face.Normals[i], 0, r, g, b)
	}
	rl.PopMatrix()
	rl.EndMode3D()
	rl.EndTextureMode()

	img := rl.LoadImageFromTexture(p.target.Texture)
	p.clear()
	if !rl.IsImageValid(img) {
		return 0, errors.New("index readback failed")
	}
	defer rl.UnloadImage(img)
	c := rl.GetImageColor(*img, int32(x), int32(row))
	return int(c.R), nil
}

// clear blanks the target so no index colors outlive the read.
func (p *IndexPass) clear() {
	rl.BeginTextureMode(p.target)
	rl.ClearBackground(rl.Black)
	rl.EndTextureMode()
}

// Close unloads the target.
func (p *IndexPass) Close() {
	if p.target.ID != 0 {
		rl.UnloadRenderTexture(p.target)
		p.target = rl.RenderTexture2D{}
	}
}
